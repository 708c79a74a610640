package handler

// APIV1Prefix is the base path of the public HTTP API.
const APIV1Prefix = "/api/v1"

// Route groups mounted under APIV1Prefix.
const (
	healthGroup        = "/health"
	matchesGroup       = "/matches"
	statsPath          = "/stats"
	notificationsGroup = "/notifications"
)
