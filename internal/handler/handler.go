package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/bharaths07/sportsv1.1-sub000/internal/service"
)

// Services bundles the use cases exposed over HTTP.
type Services struct {
	Matches       service.MatchService
	Stats         service.StatsService
	Notifications service.NotificationService
}

// Register mounts all public routes on the given engine. probes are the
// dependencies checked by readiness, keyed by name. Nil services are skipped.
func Register(r *gin.Engine, probes map[string]Pinger, svc Services, logger zerolog.Logger) {
	useJSONFieldNames()
	h := NewHealthHandler(probes)

	r.Use(RequestLogger(logger), Identity())

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group(healthGroup)
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		if svc.Matches != nil {
			NewMatchHandler(svc.Matches).Register(api)
		}
		if svc.Stats != nil {
			NewStatsHandler(svc.Stats).Register(api)
		}
		if svc.Notifications != nil {
			NewNotificationHandler(svc.Notifications).Register(api)
		}
	}
}
