package model

import (
	"encoding/json"
	"time"
)

// AchievementType names a milestone performance.
type AchievementType string

const (
	AchievementPlayerOfMatch AchievementType = "player_of_the_match"
	AchievementCentury       AchievementType = "century"
	AchievementHalfCentury   AchievementType = "half_century"
	AchievementFiveWickets   AchievementType = "five_wickets"
	AchievementHatTrick      AchievementType = "hat_trick"
)

// Achievement is a derived fact tied to one player and one match.
// Created once at match completion and never mutated.
type Achievement struct {
	ID          string          `json:"id"`
	PlayerID    string          `json:"player_id"`
	PlayerName  string          `json:"player_name"`
	MatchID     string          `json:"match_id"`
	Type        AchievementType `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// CertificateType distinguishes squad participation from milestone certificates.
type CertificateType string

const (
	CertificateParticipation CertificateType = "participation"
	CertificateAchievement   CertificateType = "achievement"
)

// Certificate is an issued document for one player and one match.
type Certificate struct {
	ID            string              `json:"id"`
	PlayerID      string              `json:"player_id"`
	PlayerName    string              `json:"player_name"`
	MatchID       string              `json:"match_id"`
	Type          CertificateType     `json:"type"`
	AchievementID string              `json:"achievement_id,omitempty"`
	Title         string              `json:"title"`
	IssuedAt      time.Time           `json:"issued_at"`
	Metadata      CertificateMetadata `json:"metadata"`
}

// CertificateMetadata is the display snapshot captured when a certificate is
// issued. Fields are unexported so the snapshot cannot drift afterwards.
type CertificateMetadata struct {
	matchName     string
	sportName     string
	location      string
	organizerName string
	teamName      string
}

// NewCertificateMetadata captures the snapshot.
func NewCertificateMetadata(matchName, sportName, location, organizerName, teamName string) CertificateMetadata {
	return CertificateMetadata{
		matchName:     matchName,
		sportName:     sportName,
		location:      location,
		organizerName: organizerName,
		teamName:      teamName,
	}
}

func (c CertificateMetadata) MatchName() string     { return c.matchName }
func (c CertificateMetadata) SportName() string     { return c.sportName }
func (c CertificateMetadata) Location() string      { return c.location }
func (c CertificateMetadata) OrganizerName() string { return c.organizerName }
func (c CertificateMetadata) TeamName() string      { return c.teamName }

type certificateMetadataJSON struct {
	MatchName     string `json:"match_name"`
	SportName     string `json:"sport_name"`
	Location      string `json:"location"`
	OrganizerName string `json:"organizer_name"`
	TeamName      string `json:"team_name"`
}

func (c CertificateMetadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(certificateMetadataJSON{
		MatchName:     c.matchName,
		SportName:     c.sportName,
		Location:      c.location,
		OrganizerName: c.organizerName,
		TeamName:      c.teamName,
	})
}

// UnmarshalJSON restores a stored snapshot; it is the only other way to
// populate the fields.
func (c *CertificateMetadata) UnmarshalJSON(data []byte) error {
	var raw certificateMetadataJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = NewCertificateMetadata(raw.MatchName, raw.SportName, raw.Location, raw.OrganizerName, raw.TeamName)
	return nil
}

// NotificationType selects which preference toggle gates a notification.
type NotificationType string

const (
	NotificationMatchStart  NotificationType = "match_start"
	NotificationMatchResult NotificationType = "match_result"
	NotificationTournament  NotificationType = "tournament"
	NotificationGeneral     NotificationType = "general"
)

// Notification is a user-facing notification record.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	Key       string           `json:"key"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}

// NotificationPreferences are the four toggles consumed by the deduplicator.
type NotificationPreferences struct {
	Enabled     bool `json:"enabled"`
	MatchStart  bool `json:"match_start"`
	MatchResult bool `json:"match_result"`
	Tournament  bool `json:"tournament"`
}

// Allows reports whether a notification of type t passes the toggles.
func (p NotificationPreferences) Allows(t NotificationType) bool {
	if !p.Enabled {
		return false
	}
	switch t {
	case NotificationMatchStart:
		return p.MatchStart
	case NotificationMatchResult:
		return p.MatchResult
	case NotificationTournament:
		return p.Tournament
	default:
		return true
	}
}
