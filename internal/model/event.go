package model

import (
	"strings"
	"time"
)

// EventType classifies a scoring action.
type EventType string

const (
	EventDelivery EventType = "delivery"
	EventWicket   EventType = "wicket"
	EventExtra    EventType = "extra"
	EventGoal     EventType = "goal"
	EventCard     EventType = "card"
	EventAssist   EventType = "assist"
	EventNote     EventType = "note"
)

// ExtraType covers runs not scored off the bat.
type ExtraType string

const (
	ExtraWide    ExtraType = "wide"
	ExtraNoBall  ExtraType = "no_ball"
	ExtraBye     ExtraType = "bye"
	ExtraLegBye  ExtraType = "leg_bye"
	ExtraPenalty ExtraType = "penalty"
)

// DismissalType for cricket wickets.
type DismissalType string

const (
	DismissalBowled    DismissalType = "bowled"
	DismissalCaught    DismissalType = "caught"
	DismissalLBW       DismissalType = "lbw"
	DismissalRunOut    DismissalType = "run_out"
	DismissalStumped   DismissalType = "stumped"
	DismissalHitWicket DismissalType = "hit_wicket"
)

// CardType for football bookings.
type CardType string

const (
	CardYellow CardType = "yellow"
	CardRed    CardType = "red"
)

// Extras are the extra runs attached to a delivery.
type Extras struct {
	Type ExtraType `json:"type,omitempty"`
	Runs int       `json:"runs"`
}

// ScoreEvent is one immutable scoring action appended to a match log.
type ScoreEvent struct {
	ID            string        `json:"id"`
	Timestamp     time.Time     `json:"timestamp"`
	Type          EventType     `json:"type"`
	Points        int           `json:"points"`
	TeamID        string        `json:"team_id,omitempty"`
	RunsScored    int           `json:"runs_scored,omitempty"`
	Extras        *Extras       `json:"extras,omitempty"`
	IsWicket      bool          `json:"is_wicket,omitempty"`
	DismissalType DismissalType `json:"dismissal_type,omitempty"`
	ScorerID      string        `json:"scorer_id,omitempty"`
	AssistID      string        `json:"assist_id,omitempty"`
	BowlerID      string        `json:"bowler_id,omitempty"`
	FielderID     string        `json:"fielder_id,omitempty"`
	CardType      CardType      `json:"card_type,omitempty"`
	Description   string        `json:"description"`
}

// ExtraRuns returns the extra runs carried by the event, zero if none.
func (e ScoreEvent) ExtraRuns() int {
	if e.Extras == nil {
		return 0
	}
	return e.Extras.Runs
}

// LegalDelivery reports whether the event counts as a ball in the over.
// Wides and no-balls are re-bowled.
func (e ScoreEvent) LegalDelivery() bool {
	switch e.Type {
	case EventDelivery, EventWicket, EventExtra:
	default:
		return false
	}
	if e.Extras == nil {
		return true
	}
	return e.Extras.Type != ExtraWide && e.Extras.Type != ExtraNoBall
}

// placeholderIDs are scorer ids that never receive per-player attribution.
var placeholderIDs = map[string]struct{}{
	"":         {},
	"own goal": {},
	"own_goal": {},
	"og":       {},
	"unknown":  {},
}

// IsPlaceholderID reports whether id is empty or a placeholder such as "own goal".
func IsPlaceholderID(id string) bool {
	_, ok := placeholderIDs[strings.ToLower(strings.TrimSpace(id))]
	return ok
}
