package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
)

// ScoreInput is either a LegacyScoreInput or an EventInput.
type ScoreInput interface {
	scoreInput()
}

// LegacyScoreInput is the old (runs, isWicket) scoring call.
type LegacyScoreInput struct {
	Runs     int
	IsWicket bool
}

// EventInput is a partial score event; zero fields are defaulted by Normalize.
type EventInput struct {
	Type          model.EventType
	TeamID        string
	Points        *int
	RunsScored    int
	Extras        *model.Extras
	IsWicket      bool
	DismissalType model.DismissalType
	ScorerID      string
	AssistID      string
	BowlerID      string
	FielderID     string
	CardType      model.CardType
	Description   string
}

func (LegacyScoreInput) scoreInput() {}
func (EventInput) scoreInput()       {}

// Normalize adapts any ScoreInput into the canonical event for match m.
// newID supplies the event id; now stamps it.
func Normalize(in ScoreInput, m model.Match, now time.Time, newID func() string) model.ScoreEvent {
	var ev model.ScoreEvent
	switch v := in.(type) {
	case LegacyScoreInput:
		ev = fromLegacy(v, m)
	case *LegacyScoreInput:
		ev = fromLegacy(*v, m)
	case EventInput:
		ev = fromEvent(v, m)
	case *EventInput:
		ev = fromEvent(*v, m)
	default:
		ev = model.ScoreEvent{Type: model.EventNote}
	}

	if ev.TeamID == "" {
		ev.TeamID = defaultTeam(m)
	}
	ev.ID = newID()
	ev.Timestamp = now
	if ev.Description == "" {
		ev.Description = Describe(m, ev)
	}
	return ev
}

func fromLegacy(in LegacyScoreInput, m model.Match) model.ScoreEvent {
	ev := model.ScoreEvent{
		Type:       model.EventDelivery,
		Points:     in.Runs,
		RunsScored: in.Runs,
		IsWicket:   in.IsWicket,
	}
	if in.IsWicket {
		ev.Type = model.EventWicket
	}
	if ls := m.LiveState; ls != nil {
		ev.ScorerID = ls.StrikerID
		ev.BowlerID = ls.BowlerID
	}
	return ev
}

func fromEvent(in EventInput, m model.Match) model.ScoreEvent {
	ev := model.ScoreEvent{
		Type:          in.Type,
		TeamID:        in.TeamID,
		RunsScored:    in.RunsScored,
		IsWicket:      in.IsWicket,
		DismissalType: in.DismissalType,
		ScorerID:      in.ScorerID,
		AssistID:      in.AssistID,
		BowlerID:      in.BowlerID,
		FielderID:     in.FielderID,
		CardType:      in.CardType,
		Description:   in.Description,
	}
	if in.Extras != nil {
		x := *in.Extras
		ev.Extras = &x
	}
	if ev.Type == "" {
		ev.Type = defaultType(m, ev)
	}
	if in.Points != nil {
		ev.Points = *in.Points
	} else {
		ev.Points = ev.RunsScored + ev.ExtraRuns()
	}
	if !model.IsFootball(m.SportID) && m.LiveState != nil {
		if ev.ScorerID == "" {
			ev.ScorerID = m.LiveState.StrikerID
		}
		if ev.BowlerID == "" {
			ev.BowlerID = m.LiveState.BowlerID
		}
	}
	return ev
}

func defaultType(m model.Match, ev model.ScoreEvent) model.EventType {
	switch {
	case model.IsFootball(m.SportID) && ev.CardType != "":
		return model.EventCard
	case model.IsFootball(m.SportID) && ev.AssistID != "" && ev.ScorerID == "":
		return model.EventAssist
	case model.IsFootball(m.SportID):
		return model.EventGoal
	case ev.IsWicket:
		return model.EventWicket
	case ev.Extras != nil && ev.RunsScored == 0:
		return model.EventExtra
	default:
		return model.EventDelivery
	}
}

func defaultTeam(m model.Match) string {
	if m.CurrentBattingTeamID != "" {
		return m.CurrentBattingTeamID
	}
	return m.Home.ID
}

// Describe builds the feed text for an event about to be applied to m.
func Describe(m model.Match, ev model.ScoreEvent) string {
	if model.IsFootball(m.SportID) {
		return describeFootball(ev)
	}

	balls := m.Home.Balls
	if side := m.Side(defaultTeamFor(m, ev)); side != nil {
		balls = side.Balls
	}
	if ev.LegalDelivery() {
		balls++
	}
	return fmt.Sprintf("Over %s - %s", model.OversNotation(balls), describeDelivery(ev))
}

func defaultTeamFor(m model.Match, ev model.ScoreEvent) string {
	if m.CurrentBattingTeamID != "" {
		return m.CurrentBattingTeamID
	}
	if ev.TeamID != "" {
		return ev.TeamID
	}
	return m.Home.ID
}

func describeDelivery(ev model.ScoreEvent) string {
	if ev.IsWicket {
		if ev.DismissalType != "" {
			return "WICKET! (" + strings.ReplaceAll(string(ev.DismissalType), "_", " ") + ")"
		}
		return "WICKET!"
	}
	if ev.Extras != nil && ev.Extras.Type != "" {
		label := strings.ReplaceAll(string(ev.Extras.Type), "_", " ")
		if ev.RunsScored > 0 {
			return fmt.Sprintf("%s + %s", label, runsText(ev.RunsScored))
		}
		return fmt.Sprintf("%s (%d)", label, ev.Extras.Runs)
	}
	switch ev.RunsScored {
	case 0:
		return "Dot ball"
	case 4:
		return "FOUR!"
	case 6:
		return "SIX!"
	default:
		return runsText(ev.RunsScored)
	}
}

func runsText(runs int) string {
	if runs == 1 {
		return "1 run"
	}
	return fmt.Sprintf("%d runs", runs)
}

func describeFootball(ev model.ScoreEvent) string {
	switch ev.Type {
	case model.EventGoal:
		if model.IsPlaceholderID(ev.ScorerID) && ev.ScorerID != "" {
			return "GOAL! (own goal)"
		}
		return "GOAL!"
	case model.EventCard:
		if ev.CardType == model.CardRed {
			return "Red card"
		}
		return "Yellow card"
	case model.EventAssist:
		return "Assist"
	default:
		return string(ev.Type)
	}
}
