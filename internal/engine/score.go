// Package engine applies scoring events to matches.
// Everything here is a pure function of its inputs: the match passed in is
// never mutated and the returned match shares no mutable state with it.
package engine

import (
	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
)

const ballsPerOver = 6

// ApplyEvent returns a new match with ev applied and appended to the log.
// An event whose team cannot be resolved is still appended; only the
// counters are skipped.
func ApplyEvent(m model.Match, ev model.ScoreEvent) model.Match {
	out := m.Clone()

	if model.IsFootball(out.SportID) {
		applyFootball(&out, ev)
	} else {
		applyCricket(&out, ev)
	}

	out.Events = append(out.Events, ev)
	return out
}

// battingSide resolves the side credited with the event.
func battingSide(m *model.Match, ev model.ScoreEvent) (batting, fielding *model.Participant) {
	teamID := ev.TeamID
	if !model.IsFootball(m.SportID) && m.CurrentBattingTeamID != "" {
		teamID = m.CurrentBattingTeamID
	}
	if teamID == "" {
		return &m.Home, &m.Away
	}
	return m.Side(teamID), m.Opponent(teamID)
}

func applyCricket(m *model.Match, ev model.ScoreEvent) {
	batting, fielding := battingSide(m, ev)
	if batting == nil {
		return
	}

	legal := ev.LegalDelivery()
	batting.Score += ev.Points
	if legal {
		batting.Balls++
	}
	if ev.IsWicket {
		batting.Wickets++
	}

	if !model.IsPlaceholderID(ev.ScorerID) {
		p := playerEntry(batting, ev.ScorerID)
		p.Runs += ev.RunsScored
		if ev.Extras == nil || ev.Extras.Type != model.ExtraWide {
			if ev.Type == model.EventDelivery || ev.Type == model.EventWicket || ev.Type == model.EventExtra {
				p.Balls++
			}
		}
		switch ev.RunsScored {
		case 4:
			p.Fours++
		case 6:
			p.Sixes++
		}
		if ev.IsWicket {
			p.IsOut = true
		}
	}

	if fielding != nil && !model.IsPlaceholderID(ev.BowlerID) {
		b := playerEntry(fielding, ev.BowlerID)
		if legal {
			b.BallsBowled++
		}
		b.RunsConceded += ev.RunsScored + bowlerExtras(ev)
		if ev.IsWicket && ev.DismissalType != model.DismissalRunOut {
			b.Wickets++
		}
	}

	if fielding != nil && ev.IsWicket && !model.IsPlaceholderID(ev.FielderID) {
		f := playerEntry(fielding, ev.FielderID)
		switch ev.DismissalType {
		case model.DismissalCaught:
			f.Catches++
		case model.DismissalRunOut:
			f.RunOuts++
		}
	}

	if legal || ev.IsWicket {
		advanceLiveState(m, ev, legal)
	}
}

// bowlerExtras are the extras charged to the bowler; byes and leg byes are not.
func bowlerExtras(ev model.ScoreEvent) int {
	if ev.Extras == nil {
		return 0
	}
	switch ev.Extras.Type {
	case model.ExtraWide, model.ExtraNoBall:
		return ev.Extras.Runs
	}
	return 0
}

func advanceLiveState(m *model.Match, ev model.ScoreEvent, legal bool) {
	ls := m.LiveState
	if ls == nil {
		ls = &model.LiveState{}
		m.LiveState = ls
	}
	if ev.BowlerID != "" && !model.IsPlaceholderID(ev.BowlerID) {
		ls.BowlerID = ev.BowlerID
	}
	if ev.IsWicket {
		// new batter comes in at the striker's end
		ls.StrikerID = ""
	} else if ev.RunsScored%2 == 1 {
		ls.StrikerID, ls.NonStrikerID = ls.NonStrikerID, ls.StrikerID
	}
	if !legal {
		return
	}
	ls.Ball++
	if ls.Ball == ballsPerOver {
		ls.Over++
		ls.Ball = 0
		ls.StrikerID, ls.NonStrikerID = ls.NonStrikerID, ls.StrikerID
	}
}

func applyFootball(m *model.Match, ev model.ScoreEvent) {
	side, _ := battingSide(m, ev)
	if side == nil {
		return
	}

	switch ev.Type {
	case model.EventGoal:
		side.Score++
		if !model.IsPlaceholderID(ev.ScorerID) {
			playerEntry(side, ev.ScorerID).Goals++
		}
		if !model.IsPlaceholderID(ev.AssistID) {
			playerEntry(side, ev.AssistID).Assists++
		}
	case model.EventAssist:
		if !model.IsPlaceholderID(ev.AssistID) {
			playerEntry(side, ev.AssistID).Assists++
		}
	case model.EventCard:
		if model.IsPlaceholderID(ev.ScorerID) {
			return
		}
		p := playerEntry(side, ev.ScorerID)
		if ev.CardType == model.CardRed {
			p.RedCards++
		} else {
			p.YellowCards++
		}
	}
}

// playerEntry returns the player's stats entry, creating it when missing.
// The pointer is only valid until the next append to side.Players.
func playerEntry(side *model.Participant, playerID string) *model.PlayerStats {
	if i := side.Player(playerID); i >= 0 {
		return &side.Players[i]
	}
	side.Players = append(side.Players, model.PlayerStats{PlayerID: playerID})
	return &side.Players[len(side.Players)-1]
}
