// Package achievement derives milestone achievements and certificates from
// the final player stats of a completed match.
package achievement

import (
	"fmt"
	"time"

	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
)

// Thresholds used by the rules below.
const (
	minPlayerOfMatchImpact = 20
	centuryRuns            = 100
	halfCenturyRuns        = 50
	fiveWicketHaul         = 5
	hatTrickGoals          = 3
)

// Input is everything the deriver needs; it reads nothing else.
type Input struct {
	Match         model.Match // final state, players already resolved against rosters
	OrganizerName string
	IssuedAt      time.Time
	NewID         func() string
}

// Output holds the records to persist.
type Output struct {
	Achievements []model.Achievement
	Certificates []model.Certificate
}

type candidate struct {
	stats    model.PlayerStats
	teamName string
	opponent string
}

// Derive computes achievements and certificates. It does not check whether
// the match was processed before; callers guard that.
func Derive(in Input) Output {
	m := in.Match
	cands := make([]candidate, 0, len(m.Home.Players)+len(m.Away.Players))
	for _, p := range m.Home.Players {
		cands = append(cands, candidate{stats: p, teamName: m.Home.Name, opponent: m.Away.Name})
	}
	for _, p := range m.Away.Players {
		cands = append(cands, candidate{stats: p, teamName: m.Away.Name, opponent: m.Home.Name})
	}

	var achievements []model.Achievement
	add := func(c candidate, t model.AchievementType, title, desc string) {
		achievements = append(achievements, model.Achievement{
			ID:          in.NewID(),
			PlayerID:    c.stats.PlayerID,
			PlayerName:  displayName(c.stats),
			MatchID:     m.ID,
			Type:        t,
			Title:       title,
			Description: desc,
			Date:        in.IssuedAt,
		})
	}

	football := model.IsFootball(m.SportID)
	impact := cricketImpact
	if football {
		impact = footballImpact
	}
	if best, ok := playerOfMatch(cands, impact); ok {
		add(best, model.AchievementPlayerOfMatch, "Player of the Match", potmDescription(best, football))
	}

	for _, c := range cands {
		s := c.stats
		if football {
			if s.Goals >= hatTrickGoals {
				add(c, model.AchievementHatTrick, "Hat-Trick", fmt.Sprintf("Scored %d goals against %s", s.Goals, c.opponent))
			}
			continue
		}
		switch {
		case s.Runs >= centuryRuns:
			add(c, model.AchievementCentury, "Century", fmt.Sprintf("Scored %d runs off %d balls against %s", s.Runs, s.Balls, c.opponent))
		case s.Runs >= halfCenturyRuns:
			add(c, model.AchievementHalfCentury, "Half Century", fmt.Sprintf("Scored %d runs off %d balls against %s", s.Runs, s.Balls, c.opponent))
		}
		if s.Wickets >= fiveWicketHaul {
			add(c, model.AchievementFiveWickets, "Five Wickets", fmt.Sprintf("Took %d/%d against %s", s.Wickets, s.RunsConceded, c.opponent))
		}
	}

	return Output{
		Achievements: achievements,
		Certificates: certificates(in, cands, achievements),
	}
}

func cricketImpact(s model.PlayerStats) int  { return s.Runs + s.Wickets*20 }
func footballImpact(s model.PlayerStats) int { return s.Goals*20 + s.Assists*10 }

// playerOfMatch picks the highest impact; the earliest candidate wins ties.
func playerOfMatch(cands []candidate, impact func(model.PlayerStats) int) (candidate, bool) {
	bestIdx, bestImpact := -1, 0
	for i, c := range cands {
		if model.IsPlaceholderID(c.stats.PlayerID) {
			continue
		}
		if v := impact(c.stats); bestIdx < 0 || v > bestImpact {
			bestIdx, bestImpact = i, v
		}
	}
	if bestIdx < 0 || bestImpact < minPlayerOfMatchImpact {
		return candidate{}, false
	}
	return cands[bestIdx], true
}

func potmDescription(c candidate, football bool) string {
	s := c.stats
	if football {
		return fmt.Sprintf("%d goals and %d assists against %s", s.Goals, s.Assists, c.opponent)
	}
	return fmt.Sprintf("%d runs and %d wickets against %s", s.Runs, s.Wickets, c.opponent)
}

func certificates(in Input, cands []candidate, achievements []model.Achievement) []model.Certificate {
	m := in.Match
	sport := model.SportName(m.SportID)
	teamOf := make(map[string]string, len(cands))
	nameOf := make(map[string]string, len(cands))

	out := make([]model.Certificate, 0, len(cands)+len(achievements))
	for _, c := range cands {
		if model.IsPlaceholderID(c.stats.PlayerID) {
			continue
		}
		teamOf[c.stats.PlayerID] = c.teamName
		nameOf[c.stats.PlayerID] = displayName(c.stats)
		out = append(out, model.Certificate{
			ID:         in.NewID(),
			PlayerID:   c.stats.PlayerID,
			PlayerName: displayName(c.stats),
			MatchID:    m.ID,
			Type:       model.CertificateParticipation,
			Title:      "Certificate of Participation",
			IssuedAt:   in.IssuedAt,
			Metadata:   model.NewCertificateMetadata(m.Name(), sport, m.Venue, in.OrganizerName, c.teamName),
		})
	}
	for _, a := range achievements {
		out = append(out, model.Certificate{
			ID:            in.NewID(),
			PlayerID:      a.PlayerID,
			PlayerName:    nameOf[a.PlayerID],
			MatchID:       m.ID,
			Type:          model.CertificateAchievement,
			AchievementID: a.ID,
			Title:         a.Title,
			IssuedAt:      in.IssuedAt,
			Metadata:      model.NewCertificateMetadata(m.Name(), sport, m.Venue, in.OrganizerName, teamOf[a.PlayerID]),
		})
	}
	return out
}

func displayName(s model.PlayerStats) string {
	if s.Name != "" {
		return s.Name
	}
	return s.PlayerID
}
