// Package stats folds match history into per-player and per-team records.
// Aggregate is a pure function: no hidden state, safe to call concurrently
// against the same snapshot.
package stats

import (
	"sort"
	"time"

	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
)

// TimeRange selects a rolling window of matches.
type TimeRange string

const (
	RangeAll          TimeRange = "all"
	RangeLast30Days   TimeRange = "last_30_days"
	RangeLast6Months  TimeRange = "last_6_months"
	RangeLast12Months TimeRange = "last_12_months"
	RangeThisYear     TimeRange = "this_year"
)

// Valid reports whether r is a known range; the empty range means all.
func (r TimeRange) Valid() bool {
	switch r {
	case "", RangeAll, RangeLast30Days, RangeLast6Months, RangeLast12Months, RangeThisYear:
		return true
	}
	return false
}

// Cutoff returns the earliest included match time relative to now, or the
// zero time when the range is unbounded.
func (r TimeRange) Cutoff(now time.Time) time.Time {
	switch r {
	case RangeLast30Days:
		return now.AddDate(0, 0, -30)
	case RangeLast6Months:
		return now.AddDate(0, -6, 0)
	case RangeLast12Months:
		return now.AddDate(-1, 0, 0)
	case RangeThisYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	}
	return time.Time{}
}

// Filter selects which matches are folded.
type Filter struct {
	SportID      string
	TournamentID string
	Range        TimeRange
	Now          time.Time
}

// Result carries every stat domain.
type Result struct {
	Batting  []model.BattingStats  `json:"batting_stats"`
	Bowling  []model.BowlingStats  `json:"bowling_stats"`
	Fielding []model.FieldingStats `json:"fielding_stats"`
	Football []model.FootballStats `json:"football_stats"`
	Teams    []model.TeamStats     `json:"team_stats"`
}

// Include reports whether m passes the filter.
func (f Filter) Include(m model.Match) bool {
	if m.Status != model.StatusCompleted && m.Status != model.StatusLive {
		return false
	}
	if f.SportID != "" && m.SportID != f.SportID {
		return false
	}
	if f.TournamentID != "" && m.TournamentID != f.TournamentID {
		return false
	}
	if cutoff := f.Range.Cutoff(f.Now); !cutoff.IsZero() && matchTime(m).Before(cutoff) {
		return false
	}
	return true
}

func matchTime(m model.Match) time.Time {
	if m.ActualStartTime != nil {
		return *m.ActualStartTime
	}
	return m.ScheduledAt
}

// table keeps records in first-appearance order so output never depends on
// map iteration.
type table[T any] struct {
	index map[string]int
	rows  []T
}

func newTable[T any]() *table[T] { return &table[T]{index: map[string]int{}, rows: []T{}} }

func (t *table[T]) get(key string, init func() T) *T {
	if i, ok := t.index[key]; ok {
		return &t.rows[i]
	}
	t.index[key] = len(t.rows)
	t.rows = append(t.rows, init())
	return &t.rows[len(t.rows)-1]
}

type folder struct {
	batting  *table[model.BattingStats]
	bowling  *table[model.BowlingStats]
	fielding *table[model.FieldingStats]
	football *table[model.FootballStats]
	teams    *table[model.TeamStats]
}

// Aggregate folds the matches that pass f.
func Aggregate(matches []model.Match, f Filter) Result {
	fd := &folder{
		batting:  newTable[model.BattingStats](),
		bowling:  newTable[model.BowlingStats](),
		fielding: newTable[model.FieldingStats](),
		football: newTable[model.FootballStats](),
		teams:    newTable[model.TeamStats](),
	}
	for _, m := range matches {
		if !f.Include(m) {
			continue
		}
		football := model.IsFootball(m.SportID)
		for _, side := range []model.Participant{m.Home, m.Away} {
			for _, p := range side.Players {
				if model.IsPlaceholderID(p.PlayerID) {
					continue
				}
				fd.foldPlayer(p, side.Name, football)
			}
		}
		fd.foldTeam(m, m.Home, m.Away)
		fd.foldTeam(m, m.Away, m.Home)
	}
	return fd.finish()
}

func (fd *folder) foldPlayer(p model.PlayerStats, team string, football bool) {
	if p.Batted() {
		b := fd.batting.get(p.PlayerID, func() model.BattingStats {
			return model.BattingStats{PlayerID: p.PlayerID, PlayerName: p.Name, TeamName: team}
		})
		b.Matches++
		b.Runs += p.Runs
		b.Balls += p.Balls
		b.Fours += p.Fours
		b.Sixes += p.Sixes
		if !p.IsOut {
			b.NotOuts++
		}
		if p.Runs > b.HighestScore {
			b.HighestScore = p.Runs
		}
		switch {
		case p.Runs >= 100:
			b.Hundreds++
		case p.Runs >= 50:
			b.Fifties++
		}
		fillName(&b.PlayerName, p.Name)
	}

	if p.Bowled() {
		w := fd.bowling.get(p.PlayerID, func() model.BowlingStats {
			return model.BowlingStats{PlayerID: p.PlayerID, PlayerName: p.Name, TeamName: team}
		})
		w.Matches++
		w.Balls += p.BallsBowled
		w.RunsConceded += p.RunsConceded
		w.Wickets += p.Wickets
		if p.Wickets >= 5 {
			w.FiveWicketHauls++
		}
		if w.Matches == 1 || p.Wickets > w.Best.Wickets || (p.Wickets == w.Best.Wickets && p.RunsConceded < w.Best.Runs) {
			w.Best = model.BowlingFigures{Wickets: p.Wickets, Runs: p.RunsConceded}
		}
		fillName(&w.PlayerName, p.Name)
	}

	if p.Fielded() {
		fl := fd.fielding.get(p.PlayerID, func() model.FieldingStats {
			return model.FieldingStats{PlayerID: p.PlayerID, PlayerName: p.Name, TeamName: team}
		})
		fl.Matches++
		fl.Catches += p.Catches
		fl.RunOuts += p.RunOuts
		fillName(&fl.PlayerName, p.Name)
	}

	if football || p.HasFootballStats() {
		g := fd.football.get(p.PlayerID, func() model.FootballStats {
			return model.FootballStats{PlayerID: p.PlayerID, PlayerName: p.Name, TeamName: team}
		})
		g.Matches++
		g.Goals += p.Goals
		g.Assists += p.Assists
		g.YellowCards += p.YellowCards
		g.RedCards += p.RedCards
		fillName(&g.PlayerName, p.Name)
	}
}

func (fd *folder) foldTeam(m model.Match, side, opp model.Participant) {
	if side.ID == "" {
		return
	}
	t := fd.teams.get(side.ID, func() model.TeamStats {
		return model.TeamStats{TeamID: side.ID, TeamName: side.Name}
	})
	t.Played++
	t.TotalRunsScored += side.Score
	t.TotalRunsConceded += opp.Score
	if m.Status != model.StatusCompleted {
		return
	}
	t.Matches++
	switch outcome(m, side, opp) {
	case model.ResultWin:
		t.Wins++
	case model.ResultLoss:
		t.Losses++
	default:
		t.Draws++
	}
}

// outcome prefers the recorded result and falls back to comparing scores.
func outcome(m model.Match, side, opp model.Participant) model.Result {
	if side.Result != "" {
		return side.Result
	}
	switch {
	case m.WinnerID == side.ID:
		return model.ResultWin
	case m.WinnerID == opp.ID && m.WinnerID != "":
		return model.ResultLoss
	case side.Score > opp.Score:
		return model.ResultWin
	case side.Score < opp.Score:
		return model.ResultLoss
	}
	return model.ResultDraw
}

func (fd *folder) finish() Result {
	res := Result{
		Batting:  fd.batting.rows,
		Bowling:  fd.bowling.rows,
		Fielding: fd.fielding.rows,
		Football: fd.football.rows,
		Teams:    fd.teams.rows,
	}

	for i := range res.Batting {
		b := &res.Batting[i]
		b.Average = ratio(float64(b.Runs), float64(b.Matches-b.NotOuts))
		b.StrikeRate = ratio(float64(b.Runs)*100, float64(b.Balls))
	}
	for i := range res.Bowling {
		w := &res.Bowling[i]
		w.Overs = model.OversNotation(w.Balls)
		w.Average = ratio(float64(w.RunsConceded), float64(w.Wickets))
		w.Economy = ratio(float64(w.RunsConceded), float64(w.Balls)/6)
		w.StrikeRate = ratio(float64(w.Balls), float64(w.Wickets))
	}
	for i := range res.Fielding {
		res.Fielding[i].Dismissals = res.Fielding[i].Catches + res.Fielding[i].RunOuts
	}
	for i := range res.Football {
		g := &res.Football[i]
		g.GoalsPerMatch = ratio(float64(g.Goals), float64(g.Matches))
	}
	for i := range res.Teams {
		t := &res.Teams[i]
		t.WinPercentage = ratio(float64(t.Wins)*100, float64(t.Matches))
	}

	sort.SliceStable(res.Batting, func(i, j int) bool { return res.Batting[i].Runs > res.Batting[j].Runs })
	sort.SliceStable(res.Bowling, func(i, j int) bool { return res.Bowling[i].Wickets > res.Bowling[j].Wickets })
	sort.SliceStable(res.Fielding, func(i, j int) bool { return res.Fielding[i].Dismissals > res.Fielding[j].Dismissals })
	sort.SliceStable(res.Football, func(i, j int) bool { return res.Football[i].Goals > res.Football[j].Goals })
	sort.SliceStable(res.Teams, func(i, j int) bool { return res.Teams[i].Wins > res.Teams[j].Wins })
	return res
}

// ratio is zero-safe division.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func fillName(dst *string, name string) {
	if *dst == "" {
		*dst = name
	}
}
