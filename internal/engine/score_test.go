package engine_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bharaths07/sportsv1.1-sub000/internal/engine"
	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
)

func liveCricket() model.Match {
	return model.Match{
		ID:                   "m1",
		SportID:              model.SportCricket,
		Status:               model.StatusLive,
		Home:                 model.Participant{ID: "home", Name: "Tigers"},
		Away:                 model.Participant{ID: "away", Name: "Lions"},
		CurrentBattingTeamID: "home",
		LiveState:            &model.LiveState{StrikerID: "h1", NonStrikerID: "h2", BowlerID: "a1"},
	}
}

func liveFootball() model.Match {
	return model.Match{
		ID:      "f1",
		SportID: model.SportFootball,
		Status:  model.StatusLive,
		Home:    model.Participant{ID: "home", Name: "Rovers"},
		Away:    model.Participant{ID: "away", Name: "United"},
	}
}

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return "e" + strconv.Itoa(n)
	}
}

var now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func score(t *testing.T, m model.Match, in engine.ScoreInput, ids func() string) model.Match {
	t.Helper()
	return engine.ApplyEvent(m, engine.Normalize(in, m, now, ids))
}

func TestApplyEvent_LegacyFour(t *testing.T) {
	m := liveCricket()
	ev := engine.Normalize(engine.LegacyScoreInput{Runs: 4}, m, now, seqIDs())
	out := engine.ApplyEvent(m, ev)

	assert.Equal(t, 4, out.Home.Score)
	assert.Equal(t, 1, out.Home.Balls)
	require.Len(t, out.Events, 1)
	assert.Equal(t, "Over 0.1 - FOUR!", out.Events[0].Description)
	assert.Equal(t, model.EventDelivery, out.Events[0].Type)
	assert.Equal(t, 4, out.Events[0].Points)

	i := out.Home.Player("h1")
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, 4, out.Home.Players[i].Runs)
	assert.Equal(t, 1, out.Home.Players[i].Fours)

	j := out.Away.Player("a1")
	require.GreaterOrEqual(t, j, 0)
	assert.Equal(t, 1, out.Away.Players[j].BallsBowled)
	assert.Equal(t, 4, out.Away.Players[j].RunsConceded)
}

func TestApplyEvent_LegacyWicket(t *testing.T) {
	m := liveCricket()
	m.Home.Wickets = 2
	out := score(t, m, engine.LegacyScoreInput{Runs: 0, IsWicket: true}, seqIDs())

	assert.Equal(t, 3, out.Home.Wickets)
	require.Len(t, out.Events, 1)
	assert.Equal(t, model.EventWicket, out.Events[0].Type)
	assert.Equal(t, "Over 0.1 - WICKET!", out.Events[0].Description)
	assert.Empty(t, out.LiveState.StrikerID, "striker cleared until the next batter walks in")

	j := out.Away.Player("a1")
	require.GreaterOrEqual(t, j, 0)
	assert.Equal(t, 1, out.Away.Players[j].Wickets)
}

func TestApplyEvent_DoesNotMutateInput(t *testing.T) {
	m := liveCricket()
	m.Home.Players = []model.PlayerStats{{PlayerID: "h1", Runs: 10}}
	m.Events = []model.ScoreEvent{{ID: "e0", Type: model.EventDelivery}}

	out := score(t, m, engine.LegacyScoreInput{Runs: 6}, seqIDs())

	assert.Equal(t, 10, m.Home.Players[0].Runs)
	assert.Equal(t, 0, m.Home.Score)
	assert.Len(t, m.Events, 1)
	assert.Equal(t, 0, m.LiveState.Ball)

	assert.Equal(t, 16, out.Home.Players[0].Runs)
	assert.Len(t, out.Events, 2)
	assert.Equal(t, 1, out.LiveState.Ball)
}

func TestApplyEvent_EventLogAppendOnly(t *testing.T) {
	m := liveCricket()
	ids := seqIDs()
	inputs := []engine.ScoreInput{
		engine.LegacyScoreInput{Runs: 1},
		engine.EventInput{Extras: &model.Extras{Type: model.ExtraWide, Runs: 1}},
		engine.LegacyScoreInput{Runs: 0, IsWicket: true},
		engine.EventInput{RunsScored: 2},
		engine.EventInput{TeamID: "nobody", RunsScored: 3},
	}
	var want []string
	for _, in := range inputs {
		ev := engine.Normalize(in, m, now, ids)
		want = append(want, ev.ID)
		m = engine.ApplyEvent(m, ev)
	}

	var got []string
	for _, ev := range m.Events {
		got = append(got, ev.ID)
	}
	assert.Equal(t, want, got)
}

func TestApplyEvent_WideIsNotALegalBall(t *testing.T) {
	m := liveCricket()
	out := score(t, m, engine.EventInput{Extras: &model.Extras{Type: model.ExtraWide, Runs: 1}}, seqIDs())

	assert.Equal(t, 1, out.Home.Score)
	assert.Equal(t, 0, out.Home.Balls)
	assert.Equal(t, model.EventExtra, out.Events[0].Type)
	assert.Equal(t, 1, out.Events[0].Points)
	assert.Equal(t, 0, out.LiveState.Ball)

	j := out.Away.Player("a1")
	require.GreaterOrEqual(t, j, 0)
	assert.Equal(t, 0, out.Away.Players[j].BallsBowled)
	assert.Equal(t, 1, out.Away.Players[j].RunsConceded)
}

func TestApplyEvent_ExplicitPointsWin(t *testing.T) {
	m := liveCricket()
	five := 5
	out := score(t, m, engine.EventInput{RunsScored: 4, Points: &five}, seqIDs())
	assert.Equal(t, 5, out.Home.Score)
}

func TestApplyEvent_OverCompletionRotatesStrike(t *testing.T) {
	m := liveCricket()
	ids := seqIDs()
	for i := 0; i < 6; i++ {
		m = score(t, m, engine.LegacyScoreInput{Runs: 0}, ids)
	}
	assert.Equal(t, 6, m.Home.Balls)
	assert.Equal(t, "1.0", m.Home.Overs())
	assert.Equal(t, 1, m.LiveState.Over)
	assert.Equal(t, 0, m.LiveState.Ball)
	assert.Equal(t, "h2", m.LiveState.StrikerID)
	assert.Equal(t, "h1", m.LiveState.NonStrikerID)
}

func TestApplyEvent_OddRunsSwapStrike(t *testing.T) {
	m := liveCricket()
	out := score(t, m, engine.LegacyScoreInput{Runs: 1}, seqIDs())
	assert.Equal(t, "h2", out.LiveState.StrikerID)
	assert.Equal(t, "h1", out.LiveState.NonStrikerID)
}

func TestApplyEvent_CatchAndRunOut(t *testing.T) {
	m := liveCricket()
	ids := seqIDs()
	m = score(t, m, engine.EventInput{IsWicket: true, DismissalType: model.DismissalCaught, FielderID: "a2"}, ids)
	m.LiveState.StrikerID = "h3"
	m = score(t, m, engine.EventInput{IsWicket: true, DismissalType: model.DismissalRunOut, FielderID: "a2"}, ids)

	j := m.Away.Player("a2")
	require.GreaterOrEqual(t, j, 0)
	assert.Equal(t, 1, m.Away.Players[j].Catches)
	assert.Equal(t, 1, m.Away.Players[j].RunOuts)

	b := m.Away.Player("a1")
	assert.Equal(t, 1, m.Away.Players[b].Wickets, "run-outs are not credited to the bowler")
	assert.Equal(t, 2, m.Home.Wickets)
}

func TestApplyEvent_UnresolvableTeamStillAppends(t *testing.T) {
	m := liveFootball()
	out := score(t, m, engine.EventInput{Type: model.EventGoal, TeamID: "ghost", ScorerID: "p1"}, seqIDs())

	assert.Len(t, out.Events, 1)
	assert.Equal(t, 0, out.Home.Score)
	assert.Equal(t, 0, out.Away.Score)
	assert.Empty(t, out.Home.Players)
	assert.Empty(t, out.Away.Players)
}

func TestApplyEvent_FootballGoalAndAssist(t *testing.T) {
	m := liveFootball()
	ids := seqIDs()
	m = score(t, m, engine.EventInput{Type: model.EventGoal, TeamID: "away", ScorerID: "u9", AssistID: "u10"}, ids)
	m = score(t, m, engine.EventInput{Type: model.EventGoal, TeamID: "away", ScorerID: "u9"}, ids)

	assert.Equal(t, 2, m.Away.Score)
	assert.Equal(t, 0, m.Home.Score)
	assert.Equal(t, "GOAL!", m.Events[0].Description)

	i := m.Away.Player("u9")
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, 2, m.Away.Players[i].Goals)
	k := m.Away.Player("u10")
	require.GreaterOrEqual(t, k, 0)
	assert.Equal(t, 1, m.Away.Players[k].Assists)
}

func TestApplyEvent_FootballPointsIgnoredOutsideGoals(t *testing.T) {
	m := liveFootball()
	three := 3
	out := score(t, m, engine.EventInput{Type: model.EventCard, TeamID: "home", ScorerID: "h4", CardType: model.CardRed, Points: &three}, seqIDs())

	assert.Equal(t, 0, out.Home.Score)
	i := out.Home.Player("h4")
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, 1, out.Home.Players[i].RedCards)
	assert.Equal(t, "Red card", out.Events[0].Description)
}

func TestApplyEvent_PlaceholderScorers(t *testing.T) {
	for _, id := range []string{"own goal", "unknown", "OG"} {
		t.Run(id, func(t *testing.T) {
			m := liveFootball()
			out := score(t, m, engine.EventInput{Type: model.EventGoal, TeamID: "home", ScorerID: id}, seqIDs())
			assert.Equal(t, 1, out.Home.Score)
			assert.Empty(t, out.Home.Players)
			assert.Len(t, out.Events, 1)
		})
	}
}

func TestApplyEvent_FootballDefaultsToHome(t *testing.T) {
	m := liveFootball()
	out := score(t, m, engine.EventInput{ScorerID: "h9"}, seqIDs())
	assert.Equal(t, model.EventGoal, out.Events[0].Type)
	assert.Equal(t, "home", out.Events[0].TeamID)
	assert.Equal(t, 1, out.Home.Score)
}

func TestApplyEvent_FootballAssistOnlyIsNotAGoal(t *testing.T) {
	m := liveFootball()
	out := score(t, m, engine.EventInput{TeamID: "away", AssistID: "u10"}, seqIDs())

	require.Len(t, out.Events, 1)
	assert.Equal(t, model.EventAssist, out.Events[0].Type)
	assert.Equal(t, "Assist", out.Events[0].Description)
	assert.Equal(t, 0, out.Away.Score)
	assert.Equal(t, 0, out.Home.Score)
	k := out.Away.Player("u10")
	require.GreaterOrEqual(t, k, 0)
	assert.Equal(t, 1, out.Away.Players[k].Assists)
	assert.Zero(t, out.Away.Players[k].Goals)
}
