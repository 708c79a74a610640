package service

import (
	"context"
	"fmt"

	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/notify"
)

// TournamentNotifier announces completed tournament matches through the
// notification pipeline, gated by the tournament preference.
type TournamentNotifier struct {
	notifier Notifier
}

func NewTournamentNotifier(n Notifier) *TournamentNotifier { return &TournamentNotifier{notifier: n} }

func (t *TournamentNotifier) MatchCompleted(ctx context.Context, m model.Match) error {
	_, err := t.notifier.MaybeNotify(ctx, notify.Event{
		Type:  model.NotificationTournament,
		Title: "Tournament update",
		Body:  fmt.Sprintf("%s finished: %s", m.Name(), resultSummary(m)),
		Key:   "tournament-match:" + m.TournamentID + ":" + m.ID,
	})
	return err
}

var _ TournamentHook = (*TournamentNotifier)(nil)
