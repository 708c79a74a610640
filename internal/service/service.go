// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/bharaths07/sportsv1.1-sub000/internal/engine"
	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/notify"
	"github.com/bharaths07/sportsv1.1-sub000/internal/repository"
	"github.com/bharaths07/sportsv1.1-sub000/internal/stats"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// Result is what every mutating match command returns. The new state is
// applied locally first; PersistErr reports a failed write without undoing it.
type Result struct {
	Match      model.Match `json:"match"`
	Changed    bool        `json:"changed"`
	PersistErr error       `json:"-"`
}

// Notifier records user notifications; notify.Deduplicator implements it.
type Notifier interface {
	MaybeNotify(ctx context.Context, ev notify.Event) (bool, error)
}

// TournamentHook is told when a tournament match completes.
type TournamentHook interface {
	MatchCompleted(ctx context.Context, m model.Match) error
}

// MatchService defines match lifecycle use cases.
type MatchService interface {
	CreateMatch(ctx context.Context, in CreateMatchInput) (model.Match, error)
	GetMatch(ctx context.Context, id string) (model.Match, error)
	ListMatches(ctx context.Context, page repository.Page) (repository.PageResult[model.Match], error)
	Start(ctx context.Context, id string, in StartInput) (Result, error)
	Score(ctx context.Context, id string, in engine.ScoreInput) (Result, error)
	End(ctx context.Context, id string) (Result, error)
	Cancel(ctx context.Context, id string) (Result, error)
	Lock(ctx context.Context, id string) (Result, error)
	SetBattingTeam(ctx context.Context, id string, in BattingTeamInput) (Result, error)
	AssignScorer(ctx context.Context, id, userID string) (Result, error)
	RemoveScorer(ctx context.Context, id, userID string) (Result, error)
	ListAchievements(ctx context.Context, id string) ([]model.Achievement, error)
	ListCertificates(ctx context.Context, id string) ([]model.Certificate, error)
	ListFeed(ctx context.Context, id string, limit int) ([]model.FeedItem, error)
}

// StatsService defines leaderboard use cases.
type StatsService interface {
	Aggregate(ctx context.Context, f stats.Filter) (stats.Result, error)
}

// NotificationService defines notification inbox and preference use cases.
type NotificationService interface {
	List(ctx context.Context, limit int) ([]model.Notification, error)
	MarkRead(ctx context.Context, id string) error
	Preferences(ctx context.Context) (model.NotificationPreferences, error)
	UpdatePreferences(ctx context.Context, p model.NotificationPreferences) error
}

var (
	_ MatchService        = (*MatchController)(nil)
	_ NotificationService = (*notify.Deduplicator)(nil)
	_ Notifier            = (*notify.Deduplicator)(nil)
)
