package repository

import (
	"context"

	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
)

// Pinger represents a minimal readiness probe capability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// MatchUpdate is the partial match written after a state change. Nil
// fields are left untouched by the store.
type MatchUpdate struct {
	Status *model.MatchStatus
	// Snapshot replaces the stored document (events, participants, live state).
	Snapshot *model.Match
}

// MatchRepository is the persistence collaborator for matches. The whole
// match is stored as one document with its event log inside.
type MatchRepository interface {
	LoadMatches(ctx context.Context) ([]model.Match, error)
	Create(ctx context.Context, m model.Match) (model.Match, error)
	GetByID(ctx context.Context, id string) (model.Match, error)
	List(ctx context.Context, p Page) (PageResult[model.Match], error)
	SaveMatchUpdate(ctx context.Context, matchID string, u MatchUpdate) error
}

// AchievementRepository persists derived achievements.
type AchievementRepository interface {
	CreateAchievement(ctx context.Context, a model.Achievement) error
	ExistsForMatch(ctx context.Context, matchID string) (bool, error)
	ListByMatch(ctx context.Context, matchID string) ([]model.Achievement, error)
}

// CertificateRepository persists issued certificates.
type CertificateRepository interface {
	CreateCertificate(ctx context.Context, c model.Certificate) error
	ListByMatch(ctx context.Context, matchID string) ([]model.Certificate, error)
	ExistsForMatch(ctx context.Context, matchID string) (bool, error)
}

// FeedRepository persists match feed items.
type FeedRepository interface {
	CreateFeedItem(ctx context.Context, item model.FeedItem) error
	ListByMatch(ctx context.Context, matchID string, limit int) ([]model.FeedItem, error)
}

// FeedPublisher fans feed items out to live subscribers.
type FeedPublisher interface {
	PublishFeedItem(ctx context.Context, sportID string, item model.FeedItem) error
}

// RosterRepository is the roster collaborator: team membership resolved at match end.
type RosterRepository interface {
	GetTeam(ctx context.Context, teamID string) (model.Team, error)
	Members(ctx context.Context, teamID string) ([]model.TeamMember, error)
	CreateTeam(ctx context.Context, t model.Team) (model.Team, error)
}

// KeySet remembers which notification keys were already used.
type KeySet interface {
	// MarkUsed records key and reports whether it was new.
	MarkUsed(ctx context.Context, key string) (bool, error)
	// Release forgets key so a failed delivery can be retried.
	Release(ctx context.Context, key string) error
}

// NotificationStore keeps the newest-first notification list.
type NotificationStore interface {
	Prepend(ctx context.Context, n model.Notification) error
	List(ctx context.Context, limit int) ([]model.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// PreferenceStore holds the notification toggles.
type PreferenceStore interface {
	Get(ctx context.Context) (model.NotificationPreferences, error)
	Update(ctx context.Context, p model.NotificationPreferences) error
}
