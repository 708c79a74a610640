// Package notify turns domain events into user notifications, suppressing
// duplicates by key and honouring the preference toggles.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/repository"
)

// Event is a candidate notification.
type Event struct {
	Type  model.NotificationType
	Title string
	Body  string
	// Key identifies the event for deduplication, e.g. "match-start:<id>".
	Key string
}

// PlatformNotifier delivers a stored notification to the outside world.
type PlatformNotifier interface {
	Push(ctx context.Context, n model.Notification) error
}

// Deduplicator records each keyed event at most once.
type Deduplicator struct {
	keys     repository.KeySet
	store    repository.NotificationStore
	prefs    repository.PreferenceStore
	platform PlatformNotifier
	logger   zerolog.Logger
	now      func() time.Time
	newID    func() string
	// pushTimeout bounds the background platform push.
	pushTimeout time.Duration
}

// Option customises a Deduplicator.
type Option func(*Deduplicator)

func WithClock(now func() time.Time) Option { return func(d *Deduplicator) { d.now = now } }

func WithIDGenerator(newID func() string) Option { return func(d *Deduplicator) { d.newID = newID } }

// WithPlatform sets the best-effort push target. Nil disables pushes.
func WithPlatform(p PlatformNotifier) Option { return func(d *Deduplicator) { d.platform = p } }

func NewDeduplicator(keys repository.KeySet, store repository.NotificationStore, prefs repository.PreferenceStore, logger zerolog.Logger, opts ...Option) *Deduplicator {
	d := &Deduplicator{
		keys:        keys,
		store:       store,
		prefs:       prefs,
		logger:      logger.With().Str("module", "notify").Str("component", "deduplicator").Logger(),
		now:         time.Now,
		newID:       uuid.NewString,
		pushTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// MaybeNotify stores ev unless preferences block it or its key was used
// before. It reports whether a notification was recorded.
func (d *Deduplicator) MaybeNotify(ctx context.Context, ev Event) (bool, error) {
	prefs, err := d.prefs.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("load preferences: %w", err)
	}
	if !prefs.Allows(ev.Type) {
		d.logger.Debug().Str("type", string(ev.Type)).Str("key", ev.Key).Msg("notification suppressed by preferences")
		return false, nil
	}

	if ev.Key != "" {
		fresh, err := d.keys.MarkUsed(ctx, ev.Key)
		if err != nil {
			return false, err
		}
		if !fresh {
			d.logger.Debug().Str("key", ev.Key).Msg("duplicate notification skipped")
			return false, nil
		}
	}

	n := model.Notification{
		ID:        d.newID(),
		Type:      ev.Type,
		Title:     ev.Title,
		Body:      ev.Body,
		Key:       ev.Key,
		CreatedAt: d.now().UTC(),
	}
	if err := d.store.Prepend(ctx, n); err != nil {
		if ev.Key != "" {
			if rerr := d.keys.Release(ctx, ev.Key); rerr != nil {
				err = errors.Join(err, rerr)
			}
		}
		return false, fmt.Errorf("store notification: %w", err)
	}

	d.push(n)
	return true, nil
}

// push fires the platform notification without blocking the caller.
func (d *Deduplicator) push(n model.Notification) {
	if d.platform == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.pushTimeout)
		defer cancel()
		if err := d.platform.Push(ctx, n); err != nil {
			d.logger.Warn().Err(err).Str("notification_id", n.ID).Msg("platform push failed")
		}
	}()
}

func (d *Deduplicator) List(ctx context.Context, limit int) ([]model.Notification, error) {
	return d.store.List(ctx, limit)
}

func (d *Deduplicator) MarkRead(ctx context.Context, id string) error {
	return d.store.MarkRead(ctx, id)
}

func (d *Deduplicator) Preferences(ctx context.Context) (model.NotificationPreferences, error) {
	return d.prefs.Get(ctx)
}

func (d *Deduplicator) UpdatePreferences(ctx context.Context, p model.NotificationPreferences) error {
	return d.prefs.Update(ctx, p)
}
