package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/repository"
)

// KeySet stores one key per used notification key with SETNX, so dedup
// survives restarts.
type KeySet struct {
	client *redis.Client
	keys   keys
}

func NewKeySet(client *redis.Client, prefix string) *KeySet {
	return &KeySet{client: client, keys: keys{prefix}}
}

func (s *KeySet) MarkUsed(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.keys.join("notify", "key", key), 1, 0).Result()
	if err != nil {
		return false, fmt.Errorf("mark notification key: %w", err)
	}
	return ok, nil
}

func (s *KeySet) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.keys.join("notify", "key", key)).Err()
}

// NotificationStore keeps notifications as JSON in a capped list, newest first.
type NotificationStore struct {
	client    *redis.Client
	keys      keys
	maxStored int64
}

func NewNotificationStore(client *redis.Client, prefix string, maxStored int64) *NotificationStore {
	return &NotificationStore{client: client, keys: keys{prefix}, maxStored: maxStored}
}

func (s *NotificationStore) listKey() string { return s.keys.join("notify", "list") }

func (s *NotificationStore) Prepend(ctx context.Context, n model.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshaling notification: %w", err)
	}
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, s.listKey(), data)
	if s.maxStored > 0 {
		pipe.LTrim(ctx, s.listKey(), 0, s.maxStored-1)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *NotificationStore) List(ctx context.Context, limit int) ([]model.Notification, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}
	raw, err := s.client.LRange(ctx, s.listKey(), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	out := make([]model.Notification, 0, len(raw))
	for _, r := range raw {
		var n model.Notification
		if err := json.Unmarshal([]byte(r), &n); err != nil {
			return nil, fmt.Errorf("decoding notification: %w", err)
		}
		out = append(out, n)
	}
	return out, nil
}

// MarkRead rewrites the matching list element in place. The WATCH makes a
// concurrent prepend retry the scan instead of overwriting the wrong slot.
func (s *NotificationStore) MarkRead(ctx context.Context, id string) error {
	key := s.listKey()
	for attempt := 0; attempt < 3; attempt++ {
		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			raw, err := tx.LRange(ctx, key, 0, -1).Result()
			if err != nil {
				return err
			}
			for i, r := range raw {
				var n model.Notification
				if err := json.Unmarshal([]byte(r), &n); err != nil || n.ID != id {
					continue
				}
				if n.Read {
					return nil
				}
				n.Read = true
				data, err := json.Marshal(n)
				if err != nil {
					return err
				}
				_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
					pipe.LSet(ctx, key, int64(i), data)
					return nil
				})
				return err
			}
			return repository.ErrNotFound
		}, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return repository.ErrConflict
}

// PreferenceStore keeps the toggles in a hash. Missing fields fall back to
// the configured defaults.
type PreferenceStore struct {
	client   *redis.Client
	keys     keys
	defaults model.NotificationPreferences
}

func NewPreferenceStore(client *redis.Client, prefix string, defaults model.NotificationPreferences) *PreferenceStore {
	return &PreferenceStore{client: client, keys: keys{prefix}, defaults: defaults}
}

func (s *PreferenceStore) Get(ctx context.Context) (model.NotificationPreferences, error) {
	fields, err := s.client.HGetAll(ctx, s.keys.join("notify", "prefs")).Result()
	if err != nil {
		return model.NotificationPreferences{}, fmt.Errorf("reading preferences: %w", err)
	}
	p := s.defaults
	flag := func(name string, dst *bool) {
		if v, ok := fields[name]; ok {
			if b, err := strconv.ParseBool(v); err == nil {
				*dst = b
			}
		}
	}
	flag("enabled", &p.Enabled)
	flag("match_start", &p.MatchStart)
	flag("match_result", &p.MatchResult)
	flag("tournament", &p.Tournament)
	return p, nil
}

func (s *PreferenceStore) Update(ctx context.Context, p model.NotificationPreferences) error {
	return s.client.HSet(ctx, s.keys.join("notify", "prefs"), map[string]interface{}{
		"enabled":      strconv.FormatBool(p.Enabled),
		"match_start":  strconv.FormatBool(p.MatchStart),
		"match_result": strconv.FormatBool(p.MatchResult),
		"tournament":   strconv.FormatBool(p.Tournament),
	}).Err()
}

var (
	_ repository.KeySet            = (*KeySet)(nil)
	_ repository.NotificationStore = (*NotificationStore)(nil)
	_ repository.PreferenceStore   = (*PreferenceStore)(nil)
)
