package notify

import (
	"context"
	"sync"

	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/repository"
)

// MemoryStore implements the key set, notification list and preferences in
// process. It backs tests and runs without Redis.
type MemoryStore struct {
	mu        sync.Mutex
	used      map[string]struct{}
	items     []model.Notification
	prefs     model.NotificationPreferences
	maxStored int
}

func NewMemoryStore(prefs model.NotificationPreferences, maxStored int) *MemoryStore {
	return &MemoryStore{used: make(map[string]struct{}), prefs: prefs, maxStored: maxStored}
}

func (s *MemoryStore) MarkUsed(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.used[key]; ok {
		return false, nil
	}
	s.used[key] = struct{}{}
	return true, nil
}

func (s *MemoryStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.used, key)
	return nil
}

func (s *MemoryStore) Prepend(_ context.Context, n model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]model.Notification{n}, s.items...)
	if s.maxStored > 0 && len(s.items) > s.maxStored {
		s.items = s.items[:s.maxStored]
	}
	return nil
}

func (s *MemoryStore) List(_ context.Context, limit int) ([]model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.items)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]model.Notification, n)
	copy(out, s.items[:n])
	return out, nil
}

func (s *MemoryStore) MarkRead(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Read = true
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *MemoryStore) Get(context.Context) (model.NotificationPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs, nil
}

func (s *MemoryStore) Update(_ context.Context, p model.NotificationPreferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = p
	return nil
}

var (
	_ repository.KeySet            = (*MemoryStore)(nil)
	_ repository.NotificationStore = (*MemoryStore)(nil)
	_ repository.PreferenceStore   = (*MemoryStore)(nil)
)
