// Package state holds the in-process application state: the match map,
// per-match writer locks and locally held derived records.
package state

import (
	"sort"
	"sync"

	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
)

// Store is safe for concurrent use. Every read returns a deep copy.
type Store struct {
	mu           sync.RWMutex
	matches      map[string]model.Match
	achievements map[string][]model.Achievement
	certificates map[string][]model.Certificate
	feed         map[string][]model.FeedItem

	// Locks serialises writers per match.
	Locks *Locks
}

func NewStore() *Store {
	return &Store{
		matches:      make(map[string]model.Match),
		achievements: make(map[string][]model.Achievement),
		certificates: make(map[string][]model.Certificate),
		feed:         make(map[string][]model.FeedItem),
		Locks:        NewLocks(),
	}
}

func (s *Store) Get(id string) (model.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	if !ok {
		return model.Match{}, false
	}
	return m.Clone(), true
}

func (s *Store) Put(m model.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[m.ID] = m.Clone()
}

// Reconcile merges a freshly loaded set of matches into the store. A local
// copy updated after the loaded one holds writes that have not reached the
// database and wins; matches missing from loaded are kept for the same
// reason. It returns how many local copies were kept over loaded ones.
func (s *Store) Reconcile(loaded []model.Match) (kept int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range loaded {
		if local, ok := s.matches[m.ID]; ok && local.UpdatedAt.After(m.UpdatedAt) {
			kept++
			continue
		}
		s.matches[m.ID] = m.Clone()
	}
	return kept
}

// Snapshot returns all matches ordered by schedule then id.
func (s *Store) Snapshot() []model.Match {
	s.mu.RLock()
	out := make([]model.Match, 0, len(s.matches))
	for _, m := range s.matches {
		out = append(out, m.Clone())
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ScheduledAt.Equal(out[j].ScheduledAt) {
			return out[i].ScheduledAt.Before(out[j].ScheduledAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// AddAchievements keeps achievements whose persistence failed.
func (s *Store) AddAchievements(matchID string, a []model.Achievement) {
	if len(a) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.achievements[matchID] = append(s.achievements[matchID], a...)
}

func (s *Store) Achievements(matchID string) []model.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Achievement(nil), s.achievements[matchID]...)
}

func (s *Store) HasAchievements(matchID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.achievements[matchID]) > 0
}

func (s *Store) AddCertificates(matchID string, c []model.Certificate) {
	if len(c) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.certificates[matchID] = append(s.certificates[matchID], c...)
}

func (s *Store) HasCertificates(matchID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.certificates[matchID]) > 0
}

func (s *Store) Certificates(matchID string) []model.Certificate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Certificate(nil), s.certificates[matchID]...)
}

// AddFeedItem keeps a feed item whose persistence failed.
func (s *Store) AddFeedItem(item model.FeedItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feed[item.MatchID] = append(s.feed[item.MatchID], item)
}

// FeedItems returns locally held items newest first.
func (s *Store) FeedItems(matchID string) []model.FeedItem {
	s.mu.RLock()
	items := s.feed[matchID]
	out := make([]model.FeedItem, len(items))
	for i := range items {
		out[len(items)-1-i] = items[i]
	}
	s.mu.RUnlock()
	return out
}
