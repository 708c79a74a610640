package service_test

import (
	"context"
	"errors"
	"sync"

	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/repository"
)

var errDown = errors.New("database unavailable")

type fakeMatchRepo struct {
	mu      sync.Mutex
	matches map[string]model.Match
	saves   int
	failing bool
}

func newFakeMatchRepo(seed ...model.Match) *fakeMatchRepo {
	f := &fakeMatchRepo{matches: map[string]model.Match{}}
	for _, m := range seed {
		f.matches[m.ID] = m
	}
	return f
}

func (f *fakeMatchRepo) LoadMatches(context.Context) ([]model.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errDown
	}
	out := make([]model.Match, 0, len(f.matches))
	for _, m := range f.matches {
		out = append(out, m.Clone())
	}
	return out, nil
}

func (f *fakeMatchRepo) Create(_ context.Context, m model.Match) (model.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return model.Match{}, errDown
	}
	if _, ok := f.matches[m.ID]; ok {
		return model.Match{}, repository.ErrAlreadyExists
	}
	f.matches[m.ID] = m.Clone()
	return m, nil
}

func (f *fakeMatchRepo) GetByID(_ context.Context, id string) (model.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.matches[id]
	if !ok {
		return model.Match{}, repository.ErrNotFound
	}
	return m.Clone(), nil
}

func (f *fakeMatchRepo) List(context.Context, repository.Page) (repository.PageResult[model.Match], error) {
	return repository.PageResult[model.Match]{}, nil
}

func (f *fakeMatchRepo) SaveMatchUpdate(_ context.Context, id string, u repository.MatchUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errDown
	}
	m, ok := f.matches[id]
	if !ok {
		return repository.ErrNotFound
	}
	if u.Snapshot != nil {
		m = u.Snapshot.Clone()
	}
	if u.Status != nil {
		m.Status = *u.Status
	}
	f.matches[id] = m
	f.saves++
	return nil
}

var _ repository.MatchRepository = (*fakeMatchRepo)(nil)

type fakeAchievementRepo struct {
	mu      sync.Mutex
	items   []model.Achievement
	exists  bool
	failing bool
}

func (f *fakeAchievementRepo) CreateAchievement(_ context.Context, a model.Achievement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errDown
	}
	f.items = append(f.items, a)
	return nil
}

func (f *fakeAchievementRepo) ExistsForMatch(_ context.Context, matchID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.exists {
		return true, nil
	}
	for _, a := range f.items {
		if a.MatchID == matchID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAchievementRepo) ListByMatch(_ context.Context, matchID string) ([]model.Achievement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errDown
	}
	var out []model.Achievement
	for _, a := range f.items {
		if a.MatchID == matchID {
			out = append(out, a)
		}
	}
	return out, nil
}

var _ repository.AchievementRepository = (*fakeAchievementRepo)(nil)

type fakeCertificateRepo struct {
	mu    sync.Mutex
	items []model.Certificate
}

func (f *fakeCertificateRepo) CreateCertificate(_ context.Context, c model.Certificate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, c)
	return nil
}

func (f *fakeCertificateRepo) ListByMatch(_ context.Context, matchID string) ([]model.Certificate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Certificate
	for _, c := range f.items {
		if c.MatchID == matchID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCertificateRepo) ExistsForMatch(_ context.Context, matchID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.items {
		if c.MatchID == matchID {
			return true, nil
		}
	}
	return false, nil
}

var _ repository.CertificateRepository = (*fakeCertificateRepo)(nil)

type fakeFeedRepo struct {
	mu      sync.Mutex
	items   []model.FeedItem
	failing bool
}

func (f *fakeFeedRepo) CreateFeedItem(_ context.Context, item model.FeedItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errDown
	}
	f.items = append(f.items, item)
	return nil
}

func (f *fakeFeedRepo) ListByMatch(_ context.Context, matchID string, limit int) ([]model.FeedItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errDown
	}
	var out []model.FeedItem
	for i := len(f.items) - 1; i >= 0 && len(out) < limit; i-- {
		if f.items[i].MatchID == matchID {
			out = append(out, f.items[i])
		}
	}
	return out, nil
}

var _ repository.FeedRepository = (*fakeFeedRepo)(nil)

type fakePublisher struct {
	mu        sync.Mutex
	published []model.FeedItem
}

func (f *fakePublisher) PublishFeedItem(_ context.Context, _ string, item model.FeedItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, item)
	return nil
}

var _ repository.FeedPublisher = (*fakePublisher)(nil)

type fakeRoster struct{ teams map[string]model.Team }

func (f *fakeRoster) GetTeam(_ context.Context, id string) (model.Team, error) {
	t, ok := f.teams[id]
	if !ok {
		return model.Team{}, repository.ErrNotFound
	}
	return t, nil
}

func (f *fakeRoster) Members(_ context.Context, id string) ([]model.TeamMember, error) {
	return f.teams[id].Members, nil
}

func (f *fakeRoster) CreateTeam(_ context.Context, t model.Team) (model.Team, error) {
	f.teams[t.ID] = t
	return t, nil
}

var _ repository.RosterRepository = (*fakeRoster)(nil)

type fakeTx struct{}

func (f *fakeTx) WithinTx(ctx context.Context, fn repository.TxFunc) error { return fn(ctx) }

var _ repository.TxManager = (*fakeTx)(nil)

type recordingHook struct {
	mu        sync.Mutex
	completed []string
}

func (h *recordingHook) MatchCompleted(_ context.Context, m model.Match) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completed = append(h.completed, m.ID)
	return nil
}
