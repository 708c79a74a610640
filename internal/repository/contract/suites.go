// Package contract holds behaviour suites every repository implementation
// must pass. Backends wire them up with their own factories.
package contract

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/repository"
)

type MatchFactory func(t *testing.T) (repository.MatchRepository, func())

// DerivedFactory returns the repositories for records derived at match end
// plus a helper that seeds the parent match row.
type DerivedFactory func(t *testing.T) (
	achievements repository.AchievementRepository,
	certificates repository.CertificateRepository,
	feed repository.FeedRepository,
	mkMatch func(ctx context.Context, id string) error,
	cleanup func(),
)

type RosterFactory func(t *testing.T) (repository.RosterRepository, func())

type TxFactory func(t *testing.T) (tx repository.TxManager, matches repository.MatchRepository, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

// SampleMatch builds a scheduled cricket match with the given id.
func SampleMatch(id string) model.Match {
	return model.Match{
		ID:          id,
		SportID:     model.SportCricket,
		ScheduledAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Venue:       "Oval",
		Status:      model.StatusScheduled,
		Home:        model.Participant{ID: id + "-home", Name: "Lions", Players: []model.PlayerStats{}},
		Away:        model.Participant{ID: id + "-away", Name: "Tigers", Players: []model.PlayerStats{}},
		Events:      []model.ScoreEvent{},
	}
}

func RunMatchRepositoryContract(t *testing.T, makeRepo MatchFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, SampleMatch("m-1"))
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.ID != "m-1" || got.Home.Name != "Lions" || got.Status != model.StatusScheduled {
			t.Fatalf("mismatch: %+v", got)
		}
		if got.CreatedAt.IsZero() {
			t.Fatalf("expected created_at to be set")
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), "missing")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("create_duplicate_conflict", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, SampleMatch("dup")); err != nil {
			t.Fatalf("seed: %v", err)
		}
		_, err := repo.Create(ctx, SampleMatch("dup"))
		if !errors.Is(err, repository.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("list_pagination_total", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for i := 0; i < 7; i++ {
			if _, err := repo.Create(ctx, SampleMatch(fmt.Sprintf("page-%d", i))); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		res, err := repo.List(ctx, repository.Page{Limit: 3})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 3 || res.Total != 7 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
		all, err := repo.LoadMatches(ctx)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(all) != 7 {
			t.Fatalf("expected 7 loaded matches, got %d", len(all))
		}
	})

	t.Run("save_snapshot_and_status", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		m, err := repo.Create(ctx, SampleMatch("upd"))
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		m.Status = model.StatusLive
		m.Home.Score = 4
		m.Events = append(m.Events, model.ScoreEvent{ID: "e1", Type: model.EventDelivery, Points: 4, TeamID: m.Home.ID})
		if err := repo.SaveMatchUpdate(ctx, m.ID, repository.MatchUpdate{Snapshot: &m}); err != nil {
			t.Fatalf("save snapshot: %v", err)
		}
		completed := model.StatusCompleted
		if err := repo.SaveMatchUpdate(ctx, m.ID, repository.MatchUpdate{Status: &completed}); err != nil {
			t.Fatalf("save status: %v", err)
		}
		got, err := repo.GetByID(ctx, m.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Status != model.StatusCompleted || got.Home.Score != 4 || len(got.Events) != 1 {
			t.Fatalf("unexpected stored match: %+v", got)
		}
	})

	t.Run("save_unknown_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		live := model.StatusLive
		err := repo.SaveMatchUpdate(context.Background(), "ghost", repository.MatchUpdate{Status: &live})
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func RunDerivedRecordsContract(t *testing.T, makeRepos DerivedFactory) {
	t.Helper()

	t.Run("achievements_exist_and_list", func(t *testing.T) {
		ach, _, _, mkMatch, cleanup := makeRepos(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if err := mkMatch(ctx, "d-1"); err != nil {
			t.Fatalf("seed match: %v", err)
		}
		exists, err := ach.ExistsForMatch(ctx, "d-1")
		if err != nil || exists {
			t.Fatalf("expected no achievements yet, got exists=%v err=%v", exists, err)
		}
		a := model.Achievement{ID: "a-1", MatchID: "d-1", PlayerID: "p1", PlayerName: "Ravi", Type: model.AchievementCentury, Title: "Century", Date: time.Now().UTC()}
		if err := ach.CreateAchievement(ctx, a); err != nil {
			t.Fatalf("create: %v", err)
		}
		a.ID = "a-2"
		if err := ach.CreateAchievement(ctx, a); !errors.Is(err, repository.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists for same player/type, got %v", err)
		}
		exists, err = ach.ExistsForMatch(ctx, "d-1")
		if err != nil || !exists {
			t.Fatalf("expected achievements to exist, got exists=%v err=%v", exists, err)
		}
		list, err := ach.ListByMatch(ctx, "d-1")
		if err != nil || len(list) != 1 || list[0].Type != model.AchievementCentury {
			t.Fatalf("unexpected list: %+v err=%v", list, err)
		}
	})

	t.Run("certificate_metadata_round_trip", func(t *testing.T) {
		ach, certs, _, mkMatch, cleanup := makeRepos(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if err := mkMatch(ctx, "d-2"); err != nil {
			t.Fatalf("seed match: %v", err)
		}
		now := time.Now().UTC()
		if err := ach.CreateAchievement(ctx, model.Achievement{ID: "a-9", MatchID: "d-2", PlayerID: "p1", Type: model.AchievementFiveWickets, Title: "Five Wickets", Date: now}); err != nil {
			t.Fatalf("seed achievement: %v", err)
		}
		if exists, err := certs.ExistsForMatch(ctx, "d-2"); err != nil || exists {
			t.Fatalf("expected no certificates yet, got exists=%v err=%v", exists, err)
		}
		meta := model.NewCertificateMetadata("Lions vs Tigers", "Cricket", "Oval", "City League", "Lions")
		for _, c := range []model.Certificate{
			{ID: "c-1", MatchID: "d-2", PlayerID: "p1", Type: model.CertificateParticipation, Title: "Participation", IssuedAt: now, Metadata: meta},
			{ID: "c-2", MatchID: "d-2", PlayerID: "p1", Type: model.CertificateAchievement, AchievementID: "a-9", Title: "Five Wickets", IssuedAt: now, Metadata: meta},
		} {
			if err := certs.CreateCertificate(ctx, c); err != nil {
				t.Fatalf("create certificate %s: %v", c.ID, err)
			}
		}
		if exists, err := certs.ExistsForMatch(ctx, "d-2"); err != nil || !exists {
			t.Fatalf("expected certificates to exist, got exists=%v err=%v", exists, err)
		}
		list, err := certs.ListByMatch(ctx, "d-2")
		if err != nil || len(list) != 2 {
			t.Fatalf("unexpected list: %+v err=%v", list, err)
		}
		for _, c := range list {
			if c.Metadata.TeamName() != "Lions" || c.Metadata.OrganizerName() != "City League" {
				t.Fatalf("metadata not preserved: %+v", c.Metadata)
			}
		}
	})

	t.Run("feed_newest_first", func(t *testing.T) {
		_, _, feed, mkMatch, cleanup := makeRepos(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if err := mkMatch(ctx, "d-3"); err != nil {
			t.Fatalf("seed match: %v", err)
		}
		base := time.Now().UTC().Truncate(time.Second)
		for i := 0; i < 3; i++ {
			item := model.FeedItem{ID: fmt.Sprintf("f-%d", i), MatchID: "d-3", Type: model.FeedScoreUpdate, Text: "x", CreatedAt: base.Add(time.Duration(i) * time.Second)}
			if err := feed.CreateFeedItem(ctx, item); err != nil {
				t.Fatalf("create feed item: %v", err)
			}
		}
		list, err := feed.ListByMatch(ctx, "d-3", 2)
		if err != nil || len(list) != 2 || list[0].ID != "f-2" {
			t.Fatalf("unexpected feed: %+v err=%v", list, err)
		}
	})
}

func RunRosterRepositoryContract(t *testing.T, makeRepo RosterFactory) {
	t.Helper()

	t.Run("create_and_get_team", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.CreateTeam(ctx, model.Team{Name: "Lions", Members: []model.TeamMember{{PlayerID: "p2", Name: "B"}, {PlayerID: "p1", Name: "A"}}})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		got, err := repo.GetTeam(ctx, created.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if len(got.Members) != 2 || got.Members[0].PlayerID != "p2" {
			t.Fatalf("roster order not preserved: %+v", got.Members)
		}
	})

	t.Run("unknown_team", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.GetTeam(ctx, "nope"); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		members, err := repo.Members(ctx, "nope")
		if err != nil || len(members) != 0 {
			t.Fatalf("expected empty roster, got %+v err=%v", members, err)
		}
	})

	t.Run("duplicate_name_conflict", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.CreateTeam(ctx, model.Team{Name: "Dup"}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, err := repo.CreateTeam(ctx, model.Team{Name: "Dup"}); !errors.Is(err, repository.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})
}

func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("commit_on_nil_error", func(t *testing.T) {
		tx, matches, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			_, err := matches.Create(ctx, SampleMatch("tx-commit"))
			return err
		})
		if err != nil {
			t.Fatalf("WithinTx: %v", err)
		}
		if _, err := matches.GetByID(ctx, "tx-commit"); err != nil {
			t.Fatalf("expected committed row visible, got err=%v", err)
		}
	})

	t.Run("rollback_on_error", func(t *testing.T) {
		tx, matches, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		errMarker := errors.New("boom")
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := matches.Create(ctx, SampleMatch("tx-rollback")); err != nil {
				return err
			}
			return errMarker
		})
		if !errors.Is(err, errMarker) {
			t.Fatalf("expected marker error, got %v", err)
		}
		if _, err := matches.GetByID(ctx, "tx-rollback"); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after rollback, got %v", err)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		if err := p.Ping(context.Background()); err != nil {
			t.Fatalf("expected ping ok, got %v", err)
		}
	})
}
