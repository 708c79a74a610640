package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/state"
	"github.com/bharaths07/sportsv1.1-sub000/internal/stats"
)

type statsService struct {
	store *state.Store
	now   func() time.Time
	log   zerolog.Logger
}

func NewStatsService(store *state.Store, logger zerolog.Logger) StatsService {
	l := logger.With().Str("module", "service").Str("component", "stats").Logger()
	return &statsService{store: store, now: time.Now, log: l}
}

// Aggregate validates f and runs the fold over a snapshot of every match.
func (s *statsService) Aggregate(_ context.Context, f stats.Filter) (stats.Result, error) {
	f.SportID = strings.TrimSpace(f.SportID)
	f.TournamentID = strings.TrimSpace(f.TournamentID)
	if f.Range == "" {
		f.Range = stats.RangeAll
	}

	var ferrs []FieldError
	if f.SportID == "" {
		ferrs = append(ferrs, FieldError{Field: "sport_id", Message: "must be set"})
	} else if !model.KnownSport(f.SportID) {
		ferrs = append(ferrs, FieldError{Field: "sport_id", Message: "must be one of s1|s2|s3"})
	}
	if !f.Range.Valid() {
		ferrs = append(ferrs, FieldError{Field: "range", Message: "must be one of all|last_30_days|last_6_months|last_12_months|this_year"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("stats filter validation failed")
		return stats.Result{}, err
	}
	if f.Now.IsZero() {
		f.Now = s.now()
	}

	matches := s.store.Snapshot()
	res := stats.Aggregate(matches, f)
	s.log.Debug().
		Str("sport_id", f.SportID).
		Str("range", string(f.Range)).
		Int("matches", len(matches)).
		Int("batters", len(res.Batting)).
		Msg("stats aggregated")
	return res, nil
}
