package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/repository"
)

// matchRepository stores each match as a JSONB document next to the few
// columns queries filter on.
type matchRepository struct{ pool *pgxpool.Pool }

func NewMatchRepository(pool *pgxpool.Pool) repository.MatchRepository {
	return &matchRepository{pool: pool}
}

const matchColumns = `document, created_at, updated_at`

func scanMatch(row pgx.Row, extra ...any) (model.Match, error) {
	var (
		doc []byte
		m   model.Match
	)
	dest := append([]any{&doc, &m.CreatedAt, &m.UpdatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return model.Match{}, err
	}
	created, updated := m.CreatedAt, m.UpdatedAt
	if err := json.Unmarshal(doc, &m); err != nil {
		return model.Match{}, fmt.Errorf("decode match document: %w", err)
	}
	m.CreatedAt, m.UpdatedAt = created, updated
	return m, nil
}

func (r *matchRepository) LoadMatches(ctx context.Context) ([]model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	rows, err := getQ(ctx, r.pool).Query(ctx,
		`SELECT `+matchColumns+` FROM matches ORDER BY scheduled_at, id`)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	out := make([]model.Match, 0, 64)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, m)
	}
	return out, repository.MapPgError(rows.Err())
}

func (r *matchRepository) Create(ctx context.Context, m model.Match) (model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Match{}, err
	}
	doc, err := json.Marshal(m)
	if err != nil {
		return model.Match{}, fmt.Errorf("encode match document: %w", err)
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO matches (id, sport_id, status, tournament_id, scheduled_at, venue, document)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
		 RETURNING `+matchColumns,
		m.ID, m.SportID, string(m.Status), m.TournamentID, m.ScheduledAt, m.Venue, doc,
	)
	out, err := scanMatch(row)
	if err != nil {
		return model.Match{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *matchRepository) GetByID(ctx context.Context, id string) (model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Match{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = $1`, id)
	m, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Match{}, repository.ErrNotFound
		}
		return model.Match{}, repository.MapPgError(err)
	}
	return m, nil
}

func (r *matchRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Match], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Match]{}, err
	}
	p = p.Normalize()
	rows, err := getQ(ctx, r.pool).Query(ctx,
		`SELECT `+matchColumns+`, COUNT(*) OVER() AS total
		 FROM matches
		 ORDER BY scheduled_at DESC, id DESC
		 LIMIT $1 OFFSET $2`,
		p.Limit, p.Offset,
	)
	if err != nil {
		return repository.PageResult[model.Match]{}, repository.MapPgError(err)
	}
	defer rows.Close()

	res := repository.PageResult[model.Match]{Items: make([]model.Match, 0, p.Limit)}
	for rows.Next() {
		var total int
		m, err := scanMatch(rows, &total)
		if err != nil {
			return repository.PageResult[model.Match]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, m)
		res.Total = total
	}
	return res, repository.MapPgError(rows.Err())
}

// SaveMatchUpdate writes the non-nil parts of u. A snapshot also refreshes
// the filter columns so they never disagree with the document.
func (r *matchRepository) SaveMatchUpdate(ctx context.Context, matchID string, u repository.MatchUpdate) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)

	var (
		tag pgconn.CommandTag
		err error
	)
	switch {
	case u.Snapshot != nil:
		doc, merr := json.Marshal(u.Snapshot)
		if merr != nil {
			return fmt.Errorf("encode match document: %w", merr)
		}
		tag, err = exec.Exec(ctx,
			`UPDATE matches
			 SET document = $2, status = $3, tournament_id = NULLIF($4, ''), scheduled_at = $5, venue = $6, updated_at = NOW()
			 WHERE id = $1`,
			matchID, doc, string(u.Snapshot.Status), u.Snapshot.TournamentID, u.Snapshot.ScheduledAt, u.Snapshot.Venue,
		)
	case u.Status != nil:
		tag, err = exec.Exec(ctx,
			`UPDATE matches
			 SET status = $2, document = jsonb_set(document, '{status}', to_jsonb($2::TEXT)), updated_at = NOW()
			 WHERE id = $1`,
			matchID, string(*u.Status),
		)
	default:
		return nil
	}
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.MatchRepository = (*matchRepository)(nil)
