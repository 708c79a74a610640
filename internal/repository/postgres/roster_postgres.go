package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/repository"
)

type rosterRepository struct {
	pool *pgxpool.Pool
	tx   repository.TxManager
}

func NewRosterRepository(pool *pgxpool.Pool) repository.RosterRepository {
	return &rosterRepository{pool: pool, tx: NewTxManager(pool)}
}

// CreateTeam inserts the team and its members in one transaction.
func (r *rosterRepository) CreateTeam(ctx context.Context, t model.Team) (model.Team, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Team{}, err
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	err := r.tx.WithinTx(ctx, func(ctx context.Context) error {
		exec := getQ(ctx, r.pool)
		if err := exec.QueryRow(ctx,
			`INSERT INTO teams (id, name) VALUES ($1, $2) RETURNING created_at`, t.ID, t.Name,
		).Scan(&t.CreatedAt); err != nil {
			return err
		}
		for i, m := range t.Members {
			if _, err := exec.Exec(ctx,
				`INSERT INTO team_members (team_id, player_id, name, position) VALUES ($1, $2, $3, $4)`,
				t.ID, m.PlayerID, m.Name, i,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return model.Team{}, repository.MapPgError(err)
	}
	return t, nil
}

func (r *rosterRepository) GetTeam(ctx context.Context, teamID string) (model.Team, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Team{}, err
	}
	var t model.Team
	err := getQ(ctx, r.pool).QueryRow(ctx,
		`SELECT id, name, created_at FROM teams WHERE id = $1`, teamID,
	).Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Team{}, repository.ErrNotFound
		}
		return model.Team{}, repository.MapPgError(err)
	}
	t.Members, err = r.Members(ctx, teamID)
	if err != nil {
		return model.Team{}, err
	}
	return t, nil
}

// Members returns the roster in insertion order. An unknown team yields an
// empty roster rather than an error.
func (r *rosterRepository) Members(ctx context.Context, teamID string) ([]model.TeamMember, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	rows, err := getQ(ctx, r.pool).Query(ctx,
		`SELECT player_id, name FROM team_members WHERE team_id = $1 ORDER BY position, player_id`, teamID)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	out := make([]model.TeamMember, 0, 16)
	for rows.Next() {
		var m model.TeamMember
		if err := rows.Scan(&m.PlayerID, &m.Name); err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, m)
	}
	return out, repository.MapPgError(rows.Err())
}

var _ repository.RosterRepository = (*rosterRepository)(nil)
