package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/repository"
)

type achievementRepository struct{ pool *pgxpool.Pool }

func NewAchievementRepository(pool *pgxpool.Pool) repository.AchievementRepository {
	return &achievementRepository{pool: pool}
}

func (r *achievementRepository) CreateAchievement(ctx context.Context, a model.Achievement) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	_, err := getQ(ctx, r.pool).Exec(ctx,
		`INSERT INTO achievements (id, match_id, player_id, player_name, type, title, description, date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.MatchID, a.PlayerID, a.PlayerName, string(a.Type), a.Title, a.Description, a.Date,
	)
	return repository.MapPgError(err)
}

// ExistsForMatch reports whether achievements were already derived for the match.
func (r *achievementRepository) ExistsForMatch(ctx context.Context, matchID string) (bool, error) {
	if err := ensurePool(r.pool); err != nil {
		return false, err
	}
	var exists bool
	err := getQ(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM achievements WHERE match_id = $1)`, matchID,
	).Scan(&exists)
	if err != nil {
		return false, repository.MapPgError(err)
	}
	return exists, nil
}

func (r *achievementRepository) ListByMatch(ctx context.Context, matchID string) ([]model.Achievement, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	rows, err := getQ(ctx, r.pool).Query(ctx,
		`SELECT id, match_id, player_id, player_name, type, title, description, date
		 FROM achievements WHERE match_id = $1
		 ORDER BY created_at, id`, matchID)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	out := make([]model.Achievement, 0, 8)
	for rows.Next() {
		var (
			a       model.Achievement
			achType string
		)
		if err := rows.Scan(&a.ID, &a.MatchID, &a.PlayerID, &a.PlayerName, &achType, &a.Title, &a.Description, &a.Date); err != nil {
			return nil, repository.MapPgError(err)
		}
		a.Type = model.AchievementType(achType)
		out = append(out, a)
	}
	return out, repository.MapPgError(rows.Err())
}

var _ repository.AchievementRepository = (*achievementRepository)(nil)
