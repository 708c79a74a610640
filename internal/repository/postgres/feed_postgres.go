package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/repository"
)

type feedRepository struct{ pool *pgxpool.Pool }

func NewFeedRepository(pool *pgxpool.Pool) repository.FeedRepository {
	return &feedRepository{pool: pool}
}

func (r *feedRepository) CreateFeedItem(ctx context.Context, item model.FeedItem) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	_, err := getQ(ctx, r.pool).Exec(ctx,
		`INSERT INTO feed_items (id, match_id, type, text, created_at) VALUES ($1, $2, $3, $4, $5)`,
		item.ID, item.MatchID, item.Type, item.Text, item.CreatedAt,
	)
	return repository.MapPgError(err)
}

// ListByMatch returns the newest items first.
func (r *feedRepository) ListByMatch(ctx context.Context, matchID string, limit int) ([]model.FeedItem, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	limit = repository.Page{Limit: limit}.Normalize().Limit
	rows, err := getQ(ctx, r.pool).Query(ctx,
		`SELECT id, match_id, type, text, created_at
		 FROM feed_items WHERE match_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`, matchID, limit)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	out := make([]model.FeedItem, 0, limit)
	for rows.Next() {
		var it model.FeedItem
		if err := rows.Scan(&it.ID, &it.MatchID, &it.Type, &it.Text, &it.CreatedAt); err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, it)
	}
	return out, repository.MapPgError(rows.Err())
}

var _ repository.FeedRepository = (*feedRepository)(nil)
