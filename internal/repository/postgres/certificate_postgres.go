package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/repository"
)

type certificateRepository struct{ pool *pgxpool.Pool }

func NewCertificateRepository(pool *pgxpool.Pool) repository.CertificateRepository {
	return &certificateRepository{pool: pool}
}

func (r *certificateRepository) CreateCertificate(ctx context.Context, c model.Certificate) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	meta, err := json.Marshal(c.Metadata)
	if err != nil {
		return fmt.Errorf("encode certificate metadata: %w", err)
	}
	_, err = getQ(ctx, r.pool).Exec(ctx,
		`INSERT INTO certificates (id, match_id, player_id, player_name, type, achievement_id, title, issued_at, metadata)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9)`,
		c.ID, c.MatchID, c.PlayerID, c.PlayerName, string(c.Type), c.AchievementID, c.Title, c.IssuedAt, meta,
	)
	return repository.MapPgError(err)
}

// ExistsForMatch reports whether certificates were already issued for the match.
func (r *certificateRepository) ExistsForMatch(ctx context.Context, matchID string) (bool, error) {
	if err := ensurePool(r.pool); err != nil {
		return false, err
	}
	var exists bool
	err := getQ(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM certificates WHERE match_id = $1)`, matchID,
	).Scan(&exists)
	if err != nil {
		return false, repository.MapPgError(err)
	}
	return exists, nil
}

func (r *certificateRepository) ListByMatch(ctx context.Context, matchID string) ([]model.Certificate, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	rows, err := getQ(ctx, r.pool).Query(ctx,
		`SELECT id, match_id, player_id, player_name, type, COALESCE(achievement_id, ''), title, issued_at, metadata
		 FROM certificates WHERE match_id = $1
		 ORDER BY issued_at, type DESC, id`, matchID)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	out := make([]model.Certificate, 0, 32)
	for rows.Next() {
		var (
			c        model.Certificate
			certType string
			meta     []byte
		)
		if err := rows.Scan(&c.ID, &c.MatchID, &c.PlayerID, &c.PlayerName, &certType, &c.AchievementID, &c.Title, &c.IssuedAt, &meta); err != nil {
			return nil, repository.MapPgError(err)
		}
		if err := json.Unmarshal(meta, &c.Metadata); err != nil {
			return nil, fmt.Errorf("decode certificate metadata: %w", err)
		}
		c.Type = model.CertificateType(certType)
		out = append(out, c)
	}
	return out, repository.MapPgError(rows.Err())
}

var _ repository.CertificateRepository = (*certificateRepository)(nil)
