package favorites

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/melodia/internal/dbx"
	"github.com/dmitrijs2005/melodia/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]*models.Favorite, error) {
	query :=
		`SELECT id, user_id, musica_id, created_at FROM favorites
		 WHERE user_id = $1
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanFavorites(rows)
}

func (r *PostgresRepository) Add(ctx context.Context, userID string, musicID int64) (*models.Favorite, error) {
	query :=
		`INSERT INTO favorites (user_id, musica_id)
		 VALUES ($1, $2)
		 RETURNING id, user_id, musica_id, created_at
		 `

	f := &models.Favorite{}
	err := r.db.QueryRowContext(ctx, query, userID, musicID).Scan(&f.ID, &f.UserID, &f.MusicID, &f.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return f, nil
}

func (r *PostgresRepository) Remove(ctx context.Context, userID string, musicID int64) ([]*models.Favorite, error) {
	query :=
		`DELETE FROM favorites
		 WHERE user_id = $1 AND musica_id = $2
		 RETURNING id, user_id, musica_id, created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, musicID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanFavorites(rows)
}

// scanFavorites never returns a nil slice so empty results encode as [].
func scanFavorites(rows *sql.Rows) ([]*models.Favorite, error) {
	result := make([]*models.Favorite, 0)
	for rows.Next() {
		f := &models.Favorite{}
		if err := rows.Scan(&f.ID, &f.UserID, &f.MusicID, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
