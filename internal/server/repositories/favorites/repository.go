package favorites

import (
	"context"

	"github.com/dmitrijs2005/melodia/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, userID string) ([]*models.Favorite, error)
	Add(ctx context.Context, userID string, musicID int64) (*models.Favorite, error)
	// Remove deletes every row matching the pair and returns what was deleted.
	Remove(ctx context.Context, userID string, musicID int64) ([]*models.Favorite, error)
}
