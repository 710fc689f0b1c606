package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/melodia/internal/common"
	"github.com/dmitrijs2005/melodia/internal/dbx"
	"github.com/dmitrijs2005/melodia/internal/server/config"
	"github.com/dmitrijs2005/melodia/internal/server/models"
	"github.com/dmitrijs2005/melodia/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// FavoriteService manages a user's favorite music items.
//
// Every method takes the authenticated caller (actorID) and the user the
// request addresses (userID). Unless ownership enforcement is on, any
// authenticated caller may act on any user's list.
type FavoriteService struct {
	db               *sql.DB
	repomanager      repomanager.RepositoryManager
	enforceOwnership bool
}

func NewFavoriteService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *FavoriteService {
	return &FavoriteService{db: db, repomanager: m, enforceOwnership: cfg.EnforceOwnership}
}

func (s *FavoriteService) List(ctx context.Context, actorID, userID string) ([]*models.Favorite, error) {
	if err := s.authorize(actorID, userID); err != nil {
		return nil, err
	}
	return s.repomanager.Favorites(handle(s.db)).List(ctx, userID)
}

func (s *FavoriteService) Add(ctx context.Context, actorID, userID string, musicID int64) (*models.Favorite, error) {
	if err := s.authorize(actorID, userID); err != nil {
		return nil, err
	}
	return s.repomanager.Favorites(handle(s.db)).Add(ctx, userID, musicID)
}

func (s *FavoriteService) Remove(ctx context.Context, actorID, userID string, musicID int64) ([]*models.Favorite, error) {
	if err := s.authorize(actorID, userID); err != nil {
		return nil, err
	}
	return s.repomanager.Favorites(handle(s.db)).Remove(ctx, userID, musicID)
}

func (s *FavoriteService) authorize(actorID, userID string) error {
	if s.enforceOwnership && !sameUser(actorID, userID) {
		return common.ErrorForbidden
	}
	return nil
}

// sameUser compares ids as UUIDs, so case and formatting do not matter.
// Ids that do not parse fall back to plain string equality.
func sameUser(a, b string) bool {
	ua, errA := uuid.Parse(a)
	ub, errB := uuid.Parse(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return ua == ub
}

// handle avoids handing repositories a typed nil *sql.DB inside a dbx.DBTX.
func handle(db *sql.DB) dbx.DBTX {
	if db == nil {
		return nil
	}
	return db
}
