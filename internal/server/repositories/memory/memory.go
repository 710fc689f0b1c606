// Package memory is an in-process stand-in for the PostgreSQL repositories.
// It reproduces the constraint errors the schema would raise so callers see
// the same failure modes without a database.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/melodia/internal/common"
	"github.com/dmitrijs2005/melodia/internal/server/models"
	"github.com/dmitrijs2005/melodia/internal/server/repositories/favorites"
	"github.com/dmitrijs2005/melodia/internal/server/repositories/users"
	"github.com/google/uuid"
)

type Store struct {
	mu        sync.RWMutex
	users     []*models.User
	favorites []*models.Favorite
	nextFavID int64
	now       func() time.Time
}

func NewStore() *Store {
	return &Store{nextFavID: 1, now: time.Now}
}

func (s *Store) Users() users.Repository { return &userRepo{s} }

func (s *Store) Favorites() favorites.Repository { return &favoriteRepo{s} }

func notNullErr(table, column string) error {
	return fmt.Errorf("db error: null value in column %q of relation %q violates not-null constraint", column, table)
}

// canonicalUUID parses v the way a uuid column would and returns its
// lowercase hyphenated form, so ids match regardless of case.
func canonicalUUID(v string) (string, error) {
	id, err := uuid.Parse(v)
	if err != nil {
		return "", fmt.Errorf("db error: invalid input syntax for type uuid: %q", v)
	}
	return id.String(), nil
}

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	switch {
	case user.Name == "":
		return nil, notNullErr("users", "nome")
	case user.Email == "":
		return nil, notNullErr("users", "email")
	case user.PasswordHash == "":
		return nil, notNullErr("users", "senha")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user.ID = uuid.NewString()
	user.CreatedAt = r.s.now()
	stored := *user
	r.s.users = append(r.s.users, &stored)

	return user, nil
}

func (r *userRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var found *models.User
	for _, u := range r.s.users {
		if u.Email != email {
			continue
		}
		if found != nil {
			return nil, users.ErrorAmbiguousEmail
		}
		found = u
	}
	if found == nil {
		return nil, common.ErrorNotFound
	}
	cp := *found
	return &cp, nil
}

func (r *userRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	id, err := canonicalUUID(id)
	if err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

type favoriteRepo struct{ s *Store }

func (r *favoriteRepo) List(_ context.Context, userID string) ([]*models.Favorite, error) {
	userID, err := canonicalUUID(userID)
	if err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*models.Favorite, 0)
	for _, f := range r.s.favorites {
		if f.UserID == userID {
			cp := *f
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *favoriteRepo) Add(_ context.Context, userID string, musicID int64) (*models.Favorite, error) {
	userID, err := canonicalUUID(userID)
	if err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.hasUserLocked(userID) {
		return nil, errors.New(`db error: insert or update on table "favorites" violates foreign key constraint "favorites_user_id_fkey"`)
	}

	f := &models.Favorite{ID: r.s.nextFavID, UserID: userID, MusicID: musicID, CreatedAt: r.s.now()}
	r.s.nextFavID++
	r.s.favorites = append(r.s.favorites, f)

	cp := *f
	return &cp, nil
}

func (r *favoriteRepo) Remove(_ context.Context, userID string, musicID int64) ([]*models.Favorite, error) {
	userID, err := canonicalUUID(userID)
	if err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	deleted := make([]*models.Favorite, 0)
	kept := r.s.favorites[:0]
	for _, f := range r.s.favorites {
		if f.UserID == userID && f.MusicID == musicID {
			deleted = append(deleted, f)
			continue
		}
		kept = append(kept, f)
	}
	r.s.favorites = kept

	return deleted, nil
}

func (s *Store) hasUserLocked(id string) bool {
	for _, u := range s.users {
		if u.ID == id {
			return true
		}
	}
	return false
}
