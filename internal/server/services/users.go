// Package services contains server-side business logic sitting between the
// HTTP handlers and the repositories. Each operation performs exactly one
// repository call.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/melodia/internal/common"
	"github.com/dmitrijs2005/melodia/internal/dbx"
	"github.com/dmitrijs2005/melodia/internal/server/auth"
	"github.com/dmitrijs2005/melodia/internal/server/config"
	"github.com/dmitrijs2005/melodia/internal/server/models"
	"github.com/dmitrijs2005/melodia/internal/server/repositories/repomanager"
)

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// UserService handles registration, login and identity lookups.
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
}

// NewUserService constructs a UserService using repositories and server config.
// db may be nil when m does not need a connection.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  cfg.BcryptCost,
	}
}

// Register hashes the password and stores a new user.
// Store failures are returned as is; hashing failures other than a missing
// password are reported as common.ErrorInternal.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	user := &models.User{Name: name, Email: email, PasswordHash: hash}
	return s.repomanager.Users(s.dbtx()).Create(ctx, user)
}

// Login looks the user up by email, checks the password and issues a token.
// Any lookup failure yields common.ErrorNotFound and any password check
// failure common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.repomanager.Users(s.dbtx()).GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorNotFound, err)
	}

	if err := auth.ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorUnauthorized, err)
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	return &LoginResult{Token: token, User: user.Public()}, nil
}

// GetUser returns the user with the given id.
func (s *UserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.repomanager.Users(s.dbtx()).GetUserByID(ctx, userID)
}

// VerifyToken checks a bearer token against the signing secret.
func (s *UserService) VerifyToken(token string) (*auth.Claims, error) {
	return auth.ParseToken(token, s.jwtSecret)
}

func (s *UserService) dbtx() dbx.DBTX { return handle(s.db) }
