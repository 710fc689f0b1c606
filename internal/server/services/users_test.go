package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/melodia/internal/common"
	"github.com/dmitrijs2005/melodia/internal/dbx"
	"github.com/dmitrijs2005/melodia/internal/server/auth"
	"github.com/dmitrijs2005/melodia/internal/server/config"
	"github.com/dmitrijs2005/melodia/internal/server/models"
	"github.com/dmitrijs2005/melodia/internal/server/repositories/favorites"
	"github.com/dmitrijs2005/melodia/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/melodia/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- helpers ---

func testConfig() *config.Config {
	return &config.Config{SecretKey: "k", BcryptCost: bcrypt.MinCost}
}

type fakeUsersRepo struct {
	createErr error
	getOut    *models.User
	getErr    error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = "u-1"
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(context.Context, string) (*models.User, error) {
	return f.getOut, f.getErr
}

func (f *fakeUsersRepo) GetUserByID(context.Context, string) (*models.User, error) {
	return f.getOut, f.getErr
}

type fakeRM struct {
	users     users.Repository
	favorites favorites.Repository
}

func (f *fakeRM) RunMigrations(context.Context, *sql.DB) error { return nil }
func (f *fakeRM) Users(dbx.DBTX) users.Repository             { return f.users }
func (f *fakeRM) Favorites(dbx.DBTX) favorites.Repository     { return f.favorites }

// --- tests ---

func TestUserService_RegisterThenLogin(t *testing.T) {
	s := NewUserService(nil, repomanager.NewMemoryRepositoryManager(), testConfig())
	ctx := context.Background()

	u, err := s.Register(ctx, "Ana", "ana@x.com", "abc123")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "abc123", u.PasswordHash)
	assert.NoError(t, auth.ComparePasswordAndHash("abc123", u.PasswordHash))

	res, err := s.Login(ctx, "ana@x.com", "abc123")
	require.NoError(t, err)
	assert.Equal(t, models.PublicUser{ID: u.ID, Name: "Ana", Email: "ana@x.com"}, res.User)

	claims, err := s.VerifyToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "ana@x.com", claims.Email)

	got, err := s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
}

func TestUserService_LoginWrongPassword(t *testing.T) {
	s := NewUserService(nil, repomanager.NewMemoryRepositoryManager(), testConfig())
	ctx := context.Background()

	_, err := s.Register(ctx, "Ana", "ana@x.com", "abc123")
	require.NoError(t, err)

	for _, pw := range []string{"abc124", "", "ABC123"} {
		_, err = s.Login(ctx, "ana@x.com", pw)
		assert.ErrorIs(t, err, common.ErrorUnauthorized, "password %q", pw)
	}
}

func TestUserService_LoginUnknownEmail(t *testing.T) {
	s := NewUserService(nil, repomanager.NewMemoryRepositoryManager(), testConfig())

	_, err := s.Login(context.Background(), "ghost@x.com", "x")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUserService_LoginStoreErrorIsNotFound(t *testing.T) {
	rm := &fakeRM{users: &fakeUsersRepo{getErr: errors.New("db error: conn refused")}}
	s := NewUserService(nil, rm, testConfig())

	_, err := s.Login(context.Background(), "ana@x.com", "x")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUserService_LoginCorruptHashIsUnauthorized(t *testing.T) {
	rm := &fakeRM{users: &fakeUsersRepo{getOut: &models.User{ID: "u-1", Email: "a@x.com", PasswordHash: "not-bcrypt"}}}
	s := NewUserService(nil, rm, testConfig())

	_, err := s.Login(context.Background(), "a@x.com", "x")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestUserService_LoginTokenHonorsValidity(t *testing.T) {
	cfg := testConfig()
	cfg.AccessTokenValidityDuration = time.Hour
	s := NewUserService(nil, repomanager.NewMemoryRepositoryManager(), cfg)
	ctx := context.Background()

	_, err := s.Register(ctx, "Ana", "ana@x.com", "abc123")
	require.NoError(t, err)
	res, err := s.Login(ctx, "ana@x.com", "abc123")
	require.NoError(t, err)

	claims, err := s.VerifyToken(res.Token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
}

func TestUserService_RegisterErrors(t *testing.T) {
	t.Run("empty password is a validation error", func(t *testing.T) {
		s := NewUserService(nil, repomanager.NewMemoryRepositoryManager(), testConfig())
		_, err := s.Register(context.Background(), "Ana", "ana@x.com", "")
		assert.ErrorIs(t, err, common.ErrorValidation)
	})

	t.Run("hash failure is internal", func(t *testing.T) {
		s := NewUserService(nil, repomanager.NewMemoryRepositoryManager(), testConfig())
		_, err := s.Register(context.Background(), "Ana", "ana@x.com", strings.Repeat("a", 100))
		assert.ErrorIs(t, err, common.ErrorInternal)
	})

	t.Run("store error passes through", func(t *testing.T) {
		storeErr := errors.New("db error: boom")
		s := NewUserService(nil, &fakeRM{users: &fakeUsersRepo{createErr: storeErr}}, testConfig())
		_, err := s.Register(context.Background(), "Ana", "ana@x.com", "abc123")
		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, common.ErrorInternal)
	})

	t.Run("missing name rejected by store", func(t *testing.T) {
		s := NewUserService(nil, repomanager.NewMemoryRepositoryManager(), testConfig())
		_, err := s.Register(context.Background(), "", "ana@x.com", "abc123")
		assert.ErrorContains(t, err, "not-null")
	})
}

func TestUserService_GetUserNotFound(t *testing.T) {
	rm := &fakeRM{users: &fakeUsersRepo{getErr: common.ErrorNotFound}}
	s := NewUserService(nil, rm, testConfig())

	_, err := s.GetUser(context.Background(), "u-1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
