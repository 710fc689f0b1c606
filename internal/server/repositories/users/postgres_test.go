package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/melodia/internal/common"
	"github.com/dmitrijs2005/melodia/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertQ  = `^INSERT INTO users \(nome, email, senha\)\s+VALUES \(\$1, \$2, \$3\)\s+RETURNING id, created_at$`
	byEmailQ = `^SELECT id, nome, email, senha, created_at FROM users\s+WHERE email = \$1\s+LIMIT 2$`
	byIDQ    = `^SELECT id, nome, email, senha, created_at FROM users\s+WHERE id = \$1$`
)

var userCols = []string{"id", "nome", "email", "senha", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(insertQ).
		WithArgs("Ana", "ana@x.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("u-1", now))

	got, err := repo.Create(context.Background(), &models.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "hash"})
	require.NoError(t, err)

	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, now, got.CreatedAt)
	assert.Equal(t, "Ana", got.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_EmptyFieldsSentAsNull(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertQ).
		WithArgs(nil, "ana@x.com", "hash").
		WillReturnError(errors.New(`null value in column "nome" of relation "users" violates not-null constraint`))

	_, err := repo.Create(context.Background(), &models.User{Email: "ana@x.com", PasswordHash: "hash"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-null constraint")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(insertQ).
		WithArgs("Ana", "ana@x.com", "hash").
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "hash"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetUserByEmail_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(byEmailQ).
		WithArgs("ana@x.com").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow("u-1", "Ana", "ana@x.com", "hash", time.Now()))

	got, err := repo.GetUserByEmail(context.Background(), "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, "hash", got.PasswordHash)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(byEmailQ).
		WithArgs("ghost@x.com").
		WillReturnRows(sqlmock.NewRows(userCols))

	_, err := repo.GetUserByEmail(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetUserByEmail_Ambiguous(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(byEmailQ).
		WithArgs("ana@x.com").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow("u-1", "Ana", "ana@x.com", "h1", time.Now()).
			AddRow("u-2", "Ana B", "ana@x.com", "h2", time.Now()))

	_, err := repo.GetUserByEmail(context.Background(), "ana@x.com")
	assert.ErrorIs(t, err, ErrorAmbiguousEmail)
}

func TestGetUserByEmail_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(byEmailQ).
		WithArgs("ana@x.com").
		WillReturnError(errors.New("db err"))

	_, err := repo.GetUserByEmail(context.Background(), "ana@x.com")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetUserByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(byIDQ).
			WithArgs("u-1").
			WillReturnRows(sqlmock.NewRows(userCols).AddRow("u-1", "Ana", "ana@x.com", "hash", time.Now()))

		got, err := repo.GetUserByID(context.Background(), "u-1")
		require.NoError(t, err)
		assert.Equal(t, "ana@x.com", got.Email)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(byIDQ).WithArgs("u-9").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetUserByID(context.Background(), "u-9")
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(byIDQ).WithArgs("nope").WillReturnError(errors.New(`invalid input syntax for type uuid: "nope"`))

		_, err := repo.GetUserByID(context.Background(), "nope")
		require.Error(t, err)
		assert.NotErrorIs(t, err, common.ErrorNotFound)
		assert.Contains(t, err.Error(), "invalid input syntax")
	})
}
