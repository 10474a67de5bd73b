package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/models"
)

func newMockUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	return NewUserRepository(db, logger.Nop()), mock
}

func TestUserRepository_CreateUser(t *testing.T) {
	repo, mock := newMockUserRepo(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO users (login,password_hash,name) VALUES ($1,$2,$3) "+
			"RETURNING user_id, login, password_hash, name, created_at",
	)).
		WithArgs("mika", "hash", "Mika").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "login", "password_hash", "name", "created_at"}).
			AddRow(int64(3), "mika", "hash", "Mika", created))

	user, err := repo.CreateUser(context.Background(), models.User{Login: "mika", PasswordHash: "hash", Name: "Mika"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, user.UserID)
	assert.Equal(t, "mika", user.Login)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_DuplicateLogin(t *testing.T) {
	repo, mock := newMockUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.CreateUser(context.Background(), models.User{Login: "mika", PasswordHash: "hash"})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestUserRepository_FindUserByLogin_NotFound(t *testing.T) {
	repo, mock := newMockUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT user_id, login, password_hash, name, created_at FROM users WHERE login = $1",
	)).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "login", "password_hash", "name", "created_at"}))

	_, err := repo.FindUserByLogin(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}
