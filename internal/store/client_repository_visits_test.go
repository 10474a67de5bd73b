package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meguri-app/meguri/internal/auth"
	"github.com/meguri-app/meguri/internal/logger"
	"github.com/meguri-app/meguri/models"
)

func newMockLocalStore(t *testing.T) (LocalVisitStore, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	return NewLocalVisitRepository(db, logger.Nop()), mock
}

func TestLocalVisitRepository_GetAll(t *testing.T) {
	repo, mock := newMockLocalStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT shrine_id")).
		WillReturnRows(sqlmock.NewRows([]string{"shrine_id"}).
			AddRow(int64(3)).
			AddRow(int64(7)).
			AddRow(int64(42)))

	ids, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 7, 42}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalVisitRepository_AddAndRemove(t *testing.T) {
	repo, mock := newMockLocalStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO visits")).
		WithArgs(int64(7), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM visits")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Add(context.Background(), 7))
	require.NoError(t, repo.Remove(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalVisitRepository_Remove_Absent(t *testing.T) {
	repo, mock := newMockLocalStore(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM visits")).
		WithArgs(int64(9000)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Removing an unvisited shrine is a no-op success.
	require.NoError(t, repo.Remove(context.Background(), 9000))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalVisitRepository_PendingQueue(t *testing.T) {
	repo, mock := newMockLocalStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO pending_ops")).
		WithArgs("add", int64(7), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, action, shrine_id, created_at")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "action", "shrine_id", "created_at"}).
			AddRow(int64(11), "add", int64(7), time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM pending_ops")).
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	opID, err := repo.EnqueuePending(context.Background(), models.PendingAdd, 7)
	require.NoError(t, err)
	assert.EqualValues(t, 11, opID)

	ops, err := repo.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, models.PendingAdd, ops[0].Action)
	assert.EqualValues(t, 7, ops[0].ShrineID)

	require.NoError(t, repo.DequeuePending(context.Background(), 11))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalVisitRepository_Session(t *testing.T) {
	repo, mock := newMockLocalStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO session")).
		WithArgs(int64(5), "mika", "token-value", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, login, token")).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "login", "token"}).
			AddRow(int64(5), "mika", "token-value"))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM session")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveSession(context.Background(), 5, "mika", "token-value"))

	userID, login, token, err := repo.LoadSession(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 5, userID)
	assert.Equal(t, "mika", login)
	assert.Equal(t, "token-value", token)

	require.NoError(t, repo.ClearSession(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalVisitRepository_LoadSession_NoRow(t *testing.T) {
	repo, mock := newMockLocalStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, login, token")).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "login", "token"}))

	_, _, _, err := repo.LoadSession(context.Background())
	assert.ErrorIs(t, err, auth.ErrNoSession)
}
