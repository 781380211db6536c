package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) (*DescriptionRepo, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return NewDescriptionRepo(NewFromSQL(sqlDB, "pgx")), mock
}

func TestDescriptionRepo_Get(t *testing.T) {
	repo, mock := setupTestRepo(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE rpc_error_descriptions SET hits = hits + 1`)).
		WithArgs("SOME_NEW_ERROR_X").
		WillReturnRows(sqlmock.NewRows([]string{"description"}).AddRow("Something new."))

	d, ok, err := repo.Get(ctx, "SOME_NEW_ERROR_X")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Something new.", d)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDescriptionRepo_GetMissing(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE rpc_error_descriptions`)).
		WithArgs("MISSING_X").
		WillReturnRows(sqlmock.NewRows([]string{"description"}))

	_, ok, err := repo.Get(context.Background(), "MISSING_X")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDescriptionRepo_GetError(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE rpc_error_descriptions`)).
		WillReturnError(errors.New("connection reset"))

	_, _, err := repo.Get(context.Background(), "E_X")
	assert.ErrorContains(t, err, "connection reset")
}

func TestDescriptionRepo_Set(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO rpc_error_descriptions (identifier, description) VALUES ($1, $2)`)).
		WithArgs("SOME_NEW_ERROR_X", "Something new.").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Set(context.Background(), "SOME_NEW_ERROR_X", "Something new."))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDescriptionRepo_List(t *testing.T) {
	repo, mock := setupTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT identifier, description, hits FROM rpc_error_descriptions`)).
		WillReturnRows(sqlmock.NewRows([]string{"identifier", "description", "hits"}).
			AddRow("A_X", "First.", 3).
			AddRow("B_X", "Second.", 0))

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Description{
		{Identifier: "A_X", Description: "First.", Hits: 3},
		{Identifier: "B_X", Description: "Second.", Hits: 0},
	}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_Health(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectPing()
	assert.NoError(t, NewFromSQL(sqlDB, "pgx").Health(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
