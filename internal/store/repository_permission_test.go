package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/models"
)

func newTestPermissionRepo(t *testing.T) (*permissionRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &permissionRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSavePermission_UpsertsState(t *testing.T) {
	repo, mock, db := newTestPermissionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv").
		WithArgs(permissionKey, "granted").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SavePermission(context.Background(), models.PermissionGranted)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPermission_ReturnsStoredState(t *testing.T) {
	repo, mock, db := newTestPermissionRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow("denied")
	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs(permissionKey).
		WillReturnRows(rows)

	state, err := repo.Permission(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.PermissionDenied, state)
}

func TestPermission_NeverAsked(t *testing.T) {
	repo, mock, db := newTestPermissionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs(permissionKey).
		WillReturnError(sql.ErrNoRows)

	state, err := repo.Permission(context.Background())

	// отсутствие записи читается как "default", не как ошибка
	require.NoError(t, err)
	assert.Equal(t, models.PermissionDefault, state)
	assert.False(t, state.Granted())
}
