package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/models"
)

func newTestReminderRepo(t *testing.T) (*eventReminderRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &eventReminderRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSaveReminder_Upserts(t *testing.T) {
	repo, mock, db := newTestReminderRepo(t)
	defer db.Close()

	fireAt := time.Date(2026, 9, 1, 18, 30, 0, 0, time.UTC)
	reminder := models.EventReminder{
		ID:         "rem-1",
		EventID:    "evt-1",
		EventTitle: "Dentist",
		FireAt:     fireAt,
	}

	mock.ExpectExec("INSERT INTO event_reminders").
		WithArgs(reminder.ID, reminder.EventID, reminder.EventTitle, fireAt, false).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveReminder(context.Background(), reminder)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNextPending_ReturnsEarliest(t *testing.T) {
	repo, mock, db := newTestReminderRepo(t)
	defer db.Close()

	fireAt := time.Date(2026, 9, 1, 18, 30, 0, 0, time.UTC)
	rows := sqlmock.
		NewRows([]string{"id", "event_id", "event_title", "fire_at", "delivered"}).
		AddRow("rem-1", "evt-1", "Dentist", fireAt, false)

	mock.ExpectQuery("SELECT id, event_id, event_title, fire_at, delivered FROM event_reminders").
		WithArgs(false).
		WillReturnRows(rows)

	reminder, err := repo.NextPending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "rem-1", reminder.ID)
	assert.Equal(t, fireAt, reminder.FireAt)
	assert.False(t, reminder.Delivered)
}

func TestNextPending_NonePending(t *testing.T) {
	repo, mock, db := newTestReminderRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, event_id, event_title, fire_at, delivered FROM event_reminders").
		WithArgs(false).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.NextPending(context.Background())

	assert.ErrorIs(t, err, ErrNoPendingReminders)
}

func TestMarkDelivered(t *testing.T) {
	repo, mock, db := newTestReminderRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE event_reminders").
		WithArgs(true, "rem-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkDelivered(context.Background(), "rem-1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByEvent(t *testing.T) {
	repo, mock, db := newTestReminderRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM event_reminders").
		WithArgs("evt-1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.DeleteByEvent(context.Background(), "evt-1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
