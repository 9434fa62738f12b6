package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/models"
)

type eventReminderRepository struct {
	*DB
	logger *logger.Logger
}

func NewEventReminderRepository(db *DB, logger *logger.Logger) EventReminderRepository {
	return &eventReminderRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *eventReminderRepository) SaveReminder(ctx context.Context, reminder models.EventReminder) error {
	query, args, err := sq.Insert("event_reminders").
		Columns("id", "event_id", "event_title", "fire_at", "delivered").
		Values(reminder.ID, reminder.EventID, reminder.EventTitle, reminder.FireAt, reminder.Delivered).
		Suffix("ON CONFLICT(id) DO UPDATE SET event_title = excluded.event_title, fire_at = excluded.fire_at, delivered = excluded.delivered").
		ToSql()
	if err != nil {
		return fmt.Errorf("build reminder upsert: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "eventReminderRepository.SaveReminder").
			Str("reminder_id", reminder.ID).
			Msg("failed to save event reminder")
		return fmt.Errorf("failed to save event reminder: %w", err)
	}

	return nil
}

func (r *eventReminderRepository) NextPending(ctx context.Context) (models.EventReminder, error) {
	query, args, err := sq.Select("id", "event_id", "event_title", "fire_at", "delivered").
		From("event_reminders").
		Where(sq.Eq{"delivered": false}).
		OrderBy("fire_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.EventReminder{}, fmt.Errorf("build pending reminder select: %w", err)
	}

	var reminder models.EventReminder
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&reminder.ID,
		&reminder.EventID,
		&reminder.EventTitle,
		&reminder.FireAt,
		&reminder.Delivered,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EventReminder{}, ErrNoPendingReminders
		}
		r.logger.Err(err).
			Str("func", "eventReminderRepository.NextPending").
			Msg("failed to query pending reminders")
		return models.EventReminder{}, fmt.Errorf("failed to query pending reminders: %w", err)
	}

	return reminder, nil
}

func (r *eventReminderRepository) MarkDelivered(ctx context.Context, id string) error {
	query, args, err := sq.Update("event_reminders").
		Set("delivered", true).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build reminder update: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "eventReminderRepository.MarkDelivered").
			Str("reminder_id", id).
			Msg("failed to mark reminder delivered")
		return fmt.Errorf("failed to mark reminder delivered: %w", err)
	}

	return nil
}

func (r *eventReminderRepository) DeleteByEvent(ctx context.Context, eventID string) error {
	query, args, err := sq.Delete("event_reminders").
		Where(sq.Eq{"event_id": eventID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build reminder delete: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "eventReminderRepository.DeleteByEvent").
			Str("event_id", eventID).
			Msg("failed to delete event reminders")
		return fmt.Errorf("failed to delete event reminders: %w", err)
	}

	return nil
}
