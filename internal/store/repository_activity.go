package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/models"
)

// activityKey is the key-value slot holding the last-interaction
// timestamp, stored as milliseconds since epoch. The key name is kept
// compatible with the records written by the web client.
const activityKey = "lastActivity"

type activityRepository struct {
	*DB
	logger *logger.Logger
}

func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	return &activityRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *activityRepository) RecordActivity(ctx context.Context, at time.Time) error {
	query, args, err := sq.Insert("kv").
		Columns("key", "value").
		Values(activityKey, strconv.FormatInt(at.UnixMilli(), 10)).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("build activity upsert: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "activityRepository.RecordActivity").
			Msg("failed to persist activity timestamp")
		return fmt.Errorf("failed to persist activity timestamp: %w", err)
	}

	return nil
}

func (r *activityRepository) LastActivity(ctx context.Context) (models.ActivityRecord, error) {
	query, args, err := sq.Select("value").
		From("kv").
		Where(sq.Eq{"key": activityKey}).
		ToSql()
	if err != nil {
		return models.ActivityRecord{}, fmt.Errorf("build activity select: %w", err)
	}

	var raw string
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// never recorded - a valid state, not an error
			return models.ActivityRecord{}, nil
		}
		r.logger.Err(err).
			Str("func", "activityRepository.LastActivity").
			Msg("failed to read activity timestamp")
		return models.ActivityRecord{}, fmt.Errorf("failed to read activity timestamp: %w", err)
	}

	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return models.ActivityRecord{}, fmt.Errorf("corrupt activity timestamp %q: %w", raw, err)
	}

	return models.ActivityRecord{
		LastActivityAt: time.UnixMilli(ms),
		Known:          true,
	}, nil
}
