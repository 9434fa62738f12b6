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

// permissionKey is the key-value slot holding the desktop-notification
// permission state.
const permissionKey = "notificationPermission"

type permissionRepository struct {
	*DB
	logger *logger.Logger
}

func NewPermissionRepository(db *DB, logger *logger.Logger) PermissionRepository {
	return &permissionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *permissionRepository) SavePermission(ctx context.Context, state models.PermissionState) error {
	query, args, err := sq.Insert("kv").
		Columns("key", "value").
		Values(permissionKey, string(state)).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("build permission upsert: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "permissionRepository.SavePermission").
			Msg("failed to persist permission state")
		return fmt.Errorf("failed to persist permission state: %w", err)
	}

	return nil
}

func (r *permissionRepository) Permission(ctx context.Context) (models.PermissionState, error) {
	query, args, err := sq.Select("value").
		From("kv").
		Where(sq.Eq{"key": permissionKey}).
		ToSql()
	if err != nil {
		return models.PermissionDefault, fmt.Errorf("build permission select: %w", err)
	}

	var value string
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PermissionDefault, nil
		}
		r.logger.Err(err).
			Str("func", "permissionRepository.Permission").
			Msg("failed to read permission state")
		return models.PermissionDefault, fmt.Errorf("failed to read permission state: %w", err)
	}

	return models.PermissionState(value), nil
}
