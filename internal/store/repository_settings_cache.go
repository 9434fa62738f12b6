package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/models"
)

// settingsCacheRepository stores the settings record as a JSON payload: the
// cache is a verbatim copy of the backend record, not a second schema to
// keep in sync with it.
type settingsCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewSettingsCacheRepository(db *DB, logger *logger.Logger) SettingsCacheRepository {
	return &settingsCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *settingsCacheRepository) CacheSettings(ctx context.Context, s models.UserSettings) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings cache payload: %w", err)
	}

	query, args, err := sq.Insert("settings_cache").
		Columns("user_id", "payload", "cached_at").
		Values(s.UserID, string(payload), time.Now().UTC()).
		Suffix("ON CONFLICT(user_id) DO UPDATE SET payload = excluded.payload, cached_at = excluded.cached_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build settings cache upsert: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "settingsCacheRepository.CacheSettings").
			Str("user_id", s.UserID).
			Msg("failed to cache settings")
		return fmt.Errorf("failed to cache settings: %w", err)
	}

	return nil
}

func (r *settingsCacheRepository) CachedSettings(ctx context.Context, userID string) (models.UserSettings, error) {
	query, args, err := sq.Select("payload").
		From("settings_cache").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("build settings cache select: %w", err)
	}

	var payload string
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserSettings{}, ErrSettingsCacheMiss
		}
		r.logger.Err(err).
			Str("func", "settingsCacheRepository.CachedSettings").
			Str("user_id", userID).
			Msg("failed to read cached settings")
		return models.UserSettings{}, fmt.Errorf("failed to read cached settings: %w", err)
	}

	var s models.UserSettings
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return models.UserSettings{}, fmt.Errorf("decode settings cache payload: %w", err)
	}

	return s, nil
}
