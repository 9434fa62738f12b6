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

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sessionRepository) SaveSession(ctx context.Context, s models.Session) error {
	query, args, err := sq.Insert("session").
		Columns("id", "user_id", "token", "saved_at").
		Values(1, s.UserID, s.Token, s.SavedAt).
		Suffix("ON CONFLICT(id) DO UPDATE SET user_id = excluded.user_id, token = excluded.token, saved_at = excluded.saved_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build session upsert: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Msg("failed to cache session")
		return fmt.Errorf("failed to cache session: %w", err)
	}

	return nil
}

func (r *sessionRepository) Session(ctx context.Context) (models.Session, error) {
	query, args, err := sq.Select("user_id", "token", "saved_at").
		From("session").
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("build session select: %w", err)
	}

	var s models.Session
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&s.UserID, &s.Token, &s.SavedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrLocalSessionNotFound
		}
		r.logger.Err(err).
			Str("func", "sessionRepository.Session").
			Msg("failed to read cached session")
		return models.Session{}, fmt.Errorf("failed to read cached session: %w", err)
	}

	return s, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	query, args, err := sq.Delete("session").Where(sq.Eq{"id": 1}).ToSql()
	if err != nil {
		return fmt.Errorf("build session delete: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.DeleteSession").
			Msg("failed to delete cached session")
		return fmt.Errorf("failed to delete cached session: %w", err)
	}

	return nil
}
