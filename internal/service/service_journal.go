package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/memvault/memvault/internal/adapter"
	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/models"
)

type journalService struct {
	adapter adapter.BackendAdapter
	streaks StreakService
	clock   clockwork.Clock
	logger  *logger.Logger
}

func NewJournalService(backend adapter.BackendAdapter, streaks StreakService, clock clockwork.Clock, log *logger.Logger) JournalService {
	return &journalService{
		adapter: backend,
		streaks: streaks,
		clock:   clock,
		logger:  log,
	}
}

// Create implements JournalService. The streak is updated after the entry
// is stored; a streak failure is logged but does not undo the entry.
func (j *journalService) Create(ctx context.Context, userID string, entry models.JournalEntry) (models.JournalEntry, error) {
	if userID == "" {
		return models.JournalEntry{}, ErrValidationNoUserID
	}
	if entry.Title == "" {
		return models.JournalEntry{}, ErrValidationNoTitle
	}

	entry.UserID = userID
	if entry.EntryDate == "" {
		entry.EntryDate = j.clock.Now().Format(streakDateLayout)
	}

	created, err := j.adapter.CreateJournalEntry(ctx, entry)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("create journal entry: %w", err)
	}

	entryDay, err := time.Parse(streakDateLayout, created.EntryDate)
	if err != nil {
		entryDay = j.clock.Now()
	}
	if _, err := j.streaks.RecordEntry(ctx, userID, entryDay); err != nil {
		j.logger.Err(err).
			Str("func", "journalService.Create").
			Msg("streak update failed after entry creation")
	}

	return created, nil
}

// List implements JournalService.
func (j *journalService) List(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	if userID == "" {
		return nil, ErrValidationNoUserID
	}

	entries, err := j.adapter.ListJournalEntries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	return entries, nil
}

// Update implements JournalService.
func (j *journalService) Update(ctx context.Context, entry models.JournalEntry) error {
	if entry.Title == "" {
		return ErrValidationNoTitle
	}

	if err := j.adapter.UpdateJournalEntry(ctx, entry); err != nil {
		return fmt.Errorf("update journal entry: %w", err)
	}
	return nil
}

// Delete implements JournalService.
func (j *journalService) Delete(ctx context.Context, id string) error {
	if err := j.adapter.DeleteJournalEntry(ctx, id); err != nil {
		return fmt.Errorf("delete journal entry: %w", err)
	}
	return nil
}
