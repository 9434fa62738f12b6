package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/memvault/memvault/internal/adapter"
	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/models"
)

// streakDateLayout is the calendar-day format of Streak.LastJournalDate.
const streakDateLayout = "2006-01-02"

// streakPointsPerEntry is awarded for every journal entry, including
// repeat entries on the same day.
const streakPointsPerEntry = 10

type streakService struct {
	adapter adapter.BackendAdapter
	logger  *logger.Logger
}

func NewStreakService(backend adapter.BackendAdapter, log *logger.Logger) StreakService {
	return &streakService{adapter: backend, logger: log}
}

// Current implements StreakService.
func (s *streakService) Current(ctx context.Context, userID string) (models.Streak, error) {
	if userID == "" {
		return models.Streak{}, ErrValidationNoUserID
	}

	streak, err := s.adapter.Streak(ctx, userID)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return models.Streak{UserID: userID}, nil
		}
		return models.Streak{}, fmt.Errorf("fetch streak: %w", err)
	}
	return streak, nil
}

// RecordEntry implements StreakService. An entry on the day after the last
// one extends the streak; any longer gap resets it to 1; a repeat entry on
// the same day only adds points. A stored date that does not parse is
// treated as a gap rather than an error, so one corrupt record cannot
// block journaling.
func (s *streakService) RecordEntry(ctx context.Context, userID string, entryDay time.Time) (models.Streak, error) {
	streak, err := s.Current(ctx, userID)
	if err != nil {
		return models.Streak{}, err
	}

	day := entryDay.Format(streakDateLayout)

	switch {
	case streak.LastJournalDate == day:
		// Same-day repeat entry; the streak stands.
	case s.isYesterday(streak.LastJournalDate, entryDay):
		streak.CurrentStreak++
	default:
		streak.CurrentStreak = 1
	}

	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}

	streak.UserID = userID
	streak.TotalPoints += streakPointsPerEntry
	streak.LastJournalDate = day

	if err := s.adapter.SaveStreak(ctx, streak); err != nil {
		return models.Streak{}, fmt.Errorf("save streak: %w", err)
	}
	return streak, nil
}

func (s *streakService) isYesterday(stored string, entryDay time.Time) bool {
	if stored == "" {
		return false
	}
	if _, err := time.Parse(streakDateLayout, stored); err != nil {
		s.logger.Warn().
			Str("last_journal_date", stored).
			Msg("unparseable streak date, treating as gap")
		return false
	}
	return stored == entryDay.AddDate(0, 0, -1).Format(streakDateLayout)
}
