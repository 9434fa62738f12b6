package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/memvault/memvault/internal/adapter"
	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/internal/mock"
	"github.com/memvault/memvault/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 4, 5, 0, time.UTC)
}

func TestStreakService_Current_NoRecordYet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mock.NewMockBackendAdapter(ctrl)
	svc := NewStreakService(backend, logger.Nop())
	ctx := context.Background()

	backend.EXPECT().Streak(ctx, "user-1").Return(models.Streak{}, adapter.ErrNotFound)

	got, err := svc.Current(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.Streak{UserID: "user-1"}, got)
}

func TestStreakService_RecordEntry(t *testing.T) {
	tests := []struct {
		name     string
		existing models.Streak
		entryDay time.Time
		want     models.Streak
	}{
		{
			name:     "first ever entry",
			existing: models.Streak{UserID: "user-1"},
			entryDay: day(2026, 3, 14),
			want: models.Streak{
				UserID:          "user-1",
				CurrentStreak:   1,
				LongestStreak:   1,
				TotalPoints:     10,
				LastJournalDate: "2026-03-14",
			},
		},
		{
			name: "consecutive day extends streak",
			existing: models.Streak{
				UserID: "user-1", CurrentStreak: 3, LongestStreak: 5,
				TotalPoints: 300, LastJournalDate: "2026-03-13",
			},
			entryDay: day(2026, 3, 14),
			want: models.Streak{
				UserID: "user-1", CurrentStreak: 4, LongestStreak: 5,
				TotalPoints: 310, LastJournalDate: "2026-03-14",
			},
		},
		{
			name: "gap resets streak",
			existing: models.Streak{
				UserID: "user-1", CurrentStreak: 7, LongestStreak: 7,
				TotalPoints: 700, LastJournalDate: "2026-03-10",
			},
			entryDay: day(2026, 3, 14),
			want: models.Streak{
				UserID: "user-1", CurrentStreak: 1, LongestStreak: 7,
				TotalPoints: 710, LastJournalDate: "2026-03-14",
			},
		},
		{
			name: "same day keeps streak, adds points",
			existing: models.Streak{
				UserID: "user-1", CurrentStreak: 4, LongestStreak: 5,
				TotalPoints: 400, LastJournalDate: "2026-03-14",
			},
			entryDay: day(2026, 3, 14),
			want: models.Streak{
				UserID: "user-1", CurrentStreak: 4, LongestStreak: 5,
				TotalPoints: 410, LastJournalDate: "2026-03-14",
			},
		},
		{
			name: "new record updates longest",
			existing: models.Streak{
				UserID: "user-1", CurrentStreak: 5, LongestStreak: 5,
				TotalPoints: 500, LastJournalDate: "2026-03-13",
			},
			entryDay: day(2026, 3, 14),
			want: models.Streak{
				UserID: "user-1", CurrentStreak: 6, LongestStreak: 6,
				TotalPoints: 510, LastJournalDate: "2026-03-14",
			},
		},
		{
			name: "corrupt stored date treated as gap",
			existing: models.Streak{
				UserID: "user-1", CurrentStreak: 9, LongestStreak: 9,
				TotalPoints: 900, LastJournalDate: "yesterday-ish",
			},
			entryDay: day(2026, 3, 14),
			want: models.Streak{
				UserID: "user-1", CurrentStreak: 1, LongestStreak: 9,
				TotalPoints: 910, LastJournalDate: "2026-03-14",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			backend := mock.NewMockBackendAdapter(ctrl)
			svc := NewStreakService(backend, logger.Nop())
			ctx := context.Background()

			backend.EXPECT().Streak(ctx, "user-1").Return(tt.existing, nil)
			backend.EXPECT().SaveStreak(ctx, tt.want).Return(nil)

			got, err := svc.RecordEntry(ctx, "user-1", tt.entryDay)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStreakService_RecordEntry_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mock.NewMockBackendAdapter(ctrl)
	svc := NewStreakService(backend, logger.Nop())
	ctx := context.Background()

	backend.EXPECT().Streak(ctx, "user-1").Return(models.Streak{UserID: "user-1"}, nil)
	backend.EXPECT().SaveStreak(ctx, gomock.Any()).Return(errors.New("backend down"))

	_, err := svc.RecordEntry(ctx, "user-1", day(2026, 3, 14))
	assert.Error(t, err)
}
