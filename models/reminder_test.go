// SPDX-License-Identifier: Apache-2.0

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrequency_Valid(t *testing.T) {
	for _, f := range []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyEvery3Days, FrequencyEvery7Days, FrequencyCustom} {
		assert.True(t, f.Valid(), string(f))
	}
	assert.False(t, Frequency("fortnightly").Valid())
	assert.False(t, Frequency("").Valid())
}

func TestFrequency_IntervalDays(t *testing.T) {
	assert.Equal(t, 1, FrequencyDaily.IntervalDays(0))
	assert.Equal(t, 7, FrequencyWeekly.IntervalDays(0))
	assert.Equal(t, 3, FrequencyEvery3Days.IntervalDays(0))
	assert.Equal(t, 7, FrequencyEvery7Days.IntervalDays(0))
	assert.Equal(t, 5, FrequencyCustom.IntervalDays(5))
}

func TestReminderRule_NextOccurrence(t *testing.T) {
	at := func(d, h, min int) time.Time {
		return time.Date(2026, 3, d, h, min, 0, 0, time.UTC)
	}
	nine := TimeOfDay{Hour: 9}

	tests := []struct {
		name string
		rule ReminderRule
		now  time.Time
		want time.Time
	}{
		{
			name: "never fired, before time of day",
			rule: ReminderRule{Enabled: true, TimeOfDay: nine, Frequency: FrequencyDaily},
			now:  at(14, 7, 30),
			want: at(14, 9, 0),
		},
		{
			name: "never fired, after time of day",
			rule: ReminderRule{Enabled: true, TimeOfDay: nine, Frequency: FrequencyDaily},
			now:  at(14, 20, 0),
			want: at(15, 9, 0),
		},
		{
			// дневное правило уже сработало сегодня: повторное открытие
			// клиента не должно взводить второй таймер на тот же день
			name: "daily fired this morning, reopened same day",
			rule: ReminderRule{
				Enabled: true, TimeOfDay: nine, Frequency: FrequencyDaily,
				LastFiredAt: timePtr(at(14, 9, 0)),
			},
			now:  at(14, 15, 0),
			want: at(15, 9, 0),
		},
		{
			name: "custom 3-day interval anchors on last fire",
			rule: ReminderRule{
				Enabled: true, TimeOfDay: nine, Frequency: FrequencyCustom,
				CustomIntervalDays: 3,
				LastFiredAt:        timePtr(at(14, 9, 0)),
			},
			now:  at(15, 10, 0),
			want: at(17, 9, 0),
		},
		{
			name: "missed occurrences are skipped, not replayed",
			rule: ReminderRule{
				Enabled: true, TimeOfDay: nine, Frequency: FrequencyDaily,
				LastFiredAt: timePtr(at(1, 9, 0)),
			},
			now:  at(14, 20, 0),
			want: at(15, 9, 0),
		},
		{
			name: "weekly anchors a full week after last fire",
			rule: ReminderRule{
				Enabled: true, TimeOfDay: nine, Frequency: FrequencyWeekly,
				LastFiredAt: timePtr(at(14, 9, 0)),
			},
			now:  at(15, 8, 0),
			want: at(21, 9, 0),
		},
		{
			name: "custom interval below one clamps to daily",
			rule: ReminderRule{
				Enabled: true, TimeOfDay: nine, Frequency: FrequencyCustom,
				CustomIntervalDays: 0,
				LastFiredAt:        timePtr(at(14, 9, 0)),
			},
			now:  at(14, 10, 0),
			want: at(15, 9, 0),
		},
		{
			// после долгого перерыва ждать решётку интервала не нужно:
			// берётся ближайшее время суток
			name: "long gap resumes at next wall-clock occurrence",
			rule: ReminderRule{
				Enabled: true, TimeOfDay: nine, Frequency: FrequencyEvery3Days,
				LastFiredAt: timePtr(at(1, 9, 0)),
			},
			now:  at(14, 20, 0),
			want: at(15, 9, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.NextOccurrence(tt.now))
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }
