// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/models"
)

// spyDispatcher считает доставки и сигналит о каждой в канал.
type spyDispatcher struct {
	mu     sync.Mutex
	titles []string
	fired  chan string
}

func newSpyDispatcher() *spyDispatcher {
	return &spyDispatcher{fired: make(chan string, 16)}
}

func (d *spyDispatcher) Dispatch(_ context.Context, title, _ string) {
	d.mu.Lock()
	d.titles = append(d.titles, title)
	d.mu.Unlock()

	select {
	case d.fired <- title:
	default:
	}
}

func (d *spyDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.titles)
}

func (d *spyDispatcher) waitFired(t *testing.T) string {
	t.Helper()
	select {
	case title := <-d.fired:
		return title
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher was not called in time")
		return ""
	}
}

// schedBase — суббота, 14 марта 2026, 20:00 UTC.
var schedBase = time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)

func dailySettings(timeOfDay string) models.UserSettings {
	return models.UserSettings{
		UserID:                "user-1",
		NotificationEnabled:   true,
		NotificationTime:      timeOfDay,
		NotificationFrequency: models.FrequencyDaily,
	}
}

func TestReminderScheduler_Start_ArmsNextOccurrence(t *testing.T) {
	settings := &stubSettingsService{settings: dailySettings("09:00")}
	clock := clockwork.NewFakeClockAt(schedBase)
	sched := NewReminderScheduler(settings, newSpyDispatcher(), clock, logger.Nop())
	defer sched.Stop()

	sched.Start(context.Background(), "user-1")

	next, armed := sched.NextFireAt()
	require.True(t, armed)
	assert.Equal(t, time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC), next)
}

func TestReminderScheduler_FireDispatchesAndRearms(t *testing.T) {
	settings := &stubSettingsService{settings: dailySettings("09:00")}
	dispatcher := newSpyDispatcher()
	clock := clockwork.NewFakeClockAt(schedBase)
	sched := NewReminderScheduler(settings, dispatcher, clock, logger.Nop())
	defer sched.Stop()

	sched.Start(context.Background(), "user-1")
	clock.BlockUntil(1)

	firstFire := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	clock.Advance(firstFire.Sub(schedBase))

	assert.Equal(t, reminderTitle, dispatcher.waitFired(t))

	// после доставки взводится следующее срабатывание
	clock.BlockUntil(1)

	notified := settings.notifiedAt()
	require.Len(t, notified, 1)
	assert.Equal(t, firstFire, notified[0])

	next, armed := sched.NextFireAt()
	require.True(t, armed)
	assert.Equal(t, firstFire.AddDate(0, 0, 1), next)
}

func TestReminderScheduler_SameDayRearmSkipsToNextInterval(t *testing.T) {
	// напоминание уже сработало сегодня в 09:00; повторный Start в 20:00
	// не должен взводить таймер на прошедшее время
	lastFired := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	s := dailySettings("09:00")
	s.LastNotifiedAt = &lastFired

	settings := &stubSettingsService{settings: s}
	clock := clockwork.NewFakeClockAt(schedBase)
	sched := NewReminderScheduler(settings, newSpyDispatcher(), clock, logger.Nop())
	defer sched.Stop()

	sched.Start(context.Background(), "user-1")

	next, armed := sched.NextFireAt()
	require.True(t, armed)
	assert.Equal(t, lastFired.AddDate(0, 0, 1), next)
}

func TestReminderScheduler_CustomIntervalAnchorsOnLastFire(t *testing.T) {
	// правило "каждые 3 дня", последний раз сработало 14-го; клиент
	// открыт 15-го — следующее срабатывание 17-го, а не 18-го
	lastFired := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	interval := 3
	s := models.UserSettings{
		UserID:                "user-1",
		NotificationEnabled:   true,
		NotificationTime:      "09:00",
		NotificationFrequency: models.FrequencyCustom,
		CustomIntervalDays:    &interval,
		LastNotifiedAt:        &lastFired,
	}

	settings := &stubSettingsService{settings: s}
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))
	sched := NewReminderScheduler(settings, newSpyDispatcher(), clock, logger.Nop())
	defer sched.Stop()

	sched.Start(context.Background(), "user-1")

	next, armed := sched.NextFireAt()
	require.True(t, armed)
	assert.Equal(t, time.Date(2026, 3, 17, 9, 0, 0, 0, time.UTC), next)
}

func TestReminderScheduler_DisabledRule_NotArmed(t *testing.T) {
	settings := &stubSettingsService{settings: models.UserSettings{UserID: "user-1"}}
	sched := NewReminderScheduler(settings, newSpyDispatcher(), clockwork.NewFakeClockAt(schedBase), logger.Nop())
	defer sched.Stop()

	sched.Start(context.Background(), "user-1")

	_, armed := sched.NextFireAt()
	assert.False(t, armed)
}

func TestReminderScheduler_UnreadableRule_NotArmed(t *testing.T) {
	settings := &stubSettingsService{err: errors.New("backend down")}
	sched := NewReminderScheduler(settings, newSpyDispatcher(), clockwork.NewFakeClockAt(schedBase), logger.Nop())
	defer sched.Stop()

	sched.Start(context.Background(), "user-1")

	_, armed := sched.NextFireAt()
	assert.False(t, armed)
}

func TestReminderScheduler_RestartKeepsSingleTimer(t *testing.T) {
	settings := &stubSettingsService{settings: dailySettings("09:00")}
	dispatcher := newSpyDispatcher()
	clock := clockwork.NewFakeClockAt(schedBase)
	sched := NewReminderScheduler(settings, dispatcher, clock, logger.Nop())
	defer sched.Stop()

	ctx := context.Background()

	// три перезапуска подряд: живым остаётся ровно один таймер
	sched.Start(ctx, "user-1")
	sched.Start(ctx, "user-1")
	sched.Start(ctx, "user-1")
	clock.BlockUntil(1)

	clock.Advance(13 * time.Hour)
	dispatcher.waitFired(t)
	clock.BlockUntil(1)

	assert.Equal(t, 1, dispatcher.count())
}

func TestReminderScheduler_DisableCancelsPendingTimer(t *testing.T) {
	settings := &stubSettingsService{settings: dailySettings("09:00")}
	dispatcher := newSpyDispatcher()
	clock := clockwork.NewFakeClockAt(schedBase)
	sched := NewReminderScheduler(settings, dispatcher, clock, logger.Nop())
	defer sched.Stop()

	ctx := context.Background()
	sched.Start(ctx, "user-1")
	clock.BlockUntil(1)

	settings.setSettings(models.UserSettings{UserID: "user-1"})
	sched.Start(ctx, "user-1")

	_, armed := sched.NextFireAt()
	assert.False(t, armed)

	clock.Advance(48 * time.Hour)
	assert.Zero(t, dispatcher.count())
}

func TestReminderScheduler_StopBeforeStart_NoPanic(t *testing.T) {
	sched := NewReminderScheduler(&stubSettingsService{}, newSpyDispatcher(), clockwork.NewFakeClockAt(schedBase), logger.Nop())

	assert.NotPanics(t, func() { sched.Stop() })
	assert.NotPanics(t, func() { sched.Stop() })
}
