// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/internal/store"
)

const eventReminderTitle = "Event Reminder"

type eventReminderJob struct {
	reminders  store.EventReminderRepository
	dispatcher ReminderDispatcher
	clock      clockwork.Clock
	logger     *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewEventReminderJob creates the background worker that delivers one-shot
// event reminders from the local store. The job is idle until Start is
// called.
func NewEventReminderJob(reminders store.EventReminderRepository, dispatcher ReminderDispatcher, clock clockwork.Clock, log *logger.Logger) EventReminderJob {
	return &eventReminderJob{
		reminders:  reminders,
		dispatcher: dispatcher,
		clock:      clock,
		logger:     log,
	}
}

// Start implements EventReminderJob. It stops any previously running job,
// then launches a background goroutine that sleeps until the earliest
// pending reminder is due, never longer than scanInterval per nap, so a
// reminder stored mid-sleep is noticed within one interval. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *eventReminderJob) Start(ctx context.Context, scanInterval time.Duration) {
	if scanInterval <= 0 {
		scanInterval = time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go j.run(jobCtx, scanInterval)
}

func (j *eventReminderJob) run(ctx context.Context, scanInterval time.Duration) {
	defer j.wg.Done()

	for {
		wait := scanInterval

		next, err := j.reminders.NextPending(ctx)
		switch {
		case err == nil && !next.FireAt.After(j.clock.Now()):
			j.dispatcher.Dispatch(ctx, eventReminderTitle+": "+next.EventTitle, "Your event is coming up.")

			markErr := j.reminders.MarkDelivered(ctx, next.ID)
			if markErr == nil {
				// Look for the next pending reminder right away.
				continue
			}
			// Sleeping a full scan keeps a broken store from spinning this
			// loop; the reminder fires again on the next pass.
			j.logger.Err(markErr).
				Str("func", "eventReminderJob.run").
				Str("reminder_id", next.ID).
				Msg("failed to mark reminder delivered")
		case err == nil:
			// Cap the sleep at one scan interval: a reminder saved while
			// the job sleeps toward a distant one must be found within
			// scanInterval, not after the distant instant.
			wait = next.FireAt.Sub(j.clock.Now())
			if wait > scanInterval {
				wait = scanInterval
			}
		case !errors.Is(err, store.ErrNoPendingReminders):
			j.logger.Err(err).
				Str("func", "eventReminderJob.run").
				Msg("failed to read pending reminders")
		}

		timer := j.clock.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.Chan():
		}
	}
}

// Stop implements EventReminderJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call
// when the job is not running (no-op in that case).
func (j *eventReminderJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
