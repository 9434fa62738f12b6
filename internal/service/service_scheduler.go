// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/models"
)

const (
	reminderTitle = "Journal Reminder"
	reminderBody  = "Time to write in your journal."
)

type reminderScheduler struct {
	settings   SettingsService
	dispatcher ReminderDispatcher
	clock      clockwork.Clock
	logger     *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
	nextAt time.Time
	armed  bool
}

// NewReminderScheduler creates a reminderScheduler that delivers the
// recurring journal reminder through dispatcher. The scheduler is idle
// until Start is called.
func NewReminderScheduler(settings SettingsService, dispatcher ReminderDispatcher, clock clockwork.Clock, log *logger.Logger) ReminderScheduler {
	return &reminderScheduler{
		settings:   settings,
		dispatcher: dispatcher,
		clock:      clock,
		logger:     log,
	}
}

// Start implements ReminderScheduler. It stops any previously armed timer,
// reads the current rule, and arms a single timer for the next occurrence.
// Each fire recomputes the following occurrence from the wall clock rather
// than adding a fixed period, so drift never accumulates and zone shifts
// are absorbed at the next computation.
func (s *reminderScheduler) Start(ctx context.Context, userID string) {
	s.Stop()

	current, err := s.settings.Current(ctx, userID)
	if err != nil {
		// No readable rule means nothing to arm; the caller re-arms once
		// settings become reachable again.
		s.logger.Warn().Err(err).
			Str("func", "reminderScheduler.Start").
			Msg("reminder rule unreadable, scheduler not armed")
		return
	}

	rule := current.Reminder()
	if !rule.Enabled || !rule.Frequency.Valid() {
		s.logger.Debug().
			Str("func", "reminderScheduler.Start").
			Msg("reminder disabled, scheduler not armed")
		return
	}

	next := rule.NextOccurrence(s.clock.Now())

	s.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.nextAt = next
	s.armed = true
	s.wg.Add(1)
	s.mu.Unlock()

	s.logger.Info().
		Time("next_fire_at", next).
		Msg("reminder armed")

	go s.run(jobCtx, userID, rule, next)
}

func (s *reminderScheduler) run(ctx context.Context, userID string, rule models.ReminderRule, next time.Time) {
	defer s.wg.Done()

	for {
		timer := s.clock.NewTimer(next.Sub(s.clock.Now()))

		select {
		case <-ctx.Done():
			timer.Stop()
			s.setArmed(time.Time{}, false)
			return
		case <-timer.Chan():
		}

		firedAt := next
		s.dispatcher.Dispatch(ctx, reminderTitle, reminderBody)

		if err := s.settings.RecordNotified(ctx, userID, firedAt); err != nil {
			s.logger.Err(err).
				Str("func", "reminderScheduler.run").
				Msg("failed to persist last fired instant")
		}

		// Re-read the rule so edits made while the timer slept take
		// effect; on read failure keep scheduling from the in-memory
		// copy with the fire we just delivered.
		if current, err := s.settings.Current(ctx, userID); err == nil {
			rule = current.Reminder()
		}
		if rule.LastFiredAt == nil || rule.LastFiredAt.Before(firedAt) {
			rule.LastFiredAt = &firedAt
		}

		if !rule.Enabled || !rule.Frequency.Valid() {
			s.setArmed(time.Time{}, false)
			return
		}

		next = rule.NextOccurrence(s.clock.Now())
		s.setArmed(next, true)
	}
}

// Stop implements ReminderScheduler. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call
// when nothing is armed (no-op in that case).
func (s *reminderScheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// NextFireAt implements ReminderScheduler.
func (s *reminderScheduler) NextFireAt() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextAt, s.armed
}

func (s *reminderScheduler) setArmed(at time.Time, armed bool) {
	s.mu.Lock()
	s.nextAt = at
	s.armed = armed
	s.mu.Unlock()
}
