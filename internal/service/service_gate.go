// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/memvault/memvault/internal/config"
	"github.com/memvault/memvault/internal/crypto"
	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/internal/store"
)

type sessionGate struct {
	settings  SettingsService
	activity  store.ActivityRepository
	hasher    crypto.PinHasher
	clock     clockwork.Clock
	threshold time.Duration
	logger    *logger.Logger
}

// NewSessionGate creates the PIN lock gate. cfg.InactivityThreshold bounds
// how long a session stays unlocked without interaction; zero or negative
// falls back to 5 minutes.
func NewSessionGate(settings SettingsService, activity store.ActivityRepository, hasher crypto.PinHasher, clock clockwork.Clock, cfg config.Security, log *logger.Logger) SessionGate {
	threshold := cfg.InactivityThreshold
	if threshold <= 0 {
		threshold = 5 * time.Minute
	}

	return &sessionGate{
		settings:  settings,
		activity:  activity,
		hasher:    hasher,
		clock:     clock,
		threshold: threshold,
		logger:    log,
	}
}

// IsUnlocked implements SessionGate. An unreadable settings record fails
// open: a broken settings store must never lock the user out of their own
// journal. An unreadable or absent activity record fails closed, which
// covers the cold start and any cleared local store.
func (g *sessionGate) IsUnlocked(ctx context.Context, userID string) bool {
	s, err := g.settings.Current(ctx, userID)
	if err != nil {
		g.logger.Warn().Err(err).
			Str("func", "sessionGate.IsUnlocked").
			Msg("settings unreadable, failing open")
		return true
	}

	if !s.Security().PinEnabled {
		return true
	}

	rec, err := g.activity.LastActivity(ctx)
	if err != nil {
		g.logger.Err(err).
			Str("func", "sessionGate.IsUnlocked").
			Msg("activity record unreadable, treating as locked")
		return false
	}
	if !rec.Known {
		return false
	}

	idle := g.clock.Now().Sub(rec.LastActivityAt)
	return idle < g.threshold
}

// SubmitPin implements SessionGate. The candidate is compared against the
// stored verifier; a wrong PIN is an answer, not an error. A successful
// match counts as user interaction so the idle window restarts.
func (g *sessionGate) SubmitPin(ctx context.Context, userID string, candidate string) (bool, error) {
	s, err := g.settings.Current(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrSettingsUnavailable, err)
	}

	sec := s.Security()
	if !sec.PinEnabled {
		g.OnUserInteraction(ctx)
		return true, nil
	}
	if sec.PinHash == "" {
		return false, ErrPinNotSet
	}

	if !g.hasher.Verify(sec.PinHash, candidate) {
		return false, nil
	}

	g.OnUserInteraction(ctx)
	return true, nil
}

// OnUserInteraction implements SessionGate.
func (g *sessionGate) OnUserInteraction(ctx context.Context) {
	if err := g.activity.RecordActivity(ctx, g.clock.Now()); err != nil {
		g.logger.Err(err).
			Str("func", "sessionGate.OnUserInteraction").
			Msg("failed to record interaction")
	}
}
