// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/memvault/memvault/internal/adapter"
	"github.com/memvault/memvault/internal/crypto"
	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/internal/store"
	"github.com/memvault/memvault/internal/validators"
	"github.com/memvault/memvault/models"
)

type settingsService struct {
	adapter     adapter.BackendAdapter
	cache       store.SettingsCacheRepository
	permissions store.PermissionRepository
	hasher      crypto.PinHasher
	validator   validators.Validator
	scheduler   ReminderScheduler
	logger      *logger.Logger
}

func NewSettingsService(backend adapter.BackendAdapter, cache store.SettingsCacheRepository, permissions store.PermissionRepository, hasher crypto.PinHasher, validator validators.Validator, log *logger.Logger) SettingsService {
	return &settingsService{
		adapter:     backend,
		cache:       cache,
		permissions: permissions,
		hasher:      hasher,
		validator:   validator,
		logger:      log,
	}
}

// BindScheduler implements SettingsService. Called once during wiring; the
// scheduler cannot be a constructor argument because it reads its rule
// through this service.
func (s *settingsService) BindScheduler(scheduler ReminderScheduler) {
	s.scheduler = scheduler
}

// Current implements SettingsService. The backend copy wins when
// reachable; a fresh read refreshes the local cache, and a failed read
// falls back to it.
func (s *settingsService) Current(ctx context.Context, userID string) (models.UserSettings, error) {
	if userID == "" {
		return models.UserSettings{}, ErrValidationNoUserID
	}

	settings, err := s.adapter.UserSettings(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "settingsService.Current").
			Msg("backend settings read failed, trying cache")

		cached, cacheErr := s.cache.CachedSettings(ctx, userID)
		if cacheErr != nil {
			return models.UserSettings{}, fmt.Errorf("%w: %v", ErrSettingsUnavailable, err)
		}
		return cached, nil
	}

	if err := s.cache.CacheSettings(ctx, settings); err != nil {
		s.logger.Err(err).
			Str("func", "settingsService.Current").
			Msg("failed to refresh settings cache")
	}

	return settings, nil
}

// UpdateSecurity implements SettingsService. The clear PIN never reaches
// the adapter or the cache; only the derived verifier is persisted.
func (s *settingsService) UpdateSecurity(ctx context.Context, userID string, change models.PinChange) error {
	if err := s.validator.Validate(ctx, change); err != nil {
		return err
	}

	current, err := s.Current(ctx, userID)
	if err != nil {
		return err
	}

	if change.Enabled {
		hash, err := s.hasher.Hash(change.Pin)
		if err != nil {
			return fmt.Errorf("derive pin verifier: %w", err)
		}
		current.PinEnabled = true
		current.PinCode = &hash
	} else {
		current.PinEnabled = false
		current.PinCode = nil
	}

	return s.save(ctx, current)
}

// UpdateReminder implements SettingsService. A successful write re-arms
// the scheduler so the new rule takes effect immediately.
func (s *settingsService) UpdateReminder(ctx context.Context, userID string, enabled bool, timeOfDay string, freq models.Frequency, customDays int) error {
	current, err := s.Current(ctx, userID)
	if err != nil {
		return err
	}

	current.NotificationEnabled = enabled
	current.NotificationTime = timeOfDay
	current.NotificationFrequency = freq
	if freq == models.FrequencyCustom {
		current.CustomIntervalDays = &customDays
	} else {
		current.CustomIntervalDays = nil
	}

	if err := s.validator.Validate(ctx, current); err != nil {
		return err
	}

	if err := s.save(ctx, current); err != nil {
		return err
	}

	if s.scheduler != nil {
		s.scheduler.Start(ctx, userID)
	}
	return nil
}

// RecordNotified implements SettingsService. The cache is written even
// when the backend write fails so local scheduling keeps its anchor
// through outages.
func (s *settingsService) RecordNotified(ctx context.Context, userID string, firedAt time.Time) error {
	current, err := s.Current(ctx, userID)
	if err != nil {
		return err
	}

	current.LastNotifiedAt = &firedAt

	if err := s.adapter.SaveUserSettings(ctx, current); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "settingsService.RecordNotified").
			Msg("backend write failed, keeping cached copy only")
	}

	if err := s.cache.CacheSettings(ctx, current); err != nil {
		return fmt.Errorf("cache last notified instant: %w", err)
	}
	return nil
}

// SetPermission implements SettingsService.
func (s *settingsService) SetPermission(ctx context.Context, state models.PermissionState) error {
	return s.permissions.SavePermission(ctx, state)
}

func (s *settingsService) save(ctx context.Context, settings models.UserSettings) error {
	if err := s.adapter.SaveUserSettings(ctx, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	if err := s.cache.CacheSettings(ctx, settings); err != nil {
		s.logger.Err(err).
			Str("func", "settingsService.save").
			Msg("failed to refresh settings cache")
	}
	return nil
}
