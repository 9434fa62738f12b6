package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/memvault/memvault/internal/crypto"
	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/internal/mock"
	"github.com/memvault/memvault/internal/store"
	"github.com/memvault/memvault/internal/validators"
	"github.com/memvault/memvault/models"
)

// spySettingsCache — кэш настроек в памяти.
type spySettingsCache struct {
	mu     sync.Mutex
	cached map[string]models.UserSettings
	err    error
}

func newSpySettingsCache() *spySettingsCache {
	return &spySettingsCache{cached: make(map[string]models.UserSettings)}
}

func (c *spySettingsCache) CacheSettings(_ context.Context, s models.UserSettings) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.cached[s.UserID] = s
	return nil
}

func (c *spySettingsCache) CachedSettings(_ context.Context, userID string) (models.UserSettings, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return models.UserSettings{}, c.err
	}
	s, ok := c.cached[userID]
	if !ok {
		return models.UserSettings{}, store.ErrSettingsCacheMiss
	}
	return s, nil
}

// spyPermissionRepo — состояние разрешения в памяти.
type spyPermissionRepo struct {
	mu    sync.Mutex
	state models.PermissionState
	err   error
}

func (r *spyPermissionRepo) SavePermission(_ context.Context, state models.PermissionState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.state = state
	return nil
}

func (r *spyPermissionRepo) Permission(_ context.Context) (models.PermissionState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return models.PermissionDefault, r.err
	}
	if r.state == "" {
		return models.PermissionDefault, nil
	}
	return r.state, nil
}

// spyScheduler фиксирует вызовы Start.
type spyScheduler struct {
	mu     sync.Mutex
	starts int
}

func (s *spyScheduler) Start(_ context.Context, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.starts++
}

func (s *spyScheduler) Stop() {}

func (s *spyScheduler) NextFireAt() (time.Time, bool) { return time.Time{}, false }

func (s *spyScheduler) startCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.starts
}

func newTestSettingsSvc(t *testing.T, ctrl *gomock.Controller) (SettingsService, *mock.MockBackendAdapter, *spySettingsCache, *spyPermissionRepo, *spyScheduler) {
	t.Helper()

	backend := mock.NewMockBackendAdapter(ctrl)
	cache := newSpySettingsCache()
	permissions := &spyPermissionRepo{}
	scheduler := &spyScheduler{}

	svc := NewSettingsService(backend, cache, permissions, crypto.NewPinHasher(), validators.NewSettingsValidator(), logger.Nop())
	svc.BindScheduler(scheduler)

	return svc, backend, cache, permissions, scheduler
}

// ── Current ──────────────────────────────────────────────────────────────────

func TestSettingsService_Current_BackendWinsAndRefreshesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, backend, cache, _, _ := newTestSettingsSvc(t, ctrl)
	ctx := context.Background()

	want := dailySettings("09:00")
	backend.EXPECT().UserSettings(ctx, "user-1").Return(want, nil)

	got, err := svc.Current(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	cached, err := cache.CachedSettings(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, want, cached)
}

func TestSettingsService_Current_FallsBackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, backend, cache, _, _ := newTestSettingsSvc(t, ctrl)
	ctx := context.Background()

	want := dailySettings("21:30")
	require.NoError(t, cache.CacheSettings(ctx, want))
	backend.EXPECT().UserSettings(ctx, "user-1").Return(models.UserSettings{}, errors.New("backend down"))

	got, err := svc.Current(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsService_Current_BackendAndCacheDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, backend, _, _, _ := newTestSettingsSvc(t, ctrl)
	ctx := context.Background()

	backend.EXPECT().UserSettings(ctx, "user-1").Return(models.UserSettings{}, errors.New("backend down"))

	_, err := svc.Current(ctx, "user-1")
	assert.ErrorIs(t, err, ErrSettingsUnavailable)
}

func TestSettingsService_Current_EmptyUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestSettingsSvc(t, ctrl)

	_, err := svc.Current(context.Background(), "")
	assert.ErrorIs(t, err, ErrValidationNoUserID)
}

// ── UpdateSecurity ───────────────────────────────────────────────────────────

func TestSettingsService_UpdateSecurity_EnableStoresVerifierNotPin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, backend, _, _, _ := newTestSettingsSvc(t, ctrl)
	ctx := context.Background()

	backend.EXPECT().UserSettings(ctx, "user-1").Return(models.UserSettings{UserID: "user-1"}, nil)

	var saved models.UserSettings
	backend.EXPECT().SaveUserSettings(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.UserSettings) error {
			saved = s
			return nil
		},
	)

	require.NoError(t, svc.UpdateSecurity(ctx, "user-1", models.PinChange{Enabled: true, Pin: "4242"}))

	assert.True(t, saved.PinEnabled)
	require.NotNil(t, saved.PinCode)
	// в запись попадает argon2id-верификатор, а не сам PIN
	assert.True(t, strings.HasPrefix(*saved.PinCode, "argon2id$"))
	assert.True(t, crypto.NewPinHasher().Verify(*saved.PinCode, "4242"))
}

func TestSettingsService_UpdateSecurity_DisableClearsVerifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, backend, _, _, _ := newTestSettingsSvc(t, ctrl)
	ctx := context.Background()

	backend.EXPECT().UserSettings(ctx, "user-1").Return(pinnedSettings(t, "4242"), nil)

	var saved models.UserSettings
	backend.EXPECT().SaveUserSettings(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.UserSettings) error {
			saved = s
			return nil
		},
	)

	require.NoError(t, svc.UpdateSecurity(ctx, "user-1", models.PinChange{Enabled: false}))

	assert.False(t, saved.PinEnabled)
	assert.Nil(t, saved.PinCode)
}

func TestSettingsService_UpdateSecurity_RejectsMalformedPin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestSettingsSvc(t, ctrl)

	err := svc.UpdateSecurity(context.Background(), "user-1", models.PinChange{Enabled: true, Pin: "12345"})
	assert.ErrorIs(t, err, validators.ErrInvalidPin)
}

// ── UpdateReminder ───────────────────────────────────────────────────────────

func TestSettingsService_UpdateReminder_SavesAndRearms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, backend, cache, _, scheduler := newTestSettingsSvc(t, ctrl)
	ctx := context.Background()

	backend.EXPECT().UserSettings(ctx, "user-1").Return(models.UserSettings{UserID: "user-1"}, nil)
	backend.EXPECT().SaveUserSettings(ctx, gomock.Any()).Return(nil)

	err := svc.UpdateReminder(ctx, "user-1", true, "08:15", models.FrequencyCustom, 3)
	require.NoError(t, err)

	assert.Equal(t, 1, scheduler.startCount())

	cached, err := cache.CachedSettings(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "08:15", cached.NotificationTime)
	require.NotNil(t, cached.CustomIntervalDays)
	assert.Equal(t, 3, *cached.CustomIntervalDays)
}

func TestSettingsService_UpdateReminder_RejectsInvalidRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, backend, _, _, scheduler := newTestSettingsSvc(t, ctrl)
	ctx := context.Background()

	backend.EXPECT().UserSettings(ctx, "user-1").Return(models.UserSettings{UserID: "user-1"}, nil).Times(2)

	err := svc.UpdateReminder(ctx, "user-1", true, "25:00", models.FrequencyDaily, 0)
	assert.ErrorIs(t, err, validators.ErrInvalidNotificationTime)

	err = svc.UpdateReminder(ctx, "user-1", true, "09:00", models.FrequencyCustom, 0)
	assert.ErrorIs(t, err, validators.ErrInvalidCustomInterval)

	assert.Zero(t, scheduler.startCount(), "невалидное правило не должно перезапускать планировщик")
}

// ── RecordNotified ───────────────────────────────────────────────────────────

func TestSettingsService_RecordNotified_CachesThroughBackendOutage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, backend, cache, _, _ := newTestSettingsSvc(t, ctrl)
	ctx := context.Background()

	firedAt := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	backend.EXPECT().UserSettings(ctx, "user-1").Return(dailySettings("09:00"), nil)
	backend.EXPECT().SaveUserSettings(ctx, gomock.Any()).Return(errors.New("backend down"))

	require.NoError(t, svc.RecordNotified(ctx, "user-1", firedAt))

	cached, err := cache.CachedSettings(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, cached.LastNotifiedAt)
	assert.Equal(t, firedAt, *cached.LastNotifiedAt)
}

// ── SetPermission ────────────────────────────────────────────────────────────

func TestSettingsService_SetPermission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, permissions, _ := newTestSettingsSvc(t, ctrl)
	ctx := context.Background()

	require.NoError(t, svc.SetPermission(ctx, models.PermissionGranted))

	state, err := permissions.Permission(ctx)
	require.NoError(t, err)
	assert.True(t, state.Granted())
}
