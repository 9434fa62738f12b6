package service

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/internal/mock"
	"github.com/memvault/memvault/models"
)

func newTestEventSvc(t *testing.T, ctrl *gomock.Controller) (EventService, *mock.MockBackendAdapter, *spyReminderRepo) {
	t.Helper()

	backend := mock.NewMockBackendAdapter(ctrl)
	repo := newSpyReminderRepo()
	svc := NewEventService(backend, repo, clockwork.NewFakeClockAt(schedBase), logger.Nop())

	return svc, backend, repo
}

func TestEventService_Create_WithReminder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, backend, repo := newTestEventSvc(t, ctrl)
	ctx := context.Background()

	event := models.Event{Title: "Dentist", EventDate: schedBase.Add(24 * time.Hour)}
	stored := event
	stored.ID = "event-1"
	stored.UserID = "user-1"

	backend.EXPECT().CreateEvent(ctx, gomock.Any()).Return(stored, nil)

	remindAt := schedBase.Add(23 * time.Hour)
	created, err := svc.Create(ctx, "user-1", event, &remindAt)
	require.NoError(t, err)
	assert.Equal(t, "event-1", created.ID)

	pending, err := repo.NextPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, "event-1", pending.EventID)
	assert.Equal(t, "Dentist", pending.EventTitle)
	assert.Equal(t, remindAt, pending.FireAt)
}

func TestEventService_Create_WithoutReminder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, backend, repo := newTestEventSvc(t, ctrl)
	ctx := context.Background()

	backend.EXPECT().CreateEvent(ctx, gomock.Any()).Return(models.Event{ID: "event-1"}, nil)

	_, err := svc.Create(ctx, "user-1", models.Event{Title: "Dentist"}, nil)
	require.NoError(t, err)

	_, err = repo.NextPending(ctx)
	assert.Error(t, err)
}

func TestEventService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestEventSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Create(ctx, "", models.Event{Title: "Dentist"}, nil)
	assert.ErrorIs(t, err, ErrValidationNoUserID)

	_, err = svc.Create(ctx, "user-1", models.Event{}, nil)
	assert.ErrorIs(t, err, ErrValidationNoTitle)
}

func TestEventService_SetReminder_ReplacesExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, repo := newTestEventSvc(t, ctrl)
	ctx := context.Background()
	event := models.Event{ID: "event-1", Title: "Dentist"}

	require.NoError(t, svc.SetReminder(ctx, event, schedBase.Add(time.Hour)))
	require.NoError(t, svc.SetReminder(ctx, event, schedBase.Add(2*time.Hour)))

	pending, err := repo.NextPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, schedBase.Add(2*time.Hour), pending.FireAt)

	// у события ровно одно напоминание
	require.NoError(t, repo.MarkDelivered(ctx, pending.ID))
	_, err = repo.NextPending(ctx)
	assert.Error(t, err)
}

func TestEventService_SetReminder_RejectsPastInstant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestEventSvc(t, ctrl)

	err := svc.SetReminder(context.Background(), models.Event{ID: "event-1", Title: "Dentist"}, schedBase.Add(-time.Minute))
	assert.ErrorIs(t, err, ErrReminderInPast)
}

func TestEventService_Delete_RemovesLocalReminders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, backend, repo := newTestEventSvc(t, ctrl)
	ctx := context.Background()

	require.NoError(t, svc.SetReminder(ctx, models.Event{ID: "event-1", Title: "Dentist"}, schedBase.Add(time.Hour)))

	backend.EXPECT().DeleteEvent(ctx, "event-1").Return(nil)
	require.NoError(t, svc.Delete(ctx, "event-1"))

	_, err := repo.NextPending(ctx)
	assert.Error(t, err)
}
