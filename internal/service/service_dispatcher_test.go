package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/internal/mock"
	"github.com/memvault/memvault/models"
)

func TestReminderDispatcher_DeliversWhenGranted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mock.NewMockNotifier(ctrl)
	permissions := &spyPermissionRepo{state: models.PermissionGranted}
	d := NewReminderDispatcher(permissions, notifier, logger.Nop())

	notifier.EXPECT().Push("Journal Reminder", "Time to write in your journal.").Return(nil)

	d.Dispatch(context.Background(), "Journal Reminder", "Time to write in your journal.")
}

func TestReminderDispatcher_SuppressedStates(t *testing.T) {
	tests := []struct {
		name  string
		state models.PermissionState
	}{
		{name: "denied", state: models.PermissionDenied},
		{name: "never asked", state: models.PermissionDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// без EXPECT: любой Push провалит тест
			notifier := mock.NewMockNotifier(ctrl)
			d := NewReminderDispatcher(&spyPermissionRepo{state: tt.state}, notifier, logger.Nop())

			d.Dispatch(context.Background(), "Journal Reminder", "body")
		})
	}
}

func TestReminderDispatcher_PermissionUnreadable_Suppresses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mock.NewMockNotifier(ctrl)
	permissions := &spyPermissionRepo{err: errors.New("disk error")}
	d := NewReminderDispatcher(permissions, notifier, logger.Nop())

	d.Dispatch(context.Background(), "Journal Reminder", "body")
}

func TestReminderDispatcher_DeliveryFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := mock.NewMockNotifier(ctrl)
	permissions := &spyPermissionRepo{state: models.PermissionGranted}
	d := NewReminderDispatcher(permissions, notifier, logger.Nop())

	notifier.EXPECT().Push(gomock.Any(), gomock.Any()).Return(errors.New("no notification daemon"))

	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), "Journal Reminder", "body")
	})
}
