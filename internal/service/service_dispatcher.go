package service

import (
	"context"

	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/internal/notify"
	"github.com/memvault/memvault/internal/store"
)

type reminderDispatcher struct {
	permissions store.PermissionRepository
	notifier    notify.Notifier
	logger      *logger.Logger
}

// NewReminderDispatcher creates the permission-gated notification
// dispatcher.
func NewReminderDispatcher(permissions store.PermissionRepository, notifier notify.Notifier, log *logger.Logger) ReminderDispatcher {
	return &reminderDispatcher{
		permissions: permissions,
		notifier:    notifier,
		logger:      log,
	}
}

// Dispatch implements ReminderDispatcher. Delivery happens only when the
// persisted permission state is granted. Anything else, including a
// permission store that cannot be read, suppresses delivery silently.
func (d *reminderDispatcher) Dispatch(ctx context.Context, title, body string) {
	state, err := d.permissions.Permission(ctx)
	if err != nil {
		d.logger.Warn().Err(err).
			Str("func", "reminderDispatcher.Dispatch").
			Msg("permission state unreadable, suppressing notification")
		return
	}
	if !state.Granted() {
		d.logger.Debug().
			Str("permission", string(state)).
			Msg("notification suppressed")
		return
	}

	if err := d.notifier.Push(title, body); err != nil {
		d.logger.Err(err).
			Str("func", "reminderDispatcher.Dispatch").
			Str("title", title).
			Msg("notification delivery failed")
	}
}
