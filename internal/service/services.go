package service

import (
	"github.com/jonboulle/clockwork"

	"github.com/memvault/memvault/internal/adapter"
	"github.com/memvault/memvault/internal/config"
	"github.com/memvault/memvault/internal/crypto"
	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/internal/notify"
	"github.com/memvault/memvault/internal/store"
	"github.com/memvault/memvault/internal/validators"
)

type ClientServices struct {
	Settings   SettingsService
	Gate       SessionGate
	Scheduler  ReminderScheduler
	Dispatcher ReminderDispatcher
	Journal    JournalService
	Events     EventService
	Notes      NoteService
	Streaks    StreakService
	EventJob   EventReminderJob
}

func NewClientServices(cfg *config.StructuredConfig, storages *store.ClientStorages, backend adapter.BackendAdapter, notifier notify.Notifier, clock clockwork.Clock, log *logger.Logger) *ClientServices {
	hasher := crypto.NewPinHasher()
	validator := validators.NewSettingsValidator()

	settingsSvc := NewSettingsService(backend, storages.SettingsCache, storages.Permission, hasher, validator, log)
	dispatcher := NewReminderDispatcher(storages.Permission, notifier, log)
	scheduler := NewReminderScheduler(settingsSvc, dispatcher, clock, log)
	settingsSvc.BindScheduler(scheduler)

	streakSvc := NewStreakService(backend, log)

	return &ClientServices{
		Settings:   settingsSvc,
		Gate:       NewSessionGate(settingsSvc, storages.Activity, hasher, clock, cfg.Security, log),
		Scheduler:  scheduler,
		Dispatcher: dispatcher,
		Journal:    NewJournalService(backend, streakSvc, clock, log),
		Events:     NewEventService(backend, storages.EventReminders, clock, log),
		Notes:      NewNoteService(backend, log),
		Streaks:    streakSvc,
		EventJob:   NewEventReminderJob(storages.EventReminders, dispatcher, clock, log),
	}
}
