package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/memvault/memvault/internal/adapter"
	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/internal/store"
	"github.com/memvault/memvault/internal/utils"
	"github.com/memvault/memvault/models"
)

type eventService struct {
	adapter   adapter.BackendAdapter
	reminders store.EventReminderRepository
	uuid      *utils.UUIDGenerator
	clock     clockwork.Clock
	logger    *logger.Logger
}

func NewEventService(backend adapter.BackendAdapter, reminders store.EventReminderRepository, clock clockwork.Clock, log *logger.Logger) EventService {
	return &eventService{
		adapter:   backend,
		reminders: reminders,
		uuid:      utils.NewUUIDGenerator(),
		clock:     clock,
		logger:    log,
	}
}

// Create implements EventService. The reminder, when requested, is stored
// only after the event exists on the backend so it always references a
// real event ID.
func (e *eventService) Create(ctx context.Context, userID string, event models.Event, remindAt *time.Time) (models.Event, error) {
	if userID == "" {
		return models.Event{}, ErrValidationNoUserID
	}
	if event.Title == "" {
		return models.Event{}, ErrValidationNoTitle
	}

	event.UserID = userID
	created, err := e.adapter.CreateEvent(ctx, event)
	if err != nil {
		return models.Event{}, fmt.Errorf("create event: %w", err)
	}

	if remindAt != nil {
		if err := e.SetReminder(ctx, created, *remindAt); err != nil {
			return models.Event{}, err
		}
	}

	return created, nil
}

// List implements EventService.
func (e *eventService) List(ctx context.Context, userID string) ([]models.Event, error) {
	if userID == "" {
		return nil, ErrValidationNoUserID
	}

	events, err := e.adapter.ListEvents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Update implements EventService.
func (e *eventService) Update(ctx context.Context, event models.Event) error {
	if event.ID == "" {
		return ErrValidationNoEvent
	}
	if event.Title == "" {
		return ErrValidationNoTitle
	}

	if err := e.adapter.UpdateEvent(ctx, event); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// Delete implements EventService. Local reminders go first: a reminder for
// a deleted event must never fire, while an orphaned backend event is
// merely untidy.
func (e *eventService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrValidationNoEvent
	}

	if err := e.reminders.DeleteByEvent(ctx, id); err != nil {
		return fmt.Errorf("delete event reminders: %w", err)
	}

	if err := e.adapter.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// SetReminder implements EventService.
func (e *eventService) SetReminder(ctx context.Context, event models.Event, fireAt time.Time) error {
	if event.ID == "" {
		return ErrValidationNoEvent
	}
	if !fireAt.After(e.clock.Now()) {
		return ErrReminderInPast
	}

	// One reminder per event; replacing means dropping the old one.
	if err := e.reminders.DeleteByEvent(ctx, event.ID); err != nil {
		return fmt.Errorf("replace event reminder: %w", err)
	}

	reminder := models.EventReminder{
		ID:         e.uuid.Generate(),
		EventID:    event.ID,
		EventTitle: event.Title,
		FireAt:     fireAt,
	}
	if err := e.reminders.SaveReminder(ctx, reminder); err != nil {
		return fmt.Errorf("save event reminder: %w", err)
	}
	return nil
}
