package workers

import (
	"context"
	"time"

	"github.com/memvault/memvault/internal/service"
)

type Workers struct {
	workers []Worker
}

func New(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// reminderWorker arms the recurring journal reminder for the signed-in
// user.
type reminderWorker struct {
	ctx       context.Context
	userID    string
	scheduler service.ReminderScheduler
}

func NewReminderWorker(ctx context.Context, userID string, scheduler service.ReminderScheduler) Worker {
	return &reminderWorker{ctx: ctx, userID: userID, scheduler: scheduler}
}

func (w *reminderWorker) Run() {
	w.scheduler.Start(w.ctx, w.userID)
}

func (w *reminderWorker) Stop() {
	w.scheduler.Stop()
}

// eventReminderWorker delivers one-shot event reminders from the local
// store.
type eventReminderWorker struct {
	ctx          context.Context
	scanInterval time.Duration
	job          service.EventReminderJob
}

func NewEventReminderWorker(ctx context.Context, scanInterval time.Duration, job service.EventReminderJob) Worker {
	return &eventReminderWorker{ctx: ctx, scanInterval: scanInterval, job: job}
}

func (w *eventReminderWorker) Run() {
	w.job.Start(w.ctx, w.scanInterval)
}

func (w *eventReminderWorker) Stop() {
	w.job.Stop()
}
