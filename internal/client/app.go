package client

import (
	"context"
	"errors"
	"time"

	"github.com/memvault/memvault/internal/adapter"
	"github.com/memvault/memvault/internal/config"
	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/internal/service"
	"github.com/memvault/memvault/internal/store"
	"github.com/memvault/memvault/internal/tui"
	"github.com/memvault/memvault/internal/utils"
	"github.com/memvault/memvault/internal/workers"
	"github.com/memvault/memvault/models"
)

type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	backend  adapter.BackendAdapter
	tui      *tui.TUI
	workers  config.Workers
	log      *logger.Logger
}

func NewApp(services *service.ClientServices, storages *store.ClientStorages, backend adapter.BackendAdapter, ui *tui.TUI, workersCfg config.Workers, log *logger.Logger) (*App, error) {
	return &App{
		services: services,
		storages: storages,
		backend:  backend,
		tui:      ui,
		workers:  workersCfg,
		log:      log,
	}, nil
}

// Run drives one full session: restore or collect credentials, arm the
// background reminder workers, and hand the terminal to the main loop.
// A sign-out restarts the cycle with a fresh sign-in.
func (a *App) Run() error {
	ctx := context.Background()

	sess, err := a.resolveSession(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	a.backend.SetToken(sess.Token)

	jobs := workers.New(
		workers.NewReminderWorker(ctx, sess.UserID, a.services.Scheduler),
		workers.NewEventReminderWorker(ctx, a.workers.EventScanInterval, a.services.EventJob),
	)
	jobs.Run()
	defer jobs.Stop()

	logout, err := a.tui.MainLoop(ctx, sess.UserID)
	if err != nil {
		return err
	}
	if logout {
		if delErr := a.storages.Session.DeleteSession(ctx); delErr != nil {
			a.log.Warn().Err(delErr).Msg("drop session on sign-out")
		}
		jobs.Stop()
		return a.Run()
	}

	return nil
}

// resolveSession reuses the cached session when its token is still fresh
// and falls back to the interactive sign-in flow otherwise.
func (a *App) resolveSession(ctx context.Context) (models.Session, error) {
	sess, err := a.storages.Session.Session(ctx)
	if err == nil {
		if _, freshErr := utils.CheckTokenFreshness(sess.Token, time.Now()); freshErr == nil {
			a.log.Info().Str("user_id", sess.UserID).Msg("restored cached session")
			return sess, nil
		}

		a.log.Info().Str("user_id", sess.UserID).Msg("cached session expired")
		if delErr := a.storages.Session.DeleteSession(ctx); delErr != nil {
			a.log.Warn().Err(delErr).Msg("drop expired session")
		}
	} else if !errors.Is(err, store.ErrLocalSessionNotFound) {
		a.log.Warn().Err(err).Msg("read cached session")
	}

	sess, err = a.tui.SignInFlow(ctx)
	if err != nil {
		return models.Session{}, err
	}

	if saveErr := a.storages.Session.SaveSession(ctx, sess); saveErr != nil {
		a.log.Warn().Err(saveErr).Msg("cache session")
	}

	return sess, nil
}
