package app

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"slackhook/internal/domain/ports"
	"slackhook/internal/usecase"
)

const stopGrace = 5 * time.Second

// Announcer is the job the App runs.
type Announcer interface {
	Run(ctx context.Context) error
}

var _ Announcer = (*usecase.Announcement)(nil)

// App sends the announcement once, or repeatedly on a cron schedule.
type App struct {
	cron      *cron.Cron
	announcer Announcer
	logger    ports.Logger
	schedule  string
}

// New constructs an App instance. An empty schedule means send once.
func New(announcer Announcer, logger ports.Logger, schedule string) *App {
	return &App{
		cron:      cron.New(),
		announcer: announcer,
		logger:    logger,
		schedule:  schedule,
	}
}

// Run delivers the announcement. With a schedule it keeps running until ctx
// is cancelled; failures of individual runs are logged, not returned.
func (a *App) Run(ctx context.Context) error {
	if a.schedule == "" {
		return a.announcer.Run(ctx)
	}

	if err := a.scheduleJob(ctx); err != nil {
		return err
	}

	a.logger.Info(ctx, "sending first announcement immediately")
	if err := a.announcer.Run(ctx); err != nil {
		a.logger.Error(ctx, "initial announcement failed", "error", err)
	}

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(stopGrace):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

func (a *App) scheduleJob(ctx context.Context) error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		if err := a.announcer.Run(ctx); err != nil {
			a.logger.Error(ctx, "scheduled announcement failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", a.schedule, err)
	}
	return nil
}
