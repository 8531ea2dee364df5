package notifierimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/kervan-app/kervan-mobile/internal/api"
	"github.com/kervan-app/kervan-mobile/internal/cache"
	"github.com/kervan-app/kervan-mobile/internal/controller"
	"github.com/kervan-app/kervan-mobile/internal/notifier"
	"github.com/kervan-app/kervan-mobile/internal/session"
	"github.com/kervan-app/kervan-mobile/pkg/config"
	"github.com/kervan-app/kervan-mobile/pkg/logger"
	"github.com/kervan-app/kervan-mobile/pkg/retry"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Api        api.Client
	Controller controller.Client
	Session    session.Store
	Caches     *cache.Caches
	Logger     logger.Logger
	Config     *config.Config
}

type NotifierImpl struct {
	Api        api.Client
	Controller controller.Client
	Session    session.Store
	Caches     *cache.Caches
	Logger     logger.Logger
	Config     *config.Config
}

func New(opts Opts) *NotifierImpl {
	return &NotifierImpl{
		Api:        opts.Api,
		Controller: opts.Controller,
		Session:    opts.Session,
		Caches:     opts.Caches,
		Logger:     opts.Logger,
		Config:     opts.Config,
	}
}

var _ notifier.Client = (*NotifierImpl)(nil)

const unreadCountCacheKey = "unread_count"

// ScheduleUnreadCountPolling polls the unread count on a fixed cadence
// while a token is present. Signed-out ticks are skipped silently.
func (n *NotifierImpl) ScheduleUnreadCountPolling(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create notifier scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(n.Config.Notifier.PollInterval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				n.Logger.Info("Context cancelled, stopping unread count polling")
				return
			}

			tickCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
			defer cancel()

			n.pollOnce(tickCtx)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule unread count polling: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		n.Logger.Info("Stopping notifier scheduler")
		if err := scheduler.Shutdown(); err != nil {
			n.Logger.Error("Failed to shut down notifier scheduler", "error", err)
		}
	}()

	return nil
}

func (n *NotifierImpl) pollOnce(ctx context.Context) {
	token, err := n.Session.Token(ctx)
	if err != nil {
		n.Logger.Warn("Failed to read token for unread count poll", "error", err)
		return
	}
	if token == "" {
		return
	}

	var count int
	op := func() error {
		var opErr error
		count, opErr = n.Api.GetUnreadNotificationCount(ctx)
		return opErr
	}

	if err := retry.Do(ctx, n.Logger, "GetUnreadNotificationCount", op, retry.DefaultConfig()); err != nil {
		n.Logger.Error("Failed to fetch unread count", "error", err)
		return
	}

	n.Caches.Notifications.Set(unreadCountCacheKey, count)
	n.Controller.SetUnreadCount(count)
}
