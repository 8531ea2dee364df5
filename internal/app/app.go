package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"github.com/kervan-app/kervan-mobile/internal/api"
	"github.com/kervan-app/kervan-mobile/internal/api/apiimpl"
	"github.com/kervan-app/kervan-mobile/internal/cache"
	"github.com/kervan-app/kervan-mobile/internal/controller"
	"github.com/kervan-app/kervan-mobile/internal/controller/controllerimpl"
	_ "github.com/kervan-app/kervan-mobile/internal/migrations"
	"github.com/kervan-app/kervan-mobile/internal/notifier"
	"github.com/kervan-app/kervan-mobile/internal/notifier/notifierimpl"
	"github.com/kervan-app/kervan-mobile/internal/publisher"
	"github.com/kervan-app/kervan-mobile/internal/publisher/publisherimpl"
	"github.com/kervan-app/kervan-mobile/internal/ratelimit"
	repositories "github.com/kervan-app/kervan-mobile/internal/repositories/fx"
	"github.com/kervan-app/kervan-mobile/internal/session"
	"github.com/kervan-app/kervan-mobile/internal/session/sessionimpl"
	"github.com/kervan-app/kervan-mobile/pkg/config"
	"github.com/kervan-app/kervan-mobile/pkg/logger"
	"github.com/kervan-app/kervan-mobile/pkg/pgx"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
		cache.NewCaches,
		func() ratelimit.Limiter {
			// One submission per flow every 2s: a double-tapped publish
			// button fires once.
			return ratelimit.NewInMemoryLimiter(1, 2*time.Second, 1)
		},
	),
	fx.Provide(
		fx.Annotate(
			sessionimpl.New,
			fx.As(new(session.Store)),
			fx.As(new(api.TokenProvider)),
		),
		fx.Annotate(
			apiimpl.New,
			fx.As(new(api.Client)),
		),
		fx.Annotate(
			controllerimpl.New,
			fx.As(new(controller.Client)),
		),
		fx.Annotate(
			publisherimpl.New,
			fx.As(new(publisher.Client)),
		),
		fx.Annotate(
			notifierimpl.New,
			fx.As(new(notifier.Client)),
		),
	),
	repositories.Module,
	fx.Invoke(
		func(c *config.Config) error {
			if err := goose.SetDialect("postgres"); err != nil {
				return err
			}

			db, err := sql.Open("postgres", c.GetDSN())
			if err != nil {
				return err
			}
			defer db.Close()

			return goose.Up(db, ".")
		}),
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config,
	ctrl controller.Client, pub publisher.Client, ntf notifier.Client) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {

			go startHttpServer(log, cfg)

			ctx := context.Background()
			if err := ntf.ScheduleUnreadCountPolling(ctx); err != nil {
				log.Error("Failed to schedule unread count polling", "error", err)
			}

			log.Info("Client runtime ready", "tab", string(ctrl.Snapshot().ActiveTab))

			return nil
		},
	})
}

func startHttpServer(log logger.Logger, cfg *config.Config) {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})

	log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))

	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), nil); err != nil {
		log.Error("Server failed to start", "error", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Info("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
