package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	server "github.com/admin/tg-bots/bot-skeleton/internal/adapters/primary/http"
	healthcheckController "github.com/admin/tg-bots/bot-skeleton/internal/adapters/primary/http/controllers/healthcheck"
	telegramController "github.com/admin/tg-bots/bot-skeleton/internal/adapters/primary/http/controllers/telegram"
	"github.com/admin/tg-bots/bot-skeleton/internal/pkg/logger"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	Name string
	Cfg  *Config
	Log  *slog.Logger
}

func New(name string, cfg *Config, opts ...logger.Option) *App {
	return &App{
		Name: name,
		Cfg:  cfg,
		Log:  logger.New(name, cfg.Log, opts...),
	}
}

// Run поднимает HTTP сервер и блокируется до отмены ctx
func (a *App) Run(ctx context.Context) error {
	a.Log.Info("starting web app",
		"debug", a.Cfg.Debug(),
		"allowed_hosts", a.Cfg.AllowedHosts,
		"static_root", a.Cfg.StaticRoot,
		"media_root", a.Cfg.MediaRoot,
	)

	if a.Cfg.InsecureSecretKey() && !a.Cfg.Debug() {
		a.Log.Warn("DJANGO_SECRET_KEY is not set, using insecure default")
	}

	db, err := a.initDatabase()
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}

	httpServer := a.initHTTP(db)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("starting http server",
			"host", a.Cfg.Server.Host,
			"port", a.Cfg.Server.Port)

		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.Log.Info("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			a.Log.Error("failed to shutdown http server", "error", err)
		}

		if err := db.Close(); err != nil {
			a.Log.Error("failed to close database", "error", err)
		}

		a.Log.Info("application shutdown completed")
		return nil
	})

	if err := g.Wait(); err != nil {
		a.Log.Error("application error", "error", err)
		return err
	}

	return nil
}

func (a *App) initDatabase() (*sqlx.DB, error) {
	db, err := a.Cfg.Database.Open(a.Cfg.BaseDir)
	if err != nil {
		return nil, err
	}

	a.Log.Info("database configured", "driver", a.Cfg.Database.Driver)

	return db, nil
}

// initHTTP собирает таблицу маршрутов
func (a *App) initHTTP(db healthcheckController.Pinger) *http.Server {
	healthCheck := healthcheckController.New(db, a.Log)
	webhook := telegramController.New(a.Cfg.WebhookSecret, a.Log)

	return server.NewHTTPServer(
		a.Cfg.Server,
		a.Cfg.Site(),
		a.Log,
		[]server.Controller{healthCheck},
		webhook,
	)
}
