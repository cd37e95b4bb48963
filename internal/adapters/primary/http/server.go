package server

import (
	"net"
	"net/http"
	"time"

	"log/slog"

	"github.com/admin/tg-bots/bot-skeleton/internal/adapters/primary/http/middlewares"
	"github.com/gin-gonic/gin"
)

type Config struct {
	Host                    string        `envconfig:"HOST"`
	Port                    string        `envconfig:"PORT" default:"8000"`
	WriteTimeout            time.Duration `envconfig:"WRITE_TIMEOUT" default:"60s"`
	ReadTimeout             time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	ReadHeaderTimeout       time.Duration `envconfig:"READ_HEADER_TIMEOUT" default:"3s"`
	IdleTimeout             time.Duration `envconfig:"IDLE_TIMEOUT" default:"15s"`
	EnableLoggingMiddleware bool          `envconfig:"ENABLE_LOGGING_MIDDLEWARE" default:"false"`
}

// Site настройки сайта, общие для всех маршрутов
type Site struct {
	AllowedHosts []string
	Debug        bool
	StaticURL    string
	StaticRoot   string
}

type Controller interface {
	RegisterRoutes(router gin.IRouter)
}

// NewHTTPServer собирает роутер. probes регистрируются до проверки Host,
// остальные контроллеры доступны только для ALLOWED_HOSTS.
func NewHTTPServer(
	cfg *Config,
	site Site,
	logger *slog.Logger,
	probes []Controller,
	controllers ...Controller,
) *http.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middlewares.RecoveryLogger(logger))
	if cfg.EnableLoggingMiddleware {
		router.Use(middlewares.RequestLogger(logger))
	}

	for _, probe := range probes {
		probe.RegisterRoutes(router)
	}

	site.AllowedHosts = middlewares.EffectiveAllowedHosts(site.AllowedHosts, site.Debug)
	public := router.Group("", middlewares.AllowedHosts(site.AllowedHosts, logger))

	// Регистрируем маршруты всех контроллеров
	for _, controller := range controllers {
		controller.RegisterRoutes(public)
	}

	// статику в проде отдаёт внешний веб-сервер
	if site.Debug && site.StaticURL != "" && site.StaticRoot != "" {
		public.Static(site.StaticURL, site.StaticRoot)
	}

	server := &http.Server{
		Handler:           router,
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	return server
}
