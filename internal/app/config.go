package app

import (
	server "github.com/admin/tg-bots/bot-skeleton/internal/adapters/primary/http"
	"github.com/admin/tg-bots/bot-skeleton/internal/adapters/secondary/storage/db"
	"github.com/admin/tg-bots/bot-skeleton/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	localEnvFile     = "deployments/local/.env"
	defaultSecretKey = "unsafe-secret"
)

// Config настройки веб-приложения и воркера. Читаются один раз при старте.
type Config struct {
	SecretKey     string   `envconfig:"DJANGO_SECRET_KEY" default:"unsafe-secret"`
	DebugFlag     string   `envconfig:"DJANGO_DEBUG" default:"False"` // только "True" включает debug
	AllowedHosts  []string `envconfig:"ALLOWED_HOSTS" default:"*"`
	StaticURL     string   `envconfig:"STATIC_URL" default:"/static/"`
	StaticRoot    string   `envconfig:"STATIC_ROOT" default:"/app/staticfiles"`
	MediaRoot     string   `envconfig:"MEDIA_ROOT" default:"/app/media"`
	BaseDir       string   `envconfig:"BASE_DIR" default:"."`
	WebhookSecret string   `envconfig:"WEBHOOK_SECRET"`

	Database *db.Config     `envconfig:"DATABASE"`
	Log      *logger.Config `envconfig:"LOG"`
	Server   *server.Config `envconfig:"APISERVER"`
}

func (c *Config) Debug() bool {
	return c.DebugFlag == "True"
}

// InsecureSecretKey true, если ключ не задан и используется значение по умолчанию
func (c *Config) InsecureSecretKey() bool {
	return c.SecretKey == defaultSecretKey
}

func (c *Config) Site() server.Site {
	return server.Site{
		AllowedHosts: c.AllowedHosts,
		Debug:        c.Debug(),
		StaticURL:    c.StaticURL,
		StaticRoot:   c.StaticRoot,
	}
}

func NewEnvConfig() (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load(localEnvFile)

	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
