package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

const (
	EncodingJSON    = "json"
	EncodingConsole = "console"

	// NameKey ключ, под которым в запись попадает имя логгера
	NameKey    = "logger"
	MessageKey = "message"
)

type Config struct {
	Encoding string `envconfig:"ENCODING" default:"json"`
	Level    string `envconfig:"LEVEL" default:"info"`
}

type options struct {
	out io.Writer
}

type Option func(*options)

// WithOutput переопределяет приёмник логов (по умолчанию stdout для json и stderr для console)
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// New создаёт логгер с именем name. Вызывается один раз в каждой точке входа.
func New(name string, cfg *Config, opts ...Option) *slog.Logger {
	if cfg == nil {
		cfg = &Config{}
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = EncodingJSON
	}

	levelName := cfg.Level
	if levelName == "" {
		levelName = "info"
	}

	level := parseLevel(levelName)

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var handler slog.Handler

	switch encoding {
	case EncodingJSON:
		out := o.out
		if out == nil {
			out = os.Stdout
		}
		handler = NewRecordHandler(out, level)
	case EncodingConsole:
		out := o.out
		if out == nil {
			out = os.Stderr
		}
		handler = tint.NewHandler(out, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
		})
	default:
		panic(fmt.Errorf("invalid logger config: encoding %s is not supported", encoding))
	}

	return slog.New(handler).With(NameKey, name)
}

// NewRecordHandler пишет каждую запись одной строкой JSON: level, message, logger.
// Время и source не выводятся, дополнительные атрибуты идут после имени логгера.
func NewRecordHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceRecordAttr,
	})
}

func replaceRecordAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}

	switch a.Key {
	case slog.TimeKey, slog.SourceKey:
		return slog.Attr{}
	case slog.MessageKey:
		a.Key = MessageKey
	}

	return a
}

// parseLevel парсит строковый уровень в slog.Level
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Errorf("invalid logger config: level %s is not supported", level))
	}
}

// SetDefault устанавливает логгер по умолчанию
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}
