package webhook

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/admin/tg-bots/bot-skeleton/internal/domain"
	"github.com/joho/godotenv"
)

const (
	DefaultEnvFile = ".env.prod"

	KeyBotToken      = "BOT_TOKEN"
	KeyAppBaseURL    = "APP_BASE_URL"
	KeyWebhookSecret = "WEBHOOK_SECRET"
)

// Secrets значения из env-файла, нужные для регистрации webhook
type Secrets struct {
	BotToken      string
	AppBaseURL    string
	WebhookSecret string
}

// MissingFieldError в env-файле нет обязательных ключей
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return KeyBotToken + " and " + KeyAppBaseURL + " required"
}

// LoadSecrets читает env-файл, не изменяя окружение процесса.
// Отсутствующий файл равносилен пустому.
func LoadSecrets(path string) (*Secrets, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
		}
		values = map[string]string{}
	}

	secrets := &Secrets{
		BotToken:      values[KeyBotToken],
		AppBaseURL:    values[KeyAppBaseURL],
		WebhookSecret: values[KeyWebhookSecret],
	}

	if err := secrets.Validate(); err != nil {
		return nil, err
	}

	return secrets, nil
}

func (s *Secrets) Validate() error {
	var missing []string
	if strings.TrimSpace(s.BotToken) == "" {
		missing = append(missing, KeyBotToken)
	}
	if strings.TrimSpace(s.AppBaseURL) == "" {
		missing = append(missing, KeyAppBaseURL)
	}

	if len(missing) > 0 {
		return &MissingFieldError{Fields: missing}
	}

	return nil
}

// TargetURL подставляет путь webhook вместо пути базового адреса
func TargetURL(baseURL string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid %s: %w", KeyAppBaseURL, err)
	}
	if !base.IsAbs() || base.Host == "" {
		return "", fmt.Errorf("invalid %s: %q is not an absolute URL", KeyAppBaseURL, baseURL)
	}

	return base.ResolveReference(&url.URL{Path: domain.WebhookPath}).String(), nil
}
