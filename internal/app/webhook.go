package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	tgAdapter "github.com/admin/tg-bots/bot-skeleton/internal/adapters/secondary/telegram"
	webhookUsecase "github.com/admin/tg-bots/bot-skeleton/internal/usecases/webhook"
)

// WebhookCommand параметры разовой регистрации (или снятия) webhook
type WebhookCommand struct {
	EnvFile string
	Delete  bool
	APIURL  string // пусто - api.telegram.org
	Stdout  io.Writer
	Log     *slog.Logger
}

// RunWebhookCommand читает секреты, делает один запрос к Bot API и печатает ответ как JSON.
// Без BOT_TOKEN или APP_BASE_URL возвращает ошибку до любых сетевых запросов.
func RunWebhookCommand(ctx context.Context, cmd WebhookCommand) error {
	secrets, err := webhookUsecase.LoadSecrets(cmd.EnvFile)
	if err != nil {
		return err
	}

	var opts []tgAdapter.Option
	if cmd.APIURL != "" {
		opts = append(opts, tgAdapter.WithAPIURL(cmd.APIURL))
	}

	client := tgAdapter.NewClient(secrets.BotToken, cmd.Log, opts...)
	svc := webhookUsecase.New(client, cmd.Log)

	var resp map[string]any
	if cmd.Delete {
		resp, err = svc.Delete(ctx)
	} else {
		resp, err = svc.Register(ctx, secrets)
	}
	if err != nil {
		return err
	}

	return json.NewEncoder(cmd.Stdout).Encode(resp)
}
