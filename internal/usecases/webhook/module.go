package webhook

import (
	"context"
	"fmt"
	"log/slog"

	tgAdapter "github.com/admin/tg-bots/bot-skeleton/internal/adapters/secondary/telegram"
	"github.com/admin/tg-bots/bot-skeleton/internal/ports/telegram"
)

type Service struct {
	Client telegram.IWebhookClient
	Log    *slog.Logger
}

func New(client telegram.IWebhookClient, log *slog.Logger) *Service {
	return &Service{
		Client: client,
		Log:    log,
	}
}

// Register одним запросом регистрирует webhook и возвращает ответ API без проверки статуса
func (s *Service) Register(ctx context.Context, secrets *Secrets) (map[string]any, error) {
	target, err := TargetURL(secrets.AppBaseURL)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.SetWebhook(ctx, tgAdapter.SetWebhookRequest{
		URL:                target,
		SecretToken:        secrets.WebhookSecret,
		DropPendingUpdates: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook: %w", err)
	}

	s.Log.Info("webhook registration sent", "url", target)

	return resp, nil
}

// Delete снимает webhook
func (s *Service) Delete(ctx context.Context) (map[string]any, error) {
	resp, err := s.Client.DeleteWebhook(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to delete webhook: %w", err)
	}

	s.Log.Info("webhook deletion sent")

	return resp, nil
}
