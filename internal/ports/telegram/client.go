package telegram

import (
	"context"

	tgAdapter "github.com/admin/tg-bots/bot-skeleton/internal/adapters/secondary/telegram"
)

// IWebhookClient интерфейс для управления webhook через Telegram API
type IWebhookClient interface {
	SetWebhook(ctx context.Context, req tgAdapter.SetWebhookRequest) (map[string]any, error)
	DeleteWebhook(ctx context.Context) (map[string]any, error)
}
