package telegram

import (
	"context"
	"net/url"
)

// SetWebhookRequest параметры метода setWebhook
type SetWebhookRequest struct {
	URL                string
	SecretToken        string // пустой не отправляется
	DropPendingUpdates bool
}

func (r SetWebhookRequest) form() url.Values {
	form := url.Values{}
	form.Set("url", r.URL)
	if r.SecretToken != "" {
		form.Set("secret_token", r.SecretToken)
	}
	if r.DropPendingUpdates {
		form.Set("drop_pending_updates", "True")
	}
	return form
}

// SetWebhook регистрирует адрес, на который Telegram будет присылать обновления
func (c *Client) SetWebhook(ctx context.Context, req SetWebhookRequest) (map[string]any, error) {
	c.log.Debug("registering webhook", "url", req.URL, "drop_pending_updates", req.DropPendingUpdates)

	return c.postForm(ctx, "setWebhook", req.form())
}

// DeleteWebhook снимает webhook, отложенные обновления удаляются
func (c *Client) DeleteWebhook(ctx context.Context) (map[string]any, error) {
	form := url.Values{}
	form.Set("drop_pending_updates", "True")

	return c.postForm(ctx, "deleteWebhook", form)
}
