package telegram

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/admin/tg-bots/bot-skeleton/internal/domain"
	"github.com/gin-gonic/gin"
)

// Controller принимает обновления Telegram. Обработки нет: только проверка секрета и подтверждение.
type Controller struct {
	secret string
	Log    *slog.Logger
}

func New(secret string, log *slog.Logger) *Controller {
	return &Controller{
		secret: secret,
		Log:    log,
	}
}

func (c *Controller) RegisterRoutes(router gin.IRouter) {
	router.POST(domain.WebhookPath, c.handleWebhook)
}

// checkSecret без настроенного секрета заголовок не требуется
func (c *Controller) checkSecret(token string) error {
	if c.secret == "" {
		return nil
	}
	if token == "" {
		return domain.ErrSecretTokenRequired
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(c.secret)) != 1 {
		return domain.ErrInvalidSecretToken
	}
	return nil
}

func (c *Controller) handleWebhook(ctx *gin.Context) {
	if err := c.checkSecret(ctx.GetHeader(domain.SecretTokenHeader)); err != nil {
		c.Log.Warn("rejected webhook request",
			"error", err,
			"client_ip", ctx.ClientIP(),
		)
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var update domain.Update

	if err := ctx.ShouldBindJSON(&update); err != nil {
		c.Log.Error("failed to bind webhook request", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	c.Log.Debug("received webhook update",
		"update_id", update.UpdateID,
		"chat_id", update.ChatID(),
	)

	// Telegram ожидает 200 OK в ответ
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

