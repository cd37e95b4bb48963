package domain

// дока - https://core.telegram.org/bots/api

// WebhookPath путь, на который Telegram присылает обновления
const WebhookPath = "/api/webhook/telegram"

// SecretTokenHeader заголовок с секретом, заданным при setWebhook
const SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// Update - входящее обновление от Telegram Bot API
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message,omitempty"`
}

// Message - сообщение от Telegram Bot API
type Message struct {
	MessageID int64 `json:"message_id"`
	Chat      *Chat `json:"chat"`
	Date      int64 `json:"date"` // Unix timestamp
}

// Chat - чат в Telegram
type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"` // "private", "group", "supergroup", "channel"
}

// ChatID возвращает id чата или 0, если в обновлении нет сообщения
func (u *Update) ChatID() int64 {
	if u.Message == nil || u.Message.Chat == nil {
		return 0
	}
	return u.Message.Chat.ID
}
