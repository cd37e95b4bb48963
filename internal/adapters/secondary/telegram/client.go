package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"log/slog"
)

const (
	telegramAPIURL = "https://api.telegram.org"
	apiTimeout     = 30 * time.Second
)

// Client клиент для работы с Telegram Bot API
type Client struct {
	httpClient *http.Client
	apiURL     string
	token      string
	log        *slog.Logger
}

type Option func(*Client)

// WithAPIURL подменяет адрес Bot API (тесты, локальный bot-api сервер)
func WithAPIURL(apiURL string) Option {
	return func(c *Client) {
		c.apiURL = strings.TrimRight(apiURL, "/")
	}
}

// WithHTTPClient подменяет HTTP клиент
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient создаёт новый клиент для Telegram Bot API
func NewClient(token string, log *slog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: apiTimeout,
		},
		apiURL: telegramAPIURL,
		token:  token,
		log:    log,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// MethodURL возвращает полный адрес метода Bot API
func (c *Client) MethodURL(method string) string {
	return c.apiURL + "/bot" + c.token + "/" + method
}

// postForm отправляет form-urlencoded запрос и возвращает ответ API как есть.
// Статус ответа не проверяется: тело обязано быть JSON, иначе ошибка.
func (c *Client) postForm(ctx context.Context, method string, form url.Values) (map[string]any, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.MethodURL(method), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// в ошибке url.Error лежит адрес с токеном
		return nil, fmt.Errorf("failed to send %s request: %w", method, redact(err, c.token))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&result); err != nil {
		c.log.Error("failed to unmarshal response",
			"error", err,
			"method", method,
			"status_code", resp.StatusCode,
			"body", string(body),
		)
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err == nil && !apiResp.OK {
		c.log.Warn("telegram API returned error",
			"method", method,
			"error_code", apiResp.ErrorCode,
			"description", apiResp.Description,
			"status_code", resp.StatusCode,
		)
	}

	return result, nil
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

func redact(err error, token string) error {
	if token == "" {
		return err
	}
	return &redactedError{
		msg: strings.ReplaceAll(err.Error(), token, "<token>"),
		err: err,
	}
}
