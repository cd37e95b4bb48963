package telegram

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/admin/tg-bots/bot-skeleton/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const update = `{"update_id":10,"message":{"message_id":1,"date":1700000000,"chat":{"id":42,"type":"private"}}}`

func serve(t *testing.T, secret, header, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	New(secret, slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodPost, domain.WebhookPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if header != "" {
		req.Header.Set(domain.SecretTokenHeader, header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleWebhook_Accepts(t *testing.T) {
	w := serve(t, "s3cr3t", "s3cr3t", update)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestHandleWebhook_NoSecretConfigured(t *testing.T) {
	w := serve(t, "", "", update)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandleWebhook_RejectsSecret(t *testing.T) {
	w := serve(t, "s3cr3t", "", update)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":"secret token required"}`, w.Body.String())

	w = serve(t, "s3cr3t", "wrong", update)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":"invalid secret token"}`, w.Body.String())
}

func TestHandleWebhook_MalformedBody(t *testing.T) {
	w := serve(t, "s3cr3t", "s3cr3t", `{"update_id":`)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateChatID(t *testing.T) {
	require.Equal(t, int64(0), (&domain.Update{}).ChatID())
	require.Equal(t, int64(42), (&domain.Update{Message: &domain.Message{Chat: &domain.Chat{ID: 42}}}).ChatID())
}
