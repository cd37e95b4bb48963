package middlewares

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHostAllowed(t *testing.T) {
	cases := []struct {
		name  string
		host  string
		hosts []string
		want  bool
	}{
		{name: "wildcard", host: "anything.test", hosts: []string{"*"}, want: true},
		{name: "exact", host: "api.example.com", hosts: []string{"api.example.com"}, want: true},
		{name: "subdomain pattern", host: "a.example.com", hosts: []string{".example.com"}, want: true},
		{name: "subdomain pattern matches apex", host: "example.com", hosts: []string{".example.com"}, want: true},
		{name: "other domain", host: "evil.test", hosts: []string{"example.com"}, want: false},
		{name: "suffix without dot", host: "notexample.com", hosts: []string{".example.com"}, want: false},
		{name: "empty list", host: "example.com", hosts: nil, want: false},
		{name: "empty host", host: "", hosts: []string{"*"}, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, HostAllowed(tc.host, tc.hosts))
		})
	}
}

func TestEffectiveAllowedHosts(t *testing.T) {
	require.Equal(t, []string{"localhost", "127.0.0.1", "[::1]"}, EffectiveAllowedHosts([]string{""}, true))
	require.Empty(t, EffectiveAllowedHosts(nil, false))
	require.Equal(t, []string{"example.com", "*"}, EffectiveAllowedHosts([]string{" Example.com", "*"}, false))
}

func TestRequestHostStripsPort(t *testing.T) {
	require.Equal(t, "example.com", requestHost("Example.com:8000"))
	require.Equal(t, "[::1]", requestHost("[::1]:8000"))
	require.Equal(t, "[::1]", requestHost("[::1]"))
	require.Equal(t, "example.com", requestHost("example.com."))
}

func TestAllowedHostsMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(AllowedHosts([]string{"example.com"}, discard()))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Host = "example.com:8000"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Host = "evil.test"
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(RequestLogger(log))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusTeapot, "") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping?x=1", nil))

	require.NotEmpty(t, w.Header().Get(RequestIDHeader))
	require.Contains(t, buf.String(), `"level":"WARN"`)
	require.Contains(t, buf.String(), `"status":418`)
	require.Contains(t, buf.String(), w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
}

func TestRecoveryLogger(t *testing.T) {
	router := gin.New()
	router.Use(RecoveryLogger(discard()))
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
