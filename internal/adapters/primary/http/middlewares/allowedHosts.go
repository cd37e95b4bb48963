package middlewares

import (
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EffectiveAllowedHosts в debug режиме с пустым списком разрешает локальные адреса
func EffectiveAllowedHosts(hosts []string, debug bool) []string {
	cleaned := make([]string, 0, len(hosts))
	for _, h := range hosts {
		h = strings.TrimSpace(h)
		if h != "" {
			cleaned = append(cleaned, strings.ToLower(h))
		}
	}

	if len(cleaned) == 0 && debug {
		return []string{"localhost", "127.0.0.1", "[::1]"}
	}

	return cleaned
}

// AllowedHosts отклоняет запросы, чей Host не входит в список.
// "*" разрешает всё, ".example.com" разрешает домен и все поддомены.
func AllowedHosts(hosts []string, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		host := requestHost(c.Request.Host)
		if !HostAllowed(host, hosts) {
			log.Warn("invalid host header",
				"host", c.Request.Host,
				"path", c.Request.URL.Path,
			)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
		c.Next()
	}
}

func HostAllowed(host string, hosts []string) bool {
	if host == "" {
		return false
	}

	for _, pattern := range hosts {
		switch {
		case pattern == "*":
			return true
		case strings.HasPrefix(pattern, "."):
			if host == pattern[1:] || strings.HasSuffix(host, pattern) {
				return true
			}
		case host == pattern:
			return true
		}
	}

	return false
}

func requestHost(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if host, _, err := net.SplitHostPort(raw); err == nil {
		if strings.Contains(host, ":") {
			return "[" + host + "]"
		}
		return host
	}
	return strings.TrimSuffix(raw, ".")
}
