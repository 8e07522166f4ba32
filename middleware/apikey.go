package middleware

import (
	"log"
	"net"
	"net/http"
	"strings"
)

// APIKey gates a subrouter behind an x-api-key header check. An empty
// configured key locks the gated routes entirely rather than opening them.
func APIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" || r.Header.Get("x-api-key") != key {
				log.Printf("[SECURITY] 🔒 Blocked - Invalid API key. IP=%s Path=%s", clientIP(r), r.URL.Path)
				http.Error(w, "Invalid or missing API key", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
