package clientip

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/dmitrymomot/recordkit/pkg/logger"
)

// GetIP returns the client address of r, or "" when none is valid.
// Proxy headers are checked in order:
//  1. X-Forwarded-For, first valid entry
//  2. X-Real-IP
//  3. RemoteAddr
func GetIP(r *http.Request) string {
	for ip := range strings.SplitSeq(r.Header.Get("X-Forwarded-For"), ",") {
		if parsed := parseIP(ip); parsed != "" {
			return parsed
		}
	}
	if parsed := parseIP(r.Header.Get("X-Real-IP")); parsed != "" {
		return parsed
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}

type contextKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the address stored by Middleware.
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware stores the client address in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), GetIP(r))))
	})
}

// LogExtractor adds client_ip to records logged with a request context.
func LogExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		ip := FromContext(ctx)
		if ip == "" {
			return slog.Attr{}, false
		}
		return slog.String("client_ip", ip), true
	}
}
