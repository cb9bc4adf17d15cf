// Package clientip resolves the address of the browser behind a request so
// it can be attached to log records.
//
// Forwarding headers are only consulted when the server is told to trust
// them, since any client can send them.
package clientip

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultHeaders are the proxy headers read by Resolver when none are given,
// in priority order.
var DefaultHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

// Resolver extracts the client address from requests.
type Resolver struct {
	headers []string
}

// NewResolver returns a Resolver reading headers in order before falling
// back to the connection address. Pass no headers to trust only the
// connection.
func NewResolver(headers ...string) *Resolver {
	return &Resolver{headers: headers}
}

// IP returns the first valid address found, or "".
func (rs *Resolver) IP(r *http.Request) string {
	for _, h := range rs.headers {
		// X-Forwarded-For lists the original client first
		for part := range strings.SplitSeq(r.Header.Get(h), ",") {
			if ip := parse(part); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parse(r.RemoteAddr)
	}
	return parse(host)
}

func parse(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}

// Middleware stores the resolved address in the request context.
func (rs *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), rs.IP(r))))
	})
}

type contextKey struct{}

// WithContext stores ip in ctx.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the address stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// LoggerExtractor adds the client address to log records.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}
