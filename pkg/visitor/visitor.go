// Package visitor identifies browsers across requests with a long-lived
// cookie holding a random UUID. The id keys each visitor's in-memory
// shopping list; it is not an authentication mechanism.
package visitor

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DefaultCookieName is the cookie carrying the visitor id.
const DefaultCookieName = "shoplist_vid"

const defaultMaxAge = 30 * 24 * time.Hour

type contextKey struct{}

// WithContext stores id in ctx.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the visitor id stored in ctx, or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// LoggerExtractor adds the visitor id to log records.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return slog.String("visitor_id", id), true
		}
		return slog.Attr{}, false
	}
}

// Option configures Middleware.
type Option func(*options)

type options struct {
	cookieName string
	maxAge     time.Duration
	secure     bool
}

// WithCookieName overrides DefaultCookieName.
func WithCookieName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.cookieName = name
		}
	}
}

// WithMaxAge sets how long the browser keeps the cookie.
func WithMaxAge(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.maxAge = d
		}
	}
}

// WithSecure marks the cookie Secure, for deployments behind TLS.
func WithSecure(secure bool) Option {
	return func(o *options) { o.secure = secure }
}

// Middleware reads the visitor cookie, issuing a new id when it is missing
// or not a UUID, and stores the id in the request context.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	o := options{cookieName: DefaultCookieName, maxAge: defaultMaxAge}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(o.cookieName); err == nil {
				if parsed, err := uuid.Parse(c.Value); err == nil {
					id = parsed.String()
				}
			}
			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     o.cookieName,
					Value:    id,
					Path:     "/",
					MaxAge:   int(o.maxAge.Seconds()),
					HttpOnly: true,
					Secure:   o.secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}
