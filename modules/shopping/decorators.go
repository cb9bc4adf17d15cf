package shopping

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/shoplist/handler"
	"github.com/dmitrymomot/shoplist/pkg/logger"
)

// traced logs every handled request at debug level with its duration.
func traced[R any](log *slog.Logger, event string) handler.Decorator[handler.Context, R] {
	return func(next handler.HandlerFunc[handler.Context, R]) handler.HandlerFunc[handler.Context, R] {
		return func(ctx handler.Context, req R) handler.Response {
			start := time.Now()
			resp := next(ctx, req)
			log.DebugContext(ctx, "handled",
				logger.Event(event),
				logger.Duration(time.Since(start)),
				slog.Bool("datastar", handler.IsDataStar(ctx.Request())),
			)
			return resp
		}
	}
}
