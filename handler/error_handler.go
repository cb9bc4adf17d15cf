package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/shoplist/pkg/logger"
	"github.com/dmitrymomot/shoplist/pkg/requestid"
	"github.com/dmitrymomot/shoplist/pkg/validator"
)

// ErrorPageParams is the data passed to the error page component.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams is the data passed to the error toast component.
type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning" or "info"
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders the full page for plain requests.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders a notification for DataStar requests.
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget defaults to "#toast-container".
	ToastTarget string

	// ToastMode defaults to PatchPrepend.
	ToastMode datastar.ElementPatchMode

	// Messages maps HTTPError keys to user-facing text. Unmapped keys are
	// shown as is.
	Messages map[string]string
}

// ErrorInfo is the classification of an error.
type ErrorInfo struct {
	StatusCode int
	Message    string
	Type       string
	LogLevel   slog.Level
}

const genericErrorMessage = "An error occurred processing your request"

func isClientError(code int) bool {
	return code >= http.StatusBadRequest && code < http.StatusInternalServerError
}

// ClassifyError maps err to a status code, message and log level.
// Validation errors become 422 with their messages in field order.
func ClassifyError(err error, messages map[string]string) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    genericErrorMessage,
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
		if msg, ok := messages[httpErr.Key]; ok {
			info.Message = msg
		}
	}

	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		info.StatusCode = http.StatusUnprocessableEntity
		info.Message = formatValidationErrors(verrs)
	}

	switch {
	case isClientError(info.StatusCode):
		info.Type = "warning"
		info.LogLevel = slog.LevelWarn
	case info.StatusCode >= http.StatusInternalServerError:
		info.Type = "error"
		info.LogLevel = slog.LevelError
	default:
		info.Type = "info"
		info.LogLevel = slog.LevelInfo
	}

	return info
}

func formatValidationErrors(verrs validator.ValidationErrors) string {
	var msgs []string
	for _, field := range verrs.Fields() {
		msgs = append(msgs, verrs.Get(field)...)
	}
	if len(msgs) == 0 {
		return "Validation failed"
	}
	return strings.Join(msgs, " ")
}

// NewErrorHandler returns an ErrorHandler that logs the error and renders a
// toast for DataStar requests or an error page for plain ones.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		reqID := requestid.FromContext(r.Context())
		info := ClassifyError(err, cfg.Messages)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
		)

		if IsDataStar(r) {
			renderToast(ctx, cfg, info, reqID, log)
			return
		}
		renderPage(ctx, cfg, info, reqID, log)
	}
}

func renderToast(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, reqID string, log *slog.Logger) {
	if cfg.ErrorToast == nil {
		log.Warn("no error toast component configured")
		return
	}

	toast := cfg.ErrorToast(ErrorToastParams{
		Message:   info.Message,
		Type:      info.Type,
		RequestID: reqID,
	})
	resp := Templ(toast, WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
	if err := resp.Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		log.Error("failed to render error toast", logger.Error(err), logger.Event("render_error_toast"))
	}
}

func renderPage(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, reqID string, log *slog.Logger) {
	w := ctx.ResponseWriter()
	if cfg.ErrorPage == nil {
		http.Error(w, info.Message, info.StatusCode)
		return
	}

	page := cfg.ErrorPage(ErrorPageParams{
		Error:      info.Message,
		StatusCode: info.StatusCode,
		RequestID:  reqID,
		RetryURL:   ctx.Request().URL.Path,
	})
	if err := TemplWithStatus(info.StatusCode, page).Render(w, ctx.Request()); err != nil {
		log.Error("failed to render error page", logger.Error(err), logger.Event("render_error_page"))
	}
}
