package handler_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/shoplist/handler"
	"github.com/dmitrymomot/shoplist/pkg/validator"
)

func mockErrorPage(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "Error %d: %s", p.StatusCode, p.Error)
		return err
	})
}

func mockErrorToast(p handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="toast toast--%s">%s</div>`, p.Type, p.Message)
		return err
	})
}

func TestClassifyError(t *testing.T) {
	t.Parallel()

	verrs := validator.ValidationErrors{
		{Field: "name", Message: "Nome é obrigatório."},
		{Field: "qty", Message: "Quantidade inválida. Use 10, 10g ou 10kg"},
	}

	tests := []struct {
		name    string
		err     error
		code    int
		message string
		level   slog.Level
		kind    string
	}{
		{name: "generic", err: errors.New("boom"), code: 500, message: "An error occurred processing your request", level: slog.LevelError, kind: "error"},
		{name: "http error", err: handler.ErrNotFound, code: 404, message: "Item não encontrado.", level: slog.LevelWarn, kind: "warning"},
		{name: "unmapped key", err: handler.ErrBadRequest, code: 400, message: "bad_request", level: slog.LevelWarn, kind: "warning"},
		{name: "validation", err: fmt.Errorf("submit: %w", verrs), code: 422, message: "Nome é obrigatório. Quantidade inválida. Use 10, 10g ou 10kg", level: slog.LevelWarn, kind: "warning"},
	}

	messages := map[string]string{"not_found": "Item não encontrado."}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := handler.ClassifyError(tt.err, messages)
			assert.Equal(t, tt.code, info.StatusCode)
			assert.Equal(t, tt.message, info.Message)
			assert.Equal(t, tt.level, info.LogLevel)
			assert.Equal(t, tt.kind, info.Type)
		})
	}
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("plain request renders page with status", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&logs, nil))
		eh := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{ErrorPage: mockErrorPage})

		w := httptest.NewRecorder()
		eh(handler.NewContext(w, plainRequest(http.MethodGet, "/missing")), handler.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Error 404: not_found", w.Body.String())
		assert.Contains(t, logs.String(), `"level":"WARN"`)
		assert.Contains(t, logs.String(), `"component":"error_handler"`)
	})

	t.Run("plain request without page falls back to text", func(t *testing.T) {
		t.Parallel()

		eh := handler.NewErrorHandler(nil, handler.ErrorHandlerConfig{})
		w := httptest.NewRecorder()
		eh(handler.NewContext(w, plainRequest(http.MethodGet, "/")), errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "An error occurred")
	})

	t.Run("datastar request gets a toast", func(t *testing.T) {
		t.Parallel()

		log := slog.New(slog.NewTextHandler(io.Discard, nil))
		eh := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
			ErrorPage:  mockErrorPage,
			ErrorToast: mockErrorToast,
		})

		w := httptest.NewRecorder()
		eh(handler.NewContext(w, datastarRequest(http.MethodPost, "/items/x/toggle")), handler.ErrNotFound)

		body := w.Body.String()
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, body, "selector #toast-container")
		assert.Contains(t, body, "mode prepend")
		assert.Contains(t, body, `toast--warning`)
	})

	t.Run("datastar request without toast writes nothing", func(t *testing.T) {
		t.Parallel()

		log := slog.New(slog.NewTextHandler(io.Discard, nil))
		eh := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{})
		w := httptest.NewRecorder()
		eh(handler.NewContext(w, datastarRequest(http.MethodPost, "/")), handler.ErrNotFound)

		assert.Empty(t, w.Body.String())
	})
}
