package shopping_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/shoplist/handler"
	"github.com/dmitrymomot/shoplist/modules/shopping"
	"github.com/dmitrymomot/shoplist/modules/shopping/views"
	"github.com/dmitrymomot/shoplist/pkg/logger"
	"github.com/dmitrymomot/shoplist/pkg/shoplist"
	"github.com/dmitrymomot/shoplist/pkg/visitor"
)

type fixture struct {
	store   *shoplist.Store
	handler http.Handler
	visitor string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := shoplist.NewStore(8)
	errHandler := handler.NewErrorHandler(logger.Discard(), handler.ErrorHandlerConfig{
		ErrorPage:  views.ErrorPage,
		ErrorToast: views.ErrorToast,
		Messages: map[string]string{
			"not_found":   "Item não encontrado.",
			"bad_request": "Requisição inválida.",
		},
	})
	svc := shopping.NewService(shopping.Config{DatastarScript: "/datastar.js"}, store, views.Default(), nil, errHandler)

	return &fixture{
		store:   store,
		handler: visitor.Middleware()(svc.Handle()),
		visitor: uuid.NewString(),
	}
}

func (f *fixture) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	req.AddCookie(&http.Cookie{Name: visitor.DefaultCookieName, Value: f.visitor})
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) list() *shoplist.List {
	return f.store.List(f.visitor)
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func datastarForm(method, target string, values url.Values) *http.Request {
	req := formRequest(method, target, values)
	req.Header.Set("Datastar-Request", "true")
	return req
}

func datastarSignals(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Datastar-Request", "true")
	return req
}

func TestPage(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.list().Add(shoplist.Item{ID: uuid.New(), Name: "Arroz", Quantity: "2kg"})

	rec := f.do(t, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Lista de compras</title>")
	assert.Contains(t, body, `src="/datastar.js"`)
	assert.Contains(t, body, `<p class="item__name">Arroz</p>`)
	assert.Contains(t, body, "0 de 1 itens comprados")
}

func TestPage_IssuesVisitorCookie(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, visitor.DefaultCookieName, cookies[0].Name)
	assert.Equal(t, 1, f.store.Len())
}

func TestAddItem_Plain(t *testing.T) {
	t.Parallel()

	t.Run("success redirects", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		rec := f.do(t, formRequest(http.MethodPost, "/items", url.Values{"name": {" Arroz 123 "}, "qty": {"2 Kg"}}))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		items := f.list().Items()
		require.Len(t, items, 1)
		assert.Equal(t, "Arroz", items[0].Name)
		assert.Equal(t, "2kg", items[0].Quantity)
		assert.False(t, items[0].Completed)
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		rec := f.do(t, formRequest(http.MethodPost, "/items", url.Values{"name": {"123"}, "qty": {"10"}}))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), shoplist.MsgNameRequired)
		assert.Equal(t, 0, f.list().Len())
	})

	t.Run("dangling k is rejected", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		rec := f.do(t, formRequest(http.MethodPost, "/items", url.Values{"name": {"Arroz"}, "qty": {"10k"}}))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Quantidade inválida. Use 10, 10g ou 10kg")
		assert.Contains(t, body, `value="Arroz"`)
		assert.Equal(t, 0, f.list().Len())
	})
}

func TestAddItem_Datastar(t *testing.T) {
	t.Parallel()

	t.Run("success patches row, form, signals and summary", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		rec := f.do(t, datastarForm(http.MethodPost, "/items", url.Values{"name": {"Leite"}, "qty": {"2"}}))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "selector #items")
		assert.Contains(t, body, "mode append")
		assert.Contains(t, body, `<p class="item__name">Leite</p>`)
		assert.Contains(t, body, `id="item-form"`)
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `{"name":"","qty":""}`)
		assert.Contains(t, body, "0 de 1 itens comprados")
		assert.Equal(t, 1, f.list().Len())
	})

	t.Run("failure re-renders the form and focuses the field", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		rec := f.do(t, datastarSignals("/items", `{"name":"Arroz","qty":"10k"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, shoplist.MsgInvalidQuantity)
		assert.Contains(t, body, `id="item-form"`)
		assert.Contains(t, body, `document.getElementById("qty")?.focus()`)
		assert.NotContains(t, body, "datastar-patch-signals")
		assert.Equal(t, 0, f.list().Len())
	})

	t.Run("sanitized quantity is accepted", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		rec := f.do(t, datastarSignals("/items", `{"name":"Arroz","qty":"10kgg"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		items := f.list().Items()
		require.Len(t, items, 1)
		assert.Equal(t, "10", items[0].Quantity)
	})
}

func TestToggleItem(t *testing.T) {
	t.Parallel()

	t.Run("plain", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		item := f.list().Add(shoplist.Item{ID: uuid.New(), Name: "Pão"})

		rec := f.do(t, formRequest(http.MethodPost, "/items/"+item.ID.String()+"/toggle", url.Values{}))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		got, err := f.list().Get(item.ID)
		require.NoError(t, err)
		assert.True(t, got.Completed)
	})

	t.Run("datastar", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		item := f.list().Add(shoplist.Item{ID: uuid.New(), Name: "Pão"})
		f.list().Add(shoplist.Item{ID: uuid.New(), Name: "Café"})

		req := httptest.NewRequest(http.MethodPost, "/items/"+item.ID.String()+"/toggle", nil)
		req.Header.Set("Datastar-Request", "true")
		rec := f.do(t, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "item--completed")
		assert.Contains(t, body, `aria-label="Desmarcar como comprado"`)
		assert.Contains(t, body, "1 de 2 itens comprados")
		assert.Contains(t, body, "--progress: 50%")
	})

	t.Run("unknown item", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		rec := f.do(t, formRequest(http.MethodPost, "/items/"+uuid.NewString()+"/toggle", url.Values{}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Item não encontrado.")
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		req := httptest.NewRequest(http.MethodPost, "/items/not-an-id/toggle", nil)
		req.Header.Set("Datastar-Request", "true")
		rec := f.do(t, req)

		body := rec.Body.String()
		assert.Contains(t, body, "selector #toast-container")
		assert.Contains(t, body, "Requisição inválida.")
	})
}

func TestRemoveItem(t *testing.T) {
	t.Parallel()

	t.Run("datastar delete", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		item := f.list().Add(shoplist.Item{ID: uuid.New(), Name: "Ovos"})

		req := httptest.NewRequest(http.MethodDelete, "/items/"+item.ID.String(), nil)
		req.Header.Set("Datastar-Request", "true")
		rec := f.do(t, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "selector #item-"+item.ID.String())
		assert.Contains(t, body, "mode remove")
		assert.Contains(t, body, "0 de 0 itens comprados")
		assert.Equal(t, 0, f.list().Len())
	})

	t.Run("plain post", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		item := f.list().Add(shoplist.Item{ID: uuid.New(), Name: "Ovos"})

		rec := f.do(t, formRequest(http.MethodPost, "/items/"+item.ID.String()+"/delete", url.Values{}))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, 0, f.list().Len())
	})

	t.Run("twice", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		item := f.list().Add(shoplist.Item{ID: uuid.New(), Name: "Ovos"})

		f.do(t, httptest.NewRequest(http.MethodDelete, "/items/"+item.ID.String(), nil))
		rec := f.do(t, httptest.NewRequest(http.MethodDelete, "/items/"+item.ID.String(), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestFieldSanitizers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		body   string
		want   string
	}{
		{"name strips digits", "/fields/name", `{"name":"Arroz 2"}`, `{"name":"Arroz "}`},
		{"qty keeps transient k", "/fields/qty", `{"qty":"10 K"}`, `{"qty":"10k"}`},
		{"qty falls back to digits", "/fields/qty", `{"qty":"10kgg"}`, `{"qty":"10"}`},
		{"blur drops dangling k", "/fields/qty/blur", `{"qty":"10k"}`, `{"qty":"10"}`},
		{"blur keeps kg", "/fields/qty/blur", `{"qty":"10kg"}`, `{"qty":"10kg"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)

			rec := f.do(t, datastarSignals(tt.target, tt.body))

			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, "datastar-patch-signals")
			assert.Contains(t, body, tt.want)
		})
	}
}

func TestFieldSanitizers_Plain(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, formRequest(http.MethodPost, "/fields/qty", url.Values{"qty": {"5 G"}}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"qty":"5g"}`, rec.Body.String())
}

func TestFieldSanitizers_QuantityAfterBlur(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		blurred string
		want    string
	}{
		{"focused keeps transient k", `{"qty":"10k"}`, "false", `{"qty":"10k"}`},
		{"blurred drops dangling k", `{"qty":"10k"}`, "true", `{"qty":"10"}`},
		{"blurred keeps kg", `{"qty":"10 KG"}`, "true", `{"qty":"10kg"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)

			req := datastarSignals("/fields/qty", tt.body)
			req.Header.Set(shopping.FieldBlurredHeader, tt.blurred)
			rec := f.do(t, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestBindErrors(t *testing.T) {
	t.Parallel()

	t.Run("unsupported content type", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader("name=Arroz"))
		req.Header.Set("Content-Type", "text/plain")
		rec := f.do(t, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		assert.Contains(t, rec.Body.String(), "unsupported_media_type")
		assert.Equal(t, 0, f.list().Len())
	})

	t.Run("malformed form body", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader("name=%zz"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := f.do(t, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Requisição inválida.")
		assert.Equal(t, 0, f.list().Len())
	})

	t.Run("truncated signals", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		rec := f.do(t, datastarSignals("/fields/qty", `{"qty":`))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "toast--warning")
		assert.Contains(t, body, "Requisição inválida.")
		assert.NotContains(t, body, "datastar-patch-signals")
	})
}

func TestUnknownRoutes(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		rec := f.do(t, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "error-page")
	})

	t.Run("method not allowed", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		rec := f.do(t, httptest.NewRequest(http.MethodPut, "/items", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Contains(t, rec.Body.String(), "method_not_allowed")
	})
}

func TestSummary(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	a := f.list().Add(shoplist.Item{ID: uuid.New(), Name: "A"})
	f.list().Add(shoplist.Item{ID: uuid.New(), Name: "B"})
	f.list().Add(shoplist.Item{ID: uuid.New(), Name: "C"})
	_, err := f.list().Toggle(a.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	req.Header.Set("Datastar-Request", "true")
	rec := f.do(t, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "1 de 3 itens comprados")
	assert.Contains(t, body, `data-stat="remaining">2<`)
	assert.Contains(t, body, "--progress: 33%")
}
