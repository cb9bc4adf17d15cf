// Package shopping serves the shopping list widget over HTTP.
//
// Every route works for plain form posts and for DataStar requests. Plain
// requests get full pages and post/redirect/get answers; DataStar requests
// get element and signal patches for the parts of the page that changed.
package shopping

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/shoplist/handler"
	"github.com/dmitrymomot/shoplist/pkg/binder"
	"github.com/dmitrymomot/shoplist/pkg/logger"
	"github.com/dmitrymomot/shoplist/pkg/shoplist"
	"github.com/dmitrymomot/shoplist/pkg/visitor"
)

// Config holds page level settings.
type Config struct {
	Title          string
	DatastarScript string
}

// Views renders the widget. Every component is required.
type Views struct {
	Page    func(PageParams) templ.Component
	Form    func(FormParams) templ.Component
	ItemRow func(shoplist.Item) templ.Component
	Summary func(shoplist.Stats) templ.Component
	// Focus moves keyboard focus to the input named field.
	Focus func(field string) templ.Component
}

// PageParams is the data of the full page.
type PageParams struct {
	Title          string
	DatastarScript string
	Items          []shoplist.Item
	Stats          shoplist.Stats
	Form           FormParams
}

// FormParams is the data of the add item form.
type FormParams struct {
	Name  string
	Qty   string
	Error string
	// Focus names the input to focus, "name" or "qty".
	Focus string
}

// Service mounts the shopping list routes.
type Service struct {
	cfg          Config
	store        *shoplist.Store
	views        Views
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewService creates a Service. A nil logger discards records.
func NewService(
	cfg Config,
	store *shoplist.Store,
	views Views,
	log *slog.Logger,
	errorHandler handler.ErrorHandler[handler.Context],
) *Service {
	if log == nil {
		log = logger.Discard()
	}
	if cfg.Title == "" {
		cfg.Title = "Lista de compras"
	}
	return &Service{
		cfg:          cfg,
		store:        store,
		views:        views,
		log:          log.With(logger.Component("shopping")),
		errorHandler: errorHandler,
	}
}

// Handle returns the module router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.NotFound(handler.Wrap(routeError(handler.ErrNotFound),
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.MethodNotAllowed(handler.Wrap(routeError(handler.ErrMethodNotAllowed),
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
		handler.WithDecorators(traced[struct{}](s.log, "page")),
	))
	r.Get("/summary", handler.Wrap(s.summary,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
		handler.WithDecorators(traced[struct{}](s.log, "refresh")),
	))

	r.Post("/items", handler.Wrap(s.addItem,
		handler.WithBinders[handler.Context, addItemRequest](binder.Signals(), binder.Form()),
		handler.WithErrorHandler[handler.Context, addItemRequest](s.errorHandler),
		handler.WithDecorators(traced[addItemRequest](s.log, "submit")),
	))

	itemOpts := func(event string) []handler.WrapOption[handler.Context, itemRequest] {
		return []handler.WrapOption[handler.Context, itemRequest]{
			handler.WithBinders[handler.Context, itemRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, itemRequest](s.errorHandler),
			handler.WithDecorators(traced[itemRequest](s.log, event)),
		}
	}
	r.Post("/items/{id}/toggle", handler.Wrap(s.toggleItem, itemOpts("toggle")...))
	r.Delete("/items/{id}", handler.Wrap(s.removeItem, itemOpts("remove")...))
	r.Post("/items/{id}/delete", handler.Wrap(s.removeItem, itemOpts("remove")...))

	fieldOpts := []handler.WrapOption[handler.Context, fieldRequest]{
		handler.WithBinders[handler.Context, fieldRequest](binder.Signals(), binder.Form()),
		handler.WithErrorHandler[handler.Context, fieldRequest](s.errorHandler),
	}
	r.Post("/fields/name", handler.Wrap(s.sanitizeName, fieldOpts...))
	r.Post("/fields/qty", handler.Wrap(s.sanitizeQuantity, fieldOpts...))
	r.Post("/fields/qty/blur", handler.Wrap(s.finalizeQuantity, fieldOpts...))

	return r
}

// list returns the list of the visitor making the request.
func (s *Service) list(ctx handler.Context) *shoplist.List {
	return s.store.List(visitor.FromContext(ctx))
}

func (s *Service) pageParams(items []shoplist.Item, stats shoplist.Stats, form FormParams) PageParams {
	return PageParams{
		Title:          s.cfg.Title,
		DatastarScript: s.cfg.DatastarScript,
		Items:          items,
		Stats:          stats,
		Form:           form,
	}
}
