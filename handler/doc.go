// Package handler turns typed handler functions into http.HandlerFunc values.
//
// A handler binds the request into a struct, does its work and returns a
// Response. Responses adapt to the caller: DataStar requests receive
// server-sent events that patch elements or signals in place, while plain
// form posts and page loads receive HTML or a 303 redirect. The same route
// therefore serves the enhanced page and the page with scripts disabled.
//
//	type toggleRequest struct {
//		ID string `path:"id"`
//	}
//
//	func toggle(ctx handler.Context, req toggleRequest) handler.Response {
//		item, err := list.Toggle(id)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.TemplMulti(
//			handler.Patch(views.ItemRow(item)),
//			handler.Patch(views.Summary(list.Stats())),
//		)
//	}
//
//	r.Post("/items/{id}/toggle", handler.Wrap(toggle,
//		handler.WithBinders[handler.Context, toggleRequest](binder.Path(chi.URLParam)),
//		handler.WithErrorHandler[handler.Context, toggleRequest](errorHandler),
//	))
//
// Errors returned from binders or responses are passed to the configured
// ErrorHandler. NewErrorHandler renders an error page for plain requests and
// a toast for DataStar requests.
package handler
