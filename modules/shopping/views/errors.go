package views

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/shoplist/handler"
)

// ErrorPage renders a standalone page for failed plain requests.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return render(func(w *writer) {
		w.raw(`<!DOCTYPE html><html lang="pt-BR"><head><meta charset="utf-8"><title>Erro `, fmt.Sprint(p.StatusCode), `</title></head>`,
			`<body><main class="error-page"><h1>Erro `, fmt.Sprint(p.StatusCode), `</h1><p class="error-page__message">`)
		w.text(p.Error)
		w.raw(`</p>`)
		if p.RequestID != "" {
			w.raw(`<p class="error-page__request">Código: <code>`)
			w.text(p.RequestID)
			w.raw(`</code></p>`)
		}
		w.raw(`<a href="/">Voltar para a lista</a></main></body></html>`)
	})
}

// ErrorToast renders a notification prepended to the toast container.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return render(func(w *writer) {
		w.raw(`<div class="toast toast--`, attr(p.Type), `" role="status" data-on:click="el.remove()">`)
		w.text(p.Message)
		w.raw(`</div>`)
	})
}
