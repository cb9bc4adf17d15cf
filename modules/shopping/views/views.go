// Package views renders the shopping list markup as templ components.
//
// Class names follow the widget's BEM blocks (shopping-list, item) so the
// stylesheet and the DataStar targets stay in one place.
package views

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/shoplist/modules/shopping"
	"github.com/dmitrymomot/shoplist/pkg/shoplist"
)

// Accessible labels of the row controls.
const (
	LabelMark   = "Marcar como comprado"
	LabelUnmark = "Desmarcar como comprado"
	LabelRemove = "Remover item"
)

// Default returns the components used by the shopping module.
func Default() shopping.Views {
	return shopping.Views{
		Page:    Page,
		Form:    Form,
		ItemRow: ItemRow,
		Summary: Summary,
		Focus:   Focus,
	}
}

// render adapts a writer function to templ.Component, collecting the first
// write error.
func render(fn func(w *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{ctx: ctx, out: out}
		fn(w)
		return w.err
	})
}

type writer struct {
	ctx context.Context
	out io.Writer
	err error
}

// component renders c inline.
func (w *writer) component(c templ.Component) {
	if w.err == nil {
		w.err = c.Render(w.ctx, w.out)
	}
}

// raw writes trusted markup.
func (w *writer) raw(parts ...string) {
	for _, p := range parts {
		if w.err != nil {
			return
		}
		_, w.err = io.WriteString(w.out, p)
	}
}

// text writes s HTML-escaped.
func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

func attr(s string) string {
	return templ.EscapeString(s)
}

// Page renders the full document.
func Page(p shopping.PageParams) templ.Component {
	return render(func(w *writer) {
		w.raw(`<!DOCTYPE html><html lang="pt-BR"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`)
		w.text(p.Title)
		w.raw(`</title>`)
		if p.DatastarScript != "" {
			w.raw(`<script type="module" src="`, attr(p.DatastarScript), `"></script>`)
		}
		w.raw(`</head><body data-on:keydown__window="evt.key.toLowerCase() === 'r' &amp;&amp; @get('/summary')">`,
			`<div id="toast-container" class="toasts" aria-live="polite"></div>`,
			`<main class="shopping-list"><header class="shopping-list__header"><h1 class="shopping-list__title">`)
		w.text(p.Title)
		w.raw(`</h1></header>`)
		w.component(Summary(p.Stats))
		w.component(Form(p.Form))
		w.component(ItemList(p.Items))
		w.raw(`</main></body></html>`)
	})
}

// Form renders the add item form. Inputs are bound to the name and qty
// signals and sanitized by the server while typing.
func Form(p shopping.FormParams) templ.Component {
	return render(func(w *writer) {
		w.raw(`<form id="item-form" class="shopping-list__form" method="post" action="/items" novalidate `,
			`data-signals:name="`, attr(jsString(p.Name)), `" data-signals:qty="`, attr(jsString(p.Qty)), `" `,
			`data-on:submit="@post('/items', {contentType: 'form'})">`)

		w.raw(`<label class="shopping-list__label" for="name">Item</label>`,
			`<input id="name" name="name" type="text" class="shopping-list__input shopping-list__input--name" `,
			`autocomplete="off" placeholder="Ex.: Arroz" value="`, attr(p.Name), `" `,
			`data-bind:name data-on:input__debounce.150ms="@post('/fields/name')"`)
		inputState(w, p, shoplist.FieldName)
		w.raw(`>`)

		w.raw(`<label class="shopping-list__label" for="qty">Quantidade</label>`,
			`<input id="qty" name="qty" type="text" inputmode="numeric" class="shopping-list__input shopping-list__input--qty" `,
			`autocomplete="off" placeholder="Ex.: 10, 10g ou 10kg" value="`, attr(p.Qty), `" `,
			`data-bind:qty data-on:input__debounce.150ms="@post('/fields/qty', {headers: {'X-Field-Blurred': String(document.activeElement !== el)}})" data-on:blur="@post('/fields/qty/blur')"`)
		inputState(w, p, shoplist.FieldQuantity)
		w.raw(`>`)

		if p.Error != "" {
			w.raw(`<p id="item-form-error" class="shopping-list__error" role="alert">`)
			w.text(p.Error)
			w.raw(`</p>`)
		}
		w.raw(`<button type="submit" class="shopping-list__submit">Adicionar</button></form>`)
	})
}

func inputState(w *writer, p shopping.FormParams, field string) {
	if p.Focus == field {
		w.raw(` autofocus`)
	}
	if p.Error != "" && p.Focus == field {
		w.raw(` aria-invalid="true" aria-describedby="item-form-error"`)
	}
}

// jsString quotes s as a JavaScript string expression for data-signals.
func jsString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)
	return "'" + r.Replace(s) + "'"
}

// ItemList renders the list of items in display order.
func ItemList(items []shoplist.Item) templ.Component {
	return render(func(w *writer) {
		w.raw(`<ul id="items" class="shopping-list__items">`)
		for _, item := range items {
			w.component(ItemRow(item))
		}
		w.raw(`</ul>`)
	})
}

// ItemRow renders one item. Controls are small forms so the list works
// without scripts.
func ItemRow(item shoplist.Item) templ.Component {
	return render(func(w *writer) {
		id := item.ID.String()
		class, checkbox, label := "item", "item__checkbox", LabelMark
		if item.Completed {
			class += " item--completed"
			checkbox += " item__checkbox--checked"
			label = LabelUnmark
		}

		w.raw(`<li id="item-`, id, `" class="`, class, `">`)

		w.raw(`<form method="post" action="/items/`, id, `/toggle">`,
			`<button type="submit" class="`, checkbox, `" aria-label="`, label, `" aria-pressed="`, fmt.Sprint(item.Completed), `" `,
			`data-on:click__prevent="@post('/items/`, id, `/toggle')">`)
		if item.Completed {
			w.raw(`<img src="/assets/icons/itemcheck.svg" alt="" aria-hidden="true">`)
		}
		w.raw(`</button></form>`)

		w.raw(`<div class="item__info"><p class="item__name">`)
		w.text(item.Name)
		w.raw(`</p>`)
		if item.Quantity != "" {
			w.raw(`<p class="item__qty">`)
			w.text(item.Quantity)
			w.raw(`</p>`)
		}
		w.raw(`</div>`)

		w.raw(`<form method="post" action="/items/`, id, `/delete">`,
			`<button type="submit" class="item__delete" aria-label="`, LabelRemove, `" `,
			`data-on:click__prevent="@delete('/items/`, id, `')">`,
			`<img src="/assets/icons/trashicon.svg" alt="" aria-hidden="true"></button></form>`)

		w.raw(`</li>`)
	})
}

// Summary renders the subtitle, counters and progress bar.
func Summary(stats shoplist.Stats) templ.Component {
	return render(func(w *writer) {
		w.raw(`<section id="summary" class="shopping-list__summary">`,
			`<p class="shopping-list__subtitle">`)
		w.text(stats.Subtitle())
		w.raw(`</p><dl class="shopping-list__stats">`)
		for _, s := range []struct {
			key, label string
			value      int
		}{
			{"total", "Total", stats.Total},
			{"bought", "Comprados", stats.Bought},
			{"remaining", "Restantes", stats.Remaining},
		} {
			w.raw(`<div class="shopping-list__stat"><dt>`, s.label, `</dt><dd data-stat="`, s.key, `">`, fmt.Sprint(s.value), `</dd></div>`)
		}
		w.raw(`</dl><div class="shopping-list__progress" role="progressbar" aria-valuemin="0" aria-valuemax="100" aria-valuenow="`,
			fmt.Sprint(stats.Progress()), `">`,
			`<div class="shopping-list__progress-bar" style="--progress: `, stats.ProgressCSS(), `"></div></div></section>`)
	})
}

// Focus renders a self-removing script that focuses the input with the
// given id.
func Focus(field string) templ.Component {
	return render(func(w *writer) {
		w.raw(`<script data-effect="el.remove()">document.getElementById(`, strconv.Quote(field), `)?.focus()</script>`)
	})
}
