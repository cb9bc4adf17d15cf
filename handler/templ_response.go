package handler

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption configures how a component is patched into the page.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector of the element to patch. Without it the
// component's root element id is used.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is a component together with its patch options, or a set of
// signals to update.
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption

	signals any
}

// Patch creates a TemplPatch for TemplMulti.
func Patch(component templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

// Remove creates a TemplPatch that deletes the elements matching selector.
// Plain requests render nothing for it.
func Remove(selector string) TemplPatch {
	return Patch(templ.NopComponent, WithTarget(selector), WithPatchMode(PatchRemove))
}

// PatchSignals creates a TemplPatch updating client signals instead of
// elements. Plain requests skip it.
//
//	handler.PatchSignals(map[string]any{"name": "", "qty": ""})
func PatchSignals(v any) TemplPatch {
	return TemplPatch{signals: v}
}

type templResponse struct {
	status  int
	patches []TemplPatch
}

// Render sends one SSE patch per component for DataStar requests and the
// concatenated HTML otherwise.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, p := range t.patches {
			if p.signals != nil {
				data, err := json.Marshal(p.signals)
				if err != nil {
					return err
				}
				if err := sse.PatchSignals(data); err != nil {
					return err
				}
				continue
			}
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 && t.status != http.StatusOK {
		w.WriteHeader(t.status)
	}
	for _, p := range t.patches {
		if p.Component == nil {
			continue
		}
		if err := p.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// Templ renders a single component.
//
//	return handler.Templ(views.Summary(stats))
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{patches: []TemplPatch{Patch(component, opts...)}}
}

// TemplWithStatus renders a component with a non-200 status for plain
// requests. SSE responses are always 200.
func TemplWithStatus(status int, component templ.Component, opts ...TemplOption) Response {
	return templResponse{status: status, patches: []TemplPatch{Patch(component, opts...)}}
}

// TemplMulti renders several components, each with its own target.
//
//	return handler.TemplMulti(
//		handler.Patch(views.ItemRow(item)),
//		handler.Patch(views.Summary(stats)),
//	)
func TemplMulti(patches ...TemplPatch) Response {
	return templResponse{patches: patches}
}

type templPartialResponse struct {
	partial []TemplPatch
	full    templ.Component
	status  int
}

// Render patches the partial for DataStar requests and writes the full
// component otherwise.
func (t templPartialResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return templResponse{patches: t.partial}.Render(w, r)
	}
	return templResponse{status: t.status, patches: []TemplPatch{Patch(t.full)}}.Render(w, r)
}

// TemplPartial renders the partial patches for DataStar requests and the
// full page for plain ones, e.g. a re-rendered form versus the whole page.
func TemplPartial(full templ.Component, partial ...TemplPatch) Response {
	return templPartialResponse{partial: partial, full: full}
}

// TemplPartialWithStatus is TemplPartial with a status for plain requests.
func TemplPartialWithStatus(status int, full templ.Component, partial ...TemplPatch) Response {
	return templPartialResponse{partial: partial, full: full, status: status}
}
