package shopping

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/shoplist/handler"
	"github.com/dmitrymomot/shoplist/pkg/logger"
	"github.com/dmitrymomot/shoplist/pkg/shoplist"
	"github.com/dmitrymomot/shoplist/pkg/validator"
)

// Targets patched by DataStar responses.
const (
	ItemsTarget = "#items"
	FormTarget  = "#item-form"
)

// FieldBlurredHeader is sent by the quantity input with its debounced post
// and is "true" when the input no longer had focus at send time.
const FieldBlurredHeader = "X-Field-Blurred"

type addItemRequest struct {
	Name string `form:"name" json:"name"`
	Qty  string `form:"qty" json:"qty"`
}

type itemRequest struct {
	ID string `path:"id"`
}

type fieldRequest struct {
	Name string `form:"name" json:"name"`
	Qty  string `form:"qty" json:"qty"`
}

// ItemTarget is the selector of an item's row.
func ItemTarget(item shoplist.Item) string {
	return "#item-" + item.ID.String()
}

func (s *Service) page(ctx handler.Context, _ struct{}) handler.Response {
	items, stats := s.list(ctx).Snapshot()
	return handler.Templ(s.views.Page(s.pageParams(items, stats, FormParams{Focus: shoplist.FieldName})))
}

func (s *Service) summary(ctx handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.views.Summary(s.list(ctx).Stats()))
}

func (s *Service) addItem(ctx handler.Context, req addItemRequest) handler.Response {
	list := s.list(ctx)

	item, err := shoplist.ParseSubmission(req.Name, req.Qty)
	if err != nil {
		verrs := validator.ExtractValidationErrors(err)
		if verrs == nil {
			return handler.Error(err)
		}
		return s.rejectSubmission(ctx, list, req, verrs)
	}

	item = list.Add(item)
	s.log.InfoContext(ctx, "item added",
		logger.Event("item_added"),
		logger.ItemID(item.ID),
		slog.String("name", item.Name),
		slog.String("qty", item.Quantity),
	)

	if !handler.IsDataStar(ctx.Request()) {
		return handler.Redirect("/")
	}
	return handler.TemplMulti(
		handler.Patch(s.views.ItemRow(item), handler.WithTarget(ItemsTarget), handler.WithPatchMode(handler.PatchAppend)),
		handler.Patch(s.views.Form(FormParams{Focus: shoplist.FieldName})),
		handler.PatchSignals(map[string]string{shoplist.FieldName: "", shoplist.FieldQuantity: ""}),
		handler.Patch(s.views.Summary(list.Stats())),
		handler.Patch(s.views.Focus(shoplist.FieldName), handler.WithTarget("body"), handler.WithPatchMode(handler.PatchAppend)),
	)
}

// rejectSubmission keeps the sanitized input, shows the first failure and
// focuses its field.
func (s *Service) rejectSubmission(ctx handler.Context, list *shoplist.List, req addItemRequest, verrs validator.ValidationErrors) handler.Response {
	first, _ := verrs.First()
	field := first.Field
	s.log.WarnContext(ctx, first.Message, logger.Event("submission_rejected"), logger.Field(field))

	form := FormParams{
		Name:  shoplist.SanitizeName(req.Name),
		Qty:   shoplist.SanitizeQuantity(req.Qty),
		Error: first.Message,
		Focus: field,
	}
	items, stats := list.Snapshot()
	return handler.TemplPartialWithStatus(http.StatusUnprocessableEntity,
		s.views.Page(s.pageParams(items, stats, form)),
		handler.Patch(s.views.Form(form)),
		handler.Patch(s.views.Focus(field), handler.WithTarget("body"), handler.WithPatchMode(handler.PatchAppend)),
	)
}

func (s *Service) toggleItem(ctx handler.Context, req itemRequest) handler.Response {
	id, err := shoplist.ParseItemID(req.ID)
	if err != nil {
		return handler.Error(fmt.Errorf("%w: %w", handler.ErrBadRequest, err))
	}

	list := s.list(ctx)
	item, err := list.Toggle(id)
	if err != nil {
		return handler.Error(itemError(err))
	}
	s.log.DebugContext(ctx, "item toggled", logger.Event("item_toggled"), logger.ItemID(item.ID), slog.Bool("completed", item.Completed))

	if !handler.IsDataStar(ctx.Request()) {
		return handler.Redirect("/")
	}
	return handler.TemplMulti(
		handler.Patch(s.views.ItemRow(item)),
		handler.Patch(s.views.Summary(list.Stats())),
	)
}

func (s *Service) removeItem(ctx handler.Context, req itemRequest) handler.Response {
	id, err := shoplist.ParseItemID(req.ID)
	if err != nil {
		return handler.Error(fmt.Errorf("%w: %w", handler.ErrBadRequest, err))
	}

	list := s.list(ctx)
	item, err := list.Remove(id)
	if err != nil {
		return handler.Error(itemError(err))
	}
	s.log.DebugContext(ctx, "item removed", logger.Event("item_removed"), logger.ItemID(item.ID))

	if !handler.IsDataStar(ctx.Request()) {
		return handler.Redirect("/")
	}
	return handler.TemplMulti(
		handler.Remove(ItemTarget(item)),
		handler.Patch(s.views.Summary(list.Stats())),
	)
}

func (s *Service) sanitizeName(ctx handler.Context, req fieldRequest) handler.Response {
	return handler.Signals(map[string]string{shoplist.FieldName: shoplist.SanitizeName(req.Name)})
}

// sanitizeQuantity finalizes as well when the debounced post left after the
// input lost focus, so a late reply cannot restore a dangling "k".
func (s *Service) sanitizeQuantity(ctx handler.Context, req fieldRequest) handler.Response {
	qty := shoplist.SanitizeQuantity(req.Qty)
	if ctx.Request().Header.Get(FieldBlurredHeader) == "true" {
		qty = shoplist.FinalizeQuantity(qty)
	}
	return handler.Signals(map[string]string{shoplist.FieldQuantity: qty})
}

func (s *Service) finalizeQuantity(ctx handler.Context, req fieldRequest) handler.Response {
	qty := shoplist.FinalizeQuantity(shoplist.SanitizeQuantity(req.Qty))
	return handler.Signals(map[string]string{shoplist.FieldQuantity: qty})
}

// routeError answers requests the module has no route for.
func routeError(err error) handler.HandlerFunc[handler.Context, struct{}] {
	return func(handler.Context, struct{}) handler.Response {
		return handler.Error(err)
	}
}

func itemError(err error) error {
	if errors.Is(err, shoplist.ErrItemNotFound) {
		return fmt.Errorf("%w: %w", handler.ErrNotFound, err)
	}
	return err
}
