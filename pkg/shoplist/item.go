package shoplist

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrymomot/shoplist/pkg/sanitizer"
	"github.com/dmitrymomot/shoplist/pkg/validator"
)

// Form field names, shared by the validation errors and the views.
const (
	FieldName     = "name"
	FieldQuantity = "qty"
)

// User-facing validation messages.
const (
	MsgNameRequired    = "Nome é obrigatório."
	MsgInvalidQuantity = "Quantidade inválida. Use 10, 10g ou 10kg"
)

// Item is a single shopping-list entry.
type Item struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Quantity  string    `json:"quantity,omitempty"`
	Completed bool      `json:"completed"`
}

// ParseItemID parses an item id taken from a URL or key binding.
func ParseItemID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidItemID, s)
	}
	return id, nil
}

// ParseSubmission sanitizes a submitted name and quantity and builds a new,
// not yet completed item. It fails with validator.ValidationErrors when the
// sanitized name is empty or a non-empty quantity is not digits[(kg|g)].
// The quantity is not finalized here: a dangling "k" is rejected, not fixed.
func ParseSubmission(name, qty string) (Item, error) {
	name = sanitizer.Trim(SanitizeName(name))
	qty = SanitizeQuantity(qty)

	if err := validator.Apply(
		validator.RequiredString(FieldName, name).WithMessage(MsgNameRequired),
		validator.OptionalPattern(FieldQuantity, qty, strictQuantity).WithMessage(MsgInvalidQuantity),
	); err != nil {
		return Item{}, err
	}

	return Item{
		ID:       uuid.New(),
		Name:     name,
		Quantity: qty,
	}, nil
}
