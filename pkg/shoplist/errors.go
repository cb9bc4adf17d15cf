package shoplist

import "errors"

var (
	// ErrItemNotFound is returned when an item id does not belong to the list.
	ErrItemNotFound = errors.New("shoplist: item not found")

	// ErrInvalidItemID is returned when an item id cannot be parsed.
	ErrInvalidItemID = errors.New("shoplist: invalid item id")
)
