package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// VisitorID records the visitor identifier under "visitor_id".
func VisitorID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("visitor_id", id)
}

// ItemID records a shopping list item identifier under "item_id".
func ItemID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("item_id", id)
}

// Field records the name of a form field under "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Duration records d under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
