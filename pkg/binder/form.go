package binder

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxMemory bounds the in-memory part of multipart parsing.
const DefaultMaxMemory = 1 << 20

// Form binds `form` tagged fields from an application/x-www-form-urlencoded
// or multipart/form-data body. Requests without a content type or with a
// JSON body are not applicable.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		ct := r.Header.Get("Content-Type")
		if ct == "" {
			return ErrBinderNotApplicable
		}
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}

		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
		case "application/json":
			return ErrBinderNotApplicable
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
		}

		err = bindValues(v, "form", func(name string) ([]string, bool) {
			vals, ok := r.PostForm[name]
			return vals, ok
		})
		if err != nil && !errors.Is(err, ErrInvalidTarget) {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return err
	}
}
