package binder

import (
	"errors"
	"fmt"
	"net/http"
)

// Path binds `path` tagged fields using extractor, typically chi.URLParam.
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: nil extractor", ErrInvalidPath)
		}
		err := bindValues(v, "path", func(name string) ([]string, bool) {
			val := extractor(r, name)
			return []string{val}, val != ""
		})
		if err != nil && !errors.Is(err, ErrInvalidTarget) {
			return fmt.Errorf("%w: %v", ErrInvalidPath, err)
		}
		return err
	}
}
