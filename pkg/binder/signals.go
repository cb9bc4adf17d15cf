package binder

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals decodes the DataStar signal payload into v using its json tags.
// GET requests carry signals in the "datastar" query parameter, others in a
// JSON body. Requests without either are not applicable.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if _, err := structFields(v); err != nil {
			return err
		}
		if !hasSignals(r) {
			return ErrBinderNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignals, err)
		}
		return nil
	}
}

func hasSignals(r *http.Request) bool {
	if r.Method == http.MethodGet {
		return r.URL.Query().Has("datastar")
	}
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") && r.ContentLength != 0
}
