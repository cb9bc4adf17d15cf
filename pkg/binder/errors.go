package binder

import "errors"

var (
	// ErrBinderNotApplicable means the request carries nothing for this binder.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidPath          = errors.New("invalid path parameter")
	ErrInvalidSignals       = errors.New("invalid datastar signals")
	ErrInvalidTarget        = errors.New("bind target must be a non-nil pointer to struct")
)
