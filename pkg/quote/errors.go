package quote

import (
	"errors"

	"github.com/minhyannv/fence-quote-go/pkg/catalog"
)

var (
	// ErrInvalidInput reports a negative, NaN or infinite numeric input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIncompleteCatalog reports a material that lacks a price for a compared vendor.
	ErrIncompleteCatalog = catalog.ErrIncomplete
)
