// Package narrative turns a computed quote into customer-facing prose.
//
// Renderers only read the quote. A rendering failure never affects the quote
// itself, so callers can still present the structured numbers.
package narrative

import (
	"context"
	"errors"
	"strings"

	"github.com/minhyannv/fence-quote-go/pkg/quote"
)

// ErrRendererFailure wraps every error returned by a Renderer.
var ErrRendererFailure = errors.New("renderer failure")

// DefaultCustomerName is used when no customer name is given.
const DefaultCustomerName = "Customer"

// Renderer formats a quote for a customer.
type Renderer interface {
	Render(ctx context.Context, q quote.Quote, customerName string) (string, error)
}

func customerOrDefault(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultCustomerName
	}
	return name
}
