// Package export writes quotes as spreadsheet and PDF documents.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/minhyannv/fence-quote-go/pkg/narrative"
	"github.com/minhyannv/fence-quote-go/pkg/quote"
)

// Document is a quote prepared for handing to a customer.
type Document struct {
	Number   string
	IssuedAt time.Time
	Customer string
	Quote    quote.Quote
}

// NewDocument assigns a fresh quote number.
func NewDocument(q quote.Quote, customer string, issuedAt time.Time) Document {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		customer = narrative.DefaultCustomerName
	}
	return Document{
		Number:   "Q-" + strings.ToUpper(uuid.NewString()[:8]),
		IssuedAt: issuedAt,
		Customer: customer,
		Quote:    q,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
