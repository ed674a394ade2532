package narrative

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/minhyannv/fence-quote-go/pkg/quote"
)

const quoteTemplate = `Hi {{.Customer}},

Thank you for the opportunity to quote your fence. This quote covers {{.Quote.ProjectSize}} six-foot section(s).
Materials will be sourced from {{.Quote.ChosenVendorName}} at current prices as of today.

Materials:
{{- range .Quote.Materials.LineItems}}
  - {{.Label}}: {{qty .Quantity}}
{{- end}}

Price breakdown:
  Materials (incl. {{pct .Quote.Materials.MarkupPct}} markup): {{money .Quote.Materials.TotalWithMarkup}}
  Labor ({{qty .Quote.Labor.Hours}} h at {{money .Quote.Labor.Rate}}/h): {{money .Quote.Labor.Total}}
{{- if gt .Quote.Tax.Amount 0.0}}
  Tax ({{pct100 .Quote.Tax.Rate}}): {{money .Quote.Tax.Amount}}
{{- end}}
  Total: {{money .Quote.GrandTotal}}

We can usually start within two weeks of acceptance. This quote is valid for {{.ValidDays}} days.
`

// TemplateRenderer renders a quote from a fixed text template. Output depends only on its inputs.
type TemplateRenderer struct {
	tmpl      *template.Template
	validDays int
}

// NewTemplateRenderer builds a renderer whose quotes state a validity of validDays.
func NewTemplateRenderer(validDays int) *TemplateRenderer {
	if validDays <= 0 {
		validDays = 30
	}
	funcs := template.FuncMap{
		"money":  func(v float64) string { return fmt.Sprintf("$%.2f", v) },
		"qty":    func(v float64) string { return formatQuantity(v) },
		"pct":    func(v float64) string { return formatQuantity(v) + "%" },
		"pct100": func(v float64) string { return formatQuantity(quote.Round2(v*100)) + "%" },
	}
	return &TemplateRenderer{
		tmpl:      template.Must(template.New("quote").Funcs(funcs).Parse(quoteTemplate)),
		validDays: validDays,
	}
}

// Render executes the template.
func (r *TemplateRenderer) Render(_ context.Context, q quote.Quote, customerName string) (string, error) {
	var buf bytes.Buffer
	err := r.tmpl.Execute(&buf, struct {
		Customer  string
		Quote     quote.Quote
		ValidDays int
	}{
		Customer:  sanitizeLine(customerOrDefault(customerName)),
		Quote:     q,
		ValidDays: r.validDays,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRendererFailure, err)
	}
	return buf.String(), nil
}

// formatQuantity drops trailing zeros: 6 -> "6", 1.5 -> "1.5".
func formatQuantity(v float64) string {
	return fmt.Sprintf("%g", quote.Round2(v))
}
