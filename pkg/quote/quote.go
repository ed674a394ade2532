package quote

import (
	"fmt"
	"math"
)

// Default pricing parameters.
const (
	DefaultMarkupPct = 15.0
	DefaultTaxRate   = 0.0
)

// Input holds the per-job parameters of a quote.
type Input struct {
	ProjectSize int
	LaborHours  float64
	LaborRate   float64 // currency per hour
	MarkupPct   float64 // percent, 15 means 15%
	TaxRate     float64 // fraction of the subtotal, 0.07 means 7%
}

// NewInput returns an Input with the default markup and tax rate.
func NewInput(projectSize int, laborHours, laborRate float64) Input {
	return Input{
		ProjectSize: projectSize,
		LaborHours:  laborHours,
		LaborRate:   laborRate,
		MarkupPct:   DefaultMarkupPct,
		TaxRate:     DefaultTaxRate,
	}
}

// Validate rejects negative and non-finite values.
func (in Input) Validate() error {
	if in.ProjectSize < 0 {
		return fmt.Errorf("%w: project size must be non-negative, got %d", ErrInvalidInput, in.ProjectSize)
	}
	checks := []struct {
		name  string
		value float64
	}{
		{"labor hours", in.LaborHours},
		{"labor rate", in.LaborRate},
		{"markup percentage", in.MarkupPct},
		{"tax rate", in.TaxRate},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, c.name)
		}
		if c.value < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %v", ErrInvalidInput, c.name, c.value)
		}
	}
	if in.TaxRate > 1 {
		return fmt.Errorf("%w: tax rate is a fraction between 0 and 1, got %v", ErrInvalidInput, in.TaxRate)
	}
	return nil
}

// Quote is the finished, presentation-ready price quote. All money fields are rounded with Round2.
type Quote struct {
	ProjectSize      int              `json:"project_size"`
	ChosenVendor     string           `json:"chosen_vendor"`
	ChosenVendorName string           `json:"chosen_vendor_name"`
	Materials        MaterialsSummary `json:"materials"`
	Labor            Labor            `json:"labor"`
	Tax              Tax              `json:"tax"`
	GrandTotal       float64          `json:"grand_total"`
}

// MaterialsSummary is the materials section of a quote.
type MaterialsSummary struct {
	BaseTotal       float64       `json:"base_total"`
	MarkupPct       float64       `json:"markup_pct"`
	MarkupAmount    float64       `json:"markup_amount"`
	TotalWithMarkup float64       `json:"total_with_markup"`
	VendorTotals    []VendorTotal `json:"vendor_totals"`
	LineItems       []PricedLine  `json:"line_items"`
}

// Labor is the labor section of a quote.
type Labor struct {
	Hours float64 `json:"hours"`
	Rate  float64 `json:"rate"`
	Total float64 `json:"total"`
}

// Tax is the tax section of a quote.
type Tax struct {
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

// ComputeQuote prices the job and assembles a Quote. Amounts accumulate at full
// precision and are rounded only when copied into the result.
func (c *Calculator) ComputeQuote(in Input) (Quote, error) {
	if err := in.Validate(); err != nil {
		return Quote{}, err
	}

	bom, err := c.ComputeBOM(in.ProjectSize)
	if err != nil {
		return Quote{}, err
	}
	pricing, err := c.PriceBOM(bom)
	if err != nil {
		return Quote{}, err
	}

	materialsBase := pricing.ChosenTotal
	materialsMarkup := materialsBase * in.MarkupPct / 100
	materialsTotal := materialsBase + materialsMarkup
	laborTotal := in.LaborHours * in.LaborRate
	subtotal := materialsTotal + laborTotal
	taxAmount := subtotal * in.TaxRate
	grandTotal := subtotal + taxAmount
	for _, v := range []float64{materialsTotal, laborTotal, taxAmount, grandTotal} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Quote{}, fmt.Errorf("%w: inputs are too large to price", ErrInvalidInput)
		}
	}

	return Quote{
		ProjectSize:      in.ProjectSize,
		ChosenVendor:     pricing.ChosenVendor,
		ChosenVendorName: c.catalog.VendorName(pricing.ChosenVendor),
		Materials: MaterialsSummary{
			BaseTotal:       Round2(materialsBase),
			MarkupPct:       in.MarkupPct,
			MarkupAmount:    Round2(materialsMarkup),
			TotalWithMarkup: Round2(materialsTotal),
			VendorTotals:    roundVendorTotals(pricing.VendorTotals),
			LineItems:       roundLines(pricing.LineItems),
		},
		Labor: Labor{
			Hours: in.LaborHours,
			Rate:  in.LaborRate,
			Total: Round2(laborTotal),
		},
		Tax: Tax{
			Rate:   in.TaxRate,
			Amount: Round2(taxAmount),
		},
		GrandTotal: Round2(grandTotal),
	}, nil
}

func roundVendorTotals(totals []VendorTotal) []VendorTotal {
	out := make([]VendorTotal, 0, len(totals))
	for _, vt := range totals {
		out = append(out, VendorTotal{VendorID: vt.VendorID, VendorName: vt.VendorName, Total: Round2(vt.Total)})
	}
	return out
}

func roundLines(lines []PricedLine) []PricedLine {
	out := make([]PricedLine, 0, len(lines))
	for _, line := range lines {
		costs := make([]VendorCost, 0, len(line.Vendors))
		for _, vc := range line.Vendors {
			costs = append(costs, VendorCost{
				VendorID:  vc.VendorID,
				UnitPrice: vc.UnitPrice,
				LineTotal: Round2(vc.LineTotal),
			})
		}
		out = append(out, PricedLine{BOMLine: line.BOMLine, Vendors: costs})
	}
	return out
}
