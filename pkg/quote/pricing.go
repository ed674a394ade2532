package quote

import (
	"fmt"
	"math"
)

// VendorCost is one vendor's price for a BOM line.
type VendorCost struct {
	VendorID  string  `json:"vendor_id"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// PricedLine is a BOM line priced against every compared vendor.
type PricedLine struct {
	BOMLine
	Vendors []VendorCost `json:"vendors"`
}

// Cost returns the cost entry for vendorID.
func (l PricedLine) Cost(vendorID string) (VendorCost, bool) {
	for _, vc := range l.Vendors {
		if vc.VendorID == vendorID {
			return vc, true
		}
	}
	return VendorCost{}, false
}

// VendorTotal is the summed cost of a BOM at one vendor.
type VendorTotal struct {
	VendorID   string  `json:"vendor_id"`
	VendorName string  `json:"vendor_name"`
	Total      float64 `json:"total"`
}

// PricingResult holds a priced BOM and the selected vendor. Amounts are not rounded.
type PricingResult struct {
	LineItems    []PricedLine
	VendorTotals []VendorTotal // vendor priority order
	ChosenVendor string
	ChosenTotal  float64
}

// Total returns the BOM total at vendorID.
func (r PricingResult) Total(vendorID string) (float64, bool) {
	for _, vt := range r.VendorTotals {
		if vt.VendorID == vendorID {
			return vt.Total, true
		}
	}
	return 0, false
}

// PriceBOM prices every line at every catalog vendor and picks the cheapest total.
// On an exact tie the vendor listed first in the catalog wins.
func (c *Calculator) PriceBOM(bom []BOMLine) (PricingResult, error) {
	vendors := c.catalog.Vendors()
	totals := make([]float64, len(vendors))
	lines := make([]PricedLine, 0, len(bom))

	for _, line := range bom {
		if line.Quantity < 0 || math.IsNaN(line.Quantity) || math.IsInf(line.Quantity, 0) {
			return PricingResult{}, fmt.Errorf("%w: material %q has quantity %v", ErrInvalidInput, line.MaterialID, line.Quantity)
		}
		material, ok := c.catalog.Material(line.MaterialID)
		if !ok {
			return PricingResult{}, fmt.Errorf("%w: material %q is not in the catalog", ErrIncompleteCatalog, line.MaterialID)
		}

		costs := make([]VendorCost, 0, len(vendors))
		for i, v := range vendors {
			price, ok := material.VendorPrices[v.ID]
			if !ok {
				return PricingResult{}, fmt.Errorf("%w: material %q has no price for vendor %q", ErrIncompleteCatalog, material.ID, v.ID)
			}
			cost := line.Quantity * price
			totals[i] += cost
			costs = append(costs, VendorCost{VendorID: v.ID, UnitPrice: price, LineTotal: cost})
		}
		lines = append(lines, PricedLine{BOMLine: line, Vendors: costs})
	}

	result := PricingResult{
		LineItems:    lines,
		VendorTotals: make([]VendorTotal, 0, len(vendors)),
	}
	chosen := 0
	for i, v := range vendors {
		result.VendorTotals = append(result.VendorTotals, VendorTotal{VendorID: v.ID, VendorName: v.Name, Total: totals[i]})
		if totals[i] < totals[chosen] {
			chosen = i
		}
	}
	result.ChosenVendor = vendors[chosen].ID
	result.ChosenTotal = totals[chosen]
	return result, nil
}
