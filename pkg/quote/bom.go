// Package quote derives a bill of materials, compares vendor prices and assembles customer quotes.
package quote

import (
	"fmt"

	"github.com/minhyannv/fence-quote-go/pkg/catalog"
)

// BOMLine is the required quantity of one catalog material.
type BOMLine struct {
	MaterialID string  `json:"material_id"`
	Label      string  `json:"label"`
	Quantity   float64 `json:"quantity"`
}

// Calculator runs the pricing pipeline against one catalog.
type Calculator struct {
	catalog *catalog.Catalog
}

// NewCalculator returns a calculator over cat, or over the built-in price list when cat is nil.
func NewCalculator(cat *catalog.Catalog) *Calculator {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Calculator{catalog: cat}
}

// Catalog returns the catalog the calculator prices against.
func (c *Calculator) Catalog() *catalog.Catalog {
	return c.catalog
}

// ComputeBOM derives material quantities for projectSize segments, in catalog order.
// Quantities are rounded with Round2.
func (c *Calculator) ComputeBOM(projectSize int) ([]BOMLine, error) {
	if projectSize < 0 {
		return nil, fmt.Errorf("%w: project size must be non-negative, got %d", ErrInvalidInput, projectSize)
	}

	materials := c.catalog.Materials()
	bom := make([]BOMLine, 0, len(materials))
	for _, m := range materials {
		qty := m.QtyPerUnitSize*float64(projectSize) + m.QtyFixedExtra
		bom = append(bom, BOMLine{
			MaterialID: m.ID,
			Label:      m.Label,
			Quantity:   Round2(qty),
		})
	}
	return bom, nil
}
