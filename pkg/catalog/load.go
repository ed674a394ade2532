package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileCatalog mirrors the YAML price list layout.
type fileCatalog struct {
	Vendors []struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"vendors"`
	Materials []struct {
		ID             string             `yaml:"id"`
		Label          string             `yaml:"label"`
		QtyPerUnitSize float64            `yaml:"qty_per_unit_size"`
		QtyFixedExtra  float64            `yaml:"qty_fixed_extra"`
		Prices         map[string]float64 `yaml:"prices"`
	} `yaml:"materials"`
}

// LoadFile reads a YAML price list from disk.
func LoadFile(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cat, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes a YAML price list. Vendor order in the document is the tie-break priority.
func Parse(content []byte) (*Catalog, error) {
	var fc fileCatalog
	if err := yaml.Unmarshal(content, &fc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	vendors := make([]Vendor, 0, len(fc.Vendors))
	for _, v := range fc.Vendors {
		vendors = append(vendors, Vendor{ID: v.ID, Name: v.Name})
	}
	materials := make([]MaterialSpec, 0, len(fc.Materials))
	for _, m := range fc.Materials {
		materials = append(materials, MaterialSpec{
			ID:             m.ID,
			Label:          m.Label,
			QtyPerUnitSize: m.QtyPerUnitSize,
			QtyFixedExtra:  m.QtyFixedExtra,
			VendorPrices:   m.Prices,
		})
	}
	return New(vendors, materials)
}
