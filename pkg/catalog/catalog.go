// Package catalog holds the immutable material and vendor price reference data.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrIncomplete reports a material that is not priced for exactly the catalog's vendors.
	ErrIncomplete = errors.New("incomplete catalog")
	// ErrInvalid reports malformed catalog data.
	ErrInvalid = errors.New("invalid catalog")
)

// Vendor is a materials supplier with its own price list.
type Vendor struct {
	ID   string
	Name string
}

// MaterialSpec describes how much of a material a project consumes and what each vendor charges.
type MaterialSpec struct {
	ID             string
	Label          string
	QtyPerUnitSize float64
	QtyFixedExtra  float64
	VendorPrices   map[string]float64
}

// Catalog is an ordered, validated set of vendors and materials.
// Vendor order doubles as the tie-break priority when comparing totals.
type Catalog struct {
	vendors   []Vendor
	materials []MaterialSpec
	index     map[string]int
}

// New validates the inputs and returns a catalog holding private copies of them.
func New(vendors []Vendor, materials []MaterialSpec) (*Catalog, error) {
	if len(vendors) == 0 {
		return nil, fmt.Errorf("%w: no vendors", ErrInvalid)
	}

	vendorSet := make(map[string]struct{}, len(vendors))
	ownVendors := make([]Vendor, 0, len(vendors))
	for i, v := range vendors {
		id := strings.TrimSpace(v.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: vendor at index %d has empty id", ErrInvalid, i)
		}
		if _, dup := vendorSet[id]; dup {
			return nil, fmt.Errorf("%w: duplicate vendor %q", ErrInvalid, id)
		}
		vendorSet[id] = struct{}{}
		name := strings.TrimSpace(v.Name)
		if name == "" {
			name = id
		}
		ownVendors = append(ownVendors, Vendor{ID: id, Name: name})
	}

	index := make(map[string]int, len(materials))
	ownMaterials := make([]MaterialSpec, 0, len(materials))
	for i, m := range materials {
		id := strings.TrimSpace(m.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: material at index %d has empty id", ErrInvalid, i)
		}
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("%w: duplicate material %q", ErrInvalid, id)
		}
		if !validAmount(m.QtyPerUnitSize) || !validAmount(m.QtyFixedExtra) {
			return nil, fmt.Errorf("%w: material %q has a negative or non-finite quantity", ErrInvalid, id)
		}

		prices := make(map[string]float64, len(ownVendors))
		for _, v := range ownVendors {
			price, ok := m.VendorPrices[v.ID]
			if !ok {
				return nil, fmt.Errorf("%w: material %q has no price for vendor %q", ErrIncomplete, id, v.ID)
			}
			if !validAmount(price) {
				return nil, fmt.Errorf("%w: material %q has invalid price %v for vendor %q", ErrInvalid, id, price, v.ID)
			}
			prices[v.ID] = price
		}
		for vendorID := range m.VendorPrices {
			if _, ok := vendorSet[vendorID]; !ok {
				return nil, fmt.Errorf("%w: material %q is priced for unknown vendor %q", ErrIncomplete, id, vendorID)
			}
		}

		label := strings.TrimSpace(m.Label)
		if label == "" {
			label = id
		}
		index[id] = len(ownMaterials)
		ownMaterials = append(ownMaterials, MaterialSpec{
			ID:             id,
			Label:          label,
			QtyPerUnitSize: m.QtyPerUnitSize,
			QtyFixedExtra:  m.QtyFixedExtra,
			VendorPrices:   prices,
		})
	}

	return &Catalog{vendors: ownVendors, materials: ownMaterials, index: index}, nil
}

func validAmount(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Vendors returns the vendors in priority order.
func (c *Catalog) Vendors() []Vendor {
	out := make([]Vendor, len(c.vendors))
	copy(out, c.vendors)
	return out
}

// Materials returns the materials in catalog order.
func (c *Catalog) Materials() []MaterialSpec {
	out := make([]MaterialSpec, 0, len(c.materials))
	for _, m := range c.materials {
		out = append(out, m.clone())
	}
	return out
}

// Material looks up a material by id.
func (c *Catalog) Material(id string) (MaterialSpec, bool) {
	i, ok := c.index[id]
	if !ok {
		return MaterialSpec{}, false
	}
	return c.materials[i].clone(), true
}

// VendorName returns the display name for a vendor id, or the id itself when unknown.
func (c *Catalog) VendorName(id string) string {
	for _, v := range c.vendors {
		if v.ID == id {
			return v.Name
		}
	}
	return id
}

// Restrict returns a catalog that compares only the named vendors.
// Priority order follows the receiver, not the argument order.
func (c *Catalog) Restrict(vendorIDs ...string) (*Catalog, error) {
	if len(vendorIDs) == 0 {
		return c, nil
	}
	want := make(map[string]struct{}, len(vendorIDs))
	for _, id := range vendorIDs {
		id = strings.TrimSpace(id)
		if _, ok := c.vendorIndex(id); !ok {
			return nil, fmt.Errorf("%w: unknown vendor %q", ErrIncomplete, id)
		}
		want[id] = struct{}{}
	}

	vendors := make([]Vendor, 0, len(want))
	for _, v := range c.vendors {
		if _, ok := want[v.ID]; ok {
			vendors = append(vendors, v)
		}
	}
	materials := make([]MaterialSpec, 0, len(c.materials))
	for _, m := range c.materials {
		prices := make(map[string]float64, len(vendors))
		for _, v := range vendors {
			prices[v.ID] = m.VendorPrices[v.ID]
		}
		m.VendorPrices = prices
		materials = append(materials, m)
	}
	return New(vendors, materials)
}

func (c *Catalog) vendorIndex(id string) (int, bool) {
	for i, v := range c.vendors {
		if v.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (m MaterialSpec) clone() MaterialSpec {
	prices := make(map[string]float64, len(m.VendorPrices))
	for k, v := range m.VendorPrices {
		prices[k] = v
	}
	m.VendorPrices = prices
	return m
}
