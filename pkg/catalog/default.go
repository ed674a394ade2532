package catalog

// Vendor ids used by the built-in price list.
const (
	HomeDepot = "home_depot"
	Lowes     = "lowes"
)

// Default returns the built-in fence price list. Quantities are per 6-foot section.
func Default() *Catalog {
	cat, err := New(
		[]Vendor{
			{ID: HomeDepot, Name: "Home Depot"},
			{ID: Lowes, Name: "Lowe's"},
		},
		[]MaterialSpec{
			{
				ID:             "posts_4x4x8",
				Label:          "4x4x8 pressure-treated posts",
				QtyPerUnitSize: 1.0,
				QtyFixedExtra:  1.0, // end post
				VendorPrices:   map[string]float64{HomeDepot: 9.25, Lowes: 9.10},
			},
			{
				ID:             "rails_2x4",
				Label:          "2x4 rails (8ft)",
				QtyPerUnitSize: 2.0,
				VendorPrices:   map[string]float64{HomeDepot: 4.50, Lowes: 4.30},
			},
			{
				ID:             "pickets",
				Label:          "1x6 fence boards",
				QtyPerUnitSize: 10.0,
				VendorPrices:   map[string]float64{HomeDepot: 3.80, Lowes: 3.70},
			},
			{
				ID:             "concrete_bags",
				Label:          "80lb concrete mix",
				QtyPerUnitSize: 0.5,
				QtyFixedExtra:  1.0, // buffer bag
				VendorPrices:   map[string]float64{HomeDepot: 5.25, Lowes: 5.15},
			},
			{
				ID:             "nails_screws",
				Label:          "Exterior nails / screws (box)",
				QtyPerUnitSize: 0.05,
				QtyFixedExtra:  1.0,
				VendorPrices:   map[string]float64{HomeDepot: 65.00, Lowes: 60.00},
			},
		},
	)
	if err != nil {
		panic("catalog: built-in price list is invalid: " + err.Error())
	}
	return cat
}
