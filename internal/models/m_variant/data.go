package m_variant

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the product_variants table.
// The price may appear under any of three legacy aliases; only one is
// populated per record.
type Data struct {
	VariantID         string              `spanner:"variant_id"`
	ProductID         string              `spanner:"product_id"`
	Title             string              `spanner:"title"`
	PriceInCents      spanner.NullFloat64 `spanner:"price_in_cents"`
	Price             spanner.NullFloat64 `spanner:"price"`
	PriceCents        spanner.NullFloat64 `spanner:"price_cents"`
	InventoryQuantity int64               `spanner:"inventory_quantity"`
	CreatedAt         time.Time           `spanner:"created_at"`
}

// PriceValue returns the populated price alias, or 0 when none is set.
func (d *Data) PriceValue() float64 {
	switch {
	case d.PriceInCents.Valid:
		return d.PriceInCents.Float64
	case d.Price.Valid:
		return d.Price.Float64
	case d.PriceCents.Valid:
		return d.PriceCents.Float64
	default:
		return 0
	}
}
