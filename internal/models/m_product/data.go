package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the products table.
// base_price is a raw numeric whose unit (cents or currency units) is not
// recorded in the schema; normalization happens in the catalog domain.
type Data struct {
	ProductID   string           `spanner:"product_id"`
	Title       string           `spanner:"title"`
	Slug        string           `spanner:"slug"`
	Description string           `spanner:"description"`
	VendorID    string           `spanner:"vendor_id"`
	CategoryID  string           `spanner:"category_id"`
	BasePrice   float64          `spanner:"base_price"`
	Currency    string           `spanner:"currency"`
	Metadata    spanner.NullJSON `spanner:"metadata"`
	CreatedAt   time.Time        `spanner:"created_at"`
	UpdatedAt   time.Time        `spanner:"updated_at"`
}
