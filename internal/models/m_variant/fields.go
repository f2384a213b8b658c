package m_variant

// Field name constants for the product_variants table.
const (
	TableName = "product_variants"

	VariantID         = "variant_id"
	ProductID         = "product_id"
	Title             = "title"
	PriceInCents      = "price_in_cents"
	Price             = "price"
	PriceCents        = "price_cents"
	InventoryQuantity = "inventory_quantity"
	CreatedAt         = "created_at"
)

// PriceExpr resolves the populated price alias for a variant row.
// Exactly one of the three aliases carries a value per record.
const PriceExpr = "COALESCE(price_in_cents, price, price_cents)"
