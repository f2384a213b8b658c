package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID   = "product_id"
	Title       = "title"
	Slug        = "slug"
	Description = "description"
	VendorID    = "vendor_id"
	CategoryID  = "category_id"
	BasePrice   = "base_price"
	Currency    = "currency"
	Metadata    = "metadata"
	CreatedAt   = "created_at"
	UpdatedAt   = "updated_at"
)

// MetadataCategoryExpr extracts the free-form category tag used when no
// relational category exists for a product.
const MetadataCategoryExpr = "JSON_VALUE(metadata, '$.category')"
