package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a product.
// Timestamps come from the caller so seeds and fixtures can control ordering.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			ProductID,
			Title,
			Slug,
			Description,
			VendorID,
			CategoryID,
			BasePrice,
			Currency,
			Metadata,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.ProductID,
			data.Title,
			data.Slug,
			data.Description,
			data.VendorID,
			data.CategoryID,
			data.BasePrice,
			data.Currency,
			data.Metadata,
			data.CreatedAt,
			data.UpdatedAt,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a product.
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}
