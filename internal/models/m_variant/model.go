package m_variant

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the product_variants table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a variant.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			VariantID,
			ProductID,
			Title,
			PriceInCents,
			Price,
			PriceCents,
			InventoryQuantity,
			CreatedAt,
		},
		[]interface{}{
			data.VariantID,
			data.ProductID,
			data.Title,
			data.PriceInCents,
			data.Price,
			data.PriceCents,
			data.InventoryQuantity,
			data.CreatedAt,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a variant.
func (m *Model) DeleteMut(variantID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{variantID})
}
