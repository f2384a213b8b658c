package m_review

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the reviews table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a review.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			ReviewID,
			ProductID,
			Rating,
			Comment,
			CreatedAt,
		},
		[]interface{}{
			data.ReviewID,
			data.ProductID,
			data.Rating,
			data.Comment,
			data.CreatedAt,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a review.
func (m *Model) DeleteMut(reviewID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{reviewID})
}
