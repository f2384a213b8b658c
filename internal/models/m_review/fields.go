package m_review

// Field name constants for the reviews table.
const (
	TableName = "reviews"

	ReviewID  = "review_id"
	ProductID = "product_id"
	Rating    = "rating"
	Comment   = "comment"
	CreatedAt = "created_at"
)
