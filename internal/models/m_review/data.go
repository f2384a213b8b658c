package m_review

import "time"

// Data represents the database model for the reviews table.
type Data struct {
	ReviewID  string    `spanner:"review_id"`
	ProductID string    `spanner:"product_id"`
	Rating    int64     `spanner:"rating"`
	Comment   string    `spanner:"comment"`
	CreatedAt time.Time `spanner:"created_at"`
}
