package contracts

import (
	"context"
	"time"

	"github.com/marketfront/catalog-service/internal/pkg/query"
)

// VariantDTO is a data transfer object for a product variant.
// Price carries whichever of the three stored price aliases was populated,
// still in its ambiguous unit; normalization happens in the catalog engine.
type VariantDTO struct {
	VariantID         string  `json:"variant_id"`
	Title             string  `json:"title"`
	Price             float64 `json:"price"`
	InventoryQuantity int64   `json:"inventory_quantity"`
}

// ProductDTO is a data transfer object for product queries.
// EffectivePrice and AvgRating are computed per request, never persisted.
type ProductDTO struct {
	ProductID      string                 `json:"product_id"`
	Title          string                 `json:"title"`
	Slug           string                 `json:"slug"`
	Description    string                 `json:"description"`
	VendorID       string                 `json:"vendor_id"`
	CategoryID     string                 `json:"category_id"`
	BasePrice      float64                `json:"base_price"`
	Currency       string                 `json:"currency"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
	Variants       []VariantDTO           `json:"variants"`
	EffectivePrice int64                  `json:"effective_price"`
	AvgRating      *float64               `json:"avg_rating,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// VariantPrices collects the raw price values of all variants.
func (p *ProductDTO) VariantPrices() []float64 {
	if len(p.Variants) == 0 {
		return nil
	}
	prices := make([]float64, 0, len(p.Variants))
	for _, v := range p.Variants {
		prices = append(prices, v.Price)
	}
	return prices
}

// ProductQuery describes one store-level product query: a predicate set
// (ANDed), optional ordering, optional offset/limit pagination, and
// whether an exact row count over the same predicates is wanted.
type ProductQuery struct {
	Conditions []query.Condition
	OrderBy    string
	Desc       bool
	Limit      int64
	Offset     int64
	WithCount  bool
}

// ProductPage contains one query's rows plus the pre-pagination total.
// Total is only meaningful when the query requested a count.
type ProductPage struct {
	Products []*ProductDTO
	Total    int64
}

// ReadModel defines the store capabilities the catalog engine consumes.
// Implementations translate the condition trees into concrete queries;
// the engine never sees the store's native API.
type ReadModel interface {
	// GetProductByID retrieves a single product with its variants.
	GetProductByID(ctx context.Context, productID string) (*ProductDTO, error)

	// QueryProducts runs a product query and attaches each row's variants.
	QueryProducts(ctx context.Context, q *ProductQuery) (*ProductPage, error)

	// VariantProductIDs returns the distinct parent product ids of
	// variants matching the condition.
	VariantProductIDs(ctx context.Context, cond query.Condition) ([]string, error)

	// AverageRatings returns the mean review rating per product id.
	// Products without reviews are absent from the map.
	AverageRatings(ctx context.Context, productIDs []string) (map[string]float64, error)
}
