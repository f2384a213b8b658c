package get_product

import (
	"context"

	"github.com/marketfront/catalog-service/internal/app/catalog/contracts"
	"github.com/marketfront/catalog-service/internal/app/catalog/domain"
)

// Request contains the product ID to retrieve.
type Request struct {
	ProductID string
}

// Query handles the product detail query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new product detail query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a product by ID with its computed effective price and
// average rating. Returns domain.ErrProductNotFound when no row matches.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ProductDTO, error) {
	dto, err := q.readModel.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	dto.EffectivePrice = domain.EffectivePriceCents(dto.BasePrice, dto.VariantPrices())

	ratings, err := q.readModel.AverageRatings(ctx, []string{dto.ProductID})
	if err == nil {
		if r, ok := ratings[dto.ProductID]; ok {
			dto.AvgRating = &r
		}
	}

	return dto, nil
}
