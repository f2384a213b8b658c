package get_product

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketfront/catalog-service/internal/app/catalog/contracts"
	"github.com/marketfront/catalog-service/internal/app/catalog/domain"
	"github.com/marketfront/catalog-service/internal/pkg/query"
)

type fakeReadModel struct {
	product    *contracts.ProductDTO
	productErr error
	ratings    map[string]float64
	ratingsErr error
}

func (f *fakeReadModel) GetProductByID(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	if f.productErr != nil {
		return nil, f.productErr
	}
	return f.product, nil
}

func (f *fakeReadModel) QueryProducts(ctx context.Context, q *contracts.ProductQuery) (*contracts.ProductPage, error) {
	return nil, errors.New("not scripted")
}

func (f *fakeReadModel) VariantProductIDs(ctx context.Context, cond query.Condition) ([]string, error) {
	return nil, errors.New("not scripted")
}

func (f *fakeReadModel) AverageRatings(ctx context.Context, productIDs []string) (map[string]float64, error) {
	if f.ratingsErr != nil {
		return nil, f.ratingsErr
	}
	return f.ratings, nil
}

func TestExecute_AnnotatesComputedFields(t *testing.T) {
	rm := &fakeReadModel{
		product: &contracts.ProductDTO{
			ProductID: "p1",
			BasePrice: 5000,
			Variants:  []contracts.VariantDTO{{VariantID: "v1", Price: 19.99}},
		},
		ratings: map[string]float64{"p1": 4.2},
	}

	dto, err := NewQuery(rm).Execute(context.Background(), &Request{ProductID: "p1"})
	require.NoError(t, err)

	assert.Equal(t, int64(1999), dto.EffectivePrice)
	require.NotNil(t, dto.AvgRating)
	assert.Equal(t, 4.2, *dto.AvgRating)
}

func TestExecute_RatingsFailureLeavesRatingUnset(t *testing.T) {
	rm := &fakeReadModel{
		product:    &contracts.ProductDTO{ProductID: "p1", BasePrice: 2500},
		ratingsErr: errors.New("reviews unavailable"),
	}

	dto, err := NewQuery(rm).Execute(context.Background(), &Request{ProductID: "p1"})
	require.NoError(t, err)

	assert.Equal(t, int64(2500), dto.EffectivePrice)
	assert.Nil(t, dto.AvgRating)
}

func TestExecute_NotFoundPropagates(t *testing.T) {
	rm := &fakeReadModel{productErr: domain.ErrProductNotFound}

	_, err := NewQuery(rm).Execute(context.Background(), &Request{ProductID: "missing"})

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
