package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/marketfront/catalog-service/internal/models/m_product"
	"github.com/marketfront/catalog-service/internal/models/m_review"
	"github.com/marketfront/catalog-service/internal/models/m_variant"
)

// ProductFixture describes a product row for tests. Zero values get
// sensible defaults in CreateTestProduct.
type ProductFixture struct {
	Title      string
	Slug       string
	VendorID   string
	CategoryID string
	Category   string // metadata category label
	BasePrice  float64
	CreatedAt  time.Time
}

// CreateTestProduct inserts a product and returns its generated id.
func CreateTestProduct(t *testing.T, client *spanner.Client, f ProductFixture) string {
	t.Helper()

	ctx := context.Background()
	productID := uuid.New().String()

	if f.Title == "" {
		f.Title = "Test Product"
	}
	if f.Slug == "" {
		f.Slug = "test-product-" + productID[:8]
	}
	if f.VendorID == "" {
		f.VendorID = "vendor-test"
	}
	if f.CategoryID == "" {
		f.CategoryID = "1"
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}

	metadata := spanner.NullJSON{}
	if f.Category != "" {
		metadata = spanner.NullJSON{
			Valid: true,
			Value: map[string]interface{}{"category": f.Category},
		}
	}

	model := m_product.NewModel()
	data := &m_product.Data{
		ProductID:   productID,
		Title:       f.Title,
		Slug:        f.Slug,
		Description: "Test product description",
		VendorID:    f.VendorID,
		CategoryID:  f.CategoryID,
		BasePrice:   f.BasePrice,
		Currency:    "USD",
		Metadata:    metadata,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.CreatedAt,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test product")

	return productID
}

// CreateTestVariant inserts a variant for productID with the price stored
// under the given column alias ("price_in_cents", "price" or "price_cents").
func CreateTestVariant(t *testing.T, client *spanner.Client, productID, alias string, amount float64) string {
	t.Helper()

	ctx := context.Background()
	variantID := uuid.New().String()

	data := &m_variant.Data{
		VariantID:         variantID,
		ProductID:         productID,
		Title:             "Test Variant",
		InventoryQuantity: 10,
		CreatedAt:         time.Now().UTC(),
	}

	value := spanner.NullFloat64{Valid: true, Float64: amount}
	switch alias {
	case m_variant.Price:
		data.Price = value
	case m_variant.PriceCents:
		data.PriceCents = value
	case m_variant.PriceInCents:
		data.PriceInCents = value
	default:
		t.Fatalf("unknown variant price alias: %s", alias)
	}

	model := m_variant.NewModel()
	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test variant")

	return variantID
}

// CreateTestReview inserts a review for productID with the given rating.
func CreateTestReview(t *testing.T, client *spanner.Client, productID string, rating int64) string {
	t.Helper()

	ctx := context.Background()
	reviewID := uuid.New().String()

	model := m_review.NewModel()
	data := &m_review.Data{
		ReviewID:  reviewID,
		ProductID: productID,
		Rating:    rating,
		Comment:   "Test review",
		CreatedAt: time.Now().UTC(),
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test review")

	return reviewID
}
