//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketfront/catalog-service/internal/app/catalog/contracts"
	"github.com/marketfront/catalog-service/internal/app/catalog/domain"
	"github.com/marketfront/catalog-service/internal/app/catalog/repo"
	"github.com/marketfront/catalog-service/internal/models/m_product"
	"github.com/marketfront/catalog-service/internal/models/m_variant"
	"github.com/marketfront/catalog-service/internal/pkg/clock"
	"github.com/marketfront/catalog-service/internal/pkg/query"
	"github.com/marketfront/catalog-service/tests/testutil"
)

func TestReadModel_GetProductByID(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	rm := repo.NewReadModel(client)

	productID := testutil.CreateTestProduct(t, client, testutil.ProductFixture{
		Title:     "Desk Lamp",
		BasePrice: 4999,
	})
	testutil.CreateTestVariant(t, client, productID, m_variant.PriceInCents, 4999)
	testutil.CreateTestVariant(t, client, productID, m_variant.Price, 52.99)

	dto, err := rm.GetProductByID(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, "Desk Lamp", dto.Title)
	assert.Len(t, dto.Variants, 2)
}

func TestReadModel_GetProductByID_NotFound(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	rm := repo.NewReadModel(client)

	_, err := rm.GetProductByID(ctx, "does-not-exist")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestReadModel_QueryProducts_FilterAndCount(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	rm := repo.NewReadModel(client)

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		testutil.CreateTestProduct(t, client, testutil.ProductFixture{
			VendorID:  "vendor-a",
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		})
	}
	testutil.CreateTestProduct(t, client, testutil.ProductFixture{VendorID: "vendor-b"})

	page, err := rm.QueryProducts(ctx, &contracts.ProductQuery{
		Conditions: []query.Condition{query.Eq(m_product.VendorID, "vendor-a")},
		OrderBy:    m_product.CreatedAt,
		Desc:       true,
		Limit:      2,
		WithCount:  true,
	})
	require.NoError(t, err)
	assert.Len(t, page.Products, 2)
	assert.Equal(t, int64(3), page.Total, "count covers the full filtered set, not the page")

	// Second page picks up the remaining row.
	page2, err := rm.QueryProducts(ctx, &contracts.ProductQuery{
		Conditions: []query.Condition{query.Eq(m_product.VendorID, "vendor-a")},
		OrderBy:    m_product.CreatedAt,
		Desc:       true,
		Limit:      2,
		Offset:     2,
		WithCount:  true,
	})
	require.NoError(t, err)
	assert.Len(t, page2.Products, 1)
	assert.Equal(t, int64(3), page2.Total)
}

func TestReadModel_QueryProducts_Ordering(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	rm := repo.NewReadModel(client)

	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	testutil.CreateTestProduct(t, client, testutil.ProductFixture{
		Title:     "Old",
		CreatedAt: clk.Now(),
	})
	clk.Advance(2 * time.Hour)
	testutil.CreateTestProduct(t, client, testutil.ProductFixture{
		Title:     "New",
		CreatedAt: clk.Now(),
	})

	page, err := rm.QueryProducts(ctx, &contracts.ProductQuery{
		OrderBy: m_product.CreatedAt,
		Desc:    true,
	})
	require.NoError(t, err)
	require.Len(t, page.Products, 2)
	assert.Equal(t, "New", page.Products[0].Title)
	assert.Equal(t, "Old", page.Products[1].Title)

	asc, err := rm.QueryProducts(ctx, &contracts.ProductQuery{
		OrderBy: m_product.CreatedAt,
	})
	require.NoError(t, err)
	require.Len(t, asc.Products, 2)
	assert.Equal(t, "Old", asc.Products[0].Title)
}

func TestReadModel_QueryProducts_MetadataCategoryFilter(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	rm := repo.NewReadModel(client)

	testutil.CreateTestProduct(t, client, testutil.ProductFixture{
		Title:    "Lamp",
		Category: "lighting",
	})
	testutil.CreateTestProduct(t, client, testutil.ProductFixture{
		Title:    "Kettle",
		Category: "kitchen",
	})

	page, err := rm.QueryProducts(ctx, &contracts.ProductQuery{
		Conditions: []query.Condition{
			query.Like(m_product.MetadataCategoryExpr, "lighting"),
		},
	})
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Lamp", page.Products[0].Title)
}

func TestReadModel_VariantProductIDs_CoalescedAliases(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	rm := repo.NewReadModel(client)

	// Three products, each storing a ~$50 price under a different alias.
	centsID := testutil.CreateTestProduct(t, client, testutil.ProductFixture{Title: "Cents"})
	testutil.CreateTestVariant(t, client, centsID, m_variant.PriceInCents, 5000)

	unitsID := testutil.CreateTestProduct(t, client, testutil.ProductFixture{Title: "Units"})
	testutil.CreateTestVariant(t, client, unitsID, m_variant.Price, 50)

	legacyID := testutil.CreateTestProduct(t, client, testutil.ProductFixture{Title: "Legacy"})
	testutil.CreateTestVariant(t, client, legacyID, m_variant.PriceCents, 5000)

	cheapID := testutil.CreateTestProduct(t, client, testutil.ProductFixture{Title: "Cheap"})
	testutil.CreateTestVariant(t, client, cheapID, m_variant.PriceInCents, 500)

	// Dual-scale predicate: match at cents scale or currency-unit scale.
	cond := query.Or(
		query.And(
			query.Gte(m_variant.PriceExpr, float64(4000)),
			query.Lte(m_variant.PriceExpr, float64(6000)),
		),
		query.And(
			query.Gte(m_variant.PriceExpr, float64(40)),
			query.Lte(m_variant.PriceExpr, float64(60)),
		),
	)

	ids, err := rm.VariantProductIDs(ctx, cond)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{centsID, unitsID, legacyID}, ids)
}

func TestReadModel_VariantProductIDs_Distinct(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	rm := repo.NewReadModel(client)

	productID := testutil.CreateTestProduct(t, client, testutil.ProductFixture{})
	testutil.CreateTestVariant(t, client, productID, m_variant.PriceInCents, 1000)
	testutil.CreateTestVariant(t, client, productID, m_variant.PriceInCents, 2000)

	ids, err := rm.VariantProductIDs(ctx, query.Gte(m_variant.PriceExpr, float64(0)))
	require.NoError(t, err)
	assert.Equal(t, []string{productID}, ids, "parent id appears once despite two matching variants")
}

func TestReadModel_AverageRatings(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	rm := repo.NewReadModel(client)

	ratedID := testutil.CreateTestProduct(t, client, testutil.ProductFixture{})
	testutil.CreateTestReview(t, client, ratedID, 4)
	testutil.CreateTestReview(t, client, ratedID, 5)

	unratedID := testutil.CreateTestProduct(t, client, testutil.ProductFixture{})

	averages, err := rm.AverageRatings(ctx, []string{ratedID, unratedID})
	require.NoError(t, err)
	assert.InDelta(t, 4.5, averages[ratedID], 0.001)
	_, ok := averages[unratedID]
	assert.False(t, ok, "products without reviews are absent from the map")
}

func TestReadModel_AverageRatings_EmptyInput(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	rm := repo.NewReadModel(client)

	averages, err := rm.AverageRatings(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, averages)
}
