package get_products

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketfront/catalog-service/internal/app/catalog/domain"
	"github.com/marketfront/catalog-service/internal/pkg/query"
)

func conditionSQL(t *testing.T, conds []query.Condition) []string {
	t.Helper()
	out := make([]string, 0, len(conds))
	index := 0
	for _, c := range conds {
		sql, params := c.SQL(index)
		out = append(out, sql)
		index += len(params)
	}
	return out
}

func TestBaseConditions_Seller(t *testing.T) {
	conds := baseConditions(&Request{SellerID: "v-42"})

	require.Len(t, conds, 1)
	assert.Equal(t, []string{"vendor_id = @p0"}, conditionSQL(t, conds))
}

func TestBaseConditions_CategoryIDCoercion(t *testing.T) {
	t.Run("integer ids are canonicalized", func(t *testing.T) {
		conds := baseConditions(&Request{CategoryID: " 007 "})

		require.Len(t, conds, 1)
		_, params := conds[0].SQL(0)
		assert.Equal(t, "7", params["p0"])
	})

	t.Run("opaque slugs pass through", func(t *testing.T) {
		conds := baseConditions(&Request{CategoryID: "home-garden"})

		require.Len(t, conds, 1)
		_, params := conds[0].SQL(0)
		assert.Equal(t, "home-garden", params["p0"])
	})
}

func TestBaseConditions_CategorySlugOnlyWithoutID(t *testing.T) {
	t.Run("slug matches metadata tag or title", func(t *testing.T) {
		conds := baseConditions(&Request{CategorySlug: "garden"})

		require.Len(t, conds, 1)
		sql, _ := conds[0].SQL(0)
		assert.Equal(t,
			"(LOWER(JSON_VALUE(metadata, '$.category')) LIKE @p0 OR LOWER(title) LIKE @p1)",
			sql)
	})

	t.Run("category id wins over slug", func(t *testing.T) {
		conds := baseConditions(&Request{CategoryID: "7", CategorySlug: "garden"})

		require.Len(t, conds, 1)
		sql, _ := conds[0].SQL(0)
		assert.Equal(t, "category_id = @p0", sql)
	})
}

func TestBaseConditions_Search(t *testing.T) {
	t.Run("search matches title or description", func(t *testing.T) {
		conds := baseConditions(&Request{SearchQuery: "Desk Lamp"})

		require.Len(t, conds, 1)
		sql, params := conds[0].SQL(0)
		assert.Equal(t, "(LOWER(title) LIKE @p0 OR LOWER(description) LIKE @p1)", sql)
		assert.Equal(t, "%desk lamp%", params["p0"])
	})

	t.Run("blank search is ignored", func(t *testing.T) {
		assert.Empty(t, baseConditions(&Request{SearchQuery: "   "}))
	})
}

func TestBasePriceConditions(t *testing.T) {
	r := domain.ParsePriceRange("25-75")
	conds := basePriceConditions(r)

	assert.Equal(t, []string{"base_price >= @p0", "base_price <= @p1"}, conditionSQL(t, conds))

	_, minParams := conds[0].SQL(0)
	assert.Equal(t, 2500.0, minParams["p0"])
}

func TestVariantPriceCondition_DualScale(t *testing.T) {
	t.Run("bounded range has four clauses", func(t *testing.T) {
		sql, params := variantPriceCondition(domain.ParsePriceRange("25-75")).SQL(0)

		expr := "COALESCE(price_in_cents, price, price_cents)"
		assert.Equal(t,
			"(("+expr+" >= @p0 AND "+expr+" <= @p1) OR ("+expr+" >= @p2 AND "+expr+" <= @p3))",
			sql)
		assert.Equal(t, 2500.0, params["p0"])
		assert.Equal(t, 7500.0, params["p1"])
		assert.Equal(t, 25.0, params["p2"])
		assert.Equal(t, 75.0, params["p3"])
	})

	t.Run("open range has two clauses", func(t *testing.T) {
		sql, params := variantPriceCondition(domain.ParsePriceRange("under-50")).SQL(0)

		expr := "COALESCE(price_in_cents, price, price_cents)"
		assert.Equal(t, "("+expr+" <= @p0 OR "+expr+" <= @p1)", sql)
		assert.Equal(t, 5000.0, params["p0"])
		assert.Equal(t, 50.0, params["p1"])
	})
}
