package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceRange(t *testing.T) {
	t.Run("under token sets max only", func(t *testing.T) {
		r := ParsePriceRange("under-50")
		assert.Nil(t, r.Min)
		require.NotNil(t, r.Max)
		assert.Equal(t, int64(5000), *r.Max)
	})

	t.Run("over token sets min only", func(t *testing.T) {
		r := ParsePriceRange("over-100")
		require.NotNil(t, r.Min)
		assert.Equal(t, int64(10000), *r.Min)
		assert.Nil(t, r.Max)
	})

	t.Run("bounded range", func(t *testing.T) {
		r := ParsePriceRange("25-75")
		require.NotNil(t, r.Min)
		require.NotNil(t, r.Max)
		assert.Equal(t, int64(2500), *r.Min)
		assert.Equal(t, int64(7500), *r.Max)
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		r := ParsePriceRange("  UNDER-50 ")
		require.NotNil(t, r.Max)
		assert.Equal(t, int64(5000), *r.Max)
	})

	t.Run("all and empty are unconstrained", func(t *testing.T) {
		assert.False(t, ParsePriceRange("all").IsConstrained())
		assert.False(t, ParsePriceRange("ALL").IsConstrained())
		assert.False(t, ParsePriceRange("").IsConstrained())
	})

	t.Run("garbage degrades to unconstrained", func(t *testing.T) {
		assert.False(t, ParsePriceRange("garbage").IsConstrained())
		assert.False(t, ParsePriceRange("under-").IsConstrained())
		assert.False(t, ParsePriceRange("under-ten").IsConstrained())
		assert.False(t, ParsePriceRange("10-20-30").IsConstrained())
		assert.False(t, ParsePriceRange("12.5-20").IsConstrained())
	})
}

func TestNormalizeToCents(t *testing.T) {
	t.Run("integral values are already cents", func(t *testing.T) {
		assert.Equal(t, int64(1999), NormalizeToCents(1999))
		assert.Equal(t, int64(0), NormalizeToCents(0))
		assert.Equal(t, int64(50), NormalizeToCents(50))
	})

	t.Run("fractional values are currency units", func(t *testing.T) {
		assert.Equal(t, int64(1999), NormalizeToCents(19.99))
		assert.Equal(t, int64(1050), NormalizeToCents(10.5))
		assert.Equal(t, int64(10), NormalizeToCents(0.1))
	})

	t.Run("non-finite values normalize to zero", func(t *testing.T) {
		assert.Equal(t, int64(0), NormalizeToCents(math.NaN()))
		assert.Equal(t, int64(0), NormalizeToCents(math.Inf(1)))
		assert.Equal(t, int64(0), NormalizeToCents(math.Inf(-1)))
	})
}

func TestEffectivePriceCents(t *testing.T) {
	t.Run("minimum positive variant price wins", func(t *testing.T) {
		assert.Equal(t, int64(3000), EffectivePriceCents(5000, []float64{3000, 7000}))
	})

	t.Run("base price when no variants", func(t *testing.T) {
		assert.Equal(t, int64(2500), EffectivePriceCents(2500, nil))
	})

	t.Run("zero-priced variants are ignored", func(t *testing.T) {
		assert.Equal(t, int64(2500), EffectivePriceCents(2500, []float64{0, 0}))
	})

	t.Run("variant prices are normalized before comparison", func(t *testing.T) {
		// 19.99 currency units beats 3000 cents.
		assert.Equal(t, int64(1999), EffectivePriceCents(5000, []float64{19.99, 3000}))
	})

	t.Run("never negative", func(t *testing.T) {
		assert.Equal(t, int64(0), EffectivePriceCents(-500, nil))
	})
}

func TestParseSortMode(t *testing.T) {
	assert.Equal(t, SortPriceDesc, ParseSortMode("price_desc"))
	assert.Equal(t, SortNewest, ParseSortMode(""))
	assert.Equal(t, SortNewest, ParseSortMode("popularity"))
}

func TestSortMode_ServerSortable(t *testing.T) {
	assert.True(t, SortNewest.ServerSortable())
	assert.True(t, SortTitleDesc.ServerSortable())
	assert.False(t, SortPriceAsc.ServerSortable())
	assert.False(t, SortRatingDesc.ServerSortable())

	assert.False(t, SortPriceAsc.RequiresRatings())
	assert.True(t, SortRatingAsc.RequiresRatings())
}
