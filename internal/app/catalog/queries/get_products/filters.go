package get_products

import (
	"strconv"
	"strings"

	"github.com/marketfront/catalog-service/internal/app/catalog/domain"
	"github.com/marketfront/catalog-service/internal/models/m_product"
	"github.com/marketfront/catalog-service/internal/models/m_variant"
	"github.com/marketfront/catalog-service/internal/pkg/query"
)

// baseConditions builds the non-price predicate set for a request. The
// same set backs every sub-query of the request, so adding a price-range
// predicate never changes which non-price filters apply.
func baseConditions(req *Request) []query.Condition {
	conds := make([]query.Condition, 0, 3)

	if req.SellerID != "" {
		conds = append(conds, query.Eq(m_product.VendorID, req.SellerID))
	}

	if req.CategoryID != "" {
		conds = append(conds, query.Eq(m_product.CategoryID, canonicalCategoryID(req.CategoryID)))
	} else if req.CategorySlug != "" {
		// Products without a relational category carry a free-form tag in
		// metadata; match either that tag or the title.
		conds = append(conds, query.Or(
			query.Like(m_product.MetadataCategoryExpr, req.CategorySlug),
			query.Like(m_product.Title, req.CategorySlug),
		))
	}

	if q := strings.TrimSpace(req.SearchQuery); q != "" {
		conds = append(conds, query.Or(
			query.Like(m_product.Title, q),
			query.Like(m_product.Description, q),
		))
	}

	return conds
}

// canonicalCategoryID normalizes category ids that parse as integers
// (stripping whitespace, signs, leading zeros) so "007" and "7" hit the
// same rows. Opaque slugs pass through verbatim.
func canonicalCategoryID(v string) string {
	if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
		return strconv.FormatInt(n, 10)
	}
	return v
}

// basePriceConditions constrains the product's own base price to the
// range, compared on the cents scale.
func basePriceConditions(r domain.PriceRange) []query.Condition {
	conds := make([]query.Condition, 0, 2)
	if r.Min != nil {
		conds = append(conds, query.Gte(m_product.BasePrice, float64(*r.Min)))
	}
	if r.Max != nil {
		conds = append(conds, query.Lte(m_product.BasePrice, float64(*r.Max)))
	}
	return conds
}

// variantPriceCondition builds the secondary predicate for the
// variant-matched id lookup. The stored price unit is ambiguous, so the
// populated alias is compared against both the cents-scaled and the
// currency-scaled interval, OR-combined into a single predicate of at
// most four comparison clauses.
func variantPriceCondition(r domain.PriceRange) query.Condition {
	cents := make([]query.Condition, 0, 2)
	units := make([]query.Condition, 0, 2)

	if r.Min != nil {
		cents = append(cents, query.Gte(m_variant.PriceExpr, float64(*r.Min)))
		units = append(units, query.Gte(m_variant.PriceExpr, float64(*r.Min)/100))
	}
	if r.Max != nil {
		cents = append(cents, query.Lte(m_variant.PriceExpr, float64(*r.Max)))
		units = append(units, query.Lte(m_variant.PriceExpr, float64(*r.Max)/100))
	}

	return query.Or(query.And(cents...), query.And(units...))
}
