// Package get_products implements the catalog query and pricing-resolution
// engine: request options become store predicates, a price range fans out
// into a two-query union over base and variant prices, and derived
// effective prices drive the hybrid server/client sort-then-paginate step.
package get_products

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/marketfront/catalog-service/internal/app/catalog/contracts"
	"github.com/marketfront/catalog-service/internal/app/catalog/domain"
	"github.com/marketfront/catalog-service/internal/models/m_product"
	"github.com/marketfront/catalog-service/internal/pkg/metrics"
	"github.com/marketfront/catalog-service/internal/pkg/query"
)

// DefaultPerPage is the page size used when the request does not set one.
const DefaultPerPage = 24

// Request contains filtering, sorting, and pagination options for one
// catalog query. The zero value of an optional field means "not filtered".
type Request struct {
	SellerID     string
	CategoryID   string
	CategorySlug string
	SearchQuery  string
	PriceRange   string
	SortBy       string
	Page         int
	PerPage      int
}

// Result is one catalog page. Total counts the filtered set before
// pagination. Every product carries a computed effective price; rating
// sorts additionally carry the average rating.
type Result struct {
	Products []*contracts.ProductDTO
	Total    int64
}

// Query handles the catalog product listing use case.
type Query struct {
	readModel contracts.ReadModel
	logger    *zap.Logger
}

// NewQuery creates a new catalog listing query.
func NewQuery(readModel contracts.ReadModel, logger *zap.Logger) *Query {
	return &Query{
		readModel: readModel,
		logger:    logger,
	}
}

// Execute answers one catalog request. It is fail-soft by contract: store
// failures degrade to an empty page (logged and counted) so listing pages
// render "no results" instead of crashing. Repeated calls with identical
// options against an unchanged store return identical results.
func (q *Query) Execute(ctx context.Context, req *Request) *Result {
	timer := prometheus.NewTimer(metrics.CatalogQueryDuration)
	defer timer.ObserveDuration()

	page, perPage := normalizePaging(req.Page, req.PerPage)
	mode := domain.ParseSortMode(req.SortBy)
	metrics.CatalogQueriesTotal.WithLabelValues(string(mode)).Inc()

	conds := baseConditions(req)
	priceRange := domain.ParsePriceRange(req.PriceRange)

	var (
		products []*contracts.ProductDTO
		total    int64
		// true when the store already sliced the requested page
		paginated bool
	)

	if priceRange.IsConstrained() {
		merged, ok := q.unionByPrice(ctx, conds, priceRange)
		if !ok {
			return emptyResult()
		}
		products = merged
	} else {
		pq := &contracts.ProductQuery{Conditions: conds, WithCount: true}
		if mode.ServerSortable() {
			pq.OrderBy, pq.Desc = storeOrder(mode)
			pq.Offset = int64((page - 1) * perPage)
			pq.Limit = int64(perPage)
			paginated = true
		} else {
			// Derived-value sorts need the full filtered set; let the
			// store hand it over in its default newest-first order.
			pq.OrderBy, pq.Desc = m_product.CreatedAt, true
		}

		res, err := q.readModel.QueryProducts(ctx, pq)
		if err != nil {
			q.logger.Error("catalog base query failed", zap.Error(err))
			metrics.CatalogDegradedTotal.WithLabelValues("base_query").Inc()
			return emptyResult()
		}
		products = res.Products
		total = res.Total
	}

	annotateEffectivePrices(products)
	if mode.RequiresRatings() {
		q.annotateRatings(ctx, products)
	}

	if paginated {
		return &Result{Products: products, Total: total}
	}

	sortProducts(products, mode)
	return &Result{
		Products: slicePage(products, page, perPage),
		Total:    int64(len(products)),
	}
}

// unionByPrice reconciles the two independent price predicates: a product
// qualifies either by its own base price or by any variant's price, so the
// base-price sub-query and the variant-membership sub-query are merged and
// deduplicated by product id, base-price rows winning. The second return
// value is false when either sub-query failed; partially-correct data is
// worse than an empty page here.
func (q *Query) unionByPrice(ctx context.Context, conds []query.Condition, r domain.PriceRange) ([]*contracts.ProductDTO, bool) {
	variantIDs, err := q.readModel.VariantProductIDs(ctx, variantPriceCondition(r))
	if err != nil {
		q.logger.Warn("variant price lookup failed, continuing without variant matches",
			zap.Error(err))
		metrics.VariantLookupFailures.Inc()
		variantIDs = nil
	}

	baseQuery := &contracts.ProductQuery{
		Conditions: append(copyConditions(conds), basePriceConditions(r)...),
	}
	basePage, err := q.readModel.QueryProducts(ctx, baseQuery)
	if err != nil {
		q.logger.Error("base-price sub-query failed", zap.Error(err))
		metrics.CatalogDegradedTotal.WithLabelValues("union").Inc()
		return nil, false
	}

	var variantRows []*contracts.ProductDTO
	if len(variantIDs) > 0 {
		variantQuery := &contracts.ProductQuery{
			Conditions: append(copyConditions(conds), query.In(m_product.ProductID, variantIDs)),
		}
		variantPage, err := q.readModel.QueryProducts(ctx, variantQuery)
		if err != nil {
			q.logger.Error("variant-price sub-query failed", zap.Error(err))
			metrics.CatalogDegradedTotal.WithLabelValues("union").Inc()
			return nil, false
		}
		variantRows = variantPage.Products
	}

	seen := make(map[string]struct{}, len(basePage.Products)+len(variantRows))
	merged := make([]*contracts.ProductDTO, 0, len(basePage.Products)+len(variantRows))
	for _, rows := range [][]*contracts.ProductDTO{basePage.Products, variantRows} {
		for _, p := range rows {
			if _, ok := seen[p.ProductID]; ok {
				continue
			}
			seen[p.ProductID] = struct{}{}
			merged = append(merged, p)
		}
	}
	return merged, true
}

// annotateRatings attaches each product's average review rating, defaulting
// to zero for products without reviews. A failed lookup degrades to
// all-zero ratings rather than failing the request.
func (q *Query) annotateRatings(ctx context.Context, products []*contracts.ProductDTO) {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ProductID)
	}

	ratings, err := q.readModel.AverageRatings(ctx, ids)
	if err != nil {
		q.logger.Warn("ratings lookup failed, sorting with zero ratings", zap.Error(err))
		metrics.CatalogDegradedTotal.WithLabelValues("ratings").Inc()
		ratings = nil
	}

	for _, p := range products {
		r := ratings[p.ProductID]
		p.AvgRating = &r
	}
}

func annotateEffectivePrices(products []*contracts.ProductDTO) {
	for _, p := range products {
		p.EffectivePrice = domain.EffectivePriceCents(p.BasePrice, p.VariantPrices())
	}
}

func copyConditions(conds []query.Condition) []query.Condition {
	return append(make([]query.Condition, 0, len(conds)+2), conds...)
}

func emptyResult() *Result {
	return &Result{Products: []*contracts.ProductDTO{}}
}
