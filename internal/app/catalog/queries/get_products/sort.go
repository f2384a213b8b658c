package get_products

import (
	"sort"

	"github.com/marketfront/catalog-service/internal/app/catalog/contracts"
	"github.com/marketfront/catalog-service/internal/app/catalog/domain"
	"github.com/marketfront/catalog-service/internal/models/m_product"
)

func normalizePaging(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return page, perPage
}

// storeOrder maps a server-sortable mode to its store column and direction.
func storeOrder(mode domain.SortMode) (string, bool) {
	switch mode {
	case domain.SortOldest:
		return m_product.CreatedAt, false
	case domain.SortTitleAsc:
		return m_product.Title, false
	case domain.SortTitleDesc:
		return m_product.Title, true
	default:
		return m_product.CreatedAt, true
	}
}

// sortProducts orders the full filtered set in memory. Stable sorts keep
// the original relative order among equal keys.
func sortProducts(products []*contracts.ProductDTO, mode domain.SortMode) {
	switch mode {
	case domain.SortOldest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.Before(products[j].CreatedAt)
		})
	case domain.SortTitleAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Title < products[j].Title
		})
	case domain.SortTitleDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Title > products[j].Title
		})
	case domain.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice < products[j].EffectivePrice
		})
	case domain.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice > products[j].EffectivePrice
		})
	case domain.SortRatingAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return ratingOf(products[i]) < ratingOf(products[j])
		})
	case domain.SortRatingDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return ratingOf(products[i]) > ratingOf(products[j])
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}

func ratingOf(p *contracts.ProductDTO) float64 {
	if p.AvgRating == nil {
		return 0
	}
	return *p.AvgRating
}

// slicePage cuts the requested 1-indexed page out of the sorted set.
func slicePage(products []*contracts.ProductDTO, page, perPage int) []*contracts.ProductDTO {
	start := (page - 1) * perPage
	if start >= len(products) {
		return []*contracts.ProductDTO{}
	}
	end := start + perPage
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
