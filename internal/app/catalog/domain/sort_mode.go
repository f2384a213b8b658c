package domain

// SortMode identifies the ordering requested for a catalog page.
type SortMode string

const (
	SortNewest     SortMode = "newest"
	SortOldest     SortMode = "oldest"
	SortTitleAsc   SortMode = "title_asc"
	SortTitleDesc  SortMode = "title_desc"
	SortPriceAsc   SortMode = "price_asc"
	SortPriceDesc  SortMode = "price_desc"
	SortRatingAsc  SortMode = "rating_asc"
	SortRatingDesc SortMode = "rating_desc"
)

// ParseSortMode maps a request token to a SortMode.
// Unrecognized tokens fall back to the newest-first default.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortNewest, SortOldest, SortTitleAsc, SortTitleDesc,
		SortPriceAsc, SortPriceDesc, SortRatingAsc, SortRatingDesc:
		return SortMode(s)
	default:
		return SortNewest
	}
}

// ServerSortable reports whether the store can order this mode itself.
// Price and rating orderings depend on derived values the store cannot
// compute, so they are sorted in memory over the full filtered set.
func (m SortMode) ServerSortable() bool {
	switch m {
	case SortPriceAsc, SortPriceDesc, SortRatingAsc, SortRatingDesc:
		return false
	default:
		return true
	}
}

// RequiresRatings reports whether this mode needs per-product average
// ratings before sorting.
func (m SortMode) RequiresRatings() bool {
	return m == SortRatingAsc || m == SortRatingDesc
}
