package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// PriceRange is a half-open or closed interval in integer cents.
// A nil bound means unconstrained on that side.
type PriceRange struct {
	Min *int64
	Max *int64
}

// IsConstrained reports whether the range carries any bound at all.
func (r PriceRange) IsConstrained() bool {
	return r.Min != nil || r.Max != nil
}

var boundedRangePattern = regexp.MustCompile(`^(\d+)-(\d+)$`)

// ParsePriceRange parses a price-range token into a cents interval.
// Recognized forms (case-insensitive, amounts in whole currency units):
//
//	"all" / ""   -> no constraint
//	"under-50"   -> max 5000
//	"over-100"   -> min 10000
//	"25-75"      -> min 2500, max 7500
//
// Anything else is treated as unconstrained rather than an error, so a
// malformed token degrades to the full catalog.
func ParsePriceRange(token string) PriceRange {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" || t == "all" {
		return PriceRange{}
	}

	if rest, ok := strings.CutPrefix(t, "under-"); ok {
		if v, err := strconv.ParseInt(rest, 10, 64); err == nil {
			max := v * 100
			return PriceRange{Max: &max}
		}
		return PriceRange{}
	}

	if rest, ok := strings.CutPrefix(t, "over-"); ok {
		if v, err := strconv.ParseInt(rest, 10, 64); err == nil {
			min := v * 100
			return PriceRange{Min: &min}
		}
		return PriceRange{}
	}

	if m := boundedRangePattern.FindStringSubmatch(t); m != nil {
		lo, errLo := strconv.ParseInt(m[1], 10, 64)
		hi, errHi := strconv.ParseInt(m[2], 10, 64)
		if errLo == nil && errHi == nil {
			min := lo * 100
			max := hi * 100
			return PriceRange{Min: &min, Max: &max}
		}
	}

	return PriceRange{}
}

// NormalizeToCents converts a raw stored price to integer cents.
//
// Price fields in the backing store are inconsistently recorded in either
// cents or decimal currency units. The heuristic: an integral value is
// assumed to already be cents; a value with a fractional part is assumed
// to be currency units and is scaled by 100. A genuine whole-dollar price
// is indistinguishable from its cents reading, so keep every unit
// conversion behind this one function until the schema grows an explicit
// unit tag.
func NormalizeToCents(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v == math.Trunc(v) {
		return int64(math.Round(v))
	}
	return int64(math.Round(v * 100))
}

// EffectivePriceCents resolves the price a product is listed under: the
// lowest strictly-positive variant price when any variant carries one,
// otherwise the product's own base price. Never negative.
func EffectivePriceCents(basePrice float64, variantPrices []float64) int64 {
	var minVariant int64
	found := false
	for _, p := range variantPrices {
		c := NormalizeToCents(p)
		if c <= 0 {
			continue
		}
		if !found || c < minVariant {
			minVariant = c
			found = true
		}
	}
	if found {
		return minVariant
	}

	base := NormalizeToCents(basePrice)
	if base < 0 {
		return 0
	}
	return base
}
