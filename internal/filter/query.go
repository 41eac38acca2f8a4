// Package filter derives the ordered listing views (laptops, services,
// accessories) from the catalog. Every function is pure: inputs are never
// mutated and the same query over the same catalog always yields the same
// order.
package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// SortKey selects the order of a listing.
type SortKey string

const (
	// SortLatest keeps catalog declaration order.
	SortLatest    SortKey = "latest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortName      SortKey = "name"
)

// Default sort per listing.
const (
	DefaultProductSort   = SortLatest
	DefaultServiceSort   = SortLatest
	DefaultAccessorySort = SortName
)

// SortKeys lists the accepted sort keys.
var SortKeys = []SortKey{SortLatest, SortPriceLow, SortPriceHigh, SortName}

// ErrUnknownSortKey is returned by ParseSortKey for keys outside SortKeys.
var ErrUnknownSortKey = errors.New("unknown sort key")

// ParseSortKey validates raw. An empty string yields fallback.
func ParseSortKey(raw string, fallback SortKey) (SortKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	for _, k := range SortKeys {
		if string(k) == raw {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, raw)
}

// PriceRange is an inclusive price bound. Min greater than Max matches
// nothing; the bounds are never swapped.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// Contains reports whether Min <= price <= Max.
func (r PriceRange) Contains(price decimal.Decimal) bool {
	return price.GreaterThanOrEqual(r.Min) && price.LessThanOrEqual(r.Max)
}

// Empty reports whether no price can satisfy the range.
func (r PriceRange) Empty() bool {
	return r.Min.GreaterThan(r.Max)
}

// Query is the predicate set of a listing. Zero values mean "no constraint"
// except Sort, which falls back to SortLatest.
type Query struct {
	Search   string      `json:"search,omitempty"`
	Category string      `json:"category,omitempty"`
	Brand    string      `json:"brand,omitempty"`
	Price    *PriceRange `json:"price,omitempty"`
	Sort     SortKey     `json:"sort,omitempty"`
}

// ProductDefaults is the initial laptop listing query: every price up to
// ceiling, catalog order.
func ProductDefaults(ceiling decimal.Decimal) Query {
	return Query{
		Price: &PriceRange{Min: decimal.Zero, Max: ceiling},
		Sort:  DefaultProductSort,
	}
}
