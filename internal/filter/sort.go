package filter

import (
	"slices"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Keys extracts the sortable fields of an item.
type Keys[T any] struct {
	Name  func(T) string
	Price func(T) decimal.Decimal
}

// sortItems orders items in place. price-high is the reverse of price-low so
// equal prices appear in opposite declaration order between the two.
func sortItems[T any](items []T, key SortKey, keys Keys[T]) {
	switch key {
	case SortPriceLow:
		sortByPrice(items, keys.Price)
	case SortPriceHigh:
		sortByPrice(items, keys.Price)
		slices.Reverse(items)
	case SortName:
		sortByName(items, keys.Name)
	default:
		// latest: declaration order
	}
}

func sortByPrice[T any](items []T, price func(T) decimal.Decimal) {
	sort.SliceStable(items, func(i, j int) bool {
		return price(items[i]).LessThan(price(items[j]))
	})
}

// sortByName sorts with English collation. A Collator keeps internal
// buffers, so each call gets its own.
func sortByName[T any](items []T, name func(T) string) {
	c := collate.New(language.English)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(name(items[i]), name(items[j])) < 0
	})
}
