package filter

import (
	"github.com/shopspring/decimal"

	"github.com/shinelaptops/storefront/internal/catalog"
)

// Apply keeps the items matching every predicate in keep, in input order,
// then sorts them by key. The result is always a fresh slice.
func Apply[T any](items []T, key SortKey, keys Keys[T], keep ...func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if matchesAll(it, keep) {
			out = append(out, it)
		}
	}
	sortItems(out, key, keys)
	return out
}

func matchesAll[T any](it T, preds []func(T) bool) bool {
	for _, p := range preds {
		if !p(it) {
			return false
		}
	}
	return true
}

var (
	productKeys = Keys[catalog.Product]{
		Name:  func(p catalog.Product) string { return p.Name },
		Price: func(p catalog.Product) decimal.Decimal { return p.Price },
	}
	serviceKeys = Keys[catalog.Service]{
		Name:  func(s catalog.Service) string { return s.Name },
		Price: func(s catalog.Service) decimal.Decimal { return s.Price },
	}
	accessoryKeys = Keys[catalog.Accessory]{
		Name:  func(a catalog.Accessory) string { return a.Name },
		Price: func(a catalog.Accessory) decimal.Decimal { return a.Price },
	}
)

// Products filters the laptop listing. Category is resolved through the
// product's brand; a product with a dangling brand never matches a category.
func Products(store *catalog.Store, q Query) []catalog.Product {
	if q.Price != nil && q.Price.Empty() {
		return []catalog.Product{}
	}

	m := newMatcher(q.Search)
	preds := []func(catalog.Product) bool{
		func(p catalog.Product) bool { return m.Match(p.Name, p.Description) },
	}
	if q.Category != "" {
		preds = append(preds, func(p catalog.Product) bool {
			cat, err := store.ProductCategoryID(p)
			return err == nil && cat == q.Category
		})
	}
	if q.Brand != "" {
		preds = append(preds, func(p catalog.Product) bool { return p.BrandID == q.Brand })
	}
	if q.Price != nil {
		r := *q.Price
		preds = append(preds, func(p catalog.Product) bool { return r.Contains(p.Price) })
	}

	return Apply(store.Products(), q.Sort, productKeys, preds...)
}

// Services filters service offerings by search text, category label and
// optional price range.
func Services(items []catalog.Service, q Query) []catalog.Service {
	if q.Price != nil && q.Price.Empty() {
		return []catalog.Service{}
	}

	m := newMatcher(q.Search)
	preds := []func(catalog.Service) bool{
		func(s catalog.Service) bool { return m.Match(s.Name, s.Description) },
	}
	if q.Category != "" {
		preds = append(preds, func(s catalog.Service) bool { return s.Category == q.Category })
	}
	if q.Price != nil {
		r := *q.Price
		preds = append(preds, func(s catalog.Service) bool { return r.Contains(s.Price) })
	}

	return Apply(items, q.Sort, serviceKeys, preds...)
}

// Accessories filters accessories by search text and category label. Brand
// and price are not accessory predicates and are ignored.
func Accessories(items []catalog.Accessory, q Query) []catalog.Accessory {
	m := newMatcher(q.Search)
	preds := []func(catalog.Accessory) bool{
		func(a catalog.Accessory) bool { return m.Match(a.Name, a.Description) },
	}
	if q.Category != "" {
		preds = append(preds, func(a catalog.Accessory) bool { return a.Category == q.Category })
	}

	return Apply(items, q.Sort, accessoryKeys, preds...)
}
