package catalog

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when an id does not resolve to a catalog record.
var ErrNotFound = errors.New("not found")

// Store is the immutable catalog. It is built once at startup and shared by
// every request without locking; nothing returned by a Store may be
// modified by callers.
type Store struct {
	data Data

	categories  map[string]int
	brands      map[string]int
	products    map[string]int
	services    map[string]int
	accessories map[string]int
	variants    map[string][]int
}

// NewStore indexes data. Duplicate ids are rejected because lookups would
// silently resolve to only one of them.
func NewStore(data Data) (*Store, error) {
	s := &Store{
		data:        data,
		categories:  make(map[string]int, len(data.Categories)),
		brands:      make(map[string]int, len(data.Brands)),
		products:    make(map[string]int, len(data.Products)),
		services:    make(map[string]int, len(data.Services)),
		accessories: make(map[string]int, len(data.Accessories)),
		variants:    make(map[string][]int),
	}

	for i, c := range data.Categories {
		if err := indexID(s.categories, "category", c.ID, i); err != nil {
			return nil, err
		}
	}
	for i, b := range data.Brands {
		if err := indexID(s.brands, "brand", b.ID, i); err != nil {
			return nil, err
		}
	}
	for i, p := range data.Products {
		if err := indexID(s.products, "product", p.ID, i); err != nil {
			return nil, err
		}
	}
	for i, svc := range data.Services {
		if err := indexID(s.services, "service", svc.ID, i); err != nil {
			return nil, err
		}
	}
	for i, a := range data.Accessories {
		if err := indexID(s.accessories, "accessory", a.ID, i); err != nil {
			return nil, err
		}
	}
	for i, v := range data.SubProducts {
		s.variants[v.ProductID] = append(s.variants[v.ProductID], i)
	}

	return s, nil
}

// MustNewStore is NewStore for data known to be well formed.
func MustNewStore(data Data) *Store {
	s, err := NewStore(data)
	if err != nil {
		panic(fmt.Sprintf("failed to build catalog: %v", err))
	}
	return s
}

// Default builds a Store over Seed().
func Default() *Store {
	return MustNewStore(Seed())
}

func indexID(index map[string]int, kind, id string, pos int) error {
	if id == "" {
		return fmt.Errorf("%s at index %d has empty id", kind, pos)
	}
	if _, dup := index[id]; dup {
		return fmt.Errorf("duplicate %s id %q", kind, id)
	}
	index[id] = pos
	return nil
}

func (s *Store) Categories() []Category { return s.data.Categories }
func (s *Store) Brands() []Brand { return s.data.Brands }
func (s *Store) Products() []Product { return s.data.Products }
func (s *Store) SubProducts() []SubProduct { return s.data.SubProducts }
func (s *Store) Services() []Service { return s.data.Services }
func (s *Store) Accessories() []Accessory { return s.data.Accessories }
func (s *Store) Complaints() []Complaint { return s.data.Complaints }
func (s *Store) Warranties() []Warranty { return s.data.Warranties }
func (s *Store) Employees() []Employee { return s.data.Employees }
func (s *Store) Testimonials() []Testimonial { return s.data.Testimonials }
func (s *Store) IssueAreas() []string { return s.data.IssueAreas }
func (s *Store) Stats() Stats { return s.data.Stats }
func (s *Store) SalesSeries() []MonthlyVolume { return s.data.SalesSeries }

// Category looks up a category by id.
func (s *Store) Category(id string) (Category, error) {
	i, ok := s.categories[id]
	if !ok {
		return Category{}, fmt.Errorf("category %q: %w", id, ErrNotFound)
	}
	return s.data.Categories[i], nil
}

// Brand looks up a brand by id.
func (s *Store) Brand(id string) (Brand, error) {
	i, ok := s.brands[id]
	if !ok {
		return Brand{}, fmt.Errorf("brand %q: %w", id, ErrNotFound)
	}
	return s.data.Brands[i], nil
}

// Product looks up a product by id.
func (s *Store) Product(id string) (Product, error) {
	i, ok := s.products[id]
	if !ok {
		return Product{}, fmt.Errorf("product %q: %w", id, ErrNotFound)
	}
	return s.data.Products[i], nil
}

// Service looks up a service by id.
func (s *Store) Service(id string) (Service, error) {
	i, ok := s.services[id]
	if !ok {
		return Service{}, fmt.Errorf("service %q: %w", id, ErrNotFound)
	}
	return s.data.Services[i], nil
}

// Accessory looks up an accessory by id.
func (s *Store) Accessory(id string) (Accessory, error) {
	i, ok := s.accessories[id]
	if !ok {
		return Accessory{}, fmt.Errorf("accessory %q: %w", id, ErrNotFound)
	}
	return s.data.Accessories[i], nil
}

// Variants returns the sub-products of a product in declaration order.
func (s *Store) Variants(productID string) []SubProduct {
	idx := s.variants[productID]
	out := make([]SubProduct, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.data.SubProducts[i])
	}
	return out
}

// ProductCategoryID resolves the category of a product through its brand.
func (s *Store) ProductCategoryID(p Product) (string, error) {
	b, err := s.Brand(p.BrandID)
	if err != nil {
		return "", fmt.Errorf("product %q: %w", p.ID, err)
	}
	return b.CategoryID, nil
}

// ServiceCategories returns the distinct service category labels in
// first-seen order.
func (s *Store) ServiceCategories() []string {
	labels := make([]string, 0, len(s.data.Services))
	for _, svc := range s.data.Services {
		labels = append(labels, svc.Category)
	}
	return distinct(labels)
}

// AccessoryCategories returns the distinct accessory category labels in
// first-seen order.
func (s *Store) AccessoryCategories() []string {
	labels := make([]string, 0, len(s.data.Accessories))
	for _, a := range s.data.Accessories {
		labels = append(labels, a.Category)
	}
	return distinct(labels)
}

func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// UnitPrice returns the price of a sellable item (product or accessory) and
// whether it can currently be added to a cart.
func (s *Store) UnitPrice(itemID string) (decimal.Decimal, bool, error) {
	if i, ok := s.accessories[itemID]; ok {
		a := s.data.Accessories[i]
		return a.Price, a.Available(), nil
	}
	if i, ok := s.products[itemID]; ok {
		p := s.data.Products[i]
		return p.Price, p.Available(), nil
	}
	return decimal.Zero, false, fmt.Errorf("item %q: %w", itemID, ErrNotFound)
}
