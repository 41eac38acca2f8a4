package catalog

import (
	"fmt"
	"time"
)

// Severity of an integrity Issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one integrity finding about the catalog content.
type Issue struct {
	Severity Severity `json:"severity"`
	Entity   string   `json:"entity"`
	ID       string   `json:"id"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s %s: %s", i.Severity, i.Entity, i.ID, i.Message)
}

// Validate reports dangling references and inconsistent records. Nothing is
// corrected; dangling references are errors, the rest are warnings.
func (s *Store) Validate() []Issue {
	var issues []Issue
	add := func(sev Severity, entity, id, format string, args ...any) {
		issues = append(issues, Issue{Severity: sev, Entity: entity, ID: id, Message: fmt.Sprintf(format, args...)})
	}

	for _, b := range s.data.Brands {
		if _, err := s.Category(b.CategoryID); err != nil {
			add(SeverityError, "brand", b.ID, "unknown category %q", b.CategoryID)
		}
	}
	for _, p := range s.data.Products {
		if _, err := s.Brand(p.BrandID); err != nil {
			add(SeverityError, "product", p.ID, "unknown brand %q", p.BrandID)
		}
		if p.Price.IsNegative() {
			add(SeverityWarning, "product", p.ID, "negative price %s", p.Price)
		}
		if p.Stock < 0 {
			add(SeverityWarning, "product", p.ID, "negative stock %d", p.Stock)
		}
	}
	for _, v := range s.data.SubProducts {
		if _, err := s.Product(v.ProductID); err != nil {
			add(SeverityError, "subProduct", v.ID, "unknown product %q", v.ProductID)
		}
		if v.SellPrice.GreaterThan(v.ModelPrice) {
			add(SeverityWarning, "subProduct", v.ID, "sell price %s exceeds model price %s", v.SellPrice, v.ModelPrice)
		}
	}
	for _, a := range s.data.Accessories {
		if a.InStock != (a.Quantity > 0) {
			add(SeverityWarning, "accessory", a.ID, "inStock=%t disagrees with quantity %d", a.InStock, a.Quantity)
		}
	}
	for _, t := range s.data.Testimonials {
		if t.Rating < 1 || t.Rating > 5 {
			add(SeverityWarning, "testimonial", fmt.Sprint(t.ID), "rating %d outside 1..5", t.Rating)
		}
	}
	for _, w := range s.data.Warranties {
		purchase, err := time.Parse(DateLayout, w.PurchaseDate)
		if err != nil {
			add(SeverityError, "warranty", w.ID, "bad purchase date %q", w.PurchaseDate)
			continue
		}
		expiry, err := w.Expiry()
		if err != nil {
			add(SeverityError, "warranty", w.ID, "bad expiry date %q", w.ExpiryDate)
			continue
		}
		if expiry.Before(purchase) {
			add(SeverityWarning, "warranty", w.ID, "expires before purchase")
		}
	}
	for _, c := range s.data.Complaints {
		if c.Status != ComplaintPending && !c.IsAssigned() {
			add(SeverityWarning, "complaint", c.ID, "status %s without assigned technician", c.Status)
		}
	}
	return issues
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}
