// Package acceptance runs the storefront feature files against the core
// packages.
package acceptance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/shinelaptops/storefront/internal/cart"
	"github.com/shinelaptops/storefront/internal/catalog"
	"github.com/shinelaptops/storefront/internal/filter"
	"github.com/shinelaptops/storefront/internal/wizard"
)

type storefrontTestContext struct {
	store       *catalog.Store
	laptops     []catalog.Product
	accessories []catalog.Accessory
	cart        *cart.Cart
	cartErr     error
	booking     *wizard.Booking
	bookingErr  error
}

func (s *storefrontTestContext) reset() {
	*s = storefrontTestContext{}
}

func (s *storefrontTestContext) theSeededCatalog() error {
	s.store = catalog.Default()
	return nil
}

func (s *storefrontTestContext) listLaptops(q filter.Query) {
	s.laptops = filter.Products(s.store, q)
}

func (s *storefrontTestContext) iListLaptops() error {
	s.listLaptops(filter.ProductDefaults(decimal.NewFromInt(2000)))
	return nil
}

func (s *storefrontTestContext) iListLaptopsSortedBy(raw string) error {
	key, err := filter.ParseSortKey(raw, filter.DefaultProductSort)
	if err != nil {
		return err
	}
	q := filter.ProductDefaults(decimal.NewFromInt(2000))
	q.Sort = key
	s.listLaptops(q)
	return nil
}

func (s *storefrontTestContext) iListLaptopsInCategory(category string) error {
	q := filter.ProductDefaults(decimal.NewFromInt(2000))
	q.Category = category
	s.listLaptops(q)
	return nil
}

func (s *storefrontTestContext) iListLaptopsPricedBetween(min, max int) error {
	q := filter.ProductDefaults(decimal.NewFromInt(2000))
	q.Price = &filter.PriceRange{Min: decimal.NewFromInt(int64(min)), Max: decimal.NewFromInt(int64(max))}
	s.listLaptops(q)
	return nil
}

func (s *storefrontTestContext) iListLaptopsPricedBetweenSortedBy(min, max int, raw string) error {
	key, err := filter.ParseSortKey(raw, filter.DefaultProductSort)
	if err != nil {
		return err
	}
	q := filter.ProductDefaults(decimal.NewFromInt(2000))
	q.Sort = key
	q.Price = &filter.PriceRange{Min: decimal.NewFromInt(int64(min)), Max: decimal.NewFromInt(int64(max))}
	s.listLaptops(q)
	return nil
}

func (s *storefrontTestContext) iSearchLaptopsFor(text string) error {
	q := filter.ProductDefaults(decimal.NewFromInt(2000))
	q.Search = text
	s.listLaptops(q)
	return nil
}

func (s *storefrontTestContext) iListAccessories() error {
	s.accessories = filter.Accessories(s.store.Accessories(), filter.Query{Sort: filter.DefaultAccessorySort})
	return nil
}

func (s *storefrontTestContext) iListAccessoriesInCategory(category string) error {
	s.accessories = filter.Accessories(s.store.Accessories(), filter.Query{Category: category, Sort: filter.DefaultAccessorySort})
	return nil
}

func expectIDs(kind string, want string, got []string) error {
	expected := strings.Split(want, ", ")
	if strings.Join(got, ", ") != strings.Join(expected, ", ") {
		return fmt.Errorf("expected %s %v, got %v", kind, expected, got)
	}
	return nil
}

func (s *storefrontTestContext) theLaptopListingIs(want string) error {
	got := make([]string, 0, len(s.laptops))
	for _, p := range s.laptops {
		got = append(got, p.ID)
	}
	return expectIDs("laptops", want, got)
}

func (s *storefrontTestContext) theLaptopListingIsEmpty() error {
	if len(s.laptops) != 0 {
		return fmt.Errorf("expected no laptops, got %d", len(s.laptops))
	}
	return nil
}

func (s *storefrontTestContext) theAccessoryListingIs(want string) error {
	got := make([]string, 0, len(s.accessories))
	for _, a := range s.accessories {
		got = append(got, a.ID)
	}
	return expectIDs("accessories", want, got)
}

func (s *storefrontTestContext) anEmptyCart() error {
	s.cart = cart.New(s.store)
	return nil
}

func (s *storefrontTestContext) iAddToTheCart(itemID string) error {
	s.cartErr = s.cart.AddItem(itemID)
	return nil
}

func (s *storefrontTestContext) theCartHoldsItems(n int) error {
	if got := s.cart.TotalItemCount(); got != n {
		return fmt.Errorf("expected %d items, got %d", n, got)
	}
	return nil
}

func (s *storefrontTestContext) theCartTotalIs(want string) error {
	expected, err := decimal.NewFromString(want)
	if err != nil {
		return err
	}
	if got := s.cart.TotalPrice(); !got.Equal(expected) {
		return fmt.Errorf("expected total %s, got %s", expected, got)
	}
	return nil
}

func (s *storefrontTestContext) theCartQuantityOfIs(itemID string, n int) error {
	if got := s.cart.Quantity(itemID); got != n {
		return fmt.Errorf("expected quantity %d of %s, got %d", n, itemID, got)
	}
	return nil
}

func (s *storefrontTestContext) theCartRejectsTheItemAsUnavailable() error {
	if !errors.Is(s.cartErr, cart.ErrUnavailable) {
		return fmt.Errorf("expected ErrUnavailable, got %v", s.cartErr)
	}
	return nil
}

func (s *storefrontTestContext) cannotBeAddedToTheCart(itemID string) error {
	if s.cart.CanAdd(itemID) {
		return fmt.Errorf("expected %s to be unavailable", itemID)
	}
	if err := s.cart.AddItem(itemID); !errors.Is(err, cart.ErrUnavailable) {
		return fmt.Errorf("expected ErrUnavailable, got %v", err)
	}
	if s.cart.Len() != 0 {
		return fmt.Errorf("expected an unchanged cart, got %d entries", s.cart.Len())
	}
	return nil
}

func (s *storefrontTestContext) aClosedBooking() error {
	s.booking = wizard.NewBooking(func(id string) error {
		_, err := s.store.Service(id)
		return err
	})
	return nil
}

func (s *storefrontTestContext) iOpenABookingFor(serviceID string) error {
	s.bookingErr = s.booking.Open(serviceID)
	return nil
}

func (s *storefrontTestContext) iContinueTheBooking() error {
	s.bookingErr = s.booking.Continue()
	return nil
}

func (s *storefrontTestContext) iGoBackInTheBooking() error {
	s.bookingErr = s.booking.Back()
	return nil
}

func (s *storefrontTestContext) iEnterBookingDetails(name, email, phone string) error {
	return s.booking.SetDetails(wizard.BookingDetails{Name: name, Email: email, Phone: phone})
}

func (s *storefrontTestContext) theBookingStepIs(want string) error {
	if got := s.booking.Step().String(); got != want {
		return fmt.Errorf("expected step %s, got %s (last error: %v)", want, got, s.bookingErr)
	}
	return nil
}

func (s *storefrontTestContext) theBookingIsBlockedByMissing(fields string) error {
	var verr wizard.ValidationError
	if !errors.As(s.bookingErr, &verr) {
		return fmt.Errorf("expected a validation error, got %v", s.bookingErr)
	}
	for _, f := range strings.Split(fields, ", ") {
		if _, ok := verr.Fields[f]; !ok {
			return fmt.Errorf("expected field %s in %v", f, verr.Fields)
		}
	}
	return nil
}

func (s *storefrontTestContext) theBookingKeepsTheName(name string) error {
	if got := s.booking.State().Details.Name; got != name {
		return fmt.Errorf("expected name %q, got %q", name, got)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &storefrontTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the seeded catalog$`, tc.theSeededCatalog)
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^a closed booking$`, tc.aClosedBooking)

	// When steps
	ctx.Step(`^I list laptops$`, tc.iListLaptops)
	ctx.Step(`^I list laptops sorted by "([^"]*)"$`, tc.iListLaptopsSortedBy)
	ctx.Step(`^I list laptops in category "([^"]*)"$`, tc.iListLaptopsInCategory)
	ctx.Step(`^I list laptops priced between (\d+) and (\d+)$`, tc.iListLaptopsPricedBetween)
	ctx.Step(`^I list laptops priced between (\d+) and (\d+) sorted by "([^"]*)"$`, tc.iListLaptopsPricedBetweenSortedBy)
	ctx.Step(`^I search laptops for "([^"]*)"$`, tc.iSearchLaptopsFor)
	ctx.Step(`^I list accessories$`, tc.iListAccessories)
	ctx.Step(`^I list accessories in category "([^"]*)"$`, tc.iListAccessoriesInCategory)
	ctx.Step(`^I add "([^"]*)" to the cart$`, tc.iAddToTheCart)
	ctx.Step(`^I open a booking for "([^"]*)"$`, tc.iOpenABookingFor)
	ctx.Step(`^I continue the booking$`, tc.iContinueTheBooking)
	ctx.Step(`^I go back in the booking$`, tc.iGoBackInTheBooking)
	ctx.Step(`^I enter booking details "([^"]*)", "([^"]*)", "([^"]*)"$`, tc.iEnterBookingDetails)

	// Then steps
	ctx.Step(`^the laptop listing is "([^"]*)"$`, tc.theLaptopListingIs)
	ctx.Step(`^the laptop listing is empty$`, tc.theLaptopListingIsEmpty)
	ctx.Step(`^the accessory listing is "([^"]*)"$`, tc.theAccessoryListingIs)
	ctx.Step(`^the cart holds (\d+) items$`, tc.theCartHoldsItems)
	ctx.Step(`^the cart total is "([^"]*)"$`, tc.theCartTotalIs)
	ctx.Step(`^the cart quantity of "([^"]*)" is (\d+)$`, tc.theCartQuantityOfIs)
	ctx.Step(`^the cart rejects the item as unavailable$`, tc.theCartRejectsTheItemAsUnavailable)
	ctx.Step(`^"([^"]*)" cannot be added to the cart$`, tc.cannotBeAddedToTheCart)
	ctx.Step(`^the booking step is "([^"]*)"$`, tc.theBookingStepIs)
	ctx.Step(`^the booking is blocked by missing "([^"]*)"$`, tc.theBookingIsBlockedByMissing)
	ctx.Step(`^the booking keeps the name "([^"]*)"$`, tc.theBookingKeepsTheName)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../features/storefront.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
