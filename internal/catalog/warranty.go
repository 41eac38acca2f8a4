package catalog

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the layout of every date stored in the catalog.
const DateLayout = "2006-01-02"

const (
	warrantyYearDays = 365
	expiringSoonDays = 30
	minProgressPct   = 5.0
	dayDuration      = 24 * time.Hour
)

// Expiry parses ExpiryDate as midnight UTC.
func (w Warranty) Expiry() (time.Time, error) {
	t, err := time.Parse(DateLayout, w.ExpiryDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("warranty %q expiry: %w", w.ID, err)
	}
	return t, nil
}

// DaysRemaining returns the whole days until expiry, rounded up. It is zero
// or negative once the expiry instant has passed.
func (w Warranty) DaysRemaining(now time.Time) (int, error) {
	expiry, err := w.Expiry()
	if err != nil {
		return 0, err
	}
	return int(math.Ceil(float64(expiry.Sub(now)) / float64(dayDuration))), nil
}

// DerivedStatus computes the status implied by the expiry date. A claimed
// warranty stays claimed; otherwise it is active while days remain.
func (w Warranty) DerivedStatus(now time.Time) (WarrantyStatus, error) {
	if w.Status == WarrantyClaimed {
		return WarrantyClaimed, nil
	}
	days, err := w.DaysRemaining(now)
	if err != nil {
		return "", err
	}
	if days <= 0 {
		return WarrantyExpired, nil
	}
	return WarrantyActive, nil
}

// WarrantyView is a warranty record annotated for the tracking page.
type WarrantyView struct {
	Warranty
	DaysRemaining  int            `json:"daysRemaining"`
	DerivedStatus  WarrantyStatus `json:"derivedStatus"`
	StatusMismatch bool           `json:"statusMismatch"`
	ExpiringSoon   bool           `json:"expiringSoon"`
	Expired        bool           `json:"expired"`
	Progress       float64        `json:"progress"`
}

// View annotates w relative to now. The stored status is never rewritten;
// StatusMismatch flags records whose stored and derived status disagree.
func (w Warranty) View(now time.Time) (WarrantyView, error) {
	days, err := w.DaysRemaining(now)
	if err != nil {
		return WarrantyView{}, err
	}
	derived, err := w.DerivedStatus(now)
	if err != nil {
		return WarrantyView{}, err
	}
	return WarrantyView{
		Warranty:       w,
		DaysRemaining:  days,
		DerivedStatus:  derived,
		StatusMismatch: derived != w.Status,
		ExpiringSoon:   days > 0 && days <= expiringSoonDays,
		Expired:        days <= 0,
		Progress:       warrantyProgress(days),
	}, nil
}

func warrantyProgress(days int) float64 {
	abs := math.Abs(float64(days))
	pct := (warrantyYearDays - abs) / warrantyYearDays * 100
	return math.Max(pct, minProgressPct)
}

// WarrantyViews annotates every warranty in the store.
func (s *Store) WarrantyViews(now time.Time) ([]WarrantyView, error) {
	out := make([]WarrantyView, 0, len(s.data.Warranties))
	for _, w := range s.data.Warranties {
		v, err := w.View(now)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
