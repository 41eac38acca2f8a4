package wizard

import (
	"fmt"
)

// Step is a booking wizard state.
type Step int

const (
	// StepClosed is both the initial and the terminal state.
	StepClosed Step = iota
	// StepService reviews the selected service.
	StepService
	// StepDetails collects customer details.
	StepDetails
	// StepConfirmed shows the confirmation.
	StepConfirmed
)

func (s Step) String() string {
	switch s {
	case StepClosed:
		return "closed"
	case StepService:
		return "service"
	case StepDetails:
		return "details"
	case StepConfirmed:
		return "confirmed"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// MarshalText renders the step name in JSON.
func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a step name.
func (s *Step) UnmarshalText(text []byte) error {
	for _, candidate := range []Step{StepClosed, StepService, StepDetails, StepConfirmed} {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown booking step %q", text)
}

// BookingDetails are the customer fields collected in StepDetails.
// Description is optional.
type BookingDetails struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

// Validate checks the required fields.
func (d BookingDetails) Validate() error {
	errs := fieldErrors{}
	errs.required("name", d.Name)
	errs.required("email", d.Email)
	errs.required("phone", d.Phone)
	return errs.err()
}

// BookingState is a snapshot of a Booking.
type BookingState struct {
	Step      Step           `json:"step"`
	Open      bool           `json:"open"`
	ServiceID string         `json:"serviceId,omitempty"`
	Details   BookingDetails `json:"details"`
}

// ServiceLookup checks that a service id exists.
type ServiceLookup func(serviceID string) error

// Booking is the service booking flow:
//
//	closed -> service -> details -> confirmed -> closed
//
// The only backward move is details -> service. Close resets from any step.
type Booking struct {
	lookup    ServiceLookup
	step      Step
	serviceID string
	details   BookingDetails
}

// NewBooking returns a closed booking. lookup may be nil to accept any id.
func NewBooking(lookup ServiceLookup) *Booking {
	return &Booking{lookup: lookup}
}

// Open starts the flow for serviceID at StepService. Any flow in progress is
// discarded.
func (b *Booking) Open(serviceID string) error {
	if serviceID == "" {
		return ValidationError{Fields: map[string]string{"serviceId": "is required"}}
	}
	if b.lookup != nil {
		if err := b.lookup(serviceID); err != nil {
			return fmt.Errorf("open booking: %w", err)
		}
	}
	b.reset()
	b.serviceID = serviceID
	b.step = StepService
	return nil
}

// SetDetails replaces the customer fields. Only allowed in StepDetails.
func (b *Booking) SetDetails(d BookingDetails) error {
	if b.step != StepDetails {
		return fmt.Errorf("%w: set details in step %s", ErrInvalidTransition, b.step)
	}
	b.details = d
	return nil
}

// Continue moves one step forward. Leaving StepDetails requires valid
// details; on a ValidationError the step is unchanged. Continuing from
// StepConfirmed completes the booking and resets to StepClosed.
func (b *Booking) Continue() error {
	switch b.step {
	case StepService:
		b.step = StepDetails
	case StepDetails:
		if err := b.details.Validate(); err != nil {
			return err
		}
		b.step = StepConfirmed
	case StepConfirmed:
		b.reset()
	default:
		return fmt.Errorf("%w: continue from %s", ErrInvalidTransition, b.step)
	}
	return nil
}

// Back returns from StepDetails to StepService, keeping entered details.
func (b *Booking) Back() error {
	if b.step != StepDetails {
		return fmt.Errorf("%w: back from %s", ErrInvalidTransition, b.step)
	}
	b.step = StepService
	return nil
}

// Close discards the flow.
func (b *Booking) Close() {
	b.reset()
}

func (b *Booking) reset() {
	b.step = StepClosed
	b.serviceID = ""
	b.details = BookingDetails{}
}

// Step returns the current step.
func (b *Booking) Step() Step {
	return b.step
}

// State snapshots the booking.
func (b *Booking) State() BookingState {
	return BookingState{
		Step:      b.step,
		Open:      b.step != StepClosed,
		ServiceID: b.serviceID,
		Details:   b.details,
	}
}
