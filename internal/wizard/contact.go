package wizard

import (
	"time"
)

// DefaultSubmittedWindow is how long the submitted confirmation is shown.
const DefaultSubmittedWindow = 3 * time.Second

// Subject is a contact form topic.
type Subject struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Subjects are the accepted contact topics in display order.
var Subjects = []Subject{
	{Value: "laptop-sales", Label: "Laptop Sales Inquiry"},
	{Value: "repair-service", Label: "Repair Service"},
	{Value: "warranty-claim", Label: "Warranty Claim"},
	{Value: "technical-support", Label: "Technical Support"},
	{Value: "general-inquiry", Label: "General Inquiry"},
	{Value: "other", Label: "Other"},
}

func knownSubject(v string) bool {
	for _, s := range Subjects {
		if s.Value == v {
			return true
		}
	}
	return false
}

// ContactForm holds the contact fields. Phone is optional.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate checks required fields and the subject.
func (f ContactForm) Validate() error {
	errs := fieldErrors{}
	errs.required("name", f.Name)
	errs.required("email", f.Email)
	errs.required("subject", f.Subject)
	errs.required("message", f.Message)
	if _, missing := errs["subject"]; !missing && !knownSubject(f.Subject) {
		errs["subject"] = "is not a known subject"
	}
	return errs.err()
}

// ContactState is a snapshot of a Contact.
type ContactState struct {
	Form      ContactForm `json:"form"`
	Submitted bool        `json:"submitted"`
}

// Contact is the contact form. A successful submit clears the fields and
// raises the submitted flag for a fixed window; nothing is sent anywhere.
type Contact struct {
	form        ContactForm
	submittedAt time.Time
	window      time.Duration
}

// NewContact returns an empty form. A non-positive window uses
// DefaultSubmittedWindow.
func NewContact(window time.Duration) *Contact {
	if window <= 0 {
		window = DefaultSubmittedWindow
	}
	return &Contact{window: window}
}

// Update replaces the field state.
func (c *Contact) Update(f ContactForm) {
	c.form = f
}

// Submit validates the current fields. On success the fields are cleared and
// the submitted flag is set from now.
func (c *Contact) Submit(now time.Time) error {
	if err := c.form.Validate(); err != nil {
		return err
	}
	c.form = ContactForm{}
	c.submittedAt = now
	return nil
}

// Submitted reports whether now falls inside the window after the last
// successful submit.
func (c *Contact) Submitted(now time.Time) bool {
	if c.submittedAt.IsZero() {
		return false
	}
	return now.Before(c.submittedAt.Add(c.window))
}

// State snapshots the form at now.
func (c *Contact) State(now time.Time) ContactState {
	return ContactState{Form: c.form, Submitted: c.Submitted(now)}
}
