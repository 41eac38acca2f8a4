package wizard

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinelaptops/storefront/internal/catalog"
)

func storeLookup(t *testing.T) ServiceLookup {
	t.Helper()
	store := catalog.Default()
	return func(id string) error {
		_, err := store.Service(id)
		return err
	}
}

var validDetails = BookingDetails{Name: "Ana", Email: "ana@example.com", Phone: "+1 555 0100"}

func TestBooking_InitiallyClosed(t *testing.T) {
	b := NewBooking(nil)
	assert.Equal(t, StepClosed, b.Step())
	assert.False(t, b.State().Open)
}

func TestBooking_ContinueWithoutDetailsNeverReachesConfirmed(t *testing.T) {
	b := NewBooking(storeLookup(t))
	require.NoError(t, b.Open("ram-upgrade"))

	require.NoError(t, b.Continue())
	assert.Equal(t, StepDetails, b.Step())

	err := b.Continue()
	require.Error(t, err)
	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string]string{"name": "is required", "email": "is required", "phone": "is required"}, verr.Fields)
	assert.Equal(t, StepDetails, b.Step())

	assert.Error(t, b.Continue())
	assert.Equal(t, StepDetails, b.Step())
}

func TestBooking_FullFlowThenCompleteResets(t *testing.T) {
	b := NewBooking(storeLookup(t))
	require.NoError(t, b.Open("screen-replacement"))
	require.NoError(t, b.Continue())
	require.NoError(t, b.SetDetails(validDetails))
	require.NoError(t, b.Continue())

	state := b.State()
	assert.Equal(t, StepConfirmed, state.Step)
	assert.Equal(t, "screen-replacement", state.ServiceID)
	assert.Equal(t, validDetails, state.Details)

	require.NoError(t, b.Continue())
	assert.Equal(t, BookingState{Step: StepClosed}, b.State())
}

func TestBooking_CloseFromConfirmedClearsState(t *testing.T) {
	b := NewBooking(nil)
	require.NoError(t, b.Open("virus-removal"))
	require.NoError(t, b.Continue())
	require.NoError(t, b.SetDetails(validDetails))
	require.NoError(t, b.Continue())

	b.Close()
	assert.Equal(t, BookingState{Step: StepClosed}, b.State())
}

func TestBooking_BlankFieldsAreMissing(t *testing.T) {
	d := validDetails
	d.Phone = "   "
	err := d.Validate()
	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string]string{"phone": "is required"}, verr.Fields)
	assert.Equal(t, "validation failed: phone", err.Error())
}

func TestBooking_BackOnlyFromDetails(t *testing.T) {
	b := NewBooking(nil)
	assert.ErrorIs(t, b.Back(), ErrInvalidTransition)

	require.NoError(t, b.Open("deep-cleaning"))
	assert.ErrorIs(t, b.Back(), ErrInvalidTransition)

	require.NoError(t, b.Continue())
	require.NoError(t, b.SetDetails(validDetails))
	require.NoError(t, b.Back())
	assert.Equal(t, StepService, b.Step())
	assert.Equal(t, validDetails, b.State().Details)

	require.NoError(t, b.Continue())
	require.NoError(t, b.Continue())
	assert.ErrorIs(t, b.Back(), ErrInvalidTransition)
	assert.Equal(t, StepConfirmed, b.Step())
}

func TestBooking_InvalidTransitions(t *testing.T) {
	b := NewBooking(nil)
	assert.ErrorIs(t, b.Continue(), ErrInvalidTransition)
	assert.ErrorIs(t, b.SetDetails(validDetails), ErrInvalidTransition)

	require.NoError(t, b.Open("deep-cleaning"))
	assert.ErrorIs(t, b.SetDetails(validDetails), ErrInvalidTransition)
}

func TestBooking_OpenUnknownService(t *testing.T) {
	b := NewBooking(storeLookup(t))

	err := b.Open("quantum-repair")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Equal(t, StepClosed, b.Step())

	var verr ValidationError
	assert.True(t, errors.As(b.Open(""), &verr))
}

func TestBooking_OpenDiscardsFlowInProgress(t *testing.T) {
	b := NewBooking(nil)
	require.NoError(t, b.Open("ram-upgrade"))
	require.NoError(t, b.Continue())
	require.NoError(t, b.SetDetails(validDetails))

	require.NoError(t, b.Open("data-recovery"))
	assert.Equal(t, BookingState{Step: StepService, Open: true, ServiceID: "data-recovery"}, b.State())
}

func TestStep_JSON(t *testing.T) {
	out, err := json.Marshal(BookingState{Step: StepDetails, Open: true})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"step":"details"`)
	assert.Equal(t, "step(9)", Step(9).String())
}

func TestContact_SubmitClearsAndFlagsForWindow(t *testing.T) {
	c := NewContact(0)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	c.Update(ContactForm{Name: "Bo", Email: "bo@example.com", Subject: "repair-service", Message: "Fan noise"})

	require.NoError(t, c.Submit(now))
	assert.Equal(t, ContactForm{}, c.State(now).Form)
	assert.True(t, c.Submitted(now))
	assert.True(t, c.Submitted(now.Add(2999*time.Millisecond)))
	assert.False(t, c.Submitted(now.Add(DefaultSubmittedWindow)))
}

func TestContact_Validation(t *testing.T) {
	tests := []struct {
		name   string
		form   ContactForm
		fields map[string]string
	}{
		{
			name:   "empty",
			form:   ContactForm{},
			fields: map[string]string{"name": "is required", "email": "is required", "subject": "is required", "message": "is required"},
		},
		{
			name:   "unknown subject",
			form:   ContactForm{Name: "a", Email: "b", Subject: "sales", Message: "c"},
			fields: map[string]string{"subject": "is not a known subject"},
		},
		{
			name: "phone optional",
			form: ContactForm{Name: "a", Email: "b", Subject: "other", Message: "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			var verr ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.fields, verr.Fields)
		})
	}
}

func TestContact_FailedSubmitKeepsFields(t *testing.T) {
	c := NewContact(time.Second)
	now := time.Now()
	form := ContactForm{Name: "Bo", Subject: "other"}
	c.Update(form)

	require.Error(t, c.Submit(now))
	assert.Equal(t, form, c.State(now).Form)
	assert.False(t, c.Submitted(now))
}
