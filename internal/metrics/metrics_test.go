package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_Pipeline(t *testing.T) {
	m := NewRecorder()
	before := testutil.ToFloat64(emptyResults.WithLabelValues("test-view"))

	m.RecordPipeline("test-view", time.Millisecond, 0)
	m.RecordPipeline("test-view", time.Millisecond, 3)

	assert.Equal(t, before+1, testutil.ToFloat64(emptyResults.WithLabelValues("test-view")))
}

func TestRecorder_Cart(t *testing.T) {
	m := NewRecorder()
	adds := testutil.ToFloat64(cartAdds)
	rejected := testutil.ToFloat64(cartRejections.WithLabelValues("unavailable"))

	m.RecordCartAdd()
	m.RecordCartRejection("unavailable")

	assert.Equal(t, adds+1, testutil.ToFloat64(cartAdds))
	assert.Equal(t, rejected+1, testutil.ToFloat64(cartRejections.WithLabelValues("unavailable")))
}

func TestRecorder_WizardTransitionIgnoresSelfLoops(t *testing.T) {
	m := NewRecorder()
	c := wizardTransitions.WithLabelValues("booking", "details", "details")
	before := testutil.ToFloat64(c)

	m.RecordWizardTransition("booking", "details", "details")
	assert.Equal(t, before, testutil.ToFloat64(c))

	moved := wizardTransitions.WithLabelValues("booking", "service", "details")
	prev := testutil.ToFloat64(moved)
	m.RecordWizardTransition("booking", "service", "details")
	assert.Equal(t, prev+1, testutil.ToFloat64(moved))
}

func TestRecorder_Sessions(t *testing.T) {
	m := NewRecorder()
	m.SetActiveSessions(7)
	assert.Equal(t, 7.0, testutil.ToFloat64(activeSessions))

	before := testutil.ToFloat64(sessionsSwept)
	m.RecordSessionsSwept(2)
	assert.Equal(t, before+2, testutil.ToFloat64(sessionsSwept))
}
