package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestInit_DisabledIsNoop(t *testing.T) {
	cleanup, err := Init(context.Background(), Config{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, cleanup)

	ctx, span := StartSpan(context.Background(), "test", attribute.String("k", "v"))
	assert.NotNil(t, ctx)
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, cleanup(context.Background()))
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_SERVICE_NAME", "")
	cfg := ConfigFromEnv(Config{ServiceName: "storefront"})
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "storefront", cfg.ServiceName)

	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4317")
	t.Setenv("OTEL_SERVICE_NAME", "shop")
	cfg = ConfigFromEnv(Config{})
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "collector:4317", cfg.Endpoint)
	assert.Equal(t, "shop", cfg.ServiceName)
}
