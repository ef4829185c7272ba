package tracing

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/cariesreview/catalog/internal/config"
)

func TestSetupDisabledIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), config.TracingConfig{Enabled: false}, "test")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupStdoutExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := setup(context.Background(), config.TracingConfig{
		Enabled: true, Exporter: "stdout", SampleRatio: 1, ServiceName: "caries-catalog",
	}, "test", &buf)
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "list-studies")
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "list-studies")
}

func TestSetupRejectsUnknownExporter(t *testing.T) {
	_, err := setup(context.Background(), config.TracingConfig{Enabled: true, Exporter: "zipkin"}, "test", &bytes.Buffer{})
	assert.ErrorContains(t, err, "zipkin")
}
