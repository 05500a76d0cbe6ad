package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	require.NoError(t, InitWithExporter("shortid", "0.0.1", exporter))

	ctx := context.Background()
	_, span := StartSpan(ctx, "generate")
	span.WithAttributes(map[string]any{"count": 3, "radix": "base62", "max": int64(238328)})
	EndSpan(span, nil)

	_, failed := StartSpan(ctx, "parse")
	EndSpan(failed, errors.New("invalid argument"))

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "generate", spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
	assert.Contains(t, spans[0].Attributes, attribute.Int("count", 3))
	assert.Contains(t, spans[0].Attributes, attribute.String("radix", "base62"))
	assert.Contains(t, spans[0].Attributes, attribute.Int64("max", 238328))
	assert.Equal(t, "parse", spans[1].Name)
	assert.Equal(t, codes.Error, spans[1].Status.Code)

	assert.NoError(t, Shutdown(ctx))
}

func TestNilSpan(t *testing.T) {
	var span *Span
	assert.Nil(t, span.WithAttributes(map[string]any{"k": "v"}))
	span.SetStatus(nil)
	EndSpan(span, nil)
}
