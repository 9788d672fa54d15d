package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetricsDoesNothing(t *testing.T) {
	m := NoopMetrics{}

	assert.NotPanics(t, func() {
		m.RecordConstruction(context.Background(), "h", 10*time.Millisecond, nil)
		m.RecordConstruction(context.Background(), "", 0, errors.New("x"))
		m.RecordFactoryCreation(context.Background(), "email", nil)
		m.RecordBuild(context.Background(), "order", false)
	})
}

func TestNoopSpanManager(t *testing.T) {
	sm := NoopSpanManager{}

	ctx := context.Background()

	newCtx, span := sm.StartConstructionSpan(ctx, "h")
	assert.Equal(t, ctx, newCtx, "no-op must not modify the context")
	assert.NotNil(t, span)
	assert.False(t, span.IsRecording())

	newCtx, span = sm.StartCreateSpan(ctx, "email")
	assert.Equal(t, ctx, newCtx)
	assert.False(t, span.IsRecording())

	assert.NotPanics(t, func() {
		sm.EndSpanWithError(span, errors.New("x"))
		sm.EndSpanWithError(nil, nil)
		sm.AddSpanEvent(ctx, "event", attribute.String("k", "v"))
	})
}
