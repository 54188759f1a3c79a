package trace

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTraceID(t *testing.T) {
	id := NewTraceID(UsePrefix)

	assert.True(t, strings.HasPrefix(string(id), UsePrefix+"_"+TracePrefix+"_"))
	assert.NotEqual(t, id, NewTraceID(UsePrefix))
}

func TestContextRoundTrip(t *testing.T) {
	id := NewTraceID(ListPrefix)
	ctx := NewContext(context.Background(), id)

	require.NotNil(t, FromContext(ctx))
	assert.Equal(t, id, GetTraceID(ctx))

	// logging helpers must not panic with or without a logger
	Info(ctx, "listing %d workspaces", 2)
	Debug(ctx, "debug")
	Error(ctx, "error: %v", "boom")
	Info(context.Background(), "dropped")
}

func TestGetTraceIDWithoutLogger(t *testing.T) {
	assert.Equal(t, TraceID(""), GetTraceID(context.Background()))
	assert.Nil(t, FromContext(context.Background()))
}
