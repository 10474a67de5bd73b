package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)

	// Must not panic and must not write anywhere.
	log.Info().Str("k", "v").Msg("discarded")
	log.Err(assert.AnError).Msg("discarded too")
}

func TestGetChildLogger_ReturnsIndependentLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_WithoutAttachedLogger(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
	log.Debug().Msg("global fallback logger must be usable")
}

func TestFromRequest_RoundTrip(t *testing.T) {
	base := Nop()

	r := httptest.NewRequest("GET", "/api/visits", nil)
	r = r.WithContext(base.WithContext(r.Context()))

	got := FromRequest(r)
	require.NotNil(t, got)
	got.Info().Msg("request-scoped logger must be usable")
}
