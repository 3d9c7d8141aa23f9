package server

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProbeHealthChecker(t *testing.T) {
	ok := NewProbeHealthChecker("ok", func(context.Context) error { return nil })
	failing := NewProbeHealthChecker("failing", func(context.Context) error { return errors.New("boom") })

	assert.True(t, ok.Healthy(context.Background()))
	assert.False(t, failing.Healthy(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, ok.Healthy(ctx))
}
