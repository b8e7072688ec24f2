package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRateLimiter_RefillsAfterWindow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute, zap.NewNop())
	defer rl.Stop()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"))

	now = now.Add(time.Minute)
	assert.True(t, rl.Allow("a"))
}

func TestRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute, zap.NewNop())
	defer rl.Stop()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.Allow("a")
	now = now.Add(90 * time.Minute)
	rl.Allow("b")
	now = now.Add(30 * time.Minute)
	assert.Equal(t, 1, rl.cleanup())

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Len(t, rl.clients, 1)
	assert.Contains(t, rl.clients, "b")
}

func TestRateLimiter_LogsCleanupAndStop(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	rl := NewRateLimiter(1, time.Minute, zap.New(core))

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.Allow("a")
	rl.Allow("b")
	now = now.Add(2 * time.Hour)
	rl.cleanup()
	rl.Stop()
	rl.Stop()

	dropped := logs.FilterMessage("rate limiter dropped idle clients").All()
	require.Len(t, dropped, 1)
	assert.Equal(t, int64(2), dropped[0].ContextMap()["dropped"])

	stopped := logs.FilterMessage("rate limiter stopped").All()
	require.Len(t, stopped, 1)
	assert.Equal(t, int64(0), stopped[0].ContextMap()["tracked_clients"])
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute, zap.NewNop())
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
