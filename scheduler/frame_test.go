package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestIntervalFromEnv(t *testing.T) {
	logger, _ := test.NewNullLogger()

	t.Setenv(EnvFrameInterval, "")
	assert.Equal(t, DefaultFrameInterval, IntervalFromEnv(logger))

	t.Setenv(EnvFrameInterval, "16")
	assert.Equal(t, 16*time.Millisecond, IntervalFromEnv(logger))

	t.Setenv(EnvFrameInterval, "fast")
	assert.Equal(t, DefaultFrameInterval, IntervalFromEnv(logger))

	t.Setenv(EnvFrameInterval, "-5")
	assert.Equal(t, DefaultFrameInterval, IntervalFromEnv(logger))
}

func TestFrameLoop_WithInterval(t *testing.T) {
	logger, _ := test.NewNullLogger()
	t.Setenv(EnvFrameInterval, "")

	f := NewFrameLoop(logger, context.Background(), func(time.Duration) int { return 0 })
	assert.Equal(t, DefaultFrameInterval, f.Interval())
	assert.Equal(t, 30*time.Millisecond, f.WithInterval(30*time.Millisecond).Interval())
}

func TestFrameLoop_StartStop(t *testing.T) {
	logger, _ := test.NewNullLogger()

	var ticks atomic.Int32
	var lastDelta atomic.Int64
	f := NewFrameLoop(logger, context.Background(), func(delta time.Duration) int {
		ticks.Add(1)
		lastDelta.Store(int64(delta))
		return 1
	}).WithInterval(5 * time.Millisecond)

	f.Start()
	assert.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)
	f.Stop()
	f.Stop()

	stopped := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load())
	assert.Greater(t, lastDelta.Load(), int64(0))
}

func TestFrameLoop_ContextCancel(t *testing.T) {
	logger, _ := test.NewNullLogger()
	ctx, cancel := context.WithCancel(context.Background())

	f := NewFrameLoop(logger, ctx, func(time.Duration) int { return 0 }).WithInterval(5 * time.Millisecond)
	f.Start()
	cancel()

	select {
	case <-f.done:
	case <-time.After(time.Second):
		t.Fatal("frame loop did not stop on context cancellation")
	}
	f.Stop()
}
