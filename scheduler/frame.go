package scheduler

import (
	"context"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	EnvFrameInterval     = "FRAME_INTERVAL_MS"
	DefaultFrameInterval = 100 * time.Millisecond
)

// TickFunc advances the simulation by delta and returns the number of characters ticked
type TickFunc func(delta time.Duration) int

// FrameLoop drives the per-frame character tick
type FrameLoop struct {
	log      logrus.FieldLogger
	ctx      context.Context
	tick     TickFunc
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewFrameLoop creates a frame loop running at the configured frame interval
func NewFrameLoop(log logrus.FieldLogger, ctx context.Context, tick TickFunc) *FrameLoop {
	return &FrameLoop{
		log:      log.WithField("component", "frame-loop"),
		ctx:      ctx,
		tick:     tick,
		interval: IntervalFromEnv(log),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// IntervalFromEnv reads the frame interval in milliseconds, falling back to DefaultFrameInterval
func IntervalFromEnv(l logrus.FieldLogger) time.Duration {
	raw, ok := os.LookupEnv(EnvFrameInterval)
	if !ok || raw == "" {
		return DefaultFrameInterval
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		l.Warnf("Invalid %s [%s], using default of %s.", EnvFrameInterval, raw, DefaultFrameInterval)
		return DefaultFrameInterval
	}
	return time.Duration(ms) * time.Millisecond
}

// WithInterval sets the frame interval
func (f *FrameLoop) WithInterval(interval time.Duration) *FrameLoop {
	f.interval = interval
	return f
}

func (f *FrameLoop) Interval() time.Duration {
	return f.interval
}

// Start begins ticking in the background
func (f *FrameLoop) Start() {
	f.log.WithField("interval", f.interval).Info("Starting frame loop")
	go f.run()
}

// Stop halts the loop and waits for the current frame to finish
func (f *FrameLoop) Stop() {
	f.stopOnce.Do(func() {
		f.log.Info("Stopping frame loop")
		close(f.stop)
	})
	<-f.done
}

func (f *FrameLoop) run() {
	defer close(f.done)

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case now := <-ticker.C:
			delta := now.Sub(last)
			last = now
			n := f.tick(delta)
			f.log.WithFields(logrus.Fields{
				"delta":      delta,
				"characters": n,
			}).Trace("Frame ticked")
		case <-f.stop:
			return
		case <-f.ctx.Done():
			f.log.Info("Context cancelled, stopping frame loop")
			return
		}
	}
}
