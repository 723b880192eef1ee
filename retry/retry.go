package retry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Config defines how an operation is retried
type Config struct {
	MaxRetries     int
	InitialDelay   time.Duration
	MaxDelay       time.Duration
	BackoffFactor  float64
	Logger         logrus.FieldLogger
	Context        context.Context
	RetryCondition func(error) bool
}

// DefaultConfig returns the retry policy used for event emission
func DefaultConfig() *Config {
	return &Config{
		MaxRetries:     3,
		InitialDelay:   50 * time.Millisecond,
		MaxDelay:       time.Second,
		BackoffFactor:  2.0,
		RetryCondition: IsTransientError,
	}
}

func (c *Config) WithLogger(l logrus.FieldLogger) *Config {
	c.Logger = l
	return c
}

func (c *Config) WithContext(ctx context.Context) *Config {
	c.Context = ctx
	return c
}

func (c *Config) WithMaxRetries(maxRetries int) *Config {
	c.MaxRetries = maxRetries
	return c
}

func (c *Config) WithInitialDelay(delay time.Duration) *Config {
	c.InitialDelay = delay
	return c
}

func (c *Config) WithRetryCondition(condition func(error) bool) *Config {
	c.RetryCondition = condition
	return c
}

var transientPatterns = []string{
	"connection refused",
	"connection reset",
	"broken pipe",
	"timeout",
	"temporary failure",
	"network unreachable",
	"leader not available",
	"not leader for partition",
	"context deadline exceeded",
}

// IsTransientError reports whether err looks like a broker or network hiccup
func IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, p := range transientPatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// Execute runs operation until it succeeds, fails with a non-retryable error, runs out of
// attempts or the context is cancelled. Delays grow by BackoffFactor up to MaxDelay.
func Execute(c *Config, operation func() error) error {
	if c == nil {
		c = DefaultConfig()
	}
	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}

	var lastErr error
	delay := c.InitialDelay
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("operation cancelled: %w", err)
		}

		lastErr = operation()
		if lastErr == nil {
			if c.Logger != nil && attempt > 0 {
				c.Logger.WithField("attempts", attempt+1).Debug("Operation succeeded after retry.")
			}
			return nil
		}
		if c.RetryCondition != nil && !c.RetryCondition(lastErr) {
			return lastErr
		}
		if attempt == c.MaxRetries {
			break
		}

		if c.Logger != nil {
			c.Logger.WithError(lastErr).WithFields(logrus.Fields{
				"attempt": attempt + 1,
				"delay":   delay,
			}).Warn("Operation failed, retrying.")
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("operation cancelled during retry delay: %w", ctx.Err())
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * c.BackoffFactor)
		if delay > c.MaxDelay {
			delay = c.MaxDelay
		}
	}
	return fmt.Errorf("operation failed after %d attempts: %w", c.MaxRetries+1, lastErr)
}
