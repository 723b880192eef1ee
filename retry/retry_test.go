package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() *Config {
	return DefaultConfig().WithInitialDelay(time.Millisecond)
}

func TestIsTransientError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil", nil, false},
		{"refused", errors.New("dial tcp: Connection Refused"), true},
		{"timeout", errors.New("i/o timeout"), true},
		{"leader", errors.New("[5] Leader Not Available"), true},
		{"validation", errors.New("inventory capacity exceeded"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, IsTransientError(tt.err))
		})
	}
}

func TestExecute_SucceedsAfterTransientFailures(t *testing.T) {
	logger, hook := test.NewNullLogger()
	calls := 0

	err := Execute(fastConfig().WithLogger(logger), func() error {
		calls++
		if calls < 3 {
			return errors.New("connection reset by peer")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.NotEmpty(t, hook.AllEntries())
}

func TestExecute_GivesUp(t *testing.T) {
	calls := 0

	err := Execute(fastConfig().WithMaxRetries(2), func() error {
		calls++
		return errors.New("timeout")
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecute_NonTransientErrorStopsImmediately(t *testing.T) {
	sentinel := errors.New("bad payload")
	calls := 0

	err := Execute(fastConfig(), func() error {
		calls++
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, calls)
}

func TestExecute_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0

	err := Execute(fastConfig().WithContext(ctx), func() error {
		calls++
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}

func TestExecute_NilConfigUsesDefault(t *testing.T) {
	assert.NoError(t, Execute(nil, func() error { return nil }))
}
