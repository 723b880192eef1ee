package stamina

import (
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSetter struct {
	speeds []float64
}

func (r *recordingSetter) SetMaxWalkSpeed(speed float64) {
	r.speeds = append(r.speeds, speed)
}

func (r *recordingSetter) last() float64 {
	if len(r.speeds) == 0 {
		return -1
	}
	return r.speeds[len(r.speeds)-1]
}

func newTestController(t *testing.T, stamina int, mode Mode) (*Controller, *recordingSetter) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	m, err := NewBuilder().SetStamina(stamina).SetMode(mode).Build()
	require.NoError(t, err)
	s := &recordingSetter{}
	return NewController(logger, s, m), s
}

func TestDefaultController(t *testing.T) {
	logger, _ := test.NewNullLogger()
	c := DefaultController(logger, nil)

	m := c.Snapshot()
	assert.Equal(t, 500, m.Stamina())
	assert.Equal(t, 1000, m.MaxStamina())
	assert.Equal(t, ModeRunning, m.Mode())
}

func TestTick_SprintingWhileMoving(t *testing.T) {
	c, _ := newTestController(t, 500, ModeSprinting)

	m := c.Tick(true)

	assert.Equal(t, 493, m.Stamina())
	assert.Equal(t, RateSprinting, m.Rate())
	assert.Equal(t, ModeSprinting, m.Mode())
}

func TestTick_SprintingToDepletionForcesRunning(t *testing.T) {
	c, s := newTestController(t, 3, ModeSprinting)

	m := c.Tick(true)

	assert.Equal(t, 0, m.Stamina())
	assert.True(t, m.IsDepleted())
	assert.Equal(t, ModeRunning, m.Mode())
	assert.Equal(t, SpeedRunning, s.last())
}

func TestTick_RunningFromZeroRecovers(t *testing.T) {
	logger, _ := test.NewNullLogger()
	m, err := NewBuilder().SetStamina(0).SetMode(ModeRunning).Build()
	require.NoError(t, err)
	s := &recordingSetter{}
	c := NewController(logger, s, m)

	got := c.Tick(true)
	assert.Equal(t, 1, got.Stamina())
	assert.Empty(t, s.speeds)
}

func TestTick_NotMovingAlwaysRegenerates(t *testing.T) {
	for _, mode := range Modes() {
		t.Run(mode.String(), func(t *testing.T) {
			c, _ := newTestController(t, 500, mode)
			m := c.Tick(false)
			assert.Equal(t, 503, m.Stamina())
			assert.Equal(t, RateRegen, m.Rate())
			assert.Equal(t, mode, m.Mode())
		})
	}
}

func TestTick_MovingRates(t *testing.T) {
	cases := []struct {
		mode     Mode
		expected int
	}{
		{ModeSprinting, 493},
		{ModeRunning, 501},
		{ModeWalking, 502},
		{ModeIdle, 503},
	}
	for _, tc := range cases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			c, _ := newTestController(t, 500, tc.mode)
			assert.Equal(t, tc.expected, c.Tick(true).Stamina())
		})
	}
}

func TestTick_ClampsAtCeiling(t *testing.T) {
	c, _ := newTestController(t, 999, ModeWalking)

	m := c.Tick(false)
	assert.Equal(t, 1000, m.Stamina())
	assert.True(t, m.IsFull())

	m = c.Tick(false)
	assert.Equal(t, 1000, m.Stamina())
}

func TestTick_StaysWithinBounds(t *testing.T) {
	c, _ := newTestController(t, 500, ModeRunning)
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 5000; i++ {
		switch r.Intn(4) {
		case 0:
			c.Sprint()
		case 1:
			c.Run()
		case 2:
			c.Walk()
		case 3:
			c.Idle()
		}
		m := c.Tick(r.Intn(5) > 0)
		require.GreaterOrEqual(t, m.Stamina(), 0)
		require.LessOrEqual(t, m.Stamina(), m.MaxStamina())
		if m.Stamina() == 0 {
			require.Equal(t, ModeRunning, m.Mode())
		}
	}
}

func TestTick_LogsRateAndStamina(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	c := DefaultController(logger, nil)
	c.Sprint()

	c.Tick(true)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Stamina Rate: -7", entries[0].Message)
	assert.Equal(t, "Stamina: 493", entries[1].Message)
}

func TestModeTransitionsPushSpeed(t *testing.T) {
	c, s := newTestController(t, 500, ModeRunning)

	c.Sprint()
	assert.Equal(t, ModeSprinting, c.Mode())
	assert.Equal(t, SpeedSprinting, s.last())

	c.Walk()
	assert.Equal(t, ModeWalking, c.Mode())
	assert.Equal(t, SpeedWalking, s.last())

	c.Run()
	assert.Equal(t, ModeRunning, c.Mode())
	assert.Equal(t, SpeedRunning, s.last())

	c.Run()
	assert.Equal(t, ModeRunning, c.Mode())

	c.Idle()
	assert.Equal(t, SpeedIdle, s.last())
}

func TestSetMode_RejectsUnknown(t *testing.T) {
	c, s := newTestController(t, 500, ModeRunning)

	err := c.SetMode(Mode(42))
	assert.ErrorIs(t, err, ErrInvalidMode)
	assert.Equal(t, ModeRunning, c.Mode())
	assert.Empty(t, s.speeds)

	require.NoError(t, c.SetMode(ModeWalking))
	assert.Equal(t, ModeWalking, c.Mode())
}
