package stamina

import (
	"github.com/sirupsen/logrus"
)

// SpeedSetter receives the max walk speed whenever the locomotion mode changes
type SpeedSetter interface {
	SetMaxWalkSpeed(speed float64)
}

// Controller tracks the stamina of a single character. It is driven once per frame by Tick and
// is not safe for concurrent use; callers serialize access.
type Controller struct {
	l          logrus.FieldLogger
	speed      SpeedSetter
	stamina    int
	maxStamina int
	rate       int
	mode       Mode
}

// NewController creates a controller seeded from the given snapshot
func NewController(l logrus.FieldLogger, speed SpeedSetter, m Model) *Controller {
	return &Controller{
		l:          l,
		speed:      speed,
		stamina:    m.Stamina(),
		maxStamina: m.MaxStamina(),
		rate:       m.Rate(),
		mode:       m.Mode(),
	}
}

// DefaultController creates a controller with stamina 500 of 1000 while running
func DefaultController(l logrus.FieldLogger, speed SpeedSetter) *Controller {
	m, _ := NewBuilder().Build()
	return NewController(l, speed, m)
}

// Tick applies one frame of drain or regeneration. The new value is computed, clamped and
// assigned in a single step. Reaching zero forces the character back to running.
func (c *Controller) Tick(moving bool) Model {
	c.rate = Rate(moving, c.mode)
	c.stamina = clamp(c.stamina+c.rate, 0, c.maxStamina)

	if c.stamina <= 0 && c.mode != ModeRunning {
		c.l.WithField("previousMode", c.mode.String()).Debug("Stamina depleted, forcing running.")
		c.Run()
	}

	c.l.Debugf("Stamina Rate: %d", c.rate)
	c.l.Debugf("Stamina: %d", c.stamina)
	return c.Snapshot()
}

// Sprint switches to sprinting
func (c *Controller) Sprint() {
	c.setMode(ModeSprinting)
}

// Run switches to running
func (c *Controller) Run() {
	c.setMode(ModeRunning)
}

// Walk switches to walking
func (c *Controller) Walk() {
	c.setMode(ModeWalking)
}

// Idle switches to idle
func (c *Controller) Idle() {
	c.setMode(ModeIdle)
}

// SetMode switches to the given mode
func (c *Controller) SetMode(mode Mode) error {
	if !mode.Valid() {
		return ErrInvalidMode
	}
	c.setMode(mode)
	return nil
}

func (c *Controller) setMode(mode Mode) {
	c.mode = mode
	if c.speed != nil {
		c.speed.SetMaxWalkSpeed(mode.Speed())
	}
}

// Mode returns the active locomotion mode
func (c *Controller) Mode() Mode {
	return c.mode
}

// Snapshot returns an immutable view of the controller
func (c *Controller) Snapshot() Model {
	return Model{
		stamina:    c.stamina,
		maxStamina: c.maxStamina,
		rate:       c.rate,
		mode:       c.mode,
	}
}
