package movement

import "math"

// Model is the movement state of a character: the locomotion input axis and the speed cap set
// by the locomotion mode.
type Model struct {
	maxWalkSpeed float64
	forward      float64
	right        float64
}

// NewModel creates a stationary movement model with the given speed cap
func NewModel(maxWalkSpeed float64) *Model {
	return &Model{maxWalkSpeed: maxWalkSpeed}
}

// SetMaxWalkSpeed sets the speed cap
func (m *Model) SetMaxWalkSpeed(speed float64) {
	m.maxWalkSpeed = math.Max(speed, 0)
}

func (m *Model) MaxWalkSpeed() float64 {
	return m.maxWalkSpeed
}

// SetInput sets the forward and right axis values, each clamped to [-1, 1]
func (m *Model) SetInput(forward, right float64) {
	m.forward = clampAxis(forward)
	m.right = clampAxis(right)
}

// Stop zeroes the input axis
func (m *Model) Stop() {
	m.SetInput(0, 0)
}

func (m *Model) Input() (float64, float64) {
	return m.forward, m.right
}

// Velocity returns the current speed, never above the speed cap
func (m *Model) Velocity() float64 {
	magnitude := math.Min(math.Hypot(m.forward, m.right), 1)
	return m.maxWalkSpeed * magnitude
}

// IsMoving returns true when the velocity is non-zero
func (m *Model) IsMoving() bool {
	return m.Velocity() > 0
}

func clampAxis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
