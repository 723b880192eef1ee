package stamina

import (
	"errors"
	"strings"
)

// ErrInvalidMode is returned when an unknown locomotion mode is requested
var ErrInvalidMode = errors.New("invalid locomotion mode")

// Mode represents the locomotion mode of a character. Exactly one mode is active at a time.
type Mode uint8

const (
	// ModeIdle represents a character standing still by choice
	ModeIdle Mode = iota
	// ModeWalking represents slow, stamina friendly movement
	ModeWalking
	// ModeRunning represents the default movement style
	ModeRunning
	// ModeSprinting represents fast movement that drains stamina
	ModeSprinting
)

// Movement speeds pushed to the movement subsystem for each mode
const (
	SpeedIdle      float64 = 0
	SpeedWalking   float64 = 300
	SpeedRunning   float64 = 600
	SpeedSprinting float64 = 1100
)

// String returns the string representation of Mode
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeWalking:
		return "walking"
	case ModeRunning:
		return "running"
	case ModeSprinting:
		return "sprinting"
	default:
		return "unknown"
	}
}

// Valid returns true if the mode is one of the known locomotion modes
func (m Mode) Valid() bool {
	return m <= ModeSprinting
}

// Speed returns the max walk speed associated with the mode
func (m Mode) Speed() float64 {
	switch m {
	case ModeWalking:
		return SpeedWalking
	case ModeRunning:
		return SpeedRunning
	case ModeSprinting:
		return SpeedSprinting
	default:
		return SpeedIdle
	}
}

// Drains returns true if moving in this mode consumes stamina
func (m Mode) Drains() bool {
	return m == ModeSprinting
}

// ParseMode converts a mode name (case-insensitive) into a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "idle":
		return ModeIdle, nil
	case "walking", "walk":
		return ModeWalking, nil
	case "running", "run":
		return ModeRunning, nil
	case "sprinting", "sprint":
		return ModeSprinting, nil
	default:
		return ModeIdle, ErrInvalidMode
	}
}

// Modes returns every known locomotion mode
func Modes() []Mode {
	return []Mode{ModeIdle, ModeWalking, ModeRunning, ModeSprinting}
}
