package stamina

// Per-tick stamina deltas
const (
	RateRegen     = 3
	RateSprinting = -7
	RateRunning   = 1
	RateWalking   = 2
)

// Rate returns the stamina delta applied for one tick. A character that is not moving always
// regenerates, whatever its mode.
func Rate(moving bool, mode Mode) int {
	if !moving {
		return RateRegen
	}
	switch mode {
	case ModeSprinting:
		return RateSprinting
	case ModeRunning:
		return RateRunning
	case ModeWalking:
		return RateWalking
	default:
		return RateRegen
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
