package stamina

import "errors"

const (
	DefaultStamina    = 500
	DefaultMaxStamina = 1000
	DefaultMode       = ModeRunning
)

// Model is an immutable snapshot of a stamina controller
type Model struct {
	stamina    int
	maxStamina int
	rate       int
	mode       Mode
}

// Stamina returns the current stamina
func (m Model) Stamina() int {
	return m.stamina
}

// MaxStamina returns the stamina ceiling
func (m Model) MaxStamina() int {
	return m.maxStamina
}

// Rate returns the delta applied by the most recent tick
func (m Model) Rate() int {
	return m.rate
}

// Mode returns the locomotion mode
func (m Model) Mode() Mode {
	return m.mode
}

// IsDepleted returns true when no stamina remains
func (m Model) IsDepleted() bool {
	return m.stamina <= 0
}

// IsFull returns true when stamina sits at the ceiling
func (m Model) IsFull() bool {
	return m.stamina >= m.maxStamina
}

// Builder returns a builder seeded with this snapshot
func (m Model) Builder() *Builder {
	return &Builder{
		stamina:    m.stamina,
		maxStamina: m.maxStamina,
		rate:       m.rate,
		mode:       m.mode,
	}
}

// Builder provides fluent construction of stamina snapshots
type Builder struct {
	stamina    int
	maxStamina int
	rate       int
	mode       Mode
}

// NewBuilder creates a builder populated with the character defaults
func NewBuilder() *Builder {
	return &Builder{
		stamina:    DefaultStamina,
		maxStamina: DefaultMaxStamina,
		mode:       DefaultMode,
	}
}

func (b *Builder) SetStamina(stamina int) *Builder {
	b.stamina = stamina
	return b
}

func (b *Builder) SetMaxStamina(maxStamina int) *Builder {
	b.maxStamina = maxStamina
	return b
}

func (b *Builder) SetRate(rate int) *Builder {
	b.rate = rate
	return b
}

func (b *Builder) SetMode(mode Mode) *Builder {
	b.mode = mode
	return b
}

// Build validates and constructs the snapshot
func (b *Builder) Build() (Model, error) {
	if b.maxStamina <= 0 {
		return Model{}, errors.New("max stamina must be positive")
	}
	if b.stamina < 0 || b.stamina > b.maxStamina {
		return Model{}, errors.New("stamina must be within [0, max stamina]")
	}
	if !b.mode.Valid() {
		return Model{}, ErrInvalidMode
	}
	return Model{
		stamina:    b.stamina,
		maxStamina: b.maxStamina,
		rate:       b.rate,
		mode:       b.mode,
	}, nil
}
