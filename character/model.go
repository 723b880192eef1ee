package character

import (
	"atlas-characters/item"
	"atlas-characters/stamina"
)

// Model is an immutable snapshot of a character
type Model struct {
	id            uint32
	stamina       stamina.Model
	speed         float64
	velocity      float64
	items         []item.Model
	currentWeight int
	maxWeight     int
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) Stamina() stamina.Model {
	return m.stamina
}

// Speed returns the max walk speed set by the locomotion mode
func (m Model) Speed() float64 {
	return m.speed
}

func (m Model) Velocity() float64 {
	return m.velocity
}

func (m Model) IsMoving() bool {
	return m.velocity > 0
}

func (m Model) Items() []item.Model {
	return m.items
}

func (m Model) StackCount() int {
	return len(m.items)
}

func (m Model) CurrentWeight() int {
	return m.currentWeight
}

func (m Model) MaxWeight() int {
	return m.maxWeight
}
