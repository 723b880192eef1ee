package item

import (
	"errors"
	"fmt"
)

// Model represents an immutable item definition
type Model struct {
	id     uint32
	name   string
	weight int
}

// Id returns the item definition ID
func (m Model) Id() uint32 {
	return m.id
}

// Name returns the item label
func (m Model) Name() string {
	return m.name
}

// Weight returns the item weight
func (m Model) Weight() int {
	return m.weight
}

func (m Model) String() string {
	return fmt.Sprintf("%s (id=%d, weight=%d)", m.name, m.id, m.weight)
}

// Builder provides fluent construction of item models
type Builder struct {
	id     uint32
	name   string
	weight int
}

// NewBuilder creates a new builder with required parameters
func NewBuilder(id uint32, name string) *Builder {
	return &Builder{
		id:   id,
		name: name,
	}
}

// SetWeight sets the item weight
func (b *Builder) SetWeight(weight int) *Builder {
	b.weight = weight
	return b
}

// Build validates and constructs the final item model
func (b *Builder) Build() (Model, error) {
	if b.name == "" {
		return Model{}, errors.New("item name is required")
	}
	if b.weight < 0 {
		return Model{}, errors.New("item weight cannot be negative")
	}
	return Model{
		id:     b.id,
		name:   b.name,
		weight: b.weight,
	}, nil
}
