package inventory

import (
	"errors"
	"fmt"
	"slices"

	"atlas-characters/item"
	"github.com/sirupsen/logrus"
)

// DefaultMaxWeight is the capacity used by Default
const DefaultMaxWeight = 100

var (
	ErrIndexOutOfRange  = errors.New("inventory index out of range")
	ErrCapacityExceeded = errors.New("inventory capacity exceeded")
)

// Inventory is an ordered, weight-bounded collection of items. Insertion order is preserved.
type Inventory struct {
	maxWeight     int
	currentWeight int
	itemsInInv    int
	items         []item.Model
}

// NewInventory creates an empty inventory with the given weight capacity
func NewInventory(maxWeight int) *Inventory {
	return &Inventory{
		maxWeight: maxWeight,
		items:     make([]item.Model, 0),
	}
}

// Default creates an empty inventory with a capacity of DefaultMaxWeight
func Default() *Inventory {
	return NewInventory(DefaultMaxWeight)
}

// Add appends an item. The inventory is left unchanged when the item would push the carried
// weight past the capacity.
func (i *Inventory) Add(m item.Model) error {
	if m.Weight() > i.maxWeight-i.currentWeight {
		return fmt.Errorf("adding %s (weight %d) to %d/%d: %w", m.Name(), m.Weight(), i.currentWeight, i.maxWeight, ErrCapacityExceeded)
	}
	i.items = append(i.items, m)
	i.itemsInInv++
	i.currentWeight += m.Weight()
	return nil
}

// Remove takes the item at index out of the inventory
func (i *Inventory) Remove(index int) (item.Model, error) {
	m, err := i.Get(index)
	if err != nil {
		return item.Model{}, err
	}
	i.items = slices.Delete(i.items, index, index+1)
	i.itemsInInv--
	i.currentWeight -= m.Weight()
	return m, nil
}

// Get returns the item at index
func (i *Inventory) Get(index int) (item.Model, error) {
	if index < 0 || index >= i.itemsInInv {
		return item.Model{}, fmt.Errorf("index %d of %d: %w", index, i.itemsInInv, ErrIndexOutOfRange)
	}
	return i.items[index], nil
}

// Name returns the name of the item at index
func (i *Inventory) Name(index int) (string, error) {
	m, err := i.Get(index)
	if err != nil {
		return "", err
	}
	return m.Name(), nil
}

// Weight returns the weight of the item at index
func (i *Inventory) Weight(index int) (int, error) {
	m, err := i.Get(index)
	if err != nil {
		return 0, err
	}
	return m.Weight(), nil
}

// Id returns the item definition ID of the item at index
func (i *Inventory) Id(index int) (uint32, error) {
	m, err := i.Get(index)
	if err != nil {
		return 0, err
	}
	return m.Id(), nil
}

// StackCount returns the number of items held
func (i *Inventory) StackCount() int {
	return i.itemsInInv
}

func (i *Inventory) MaxWeight() int {
	return i.maxWeight
}

func (i *Inventory) CurrentWeight() int {
	return i.currentWeight
}

func (i *Inventory) RemainingWeight() int {
	return i.maxWeight - i.currentWeight
}

// Items returns a copy of the held items in insertion order
func (i *Inventory) Items() []item.Model {
	results := make([]item.Model, len(i.items))
	copy(results, i.items)
	return results
}

// Print logs one line per item, or a single line when the inventory is empty
func (i *Inventory) Print(l logrus.FieldLogger) {
	if i.itemsInInv == 0 {
		l.Info("Inventory is empty.")
		return
	}
	for _, m := range i.items {
		l.Infof("ITEM: %s, Weight: %d, ID: %d", m.Name(), m.Weight(), m.Id())
	}
}
