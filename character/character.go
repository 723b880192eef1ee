package character

import (
	"time"

	"atlas-characters/inventory"
	"atlas-characters/item"
	"atlas-characters/movement"
	"atlas-characters/stamina"
	"github.com/Chronicle20/atlas-tenant"
	"github.com/sirupsen/logrus"
)

// Character owns the stamina controller, inventory and movement state of one player character
type Character struct {
	id        uint32
	tenant    tenant.Model
	movement  *movement.Model
	stamina   *stamina.Controller
	inventory *inventory.Inventory
}

// New creates a character using the stamina snapshot and inventory capacity given. The movement
// speed cap starts at the speed of the initial locomotion mode.
func New(l logrus.FieldLogger, t tenant.Model, id uint32, sm stamina.Model, maxWeight int) *Character {
	mv := movement.NewModel(sm.Mode().Speed())
	return &Character{
		id:        id,
		tenant:    t,
		movement:  mv,
		stamina:   stamina.NewController(l.WithField("characterId", id), mv, sm),
		inventory: inventory.NewInventory(maxWeight),
	}
}

func (c *Character) Id() uint32 {
	return c.id
}

func (c *Character) Tenant() tenant.Model {
	return c.tenant
}

// TickResult describes the stamina state on either side of one frame
type TickResult struct {
	Before stamina.Model
	After  stamina.Model
}

// Depleted returns true if stamina ran out during the frame
func (r TickResult) Depleted() bool {
	return !r.Before.IsDepleted() && r.After.IsDepleted()
}

// ForcedMode returns true if the frame changed the locomotion mode
func (r TickResult) ForcedMode() bool {
	return r.Before.Mode() != r.After.Mode()
}

// Tick advances the character by one frame
func (c *Character) Tick(_ time.Duration) TickResult {
	before := c.stamina.Snapshot()
	after := c.stamina.Tick(c.movement.IsMoving())
	return TickResult{Before: before, After: after}
}

func (c *Character) SetLocomotion(mode stamina.Mode) error {
	return c.stamina.SetMode(mode)
}

func (c *Character) Move(forward, right float64) {
	c.movement.SetInput(forward, right)
}

func (c *Character) PickUp(m item.Model) (int, error) {
	if err := c.inventory.Add(m); err != nil {
		return 0, err
	}
	return c.inventory.StackCount() - 1, nil
}

func (c *Character) Drop(index int) (item.Model, error) {
	return c.inventory.Remove(index)
}

func (c *Character) PrintInventory(l logrus.FieldLogger) {
	c.inventory.Print(l.WithField("characterId", c.id))
}

// Model returns an immutable snapshot of the character
func (c *Character) Model() Model {
	return Model{
		id:            c.id,
		stamina:       c.stamina.Snapshot(),
		speed:         c.movement.MaxWalkSpeed(),
		velocity:      c.movement.Velocity(),
		items:         c.inventory.Items(),
		currentWeight: c.inventory.CurrentWeight(),
		maxWeight:     c.inventory.MaxWeight(),
	}
}
