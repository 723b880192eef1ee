package character

import (
	"context"
	"time"

	"atlas-characters/item"
	"atlas-characters/kafka/message"
	characterMsg "atlas-characters/kafka/message/character"
	"atlas-characters/kafka/producer"
	"atlas-characters/stamina"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Processor defines the operations available on the characters of one tenant
type Processor interface {
	WithProducer(p producer.Provider) Processor

	Create(characterId uint32) (Model, error)
	Delete(characterId uint32) error

	ByIdProvider(characterId uint32) model.Provider[Model]
	GetById(characterId uint32) (Model, error)

	SetLocomotion(characterId uint32, mode stamina.Mode) (Model, error)
	SetLocomotionAndEmit(transactionId uuid.UUID, characterId uint32, mode stamina.Mode) (Model, error)
	Move(characterId uint32, forward float64, right float64) (Model, error)

	PickUp(characterId uint32, itemId uint32) (Model, error)
	PickUpAndEmit(transactionId uuid.UUID, characterId uint32, itemId uint32) (Model, error)
	Drop(characterId uint32, index int) (Model, error)
	DropAndEmit(transactionId uuid.UUID, characterId uint32, index int) (Model, error)
	PrintInventory(characterId uint32) error

	EmitError(transactionId uuid.UUID, characterId uint32, errorType string, cause error, context string) error
}

// ProcessorImpl implements the Processor interface
type ProcessorImpl struct {
	l        logrus.FieldLogger
	ctx      context.Context
	t        tenant.Model
	r        *Registry
	producer producer.Provider
}

// NewProcessor creates a processor for the tenant carried by ctx
func NewProcessor(l logrus.FieldLogger, ctx context.Context, r *Registry) Processor {
	return &ProcessorImpl{
		l:        l,
		ctx:      ctx,
		t:        tenant.MustFromContext(ctx),
		r:        r,
		producer: producer.ProviderImpl(l)(ctx),
	}
}

// WithProducer creates a new processor instance with a custom producer
func (p *ProcessorImpl) WithProducer(pp producer.Provider) Processor {
	return &ProcessorImpl{
		l:        p.l,
		ctx:      p.ctx,
		t:        p.t,
		r:        p.r,
		producer: pp,
	}
}

// Create registers a character with default stamina and an empty inventory
func (p *ProcessorImpl) Create(characterId uint32) (Model, error) {
	sm, err := stamina.NewBuilder().Build()
	if err != nil {
		return Model{}, err
	}
	c := New(p.l, p.t, characterId, sm, p.r.Config().MaxWeight)
	if err = p.r.Add(c); err != nil {
		return Model{}, err
	}
	p.l.WithField("characterId", characterId).Info("Character created.")
	return p.GetById(characterId)
}

func (p *ProcessorImpl) Delete(characterId uint32) error {
	if err := p.r.Remove(p.t.Id(), characterId); err != nil {
		return err
	}
	p.l.WithField("characterId", characterId).Info("Character deleted.")
	return nil
}

func (p *ProcessorImpl) ByIdProvider(characterId uint32) model.Provider[Model] {
	return func() (Model, error) {
		var m Model
		err := p.r.With(p.t.Id(), characterId, func(c *Character) error {
			m = c.Model()
			return nil
		})
		return m, err
	}
}

func (p *ProcessorImpl) GetById(characterId uint32) (Model, error) {
	return p.ByIdProvider(characterId)()
}

// SetLocomotion switches the character's locomotion mode
func (p *ProcessorImpl) SetLocomotion(characterId uint32, mode stamina.Mode) (Model, error) {
	var m Model
	err := p.r.With(p.t.Id(), characterId, func(c *Character) error {
		if err := c.SetLocomotion(mode); err != nil {
			return err
		}
		m = c.Model()
		return nil
	})
	if err != nil {
		return Model{}, err
	}
	p.l.WithFields(logrus.Fields{
		"characterId": characterId,
		"mode":        mode.String(),
	}).Debug("Locomotion mode changed.")
	return m, nil
}

func (p *ProcessorImpl) SetLocomotionAndEmit(transactionId uuid.UUID, characterId uint32, mode stamina.Mode) (Model, error) {
	m, err := p.SetLocomotion(characterId, mode)
	if err != nil {
		return Model{}, err
	}
	err = message.Emit(p.producer)(func(buf *message.Buffer) error {
		return buf.Put(characterMsg.EnvEventTopicLocomotionStatus, LocomotionChangedEventProvider(characterId, mode, false))
	})
	if err != nil {
		return Model{}, err
	}
	p.l.WithFields(logrus.Fields{
		"transactionId": transactionId,
		"characterId":   characterId,
	}).Debug("LocomotionChanged event emitted.")
	return m, nil
}

// Move sets the locomotion input axis of the character
func (p *ProcessorImpl) Move(characterId uint32, forward float64, right float64) (Model, error) {
	var m Model
	err := p.r.With(p.t.Id(), characterId, func(c *Character) error {
		c.Move(forward, right)
		m = c.Model()
		return nil
	})
	return m, err
}

func (p *ProcessorImpl) pickUp(characterId uint32, itemId uint32) (Model, item.Model, int, error) {
	im, err := p.r.Config().Catalog.ById(itemId)
	if err != nil {
		return Model{}, item.Model{}, 0, err
	}

	var m Model
	var index int
	err = p.r.With(p.t.Id(), characterId, func(c *Character) error {
		var aerr error
		if index, aerr = c.PickUp(im); aerr != nil {
			return aerr
		}
		m = c.Model()
		return nil
	})
	if err != nil {
		p.l.WithError(err).WithFields(logrus.Fields{
			"characterId": characterId,
			"itemId":      itemId,
		}).Warn("Unable to pick up item.")
		return Model{}, item.Model{}, 0, err
	}
	p.l.WithFields(logrus.Fields{
		"characterId": characterId,
		"itemId":      itemId,
		"stackCount":  m.StackCount(),
	}).Debug("Item picked up.")
	return m, im, index, nil
}

// PickUp adds the catalog item to the character's inventory
func (p *ProcessorImpl) PickUp(characterId uint32, itemId uint32) (Model, error) {
	m, _, _, err := p.pickUp(characterId, itemId)
	return m, err
}

func (p *ProcessorImpl) PickUpAndEmit(transactionId uuid.UUID, characterId uint32, itemId uint32) (Model, error) {
	m, im, index, err := p.pickUp(characterId, itemId)
	if err != nil {
		return Model{}, err
	}
	err = message.Emit(p.producer)(func(buf *message.Buffer) error {
		return buf.Put(characterMsg.EnvEventTopicLocomotionStatus, ItemAddedEventProvider(characterId, im, index, m.CurrentWeight(), m.MaxWeight()))
	})
	if err != nil {
		return Model{}, err
	}
	p.l.WithFields(logrus.Fields{
		"transactionId": transactionId,
		"characterId":   characterId,
	}).Debug("ItemAdded event emitted.")
	return m, nil
}

func (p *ProcessorImpl) drop(characterId uint32, index int) (Model, item.Model, error) {
	var m Model
	var im item.Model
	err := p.r.With(p.t.Id(), characterId, func(c *Character) error {
		var derr error
		if im, derr = c.Drop(index); derr != nil {
			return derr
		}
		m = c.Model()
		return nil
	})
	return m, im, err
}

// Drop removes the item at index from the character's inventory
func (p *ProcessorImpl) Drop(characterId uint32, index int) (Model, error) {
	m, _, err := p.drop(characterId, index)
	return m, err
}

func (p *ProcessorImpl) DropAndEmit(transactionId uuid.UUID, characterId uint32, index int) (Model, error) {
	m, im, err := p.drop(characterId, index)
	if err != nil {
		return Model{}, err
	}
	err = message.Emit(p.producer)(func(buf *message.Buffer) error {
		return buf.Put(characterMsg.EnvEventTopicLocomotionStatus, ItemRemovedEventProvider(characterId, im, index, m.CurrentWeight(), m.MaxWeight()))
	})
	if err != nil {
		return Model{}, err
	}
	p.l.WithFields(logrus.Fields{
		"transactionId": transactionId,
		"characterId":   characterId,
	}).Debug("ItemRemoved event emitted.")
	return m, nil
}

// PrintInventory logs the character's inventory
func (p *ProcessorImpl) PrintInventory(characterId uint32) error {
	return p.r.With(p.t.Id(), characterId, func(c *Character) error {
		c.PrintInventory(p.l)
		return nil
	})
}

// EmitError publishes an ERROR event describing a failed command
func (p *ProcessorImpl) EmitError(transactionId uuid.UUID, characterId uint32, errorType string, cause error, context string) error {
	err := message.Emit(p.producer)(func(buf *message.Buffer) error {
		return buf.Put(characterMsg.EnvEventTopicLocomotionStatus, ErrorEventProvider(characterId, errorType, cause.Error(), context))
	})
	if err != nil {
		return err
	}
	p.l.WithFields(logrus.Fields{
		"transactionId": transactionId,
		"characterId":   characterId,
		"errorType":     errorType,
	}).Debug("Error event emitted.")
	return nil
}

// TickAll advances every registered character by one frame. Depletion and forced locomotion
// events are handed to the emitter after the registry lock is released.
func TickAll(l logrus.FieldLogger, r *Registry, e *Emitter) func(delta time.Duration) int {
	return func(delta time.Duration) int {
		var pending []frameEvent
		ticked := 0
		r.ForEach(func(c *Character) {
			res := c.Tick(delta)
			ticked++
			if res.Depleted() {
				pending = append(pending, frameEvent{t: c.Tenant(), provider: StaminaDepletedEventProvider(c.Id(), res.After)})
			}
			if res.ForcedMode() {
				pending = append(pending, frameEvent{t: c.Tenant(), provider: LocomotionChangedEventProvider(c.Id(), res.After.Mode(), true)})
			}
		})

		dropped := 0
		for _, ev := range pending {
			if !e.enqueue(ev) {
				dropped++
			}
		}
		if dropped > 0 {
			l.WithField("dropped", dropped).Warn("Frame events dropped.")
		}
		return ticked
	}
}
