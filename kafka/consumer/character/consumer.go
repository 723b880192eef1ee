package character

import (
	"context"

	characterService "atlas-characters/character"
	localConsumer "atlas-characters/kafka/consumer"
	characterMsg "atlas-characters/kafka/message/character"
	"atlas-characters/stamina"
	"github.com/Chronicle20/atlas-kafka/consumer"
	"github.com/Chronicle20/atlas-kafka/handler"
	kafka "github.com/Chronicle20/atlas-kafka/message"
	"github.com/Chronicle20/atlas-kafka/topic"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ProcessorFactory builds a character processor for the tenant carried by the message context
type ProcessorFactory func(l logrus.FieldLogger, ctx context.Context) characterService.Processor

// NewProcessorFactory binds processors to the shared character registry
func NewProcessorFactory(r *characterService.Registry) ProcessorFactory {
	return func(l logrus.FieldLogger, ctx context.Context) characterService.Processor {
		return characterService.NewProcessor(l, ctx, r)
	}
}

// NewConfig creates a new consumer configuration for character topics
func NewConfig(l logrus.FieldLogger) func(name string) func(token string) func(groupId string) consumer.Config {
	return localConsumer.NewConfig(l)
}

// InitConsumers initializes the locomotion command and character status consumers
func InitConsumers(l logrus.FieldLogger) func(func(config consumer.Config, decorators ...model.Decorator[consumer.Config])) func(consumerGroupId string) {
	return func(rf func(config consumer.Config, decorators ...model.Decorator[consumer.Config])) func(consumerGroupId string) {
		return func(consumerGroupId string) {
			rf(NewConfig(l)("character_locomotion_command")(characterMsg.EnvCommandTopic)(consumerGroupId),
				consumer.SetHeaderParsers(consumer.SpanHeaderParser, consumer.TenantHeaderParser))
			rf(NewConfig(l)("character_status_event")(characterMsg.EnvEventTopicStatus)(consumerGroupId),
				consumer.SetHeaderParsers(consumer.SpanHeaderParser, consumer.TenantHeaderParser))
		}
	}
}

// InitHandlers registers every character handler with its topic
func InitHandlers(l logrus.FieldLogger, pf ProcessorFactory) func(rf func(topic string, handler handler.Handler) (string, error)) {
	return func(rf func(topic string, handler handler.Handler) (string, error)) {
		register := func(token string, handlers ...handler.Handler) {
			t, _ := topic.EnvProvider(l)(token)()
			for _, h := range handlers {
				if _, err := rf(t, h); err != nil {
					l.WithError(err).Errorf("Unable to register handler for topic [%s].", t)
				}
			}
		}

		register(characterMsg.EnvCommandTopic,
			kafka.AdaptHandler(kafka.PersistentConfig(handleLocomotion(pf, characterMsg.CommandSprint, stamina.ModeSprinting))),
			kafka.AdaptHandler(kafka.PersistentConfig(handleLocomotion(pf, characterMsg.CommandRun, stamina.ModeRunning))),
			kafka.AdaptHandler(kafka.PersistentConfig(handleLocomotion(pf, characterMsg.CommandWalk, stamina.ModeWalking))),
			kafka.AdaptHandler(kafka.PersistentConfig(handleLocomotion(pf, characterMsg.CommandIdle, stamina.ModeIdle))),
			kafka.AdaptHandler(kafka.PersistentConfig(handleMove(pf))),
			kafka.AdaptHandler(kafka.PersistentConfig(handlePickUp(pf))),
			kafka.AdaptHandler(kafka.PersistentConfig(handleDrop(pf))),
			kafka.AdaptHandler(kafka.PersistentConfig(handlePrintInventory(pf))),
		)
		register(characterMsg.EnvEventTopicStatus,
			kafka.AdaptHandler(kafka.PersistentConfig(handleCharacterCreated(pf))),
			kafka.AdaptHandler(kafka.PersistentConfig(handleCharacterDeleted(pf))),
		)
	}
}

func emitFailure(l logrus.FieldLogger, p characterService.Processor, transactionId uuid.UUID, characterId uint32, errorType string, cause error, context string) {
	if err := p.EmitError(transactionId, characterId, errorType, cause, context); err != nil {
		l.WithError(err).Errorf("Unable to emit error event for [%s].", context)
	}
}

// handleLocomotion handles the SPRINT, RUN, WALK and IDLE commands
func handleLocomotion(pf ProcessorFactory, commandType string, mode stamina.Mode) kafka.Handler[characterMsg.Command[characterMsg.LocomotionBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd characterMsg.Command[characterMsg.LocomotionBody]) {
		if cmd.Type != commandType {
			return
		}
		l.WithFields(logrus.Fields{
			"type":        cmd.Type,
			"characterId": cmd.CharacterId,
		}).Debug("Processing locomotion command")

		transactionId := uuid.New()
		p := pf(l, ctx)
		if _, err := p.SetLocomotionAndEmit(transactionId, cmd.CharacterId, mode); err != nil {
			l.WithError(err).WithField("characterId", cmd.CharacterId).Error("Failed to change locomotion mode")
			emitFailure(l, p, transactionId, cmd.CharacterId, "LOCOMOTION_FAILED", err, "locomotion")
		}
	}
}

// handleMove handles movement input commands
func handleMove(pf ProcessorFactory) kafka.Handler[characterMsg.Command[characterMsg.MoveBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd characterMsg.Command[characterMsg.MoveBody]) {
		if cmd.Type != characterMsg.CommandMove {
			return
		}
		l.WithFields(logrus.Fields{
			"characterId": cmd.CharacterId,
			"forward":     cmd.Body.Forward,
			"right":       cmd.Body.Right,
		}).Debug("Processing move command")

		p := pf(l, ctx)
		if _, err := p.Move(cmd.CharacterId, cmd.Body.Forward, cmd.Body.Right); err != nil {
			l.WithError(err).WithField("characterId", cmd.CharacterId).Error("Failed to apply movement input")
			emitFailure(l, p, uuid.New(), cmd.CharacterId, "MOVE_FAILED", err, "move")
		}
	}
}

// handlePickUp handles item pick up commands
func handlePickUp(pf ProcessorFactory) kafka.Handler[characterMsg.Command[characterMsg.PickUpBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd characterMsg.Command[characterMsg.PickUpBody]) {
		if cmd.Type != characterMsg.CommandPickUp {
			return
		}
		l.WithFields(logrus.Fields{
			"characterId": cmd.CharacterId,
			"itemId":      cmd.Body.ItemId,
		}).Debug("Processing pick up command")

		transactionId := uuid.New()
		p := pf(l, ctx)
		m, err := p.PickUpAndEmit(transactionId, cmd.CharacterId, cmd.Body.ItemId)
		if err != nil {
			l.WithError(err).WithFields(logrus.Fields{
				"characterId": cmd.CharacterId,
				"itemId":      cmd.Body.ItemId,
			}).Error("Failed to pick up item")
			emitFailure(l, p, transactionId, cmd.CharacterId, "PICK_UP_FAILED", err, "pick_up")
			return
		}
		l.WithFields(logrus.Fields{
			"characterId": cmd.CharacterId,
			"stackCount":  m.StackCount(),
		}).Info("Item picked up successfully")
	}
}

// handleDrop handles item drop commands
func handleDrop(pf ProcessorFactory) kafka.Handler[characterMsg.Command[characterMsg.DropBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd characterMsg.Command[characterMsg.DropBody]) {
		if cmd.Type != characterMsg.CommandDrop {
			return
		}
		l.WithFields(logrus.Fields{
			"characterId": cmd.CharacterId,
			"index":       cmd.Body.Index,
		}).Debug("Processing drop command")

		transactionId := uuid.New()
		p := pf(l, ctx)
		if _, err := p.DropAndEmit(transactionId, cmd.CharacterId, cmd.Body.Index); err != nil {
			l.WithError(err).WithFields(logrus.Fields{
				"characterId": cmd.CharacterId,
				"index":       cmd.Body.Index,
			}).Error("Failed to drop item")
			emitFailure(l, p, transactionId, cmd.CharacterId, "DROP_FAILED", err, "drop")
		}
	}
}

// handlePrintInventory handles inventory print commands
func handlePrintInventory(pf ProcessorFactory) kafka.Handler[characterMsg.Command[characterMsg.PrintInventoryBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd characterMsg.Command[characterMsg.PrintInventoryBody]) {
		if cmd.Type != characterMsg.CommandPrintInventory {
			return
		}
		p := pf(l, ctx)
		if err := p.PrintInventory(cmd.CharacterId); err != nil {
			l.WithError(err).WithField("characterId", cmd.CharacterId).Error("Failed to print inventory")
			emitFailure(l, p, uuid.New(), cmd.CharacterId, "PRINT_INVENTORY_FAILED", err, "print_inventory")
		}
	}
}

// handleCharacterCreated registers newly created characters
func handleCharacterCreated(pf ProcessorFactory) kafka.Handler[characterMsg.StatusEvent[characterMsg.CreatedStatusEventBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, event characterMsg.StatusEvent[characterMsg.CreatedStatusEventBody]) {
		if event.Type != characterMsg.StatusEventTypeCreated {
			return
		}
		if _, err := pf(l, ctx).Create(event.CharacterId); err != nil {
			l.WithError(err).WithField("characterId", event.CharacterId).Error("Failed to register created character")
		}
	}
}

// handleCharacterDeleted removes deleted characters
func handleCharacterDeleted(pf ProcessorFactory) kafka.Handler[characterMsg.StatusEvent[characterMsg.DeletedStatusEventBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, event characterMsg.StatusEvent[characterMsg.DeletedStatusEventBody]) {
		if event.Type != characterMsg.StatusEventTypeDeleted {
			return
		}
		if err := pf(l, ctx).Delete(event.CharacterId); err != nil {
			l.WithError(err).WithField("characterId", event.CharacterId).Warn("Failed to remove deleted character")
		}
	}
}
