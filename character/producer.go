package character

import (
	"atlas-characters/item"
	characterMsg "atlas-characters/kafka/message/character"
	"atlas-characters/stamina"
	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/segmentio/kafka-go"
)

// LocomotionChangedEventProvider creates a provider for locomotion changed events
func LocomotionChangedEventProvider(characterId uint32, mode stamina.Mode, forced bool) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &characterMsg.Event[characterMsg.LocomotionChangedBody]{
		CharacterId: characterId,
		Type:        characterMsg.EventLocomotionChanged,
		Body: characterMsg.LocomotionChangedBody{
			Mode:   mode.String(),
			Speed:  mode.Speed(),
			Forced: forced,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

// StaminaDepletedEventProvider creates a provider for stamina depleted events
func StaminaDepletedEventProvider(characterId uint32, s stamina.Model) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &characterMsg.Event[characterMsg.StaminaDepletedBody]{
		CharacterId: characterId,
		Type:        characterMsg.EventStaminaDepleted,
		Body: characterMsg.StaminaDepletedBody{
			Stamina:    s.Stamina(),
			MaxStamina: s.MaxStamina(),
		},
	}
	return producer.SingleMessageProvider(key, value)
}

// ItemAddedEventProvider creates a provider for item added events
func ItemAddedEventProvider(characterId uint32, m item.Model, index int, currentWeight int, maxWeight int) model.Provider[[]kafka.Message] {
	return itemEventProvider(characterMsg.EventItemAdded, characterId, m, index, currentWeight, maxWeight)
}

// ItemRemovedEventProvider creates a provider for item removed events
func ItemRemovedEventProvider(characterId uint32, m item.Model, index int, currentWeight int, maxWeight int) model.Provider[[]kafka.Message] {
	return itemEventProvider(characterMsg.EventItemRemoved, characterId, m, index, currentWeight, maxWeight)
}

func itemEventProvider(eventType string, characterId uint32, m item.Model, index int, currentWeight int, maxWeight int) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &characterMsg.Event[characterMsg.ItemBody]{
		CharacterId: characterId,
		Type:        eventType,
		Body: characterMsg.ItemBody{
			ItemId:        m.Id(),
			Name:          m.Name(),
			Weight:        m.Weight(),
			Index:         index,
			CurrentWeight: currentWeight,
			MaxWeight:     maxWeight,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

// ErrorEventProvider creates a provider for error events
func ErrorEventProvider(characterId uint32, errorType string, message string, context string) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &characterMsg.Event[characterMsg.ErrorBody]{
		CharacterId: characterId,
		Type:        characterMsg.EventError,
		Body: characterMsg.ErrorBody{
			ErrorType: errorType,
			Message:   message,
			Context:   context,
		},
	}
	return producer.SingleMessageProvider(key, value)
}
