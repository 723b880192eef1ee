package character

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	characterService "atlas-characters/character"
	"atlas-characters/item"
	characterMsg "atlas-characters/kafka/message/character"
	"atlas-characters/kafka/producer"
	"atlas-characters/stamina"
	kafkaProducer "github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProducer struct {
	messages []kafka.Message
}

func (r *recordingProducer) Provider(token string) kafkaProducer.MessageProducer {
	return func(provider model.Provider[[]kafka.Message]) error {
		ms, err := provider()
		if err != nil {
			return err
		}
		r.messages = append(r.messages, ms...)
		return nil
	}
}

func (r *recordingProducer) types(t *testing.T) []string {
	t.Helper()
	var results []string
	for _, m := range r.messages {
		var e characterMsg.Event[json.RawMessage]
		require.NoError(t, json.Unmarshal(m.Value, &e))
		results = append(results, e.Type)
	}
	return results
}

// TestCommandFlow drives commands through the handlers into a live registry and then advances frames
func TestCommandFlow(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	tm, err := tenant.Create(uuid.New(), "test-region", 1, 0)
	require.NoError(t, err)
	ctx := tenant.WithContext(context.Background(), tm)

	rope, err := item.NewBuilder(1, "Rope").SetWeight(4).Build()
	require.NoError(t, err)
	catalog, err := item.NewCatalog(rope)
	require.NoError(t, err)
	registry := characterService.NewRegistry(characterService.Config{Catalog: catalog, MaxWeight: 100})

	rp := &recordingProducer{}
	pf := func(l logrus.FieldLogger, ctx context.Context) characterService.Processor {
		return characterService.NewProcessor(l, ctx, registry).WithProducer(rp.Provider)
	}

	handleCharacterCreated(pf)(logger, ctx, characterMsg.StatusEvent[characterMsg.CreatedStatusEventBody]{
		CharacterId: 1,
		Type:        characterMsg.StatusEventTypeCreated,
	})
	require.Equal(t, 1, registry.Size())

	handleLocomotion(pf, characterMsg.CommandSprint, stamina.ModeSprinting)(logger, ctx, characterMsg.Command[characterMsg.LocomotionBody]{
		CharacterId: 1,
		Type:        characterMsg.CommandSprint,
	})
	handleMove(pf)(logger, ctx, characterMsg.Command[characterMsg.MoveBody]{
		CharacterId: 1,
		Type:        characterMsg.CommandMove,
		Body:        characterMsg.MoveBody{Forward: 1},
	})
	handlePickUp(pf)(logger, ctx, characterMsg.Command[characterMsg.PickUpBody]{
		CharacterId: 1,
		Type:        characterMsg.CommandPickUp,
		Body:        characterMsg.PickUpBody{ItemId: 1},
	})
	handlePickUp(pf)(logger, ctx, characterMsg.Command[characterMsg.PickUpBody]{
		CharacterId: 1,
		Type:        characterMsg.CommandPickUp,
		Body:        characterMsg.PickUpBody{ItemId: 77},
	})

	assert.Equal(t, []string{
		characterMsg.EventLocomotionChanged,
		characterMsg.EventItemAdded,
		characterMsg.EventError,
	}, rp.types(t))

	m, err := characterService.NewProcessor(logger, ctx, registry).GetById(1)
	require.NoError(t, err)
	assert.Equal(t, stamina.SpeedSprinting, m.Speed())
	assert.True(t, m.IsMoving())
	assert.Equal(t, 1, m.StackCount())

	emitter := characterService.NewEmitter(logger, context.Background(), func(ctx context.Context) producer.Provider {
		return rp.Provider
	})
	tick := characterService.TickAll(logger, registry, emitter)
	assert.Equal(t, 1, tick(100*time.Millisecond))

	m, err = characterService.NewProcessor(logger, ctx, registry).GetById(1)
	require.NoError(t, err)
	assert.Equal(t, 493, m.Stamina().Stamina())
	assert.Equal(t, -7, m.Stamina().Rate())

	handleCharacterDeleted(pf)(logger, ctx, characterMsg.StatusEvent[characterMsg.DeletedStatusEventBody]{
		CharacterId: 1,
		Type:        characterMsg.StatusEventTypeDeleted,
	})
	assert.Equal(t, 0, registry.Size())
}
