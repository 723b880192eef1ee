package message

import (
	"errors"
	"testing"

	"atlas-characters/kafka/producer"
	kafkaProducer "github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordingProvider(produced map[string][]kafka.Message) producer.Provider {
	return func(token string) kafkaProducer.MessageProducer {
		return func(p model.Provider[[]kafka.Message]) error {
			ms, err := p()
			if err != nil {
				return err
			}
			produced[token] = append(produced[token], ms...)
			return nil
		}
	}
}

func TestBuffer_Put(t *testing.T) {
	b := NewBuffer()

	require.NoError(t, b.Put("a", model.FixedProvider([]kafka.Message{{Key: []byte("1")}})))
	require.NoError(t, b.Put("a", model.FixedProvider([]kafka.Message{{Key: []byte("2")}})))
	require.NoError(t, b.Put("b", model.FixedProvider([]kafka.Message{{Key: []byte("3")}})))

	assert.Len(t, b.GetAll()["a"], 2)
	assert.Len(t, b.GetAll()["b"], 1)
	assert.Equal(t, 3, b.Size())
}

func TestBuffer_PutPropagatesError(t *testing.T) {
	sentinel := errors.New("boom")
	err := NewBuffer().Put("a", func() ([]kafka.Message, error) { return nil, sentinel })
	assert.ErrorIs(t, err, sentinel)
}

func TestEmit(t *testing.T) {
	produced := make(map[string][]kafka.Message)

	err := Emit(recordingProvider(produced))(func(buf *Buffer) error {
		return buf.Put("topic", model.FixedProvider([]kafka.Message{{Key: []byte("k")}}))
	})

	require.NoError(t, err)
	assert.Len(t, produced["topic"], 1)
}

func TestEmit_NothingProducedOnFailure(t *testing.T) {
	produced := make(map[string][]kafka.Message)
	sentinel := errors.New("operation failed")

	err := Emit(recordingProvider(produced))(func(buf *Buffer) error {
		_ = buf.Put("topic", model.FixedProvider([]kafka.Message{{Key: []byte("k")}}))
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Empty(t, produced)
}
