package message

import (
	"atlas-characters/kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/segmentio/kafka-go"
)

// Buffer collects messages per topic token so an operation's events are produced together
type Buffer struct {
	buffer map[string][]kafka.Message
}

func NewBuffer() *Buffer {
	return &Buffer{
		buffer: make(map[string][]kafka.Message),
	}
}

func (b *Buffer) Put(t string, p model.Provider[[]kafka.Message]) error {
	ms, err := p()
	if err != nil {
		return err
	}
	b.buffer[t] = append(b.buffer[t], ms...)
	return nil
}

func (b *Buffer) GetAll() map[string][]kafka.Message {
	return b.buffer
}

// Size returns the number of buffered messages across all topics
func (b *Buffer) Size() int {
	n := 0
	for _, ms := range b.buffer {
		n += len(ms)
	}
	return n
}

// Emit runs f against a fresh buffer and produces everything it collected. Nothing is produced
// when f fails.
func Emit(p producer.Provider) func(f func(buf *Buffer) error) error {
	return func(f func(buf *Buffer) error) error {
		b := NewBuffer()
		if err := f(b); err != nil {
			return err
		}
		for t, ms := range b.GetAll() {
			if err := p(t)(model.FixedProvider(ms)); err != nil {
				return err
			}
		}
		return nil
	}
}
