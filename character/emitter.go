package character

import (
	"context"
	"sync"
	"time"

	"atlas-characters/kafka/message"
	characterMsg "atlas-characters/kafka/message/character"
	"atlas-characters/kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-tenant"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const (
	DefaultEmitBuffer  = 1024
	DefaultEmitTimeout = 5 * time.Second
)

type frameEvent struct {
	t        tenant.Model
	provider model.Provider[[]kafka.Message]
}

// Emitter publishes frame events from its own goroutine so a slow broker never holds up a frame.
// Each emission is bounded by the emit timeout.
type Emitter struct {
	l       logrus.FieldLogger
	ctx     context.Context
	pp      func(ctx context.Context) producer.Provider
	events  chan frameEvent
	timeout time.Duration
}

// NewEmitter creates an emitter producing through pp. It stops when ctx is cancelled.
func NewEmitter(l logrus.FieldLogger, ctx context.Context, pp func(ctx context.Context) producer.Provider) *Emitter {
	return &Emitter{
		l:       l.WithField("component", "frame-emitter"),
		ctx:     ctx,
		pp:      pp,
		events:  make(chan frameEvent, DefaultEmitBuffer),
		timeout: DefaultEmitTimeout,
	}
}

// WithBuffer sets how many events may wait for emission. Call before Start.
func (e *Emitter) WithBuffer(size int) *Emitter {
	e.events = make(chan frameEvent, size)
	return e
}

// WithTimeout sets the bound on a single emission
func (e *Emitter) WithTimeout(timeout time.Duration) *Emitter {
	e.timeout = timeout
	return e
}

// Start runs the emitter in the background, tracked by wg
func (e *Emitter) Start(wg *sync.WaitGroup) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		e.run()
	}()
}

func (e *Emitter) run() {
	for {
		select {
		case ev := <-e.events:
			e.emit(ev)
		case <-e.ctx.Done():
			if n := len(e.events); n > 0 {
				e.l.Warnf("Shutting down with [%d] frame events not emitted.", n)
			}
			return
		}
	}
}

func (e *Emitter) emit(ev frameEvent) {
	ctx, cancel := context.WithTimeout(tenant.WithContext(e.ctx, ev.t), e.timeout)
	defer cancel()

	err := message.Emit(e.pp(ctx))(func(buf *message.Buffer) error {
		return buf.Put(characterMsg.EnvEventTopicLocomotionStatus, ev.provider)
	})
	if err != nil {
		e.l.WithError(err).Error("Unable to emit frame event.")
	}
}

// enqueue hands ev to the emitter without blocking. The event is dropped when the buffer is full.
func (e *Emitter) enqueue(ev frameEvent) bool {
	select {
	case e.events <- ev:
		return true
	default:
		e.l.Warn("Frame event buffer full, dropping event.")
		return false
	}
}
