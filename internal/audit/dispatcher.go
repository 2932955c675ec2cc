package audit

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Event struct {
	Action   string `json:"action"`
	Entity   string `json:"entity"`
	EntityID *uint  `json:"entity_id,omitempty"`
	Metadata any    `json:"metadata,omitempty"`

	OccurredAt time.Time `json:"occurred_at"`
}

// Sink recebe os eventos já fora do caminho da requisição.
type Sink interface {
	Write(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sinks []Sink
	log   *logrus.Logger
	queue chan Event

	mu     sync.RWMutex
	closed bool

	wg   sync.WaitGroup
	once sync.Once
}

func NewDispatcher(log *logrus.Logger, queueSize int, sinks ...Sink) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 100
	}

	d := &Dispatcher{
		sinks: sinks,
		log:   log,
		queue: make(chan Event, queueSize),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		for _, s := range d.sinks {
			if err := s.Write(context.Background(), ev); err != nil {
				d.log.WithError(err).
					WithField("action", ev.Action).
					Warn("audit sink failed")
			}
		}
	}
}

// Dispatch nunca bloqueia: com a fila cheia ou após Close o evento é descartado.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.WithField("action", ev.Action).Warn("audit dispatcher closed, dropping event")
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.WithField("action", ev.Action).Warn("audit queue full, dropping event")
	}
}

// Close drena a fila e espera o worker terminar.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.once.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.queue)
		d.mu.Unlock()
	})
	d.wg.Wait()
}
