package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EduardoMSouza/clinicaDaniloOdonto/internal/logger"
)

type memorySink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (m *memorySink) Write(_ context.Context, ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return m.err
}

func TestDispatcher_DeliversToAllSinks(t *testing.T) {
	a := &memorySink{}
	b := &memorySink{err: errors.New("down")}

	d := NewDispatcher(logger.Discard(), 10, a, b)

	id := uint(7)
	d.Dispatch(Event{Action: "appointment_created", Entity: "appointment", EntityID: &id})
	d.Dispatch(Event{Action: "appointment_cancelled", Entity: "appointment", EntityID: &id})
	d.Close()

	require.Len(t, a.events, 2)
	require.Len(t, b.events, 2)
	assert.Equal(t, "appointment_created", a.events[0].Action)
	assert.False(t, a.events[0].OccurredAt.IsZero())
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "x"})
		d.Close()
	})
}

func TestDispatcher_CloseTwice(t *testing.T) {
	d := NewDispatcher(logger.Discard(), 1)
	d.Close()
	assert.NotPanics(t, d.Close)
}

func TestDispatcher_DispatchAfterCloseIsNoop(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(logger.Discard(), 1, sink)
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "late"})
	})
	assert.Empty(t, sink.events)
}
