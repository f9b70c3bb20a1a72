package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *recordingSink) Log(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func TestDispatcher_DeliversInOrder(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, nil)

	d.Dispatch(Event{Action: "appointment_created", EntityID: "a1"})
	d.Dispatch(Event{Action: "appointment_status_changed", EntityID: "a1"})
	d.Close()

	if len(sink.events) != 2 {
		t.Fatalf("got %d events, want 2", len(sink.events))
	}
	if sink.events[0].Action != "appointment_created" || sink.events[1].Action != "appointment_status_changed" {
		t.Errorf("events = %+v", sink.events)
	}
}

func TestDispatcher_SinkErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	d := NewDispatcher(&recordingSink{err: errors.New("db down")}, zap.New(core))

	d.Dispatch(Event{Action: "client_deleted"})
	d.Close()

	if logs.FilterMessage("audit error").Len() != 1 {
		t.Errorf("expected one audit error log, got %d entries", logs.Len())
	}
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "x"})
	d.Close()
}

func TestZapLogger_WritesEvent(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	z := NewZap(zap.New(core))

	if err := z.Log(context.Background(), Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: "a1",
		Metadata: map[string]string{"status": "scheduled"},
	}); err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	entries := logs.FilterMessage("appointment_created").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["metadata"]; got != `{"status":"scheduled"}` {
		t.Errorf("metadata = %v", got)
	}
}
