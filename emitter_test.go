package view

import (
	"testing"

	"github.com/gogpu/gg"
)

// eventRecorder captures application event payloads.
type eventRecorder struct {
	countingProducer
	payloads []any
}

func (p *eventRecorder) Event(_ *ViewState, payload any) {
	p.payloads = append(p.payloads, payload)
}

func newEmitterLoop(t *testing.T) (*Loop, *eventRecorder) {
	t.Helper()
	item := &eventRecorder{countingProducer: countingProducer{box: gg.NewRect(gg.Pt(0, 0), gg.Pt(100, 100))}}
	l := NewLoop(item, NewConfig(), &fakeBackend{})
	if err := l.Dispatch(InitEvent{}); err != nil {
		t.Fatalf("init: %v", err)
	}
	return l, item
}

func TestEmitterDeliversInOrder(t *testing.T) {
	l, item := newEmitterLoop(t)
	em := l.Emitter()
	em.Send("first")
	em.Send("second")
	em.Send(3)
	if err := l.DispatchInjected(); err != nil {
		t.Fatalf("dispatch injected: %v", err)
	}
	want := []any{"first", "second", 3}
	if len(item.payloads) != len(want) {
		t.Fatalf("%d payloads, want %d", len(item.payloads), len(want))
	}
	for i, p := range want {
		if item.payloads[i] != p {
			t.Errorf("payload[%d] = %v, want %v", i, item.payloads[i], p)
		}
	}
}

func TestEmitterWakesPump(t *testing.T) {
	l, _ := newEmitterLoop(t)
	woken := 0
	l.SetWake(func() { woken++ })
	l.Emitter().Send("ping")
	if woken != 1 {
		t.Errorf("%d wake calls, want 1", woken)
	}
}

func TestEmitterAfterShutdownIsQuiet(t *testing.T) {
	l, item := newEmitterLoop(t)
	em := l.Emitter()
	l.Shutdown()
	em.Send("late")
	if err := l.DispatchInjected(); err != nil {
		t.Fatalf("dispatch injected: %v", err)
	}
	if len(item.payloads) != 0 {
		t.Errorf("payloads %v delivered after shutdown, want none", item.payloads)
	}
}

func TestZeroEmitterIsQuiet(t *testing.T) {
	var em Emitter
	em.Send("nowhere")
}
