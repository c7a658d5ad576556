package view

// Emitter is the one-way handle given to the producer at Init time. Other
// goroutines (timers, background workers, a web-page message handler) may
// call Send to inject application events; delivery wakes the event pump and
// the payload is handed to the producer's Event callback on the owning
// goroutine, in FIFO order relative to other injected events.
//
// Send after the loop has stopped is a silent no-op, not an error.
type Emitter struct {
	loop *Loop
}

// Send injects an application event. Safe for concurrent use; never blocks.
func (e Emitter) Send(payload any) {
	if e.loop != nil {
		e.loop.Inject(AppEvent{Payload: payload})
	}
}
