package headless

import (
	view "github.com/s3bk/pathfinder-view"
)

// Session ties a producer, a headless backend and a driver loop together
// behind a channel-driven pump.
type Session struct {
	loop    *view.Loop
	backend *Backend
	events  chan view.Event
}

// NewSession creates a headless viewer session.
func NewSession(item view.Interactive, opts ...view.Option) *Session {
	cfg := view.NewConfig(opts...)
	b := New(cfg)
	l := view.NewLoop(item, cfg, b)
	// Repaints go through the injection queue so they are processed on
	// the pump goroutine like every other event.
	b.OnRepaint(func() { l.Inject(view.RepaintEvent{}) })
	return &Session{
		loop:    l,
		backend: b,
		events:  make(chan view.Event, 16),
	}
}

// Loop returns the session's driver loop.
func (s *Session) Loop() *view.Loop { return s.loop }

// Backend returns the session's backend.
func (s *Session) Backend() *Backend { return s.backend }

// Events is the channel feeding the pump. Close it to end the session.
func (s *Session) Events() chan<- view.Event { return s.events }

// Run pumps events until the channel closes, the session requests close,
// or a present fails. The producer's Exit hook runs exactly once on
// return.
func (s *Session) Run() error {
	return s.loop.Run(s.events)
}
