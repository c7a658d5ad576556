//go:build js && wasm

package web

import (
	"syscall/js"
	"time"

	"github.com/gogpu/gg"

	view "github.com/s3bk/pathfinder-view"
)

// Show attaches a producer to the canvas with the given element id and
// pumps browser events until the producer requests shutdown. An empty id
// picks the document's first canvas. Show blocks; call it from main.
func Show(canvasID string, item view.Interactive, opts ...view.Option) error {
	cfg := view.NewConfig(opts...)
	b, err := Attach(canvasID, cfg)
	if err != nil {
		return err
	}
	s := &session{backend: b, loop: view.NewLoop(item, cfg, b)}
	return s.run()
}

// session owns the DOM listeners and the wakeup machinery for one pumped
// producer. Everything runs on the wasm goroutine; listener callbacks
// dispatch synchronously so key cancellation can preventDefault.
type session struct {
	backend *Backend
	loop    *view.Loop

	funcs    []js.Func
	ticker   js.Value
	ticking  bool
	lastTick time.Time
	done     chan error
	err      error
}

func (s *session) run() error {
	l := s.loop
	s.done = make(chan error, 1)
	s.lastTick = time.Now()

	s.backend.OnRepaint(func() {
		s.dispatch(view.RepaintEvent{})
		s.afterDispatch()
	})
	l.SetWake(func() {
		// Emitter sends may originate in JS callbacks outside a
		// dispatch; drain on a fresh task.
		s.defer0(func() {
			if err := l.DispatchInjected(); err != nil {
				s.fail(err)
			}
			s.afterDispatch()
		})
	})

	doc := s.backend.doc
	win := js.Global()
	canvas := s.backend.canvas

	s.listen(win, "keydown", s.onKeyDown)
	s.listen(win, "keyup", s.onKeyUp)
	s.listen(canvas, "mousemove", s.onMouseMove)
	s.listen(canvas, "mousedown", s.onMouseDown)
	s.listen(win, "mouseup", s.onMouseUp)
	s.listen(canvas, "wheel", s.onWheel)
	s.listen(win, "resize", s.onResize)
	s.listen(win, "focus", func(js.Value) { s.dispatch(view.FocusEvent{Focused: true}) })
	s.listen(win, "blur", func(js.Value) { s.dispatch(view.FocusEvent{Focused: false}) })
	s.listen(doc, "visibilitychange", func(js.Value) {
		if doc.Get("hidden").Bool() {
			s.dispatch(view.IdleEvent{})
		}
	})

	s.dispatch(view.InitEvent{})
	s.afterDispatch()

	err := <-s.done
	for _, f := range s.funcs {
		f.Release()
	}
	s.stopTicker()
	l.Shutdown()
	return err
}

// dispatch forwards one event and stops the session on the first error or
// once the loop leaves the running state.
func (s *session) dispatch(ev view.Event) {
	if s.err != nil {
		return
	}
	if err := s.loop.Dispatch(ev); err != nil {
		s.fail(err)
	}
}

// afterDispatch re-arms the animation ticker and checks for shutdown.
// Called after every batch of synchronous dispatches.
func (s *session) afterDispatch() {
	if s.err != nil {
		return
	}
	if !s.loop.Running() {
		s.fail(nil)
		return
	}
	if d, ok := s.loop.WakeInterval(); ok {
		s.startTicker(d)
	} else {
		s.stopTicker()
	}
}

func (s *session) fail(err error) {
	if s.err == nil {
		s.err = err
		select {
		case s.done <- err:
		default:
		}
	}
}

func (s *session) startTicker(d time.Duration) {
	if s.ticking {
		return
	}
	s.ticking = true
	s.lastTick = time.Now()
	tick := js.FuncOf(func(js.Value, []js.Value) any {
		now := time.Now()
		dt := float32(now.Sub(s.lastTick).Seconds())
		s.lastTick = now
		s.dispatch(view.TimerEvent{DT: dt})
		s.afterDispatch()
		return nil
	})
	s.funcs = append(s.funcs, tick)
	s.ticker = js.Global().Call("setInterval", tick, d.Milliseconds())
}

func (s *session) stopTicker() {
	if !s.ticking {
		return
	}
	s.ticking = false
	js.Global().Call("clearInterval", s.ticker)
}

// defer0 queues fn as a macrotask.
func (s *session) defer0(fn func()) {
	var f js.Func
	f = js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		f.Release()
		return nil
	})
	js.Global().Call("setTimeout", f, 0)
}

func (s *session) listen(target js.Value, name string, fn func(ev js.Value)) {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(args[0])
		}
		s.afterDispatch()
		return nil
	})
	s.funcs = append(s.funcs, f)
	target.Call("addEventListener", name, f)
}

func (s *session) onKeyDown(ev js.Value) {
	mods := readModifiers(ev)
	if key, ok := keyFromCode(ev.Get("code").String()); ok {
		ke := &view.KeyEvent{Pressed: true, Key: key, Modifiers: mods}
		s.dispatch(view.KeyboardEvent{Event: ke})
		if ke.Cancelled() {
			ev.Call("preventDefault")
			return
		}
	}
	// Printable input arrives as a one-rune key value.
	if k := ev.Get("key").String(); len([]rune(k)) == 1 && !mods.Ctrl && !mods.Meta {
		s.dispatch(view.CharEvent{Char: []rune(k)[0]})
	}
}

func (s *session) onKeyUp(ev js.Value) {
	if key, ok := keyFromCode(ev.Get("code").String()); ok {
		ke := &view.KeyEvent{Pressed: false, Key: key, Modifiers: readModifiers(ev)}
		s.dispatch(view.KeyboardEvent{Event: ke})
		if ke.Cancelled() {
			ev.Call("preventDefault")
		}
	}
}

func (s *session) onMouseMove(ev js.Value) {
	s.dispatch(view.CursorEvent{Pos: mousePos(ev)})
}

func (s *session) onMouseDown(ev js.Value) {
	if btn, ok := mouseButton(ev); ok {
		s.dispatch(view.CursorEvent{Pos: mousePos(ev)})
		s.dispatch(view.ButtonEvent{Button: btn, Pressed: true, Modifiers: readModifiers(ev)})
	}
}

func (s *session) onMouseUp(ev js.Value) {
	if btn, ok := mouseButton(ev); ok {
		s.dispatch(view.ButtonEvent{Button: btn, Pressed: false, Modifiers: readModifiers(ev)})
	}
}

// deltaMode constants from the DOM WheelEvent interface.
const (
	domDeltaPixel = 0
	domDeltaLine  = 1
	domDeltaPage  = 2
)

func (s *session) onWheel(ev js.Value) {
	delta := gg.Pt(ev.Get("deltaX").Float(), ev.Get("deltaY").Float())
	lines := ev.Get("deltaMode").Int() != domDeltaPixel
	if lines {
		// Browsers report line deltas with down as positive; the line
		// scroll factor expects up as positive.
		delta.Y = -delta.Y
	}
	s.dispatch(view.WheelEvent{Delta: delta, Lines: lines, Modifiers: readModifiers(ev)})
	ev.Call("preventDefault")
}

func (s *session) onResize(js.Value) {
	w := s.backend.canvas.Get("clientWidth").Float()
	h := s.backend.canvas.Get("clientHeight").Float()
	if w > 0 && h > 0 {
		size := gg.Pt(w, h)
		s.dispatch(view.ResizeEvent{Size: size})
		s.dispatch(view.ScaleFactorEvent{Factor: s.backend.ScaleFactor(), Size: size})
	}
}

func mousePos(ev js.Value) gg.Point {
	return gg.Pt(ev.Get("offsetX").Float(), ev.Get("offsetY").Float())
}

func mouseButton(ev js.Value) (view.MouseButton, bool) {
	switch ev.Get("button").Int() {
	case 0:
		return view.MouseButtonLeft, true
	case 1:
		return view.MouseButtonMiddle, true
	case 2:
		return view.MouseButtonRight, true
	}
	return 0, false
}

func readModifiers(ev js.Value) view.Modifiers {
	return view.Modifiers{
		Shift: ev.Get("shiftKey").Bool(),
		Ctrl:  ev.Get("ctrlKey").Bool(),
		Alt:   ev.Get("altKey").Bool(),
		Meta:  ev.Get("metaKey").Bool(),
	}
}
