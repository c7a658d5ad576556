package view

import (
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/gg"
)

// animFrameInterval is the wake interval used while a view animation is in
// flight and no producer update interval is armed.
const animFrameInterval = time.Second / 60

// wheelZoomFactor converts a resolved vertical wheel delta into a log2 zoom
// step.
const wheelZoomFactor = -0.02

// defaultWindowSize is used when the producer gives no size hint.
var defaultWindowSize = gg.Pt(600, 400)

// Loop is the redraw scheduler: it owns the ViewState, the producer and the
// Backend, converts backend-neutral events into state mutations and
// producer callbacks, and decides when to re-fetch the scene and when to
// present.
//
// Exactly one goroutine may call Dispatch; Inject is the only method safe
// for concurrent use.
type Loop struct {
	view    *ViewState
	item    Interactive
	backend Backend

	scene Scene

	cursor   gg.Point // logical window coordinates
	dragging bool

	started bool
	exited  bool

	mu       sync.Mutex
	injected []Event
	stopped  bool
	wake     func()
}

// NewLoop creates the driver for one session. The producer and backend are
// moved into the loop for the session lifetime.
func NewLoop(item Interactive, cfg Config, b Backend) *Loop {
	return &Loop{
		view:    NewViewState(cfg, b),
		item:    item,
		backend: b,
	}
}

// View returns the session state.
func (l *Loop) View() *ViewState { return l.view }

// Emitter returns the injection handle passed to the producer at Init.
func (l *Loop) Emitter() Emitter { return Emitter{loop: l} }

// SetWake installs the backend's pump wake callback, invoked when an event
// is injected from another goroutine.
func (l *Loop) SetWake(fn func()) {
	l.mu.Lock()
	l.wake = fn
	l.mu.Unlock()
}

// Inject queues an event for the owning goroutine and wakes the pump.
// Safe for concurrent use; a no-op after shutdown.
func (l *Loop) Inject(ev Event) {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.injected = append(l.injected, ev)
	wake := l.wake
	l.mu.Unlock()
	if wake != nil {
		wake()
	}
}

// DispatchInjected drains queued injected events in FIFO order. Backends
// call it once per pump iteration, before native input.
func (l *Loop) DispatchInjected() error {
	for {
		l.mu.Lock()
		if len(l.injected) == 0 {
			l.mu.Unlock()
			return nil
		}
		ev := l.injected[0]
		l.injected = l.injected[1:]
		l.mu.Unlock()
		if err := l.Dispatch(ev); err != nil {
			return err
		}
	}
}

// Running reports whether the pump should continue.
func (l *Loop) Running() bool {
	return !l.view.closeRequested && !l.exited
}

// WakeInterval returns the duration after which the backend should deliver
// a TimerEvent, re-armed after every pump iteration: the producer's update
// interval when armed, or an animation frame while a view tween is live.
func (l *Loop) WakeInterval() (time.Duration, bool) {
	if d, ok := l.view.UpdateInterval(); ok {
		return d, true
	}
	if l.view.Animating() {
		return animFrameInterval, true
	}
	return 0, false
}

// Dispatch feeds one event through the state machine: translate it into a
// view-state mutation and/or a producer callback, then re-fetch the scene
// if it went stale and schedule a repaint if one is pending. A non-nil
// error (failed present) is fatal to the session.
func (l *Loop) Dispatch(ev Event) error {
	vs := l.view
	switch e := ev.(type) {
	case InitEvent:
		l.start()
	case TimerEvent:
		vs.stepAnimation(e.DT)
		vs.RequestRedraw()
	case RepaintEvent:
		if err := l.paint(); err != nil {
			return err
		}
	case AppEvent:
		if h, ok := l.item.(EventHandler); ok {
			h.Event(vs, e.Payload)
		}
	case IdleEvent:
		if h, ok := l.item.(IdleHandler); ok {
			h.Idle(vs)
		}
	case ResizeEvent:
		vs.SetWindowSize(e.Size)
	case FocusEvent:
		vs.RequestRedraw()
	case ScaleFactorEvent:
		vs.SetScaleFactor(e.Factor)
		vs.SetWindowSize(e.Size)
	case KeyboardEvent:
		l.keyboard(e.Event)
	case CharEvent:
		if h, ok := l.item.(CharHandler); ok {
			h.CharInput(vs, e.Char)
		}
	case TextEvent:
		l.text(e.Text)
	case CursorEvent:
		l.cursorMoved(e.Pos)
	case ButtonEvent:
		l.button(e)
	case WheelEvent:
		l.wheel(e)
	case CloseEvent:
		vs.Close()
	}
	l.flush()
	return nil
}

// start runs the Init step once: window sizing from the producer's hint,
// then the producer's Init hook with the emitter.
func (l *Loop) start() {
	if l.started {
		return
	}
	l.started = true
	vs := l.view

	size := defaultWindowSize
	if h, ok := l.item.(SizeHinter); ok {
		if hint, ok := h.WindowSizeHint(); ok {
			size = hint
		}
	}
	vs.windowSize = size
	if l.backend != nil {
		l.backend.Resize(size)
	}
	if h, ok := l.item.(Initializer); ok {
		h.Init(vs, l.Emitter())
	}
	vs.RequestRedraw()
}

func (l *Loop) keyboard(ev *KeyEvent) {
	if ev == nil {
		return
	}
	if h, ok := l.item.(KeyHandler); ok {
		h.KeyboardInput(l.view, ev)
		return
	}
	DefaultKeyBindings(l.view, ev)
}

// text forwards committed text, decomposing into char input for producers
// without a TextHandler.
func (l *Loop) text(text string) {
	if h, ok := l.item.(TextHandler); ok {
		h.TextInput(l.view, text)
		return
	}
	if h, ok := l.item.(CharHandler); ok {
		for _, ch := range text {
			h.CharInput(l.view, ch)
		}
	}
}

func (l *Loop) cursorMoved(pos gg.Point) {
	delta := pos.Sub(l.cursor)
	l.cursor = pos
	vs := l.view
	if l.dragging {
		vs.MoveBy(delta.Mul(-1 / vs.scale))
		return
	}
	if h, ok := l.item.(CursorHandler); ok {
		h.CursorMoved(vs, l.scenePos(pos))
	}
}

// button implements the drag gesture: primary button with the pan modifier
// held starts a drag, release ends it, and everything else is forwarded as
// mouse input with the position mapped into scene space.
func (l *Loop) button(e ButtonEvent) {
	if e.Button != MouseButtonLeft {
		return
	}
	vs := l.view
	switch {
	case e.Pressed && e.Modifiers.Shift && vs.config.Pan:
		l.dragging = true
	case !e.Pressed && l.dragging:
		l.dragging = false
	default:
		if h, ok := l.item.(MouseHandler); ok {
			h.MouseInput(vs, vs.pageNr, l.scenePos(l.cursor), e.Pressed)
		}
	}
}

// wheel resolves the delta through the session scroll factors, then routes
// it: primary-modifier vertical scroll zooms, plain scroll pans.
func (l *Loop) wheel(e WheelEvent) {
	vs := l.view
	factor := vs.pixelScrollFactor
	if e.Lines {
		factor = vs.lineScrollFactor
	}
	delta := gg.Pt(e.Delta.X*factor.X, e.Delta.Y*factor.Y)
	switch {
	case vs.config.Zoom && e.Modifiers.Primary():
		vs.ZoomBy(wheelZoomFactor * delta.Y)
	case vs.config.Pan:
		vs.MoveBy(delta.Mul(-1 / vs.scale))
	}
}

// scenePos maps a logical window position into scene coordinates through
// the inverse view transform.
func (l *Loop) scenePos(p gg.Point) gg.Point {
	vs := l.view
	var tr gg.Matrix
	if vs.config.Pan {
		tr = SceneToWindow(vs.windowSize, vs.scale, vs.viewCenter)
	} else {
		var box gg.Rect
		if l.scene != nil {
			box = SceneBounds(l.scene)
		}
		tr = SceneToDeviceAnchored(box, vs.scale, 1)
	}
	return DeviceToScene(tr).TransformPoint(p)
}

// flush runs the post-dispatch steps: re-fetch a stale scene, then schedule
// a repaint if one is pending.
func (l *Loop) flush() {
	vs := l.view
	if vs.sceneStale {
		l.refreshScene()
	}
	if vs.redrawRequested && l.backend != nil {
		l.backend.RequestRepaint()
	}
}

// refreshScene re-invokes the producer's scene supply exactly once per
// stale transition and recomputes the pan bounds from the new content.
func (l *Loop) refreshScene() {
	vs := l.view
	// Defensive clamp in case the producer's page count shrank since the
	// page was chosen.
	if vs.pageNr >= vs.numPages {
		vs.pageNr = vs.numPages - 1
	}
	s := l.item.Scene(vs)
	vs.sceneStale = false
	if s == nil {
		return
	}
	l.scene = s
	box := SceneBounds(s)
	if vs.config.Pan {
		vs.SetBounds(box)
	} else {
		vs.SetViewBox(box)
	}
	vs.RequestRedraw()
}

// paint presents one frame: resize to the current logical window size
// (idempotent if unchanged) and rasterize under the canonical transform.
func (l *Loop) paint() error {
	vs := l.view
	if vs.sceneStale {
		l.refreshScene()
	}
	if l.scene == nil || l.backend == nil {
		vs.redrawRequested = false
		return nil
	}
	l.backend.Resize(vs.windowSize)
	if err := l.backend.Present(l.scene, l.transform()); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	vs.redrawRequested = false
	return nil
}

// transform computes the scene-to-device transform for the current state.
func (l *Loop) transform() gg.Matrix {
	vs := l.view
	if vs.config.Pan {
		return SceneToDevice(vs.windowSize, vs.scale, vs.scaleFactor, vs.viewCenter)
	}
	return SceneToDeviceAnchored(SceneBounds(l.scene), vs.scale, vs.scaleFactor)
}

// Shutdown stops event injection and runs the producer's Exit hook exactly
// once, then releases the backend. Backends call it when the pump exits,
// regardless of which path triggered the stop.
func (l *Loop) Shutdown() {
	l.mu.Lock()
	l.stopped = true
	l.injected = nil
	l.mu.Unlock()

	if l.exited {
		return
	}
	l.exited = true
	if h, ok := l.item.(Exiter); ok {
		h.Exit(l.view)
	}
	if l.backend != nil {
		if err := l.backend.Close(); err != nil {
			Logger().Warn("backend close", "err", err)
		}
	}
}

// Run drives the loop from a channel of events: the blocking pump used by
// headless sessions and tests. It suspends awaiting the next event, an
// armed timer deadline, or an injected application event, whichever comes
// first, and returns when the channel closes, the close flag is observed,
// or a present fails.
func (l *Loop) Run(events <-chan Event) error {
	wakeCh := make(chan struct{}, 1)
	l.SetWake(func() {
		select {
		case wakeCh <- struct{}{}:
		default:
		}
	})
	defer l.Shutdown()

	if err := l.Dispatch(InitEvent{}); err != nil {
		return err
	}

	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	lastWake := time.Now()

	for l.Running() {
		if err := l.DispatchInjected(); err != nil {
			return err
		}
		if !l.Running() {
			break
		}

		armed := false
		if d, ok := l.WakeInterval(); ok {
			timer.Reset(d)
			armed = true
		}

		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := l.Dispatch(ev); err != nil {
				return err
			}
		case <-wakeCh:
		case now := <-timer.C:
			armed = false
			dt := float32(now.Sub(lastWake).Seconds())
			lastWake = now
			if err := l.Dispatch(TimerEvent{DT: dt}); err != nil {
				return err
			}
		}

		if armed {
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		}
	}
	return nil
}
