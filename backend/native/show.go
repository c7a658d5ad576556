package native

import (
	"math"
	"time"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	view "github.com/s3bk/pathfinder-view"
)

// Show opens a window for the given producer and pumps events until the
// window closes or the producer requests shutdown. It blocks for the
// lifetime of the window and must run on the main goroutine.
func Show(item view.Interactive, opts ...view.Option) error {
	cfg := view.NewConfig(opts...)
	b := New(cfg)
	l := view.NewLoop(item, cfg, b)

	ebiten.SetWindowTitle(view.TitleOf(item))
	ebiten.SetWindowDecorated(cfg.Borders)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	g := &game{backend: b, loop: l}
	err := ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{
		ScreenTransparent: cfg.Transparent,
	})
	l.Shutdown()
	if err != nil {
		return err
	}
	return g.err
}

// game adapts the driver loop to ebiten's fixed Update/Draw/Layout cycle.
// Each Update drains injected events, polls input deltas since the last
// tick, and forwards everything as backend-neutral events.
type game struct {
	backend *Backend
	loop    *view.Loop

	started   bool
	keys      []ebiten.Key
	chars     []rune
	cursor    gg.Point
	lastSize  gg.Point
	lastScale float64
	lastTick  time.Time

	err error
}

// dispatch forwards one event, capturing the first error so the pump can
// stop on it.
func (g *game) dispatch(ev view.Event) bool {
	if g.err != nil {
		return false
	}
	if err := g.loop.Dispatch(ev); err != nil {
		g.err = err
		return false
	}
	return true
}

func (g *game) Update() error {
	if g.err != nil {
		return g.err
	}
	if !g.started {
		g.started = true
		g.lastScale = g.backend.ScaleFactor()
		g.lastTick = time.Now()
		g.dispatch(view.InitEvent{})
	}
	if err := g.loop.DispatchInjected(); err != nil {
		g.err = err
	}

	if ebiten.IsWindowBeingClosed() {
		g.dispatch(view.CloseEvent{})
	}

	if w, h := ebiten.WindowSize(); w > 0 && h > 0 {
		size := gg.Pt(float64(w), float64(h))
		if size != g.lastSize {
			g.lastSize = size
			g.dispatch(view.ResizeEvent{Size: size})
		}
		if f := g.backend.ScaleFactor(); f != g.lastScale {
			g.lastScale = f
			g.dispatch(view.ScaleFactorEvent{Factor: f, Size: size})
		}
	}

	mods := readModifiers()

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key, ok := keyFromEbiten(k); ok {
			g.dispatch(view.KeyboardEvent{Event: &view.KeyEvent{
				Pressed: true, Key: key, Modifiers: mods,
			}})
		}
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key, ok := keyFromEbiten(k); ok {
			g.dispatch(view.KeyboardEvent{Event: &view.KeyEvent{
				Pressed: false, Key: key, Modifiers: mods,
			}})
		}
	}

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, ch := range g.chars {
		g.dispatch(view.CharEvent{Char: ch})
	}

	// CursorPosition is in framebuffer pixels; events carry logical
	// coordinates.
	cx, cy := ebiten.CursorPosition()
	pos := gg.Pt(float64(cx), float64(cy)).Div(g.lastScale)
	if pos != g.cursor {
		g.cursor = pos
		g.dispatch(view.CursorEvent{Pos: pos})
	}

	for eb, vb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(eb) {
			g.dispatch(view.ButtonEvent{Button: vb, Pressed: true, Modifiers: mods})
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			g.dispatch(view.ButtonEvent{Button: vb, Pressed: false, Modifiers: mods})
		}
	}

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		g.dispatch(view.WheelEvent{
			Delta:     gg.Pt(dx, dy),
			Lines:     true,
			Modifiers: mods,
		})
	}

	now := time.Now()
	if d, ok := g.loop.WakeInterval(); ok {
		if elapsed := now.Sub(g.lastTick); elapsed >= d {
			g.lastTick = now
			g.dispatch(view.TimerEvent{DT: float32(elapsed.Seconds())})
		}
	} else {
		g.lastTick = now
	}

	g.dispatch(view.IdleEvent{})

	if g.backend.repaintPending {
		g.backend.repaintPending = false
		g.dispatch(view.RepaintEvent{})
	}

	if g.err != nil {
		return g.err
	}
	if !g.loop.Running() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.backend.frame != nil {
		screen.DrawImage(g.backend.frame, nil)
	}
}

// Layout renders at physical resolution so rasterized frames map 1:1 to
// screen pixels.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	f := g.backend.ScaleFactor()
	return int(math.Ceil(float64(outsideWidth) * f)),
		int(math.Ceil(float64(outsideHeight) * f))
}

var mouseButtons = map[ebiten.MouseButton]view.MouseButton{
	ebiten.MouseButtonLeft:   view.MouseButtonLeft,
	ebiten.MouseButtonRight:  view.MouseButtonRight,
	ebiten.MouseButtonMiddle: view.MouseButtonMiddle,
}

func readModifiers() view.Modifiers {
	return view.Modifiers{
		Shift: ebiten.IsKeyPressed(ebiten.KeyShift),
		Ctrl:  ebiten.IsKeyPressed(ebiten.KeyControl),
		Alt:   ebiten.IsKeyPressed(ebiten.KeyAlt),
		Meta:  ebiten.IsKeyPressed(ebiten.KeyMeta),
	}
}
