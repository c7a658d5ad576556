package headless

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"

	view "github.com/s3bk/pathfinder-view"
	"github.com/s3bk/pathfinder-view/backend"
)

// redScene fills its view box with solid red.
type redScene struct {
	box gg.Rect
}

func (s *redScene) ViewBox() gg.Rect { return s.box }

func (s *redScene) Draw(dc *gg.Context) error {
	dc.SetRGB(1, 0, 0)
	dc.DrawRectangle(s.box.Min.X, s.box.Min.Y, s.box.Width(), s.box.Height())
	return dc.Fill()
}

// closingProducer closes the session when it receives any app event.
type closingProducer struct {
	scene view.Scene
	exits int
}

func (p *closingProducer) Scene(*view.ViewState) view.Scene { return p.scene }
func (p *closingProducer) Exit(*view.ViewState)             { p.exits++ }

func (p *closingProducer) Event(ctx *view.ViewState, _ any) {
	ctx.Close()
}

func TestPresentBeforeResize(t *testing.T) {
	b := New(view.NewConfig())
	err := b.Present(&redScene{}, gg.Identity())
	if !errors.Is(err, backend.ErrNotInitialized) {
		t.Errorf("Present before Resize = %v, want ErrNotInitialized", err)
	}
}

func TestSessionRendersAndExits(t *testing.T) {
	item := &closingProducer{
		scene: &redScene{box: gg.NewRect(gg.Pt(0, 0), gg.Pt(100, 100))},
	}
	s := NewSession(item, view.WithPan())

	done := make(chan error, 1)
	go func() { done <- s.Run() }()

	s.Events() <- view.CloseEvent{}
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}

	b := s.Backend()
	if b.Presents() < 1 {
		t.Fatalf("%d presents, want at least 1", b.Presents())
	}
	img := b.Image()
	if img == nil {
		t.Fatal("no frame recorded")
	}
	// The content is centered under the pan transform; the middle of the
	// frame must be the scene's red fill.
	bounds := img.Bounds()
	r, g, bl, _ := img.At(bounds.Dx()/2, bounds.Dy()/2).RGBA()
	if r < 0xc000 || g > 0x4000 || bl > 0x4000 {
		t.Errorf("center pixel = (%d,%d,%d), want red", r, g, bl)
	}

	if item.exits != 1 {
		t.Errorf("%d exit calls, want 1", item.exits)
	}
}

func TestSessionClosesFromAppEvent(t *testing.T) {
	item := &closingProducer{
		scene: &redScene{box: gg.NewRect(gg.Pt(0, 0), gg.Pt(50, 50))},
	}
	s := NewSession(item)

	done := make(chan error, 1)
	go func() { done <- s.Run() }()

	s.Loop().Emitter().Send("stop")
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
	if item.exits != 1 {
		t.Errorf("%d exit calls, want 1", item.exits)
	}
}

func TestRegisteredWithRegistry(t *testing.T) {
	if !backend.IsRegistered(backend.Headless) {
		t.Fatal("headless backend not registered")
	}
	b, err := backend.Get(backend.Headless, view.NewConfig())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, ok := b.(*Backend); !ok {
		t.Errorf("Get returned %T, want *headless.Backend", b)
	}
}

func TestResizeIdempotent(t *testing.T) {
	b := New(view.NewConfig())
	b.Resize(gg.Pt(100, 100))
	dcBefore := b.dc
	b.Resize(gg.Pt(100, 100))
	if b.dc != dcBefore {
		t.Error("unchanged resize reallocated the surface")
	}
}
