// Package headless implements an offscreen backend rendering into a gg
// pixmap. It backs tests and server-side rasterization, where a session
// runs the full driver loop without a window.
package headless

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	view "github.com/s3bk/pathfinder-view"
	"github.com/s3bk/pathfinder-view/backend"
)

func init() {
	backend.Register(backend.Headless, func(cfg view.Config) (view.Backend, error) {
		return New(cfg), nil
	})
}

// Backend rasterizes frames into an offscreen gg context and records the
// calls the driver makes, so tests can assert on the scheduling protocol.
type Backend struct {
	cfg view.Config

	dc      *gg.Context
	logical gg.Point
	frame   image.Image
	icon    view.Icon

	repaint func()

	resizes  int
	presents int
}

// New creates a headless backend. The first Resize allocates the surface.
func New(cfg view.Config) *Backend {
	return &Backend{cfg: cfg}
}

// OnRepaint installs the repaint scheduler, normally wired to inject a
// RepaintEvent into the session's loop.
func (b *Backend) OnRepaint(fn func()) { b.repaint = fn }

// Resize allocates the drawing surface at the logical size. Idempotent if
// the size is unchanged.
func (b *Backend) Resize(logical gg.Point) {
	b.resizes++
	if logical == b.logical && b.dc != nil {
		return
	}
	w := int(math.Ceil(logical.X))
	h := int(math.Ceil(logical.Y))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if b.dc != nil {
		b.dc.Close()
	}
	b.dc = gg.NewContext(w, h)
	b.dc.SetRasterizerMode(b.cfg.Quality)
	b.logical = logical
}

// Present rasterizes the scene under the given transform and keeps the
// frame for inspection.
func (b *Backend) Present(s view.Scene, tr gg.Matrix) error {
	if b.dc == nil {
		return backend.ErrNotInitialized
	}
	bg := b.cfg.Background
	if b.cfg.Transparent {
		bg = gg.Transparent
	}
	b.dc.ClearWithColor(bg)
	b.dc.SetTransform(tr)
	if err := s.Draw(b.dc); err != nil {
		return err
	}
	b.frame = b.dc.Image()
	b.presents++
	return nil
}

// ScaleFactor returns 1: headless pixels are logical pixels.
func (b *Backend) ScaleFactor() float64 { return 1 }

// RequestRepaint schedules a repaint through the session wiring.
func (b *Backend) RequestRepaint() {
	if b.repaint != nil {
		b.repaint()
	}
}

// SetIcon records the icon; there is no window to show it on.
func (b *Backend) SetIcon(icon view.Icon) { b.icon = icon }

// ScrollFactors returns the built-in defaults.
func (b *Backend) ScrollFactors() (pixel, line gg.Point) {
	return gg.Pt(1, 1), gg.Pt(10, -10)
}

// Close releases the drawing surface.
func (b *Backend) Close() error {
	if b.dc == nil {
		return nil
	}
	err := b.dc.Close()
	b.dc = nil
	return err
}

// Image returns the last presented frame, or nil before the first present.
func (b *Backend) Image() image.Image { return b.frame }

// Presents returns the number of frames presented.
func (b *Backend) Presents() int { return b.presents }

// Resizes returns the number of Resize calls observed.
func (b *Backend) Resizes() int { return b.resizes }
