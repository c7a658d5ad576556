// Package native implements the desktop window backend on top of ebiten:
// window creation, the event pump, and frame presentation. The driver loop
// and view state stay backend-agnostic; this package only translates ebiten
// input into the backend-neutral event union and blits rasterized frames.
package native

import (
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"

	view "github.com/s3bk/pathfinder-view"
	"github.com/s3bk/pathfinder-view/backend"
)

func init() {
	backend.Register(backend.Native, func(cfg view.Config) (view.Backend, error) {
		return New(cfg), nil
	})
}

// Backend owns the native window surface: a gg drawing context sized to the
// physical framebuffer and the ebiten image the frame is uploaded into.
type Backend struct {
	cfg view.Config

	dc      *gg.Context
	frame   *ebiten.Image
	logical gg.Point
	fbW     int
	fbH     int

	repaintPending bool
}

// New creates the window backend. The window itself appears when Show runs
// the pump.
func New(cfg view.Config) *Backend {
	return &Backend{cfg: cfg}
}

// Resize sets the logical window size and reallocates the framebuffer
// surface. Idempotent if the physical size is unchanged.
func (b *Backend) Resize(logical gg.Point) {
	if logical.X <= 0 || logical.Y <= 0 {
		return
	}
	if logical != b.logical {
		b.logical = logical
		ebiten.SetWindowSize(int(math.Round(logical.X)), int(math.Round(logical.Y)))
	}
	f := b.ScaleFactor()
	w := int(math.Ceil(logical.X * f))
	h := int(math.Ceil(logical.Y * f))
	if w == b.fbW && h == b.fbH && b.dc != nil {
		return
	}
	if b.dc != nil {
		b.dc.Close()
	}
	b.dc = gg.NewContext(w, h)
	b.dc.SetRasterizerMode(b.cfg.Quality)
	b.frame = ebiten.NewImage(w, h)
	b.fbW, b.fbH = w, h
}

// Present rasterizes the scene under the given scene-to-device transform
// and uploads the frame.
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
	b.frame.WritePixels(rgbaPixels(b.dc.Image()))
	return nil
}

// rgbaPixels flattens a frame into the byte layout WritePixels expects.
func rgbaPixels(img image.Image) []byte {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba.Pix
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba.Pix
}

// ScaleFactor returns the monitor's device pixel density.
func (b *Backend) ScaleFactor() float64 {
	if f := ebiten.Monitor().DeviceScaleFactor(); f > 0 {
		return f
	}
	return 1
}

// RequestRepaint schedules a RepaintEvent for the next pump iteration.
func (b *Backend) RequestRepaint() { b.repaintPending = true }

// SetIcon installs the window icon.
func (b *Backend) SetIcon(icon view.Icon) {
	if !icon.Valid() {
		view.Logger().Warn("ignoring invalid window icon",
			"width", icon.Width, "height", icon.Height, "bytes", len(icon.Data))
		return
	}
	ebiten.SetWindowIcon([]image.Image{icon.Image()})
}

// ScrollFactors returns the wheel sensitivity: ebiten reports line-based
// deltas with up as positive, so the line factor flips Y to scroll content.
func (b *Backend) ScrollFactors() (pixel, line gg.Point) {
	return gg.Pt(1, 1), gg.Pt(10, -10)
}

// Close releases the drawing surface. The window itself is torn down by
// the pump returning.
func (b *Backend) Close() error {
	if b.dc == nil {
		return nil
	}
	err := b.dc.Close()
	b.dc = nil
	b.frame = nil
	return err
}
