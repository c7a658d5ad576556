//go:build js && wasm

// Package web implements the browser canvas backend. Frames are rasterized
// with gg on the wasm side and blitted into a 2d canvas context through
// ImageData; DOM listeners translate browser input into the backend-neutral
// event union.
package web

import (
	"errors"
	"image"
	"image/draw"
	"math"
	"strconv"
	"syscall/js"

	"github.com/gogpu/gg"

	view "github.com/s3bk/pathfinder-view"
	"github.com/s3bk/pathfinder-view/backend"
)

func init() {
	backend.Register(backend.Web, func(cfg view.Config) (view.Backend, error) {
		return Attach("", cfg)
	})
}

// ErrNoCanvas reports that no canvas element could be located in the
// document.
var ErrNoCanvas = errors.New("web: no canvas element found")

// Backend renders into one canvas element. All methods must run on the
// wasm goroutine that owns the DOM.
type Backend struct {
	cfg view.Config

	doc     js.Value
	canvas  js.Value
	ctx2d   js.Value
	dc      *gg.Context
	logical gg.Point
	fbW     int
	fbH     int

	repaint     func()
	rafCallback js.Func
	rafQueued   bool
}

// Attach binds a backend to the canvas with the given element id. An empty
// id picks the document's first canvas.
func Attach(canvasID string, cfg view.Config) (*Backend, error) {
	doc := js.Global().Get("document")
	var canvas js.Value
	if canvasID != "" {
		canvas = doc.Call("getElementById", canvasID)
	} else {
		canvas = doc.Call("querySelector", "canvas")
	}
	if !canvas.Truthy() {
		return nil, ErrNoCanvas
	}
	b := &Backend{
		cfg:    cfg,
		doc:    doc,
		canvas: canvas,
		ctx2d:  canvas.Call("getContext", "2d"),
	}
	b.rafCallback = js.FuncOf(func(js.Value, []js.Value) any {
		b.rafQueued = false
		if b.repaint != nil {
			b.repaint()
		}
		return nil
	})
	return b, nil
}

// OnRepaint installs the callback invoked from requestAnimationFrame when
// a repaint was requested.
func (b *Backend) OnRepaint(fn func()) { b.repaint = fn }

// Resize sets the canvas backing store to the physical size and its CSS
// size to the logical one.
func (b *Backend) Resize(logical gg.Point) {
	if logical.X <= 0 || logical.Y <= 0 {
		return
	}
	b.logical = logical
	f := b.ScaleFactor()
	w := int(math.Ceil(logical.X * f))
	h := int(math.Ceil(logical.Y * f))
	if w == b.fbW && h == b.fbH && b.dc != nil {
		return
	}
	b.canvas.Set("width", w)
	b.canvas.Set("height", h)
	style := b.canvas.Get("style")
	style.Set("width", px(logical.X))
	style.Set("height", px(logical.Y))
	if b.dc != nil {
		b.dc.Close()
	}
	b.dc = gg.NewContext(w, h)
	b.dc.SetRasterizerMode(b.cfg.Quality)
	b.fbW, b.fbH = w, h
}

// Present rasterizes the scene and blits the frame with putImageData.
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
	b.ctx2d.Call("putImageData", imageData(b.dc.Image(), b.fbW, b.fbH), 0, 0)
	return nil
}

// imageData copies a rasterized frame into a browser ImageData object.
func imageData(img image.Image, w, h int) js.Value {
	var pix []byte
	if rgba, ok := img.(*image.RGBA); ok {
		pix = rgba.Pix
	} else {
		rgba := image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
		pix = rgba.Pix
	}
	u8 := js.Global().Get("Uint8Array").New(len(pix))
	js.CopyBytesToJS(u8, pix)
	clamped := js.Global().Get("Uint8ClampedArray").New(u8.Get("buffer"))
	return js.Global().Get("ImageData").New(clamped, w, h)
}

// ScaleFactor returns window.devicePixelRatio.
func (b *Backend) ScaleFactor() float64 {
	if f := js.Global().Get("devicePixelRatio").Float(); f > 0 {
		return f
	}
	return 1
}

// RequestRepaint schedules the repaint callback on the next animation
// frame. Coalesces repeated requests.
func (b *Backend) RequestRepaint() {
	if b.rafQueued {
		return
	}
	b.rafQueued = true
	js.Global().Call("requestAnimationFrame", b.rafCallback)
}

// SetIcon renders the icon into an offscreen canvas and installs it as the
// page favicon.
func (b *Backend) SetIcon(icon view.Icon) {
	if !icon.Valid() {
		return
	}
	off := b.doc.Call("createElement", "canvas")
	off.Set("width", icon.Width)
	off.Set("height", icon.Height)
	off.Call("getContext", "2d").
		Call("putImageData", imageData(icon.Image(), icon.Width, icon.Height), 0, 0)

	link := b.doc.Call("querySelector", "link[rel='icon']")
	if !link.Truthy() {
		link = b.doc.Call("createElement", "link")
		link.Set("rel", "icon")
		b.doc.Get("head").Call("appendChild", link)
	}
	link.Set("href", off.Call("toDataURL", "image/png"))
}

// ScrollFactors returns the wheel sensitivity. Browsers already scale
// pixel-mode deltas; line-mode deltas flip Y to scroll content.
func (b *Backend) ScrollFactors() (pixel, line gg.Point) {
	return gg.Pt(1, 1), gg.Pt(10, -10)
}

// Close releases the drawing surface and the animation-frame callback.
func (b *Backend) Close() error {
	b.rafCallback.Release()
	if b.dc == nil {
		return nil
	}
	err := b.dc.Close()
	b.dc = nil
	return err
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
