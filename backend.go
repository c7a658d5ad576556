package view

import "github.com/gogpu/gg"

// Backend is the sole seam between the backend-agnostic driver loop and a
// windowing environment. Exactly one Backend is owned by the loop for the
// session lifetime and released when the pump exits.
//
// Implementations live under backend/: a native window, a web canvas, and a
// headless pixmap for tests and server-side rasterization.
type Backend interface {
	// Resize sets the logical window size. Idempotent if unchanged.
	Resize(logical gg.Point)

	// Present rasterizes the scene under the given scene-to-device
	// transform and shows the frame. A failed present is fatal to the
	// session; the core never retries.
	Present(s Scene, tr gg.Matrix) error

	// ScaleFactor returns the device pixel density.
	ScaleFactor() float64

	// RequestRepaint schedules delivery of a RepaintEvent through the
	// backend's pump.
	RequestRepaint()

	// SetIcon installs the window icon where the environment has one.
	SetIcon(icon Icon)

	// ScrollFactors returns the pixel and line scroll sensitivity
	// vectors. Environment variables may override them (see package
	// documentation for PIXEL_SCROLL_FACTOR and LINE_SCROLL_FACTOR).
	ScrollFactors() (pixel, line gg.Point)

	// Close releases the window, surface and renderer, in reverse
	// acquisition order.
	Close() error
}
