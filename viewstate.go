package view

import (
	"math"
	"time"

	"github.com/gogpu/gg"
)

// DefaultScale is the default device-independent zoom factor: 96 px/inch
// over 25.4 mm/inch, so one scene unit (a millimeter in typography-derived
// content) maps to one CSS-reference pixel at 96 dpi.
const DefaultScale = 96.0 / 25.4

// maxWindowExtent caps the logical window size implied by a scene view box,
// protecting against pathological bounding boxes producing an unusable
// viewport.
const maxWindowExtent = 500.0

// ViewState is the mutable record of one viewer session: zoom, view center,
// page, window geometry and the dirty flags the driver inspects after every
// event. The driver [Loop] exclusively owns a ViewState; producers observe
// it and request mutations only through its methods, which preserve the
// session invariants (positive scale, page within range, view center inside
// bounds).
type ViewState struct {
	config  Config
	backend Backend

	scale       float64 // device-independent zoom, > 0
	scaleFactor float64 // device pixel density, > 0
	viewCenter  gg.Point
	windowSize  gg.Point // logical

	bounds    gg.Rect
	hasBounds bool

	pageNr   int
	numPages int

	redrawRequested bool
	sceneStale      bool
	closeRequested  bool

	updateInterval time.Duration

	// Scroll sensitivity, resolved once at session start from the backend
	// and the environment.
	pixelScrollFactor gg.Point
	lineScrollFactor  gg.Point

	anim *animator
}

// NewViewState creates the session state with defaults: the standard zoom,
// one page, and both dirty flags set so the first pump iteration fetches a
// scene and paints. The backend may be nil for sessions that never present
// (tests, measurement).
func NewViewState(cfg Config, b Backend) *ViewState {
	vs := &ViewState{
		config:          cfg,
		backend:         b,
		scale:           DefaultScale,
		scaleFactor:     1,
		numPages:        1,
		redrawRequested: true,
		sceneStale:      true,
		updateInterval:  cfg.UpdateInterval,
	}
	vs.pixelScrollFactor, vs.lineScrollFactor = resolveScrollFactors(b)
	if b != nil {
		if f := b.ScaleFactor(); f > 0 {
			vs.scaleFactor = f
		}
	}
	return vs
}

// Config returns the session configuration.
func (vs *ViewState) Config() Config { return vs.config }

// Scale returns the device-independent zoom factor.
func (vs *ViewState) Scale() float64 { return vs.scale }

// ScaleFactor returns the device pixel density.
func (vs *ViewState) ScaleFactor() float64 { return vs.scaleFactor }

// ViewCenter returns the scene-space focus point.
func (vs *ViewState) ViewCenter() gg.Point { return vs.viewCenter }

// WindowSize returns the logical window size.
func (vs *ViewState) WindowSize() gg.Point { return vs.windowSize }

// Bounds returns the content bounds used to clamp panning, if installed.
func (vs *ViewState) Bounds() (gg.Rect, bool) { return vs.bounds, vs.hasBounds }

// PageNr returns the current page, always in [0, NumPages).
func (vs *ViewState) PageNr() int { return vs.pageNr }

// NumPages returns the page count, always at least 1.
func (vs *ViewState) NumPages() int { return vs.numPages }

// RedrawRequested reports whether a repaint is pending.
func (vs *ViewState) RedrawRequested() bool { return vs.redrawRequested }

// SceneStale reports whether the displayed scene must be re-fetched.
func (vs *ViewState) SceneStale() bool { return vs.sceneStale }

// CloseRequested reports whether the session is shutting down.
func (vs *ViewState) CloseRequested() bool { return vs.closeRequested }

// UpdateInterval returns the periodic wake interval, if armed.
func (vs *ViewState) UpdateInterval() (time.Duration, bool) {
	return vs.updateInterval, vs.updateInterval > 0
}

// SetUpdateInterval arms (or, with 0, disarms) the periodic wake the driver
// re-schedules after every pump iteration.
func (vs *ViewState) SetUpdateInterval(d time.Duration) {
	if d < 0 {
		d = 0
	}
	vs.updateInterval = d
}

// RequestRedraw marks a repaint pending. No other side effects.
func (vs *ViewState) RequestRedraw() {
	vs.redrawRequested = true
}

// UpdateScene marks the displayed scene stale so the driver re-fetches it
// from the producer before the next repaint.
func (vs *ViewState) UpdateScene() {
	vs.sceneStale = true
	vs.redrawRequested = true
}

// Close requests cooperative session shutdown. The pump stops after the
// current iteration; the producer's Exit hook runs exactly once.
func (vs *ViewState) Close() {
	vs.closeRequested = true
}

// GotoPage navigates to page n, clamped to [0, NumPages). Only an actual
// page change marks the scene stale, so repeated calls with the same target
// produce a single redraw.
func (vs *ViewState) GotoPage(n int) {
	if n < 0 {
		n = 0
	}
	if n >= vs.numPages {
		n = vs.numPages - 1
	}
	if n != vs.pageNr {
		vs.pageNr = n
		vs.UpdateScene()
	}
}

// NextPage advances one page, saturating at the last page.
func (vs *ViewState) NextPage() { vs.GotoPage(vs.pageNr + 1) }

// PrevPage goes back one page, saturating at the first page.
func (vs *ViewState) PrevPage() { vs.GotoPage(vs.pageNr - 1) }

// SetNumPages installs the producer's page count (at least 1) and re-clamps
// the current page. A page forced to move marks the scene stale.
func (vs *ViewState) SetNumPages(n int) {
	if n < 1 {
		n = 1
	}
	vs.numPages = n
	if vs.pageNr >= n {
		vs.pageNr = n - 1
		vs.UpdateScene()
	}
}

// ZoomBy multiplies the zoom factor by 2^log2Factor, re-clamps the pan
// center and marks a repaint pending.
func (vs *ViewState) ZoomBy(log2Factor float64) {
	vs.SetZoom(vs.scale * math.Exp2(log2Factor))
}

// SetZoom installs an absolute zoom factor. Non-positive or non-finite
// values are rejected before they reach the transform engine; an unchanged
// value is a no-op.
func (vs *ViewState) SetZoom(factor float64) {
	if !(factor > 0) || math.IsInf(factor, 1) {
		Logger().Warn("rejected zoom factor", "factor", factor)
		return
	}
	if factor == vs.scale {
		return
	}
	vs.scale = factor
	vs.checkBounds()
	vs.RequestRedraw()
}

// MoveBy pans the view center by delta scene units.
func (vs *ViewState) MoveBy(delta gg.Point) {
	vs.MoveTo(vs.viewCenter.Add(delta))
}

// MoveTo pans the view center to a scene-space point, clamped to bounds.
func (vs *ViewState) MoveTo(p gg.Point) {
	vs.viewCenter = p
	vs.checkBounds()
	vs.RequestRedraw()
}

// SetBounds installs the content rectangle used to clamp panning and
// re-clamps the current center immediately, so a page change with a
// different extent never leaves the view looking at empty space.
func (vs *ViewState) SetBounds(r gg.Rect) {
	vs.bounds = r
	vs.hasBounds = true
	vs.checkBounds()
	vs.RequestRedraw()
}

// ClearBounds disables pan clamping.
func (vs *ViewState) ClearBounds() {
	vs.hasBounds = false
}

// SetWindowSize installs a new logical window size, re-clamps the view and
// forwards the size to the backend (idempotent there if unchanged).
func (vs *ViewState) SetWindowSize(size gg.Point) {
	if size == vs.windowSize {
		return
	}
	vs.windowSize = size
	vs.checkBounds()
	vs.RequestRedraw()
	if vs.backend != nil {
		vs.backend.Resize(size)
	}
}

// SetScaleFactor installs a new device pixel density.
func (vs *ViewState) SetScaleFactor(factor float64) {
	if !(factor > 0) {
		Logger().Warn("rejected scale factor", "factor", factor)
		return
	}
	vs.scaleFactor = factor
	vs.checkBounds()
	vs.RequestRedraw()
}

// SetViewBox sizes the session to a scene content rectangle: bounds and view
// center follow the rectangle, and the window takes the content size at the
// current zoom, shrunk uniformly if it would exceed the sanity ceiling.
func (vs *ViewState) SetViewBox(r gg.Rect) {
	vs.bounds = r
	vs.hasBounds = true
	vs.viewCenter = r.Min.Add(r.Max).Mul(0.5)

	size := gg.Pt(r.Width()*vs.scale, r.Height()*vs.scale)
	if f := sanityFactor(size); f < 1 {
		vs.scale *= f
		size = size.Mul(f)
	}
	vs.windowSize = size
	vs.RequestRedraw()
	if vs.backend != nil {
		vs.backend.Resize(size)
	}
}

// sanityFactor returns the uniform shrink factor (≤ 1) that keeps an
// implied window size within the safety ceiling, preserving aspect ratio.
func sanityFactor(size gg.Point) float64 {
	f := 1.0
	if size.X > maxWindowExtent {
		f = maxWindowExtent / size.X
	}
	if size.Y > maxWindowExtent && maxWindowExtent/size.Y < f {
		f = maxWindowExtent / size.Y
	}
	return f
}

// checkBounds clamps the view center so the visible window stays inside the
// content bounds. Each axis is handled independently: when the visible
// extent covers the whole content on an axis, the view centers on the
// content midpoint instead, so oversized windows frame the content rather
// than pan past it.
func (vs *ViewState) checkBounds() {
	if !vs.hasBounds {
		return
	}
	visible := vs.windowSize.Div(vs.scale)
	vs.viewCenter.X = clampAxis(vs.viewCenter.X, vs.bounds.Min.X, vs.bounds.Max.X, visible.X)
	vs.viewCenter.Y = clampAxis(vs.viewCenter.Y, vs.bounds.Min.Y, vs.bounds.Max.Y, visible.Y)
}

func clampAxis(center, lo, hi, visible float64) float64 {
	if visible >= hi-lo {
		return (lo + hi) / 2
	}
	half := visible / 2
	return math.Min(math.Max(center, lo+half), hi-half)
}
