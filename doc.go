// Package view implements the runtime core of an interactive vector-scene
// viewer: the session view state (pan, zoom, page, window geometry), the
// producer contract an application implements to supply scenes and react to
// input, and the redraw scheduler that ties state mutation to repaint.
//
// # Overview
//
// A session consists of three collaborators:
//
//   - a [ViewState], owned by the driver [Loop], holding the zoom factor,
//     view center, page number and dirty flags;
//   - an [Interactive] producer supplying a [Scene] per page and optionally
//     reacting to keyboard, mouse and application events;
//   - a [Backend] presenting rasterized frames, implemented once per
//     windowing environment (native window, web canvas, headless pixmap).
//
// Scenes are drawn through [github.com/gogpu/gg], which also supplies the
// geometry types used throughout ([gg.Point], [gg.Rect], [gg.Matrix]).
//
// # Quick Start
//
//	type App struct{ doc view.Scene }
//
//	func (a *App) Scene(ctx *view.ViewState) view.Scene { return a.doc }
//
//	func main() {
//	    native.Show(&App{doc: doc}, view.WithPan(), view.WithZoom())
//	}
//
// A plain scene can be shown without writing a producer at all:
//
//	native.Show(view.Static(doc), view.WithPan())
//
// # Concurrency
//
// The core is single threaded: one goroutine owns the view state, the
// producer and the backend. The only cross-thread primitive is the [Emitter]
// handed to the producer at init time, which other goroutines may use to
// inject application events; delivery wakes the event pump and the event is
// processed on the owning goroutine in FIFO order.
package view
