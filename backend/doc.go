// Package backend provides the pluggable window-backend abstraction for
// pathfinder-view.
//
// The driver loop is backend-agnostic; a backend owns the window (or
// canvas, or offscreen pixmap), translates its native events into the
// backend-neutral union in the view package, and presents rasterized
// frames. Backends are registered via init() functions and selected at
// runtime:
//
//	import _ "github.com/s3bk/pathfinder-view/backend/native"
//
//	b, err := backend.Default(cfg)
//
// Use Default for the best available backend, or Get to request one by
// name. Priority order: native window > web canvas > headless.
package backend
