package view

import "github.com/gogpu/gg"

// Scene is the opaque vector document displayed by a viewer session.
// The core never looks inside a scene: it reads the view box to clamp
// panning, and hands the scene to the backend for rasterization under a
// transform computed by the driver.
type Scene interface {
	// ViewBox returns the declared content rectangle. It may be
	// degenerate, in which case the computed content bounds are
	// substituted (see SceneBounds).
	ViewBox() gg.Rect

	// Draw renders the content in scene coordinates into dc. The view
	// transform has already been applied to dc when Draw is called.
	Draw(dc *gg.Context) error
}

// BoundedScene is implemented by scenes that can compute their content
// bounds, used as a fallback when the view box is degenerate.
type BoundedScene interface {
	Bounds() gg.Rect
}

// SceneBounds resolves the content rectangle of a scene: the declared view
// box when it has positive extent, otherwise the computed content bounds.
func SceneBounds(s Scene) gg.Rect {
	box := s.ViewBox()
	if box.Width() < 0 {
		Logger().Warn("scene has a negative width")
	}
	if box.Height() < 0 {
		Logger().Warn("scene has a negative height")
	}
	if box.Width() > 0 && box.Height() > 0 {
		return box
	}
	if b, ok := s.(BoundedScene); ok {
		return b.Bounds()
	}
	return box
}

// Static wraps a fixed scene into a trivial single-page producer, for
// showing static content without implementing Interactive.
func Static(s Scene) Interactive {
	return &staticProducer{scene: s}
}

type staticProducer struct {
	scene Scene
}

func (p *staticProducer) Scene(*ViewState) Scene { return p.scene }
