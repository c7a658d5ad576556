package view

import (
	"github.com/gogpu/gg"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// animator holds the active view tweens. Pan and zoom animate together;
// both go through the regular MoveTo/SetZoom mutators so clamping applies
// on every step.
type animator struct {
	x, y  *gween.Tween
	zoom  *gween.Tween
	doneX bool
	doneY bool
	doneZ bool
}

// ScrollTo animates the view center to a scene-space point over the given
// duration in seconds. The driver advances the animation from timer wakes;
// the wake timer is re-armed automatically while an animation is live.
func (vs *ViewState) ScrollTo(target gg.Point, seconds float32) {
	if seconds <= 0 {
		vs.MoveTo(target)
		return
	}
	a := vs.ensureAnimator()
	a.x = gween.New(float32(vs.viewCenter.X), float32(target.X), seconds, ease.OutQuad)
	a.y = gween.New(float32(vs.viewCenter.Y), float32(target.Y), seconds, ease.OutQuad)
	a.doneX, a.doneY = false, false
	vs.RequestRedraw()
}

// ZoomTo animates the zoom factor to an absolute value. Non-positive
// targets are rejected, as in SetZoom.
func (vs *ViewState) ZoomTo(factor float64, seconds float32) {
	if !(factor > 0) {
		Logger().Warn("rejected zoom target", "factor", factor)
		return
	}
	if seconds <= 0 {
		vs.SetZoom(factor)
		return
	}
	a := vs.ensureAnimator()
	a.zoom = gween.New(float32(vs.scale), float32(factor), seconds, ease.OutQuad)
	a.doneZ = false
	vs.RequestRedraw()
}

// Animating reports whether a pan or zoom tween is in flight.
func (vs *ViewState) Animating() bool {
	return vs.anim != nil
}

func (vs *ViewState) ensureAnimator() *animator {
	if vs.anim == nil {
		vs.anim = &animator{doneX: true, doneY: true, doneZ: true}
	}
	return vs.anim
}

// stepAnimation advances the tweens by dt seconds. Called by the driver on
// timer wakes.
func (vs *ViewState) stepAnimation(dt float32) {
	a := vs.anim
	if a == nil {
		return
	}
	if a.x != nil && !a.doneX {
		var x, y float32
		x, a.doneX = a.x.Update(dt)
		y, a.doneY = a.y.Update(dt)
		vs.MoveTo(gg.Pt(float64(x), float64(y)))
	}
	if a.zoom != nil && !a.doneZ {
		var z float32
		z, a.doneZ = a.zoom.Update(dt)
		vs.SetZoom(float64(z))
	}
	if a.doneX && a.doneY && a.doneZ {
		vs.anim = nil
	}
}
