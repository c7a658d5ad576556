package view

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestScrollToImmediate(t *testing.T) {
	vs := newTestState()
	vs.ScrollTo(gg.Pt(40, 60), 0)
	if vs.Animating() {
		t.Error("zero-duration scroll started an animation")
	}
	if got := vs.ViewCenter(); !pointsClose(got, gg.Pt(40, 60)) {
		t.Errorf("ViewCenter() = %+v, want target", got)
	}
}

func TestScrollToAnimates(t *testing.T) {
	vs := newTestState()
	vs.ScrollTo(gg.Pt(100, 0), 1)
	if !vs.Animating() {
		t.Fatal("animation not live after ScrollTo")
	}

	vs.stepAnimation(0.5)
	mid := vs.ViewCenter()
	if mid.X <= 0 || mid.X >= 100 {
		t.Errorf("ViewCenter().X = %v mid-flight, want between 0 and 100", mid.X)
	}
	if !vs.Animating() {
		t.Error("animation ended early")
	}

	vs.stepAnimation(10)
	if vs.Animating() {
		t.Error("animation still live after completion")
	}
	if got := vs.ViewCenter(); !pointsClose(got, gg.Pt(100, 0)) {
		t.Errorf("ViewCenter() = %+v after completion, want target", got)
	}
}

func TestScrollToClampsEveryStep(t *testing.T) {
	vs := newTestState(WithPan())
	vs.windowSize = gg.Pt(50, 50)
	vs.scale = 1
	vs.SetBounds(gg.NewRect(gg.Pt(0, 0), gg.Pt(100, 100)))
	vs.ScrollTo(gg.Pt(500, 500), 1)
	vs.stepAnimation(10)
	if got := vs.ViewCenter(); !pointsClose(got, gg.Pt(75, 75)) {
		t.Errorf("ViewCenter() = %+v, want bounds-clamped (75,75)", got)
	}
}

func TestZoomToImmediate(t *testing.T) {
	vs := newTestState()
	vs.ZoomTo(2, 0)
	if vs.Animating() {
		t.Error("zero-duration zoom started an animation")
	}
	if got := vs.Scale(); got != 2 {
		t.Errorf("Scale() = %v, want 2", got)
	}
}

func TestZoomToAnimates(t *testing.T) {
	vs := newTestState()
	vs.SetZoom(1)
	vs.ZoomTo(4, 1)
	if !vs.Animating() {
		t.Fatal("animation not live after ZoomTo")
	}
	vs.stepAnimation(10)
	if vs.Animating() {
		t.Error("animation still live after completion")
	}
	if got := vs.Scale(); math.Abs(got-4) > 1e-5 {
		t.Errorf("Scale() = %v after completion, want 4", got)
	}
}

func TestZoomToRejectsInvalidTarget(t *testing.T) {
	vs := newTestState()
	vs.ZoomTo(-1, 1)
	if vs.Animating() {
		t.Error("invalid zoom target started an animation")
	}
	if got := vs.Scale(); got != DefaultScale {
		t.Errorf("Scale() = %v, want unchanged", got)
	}
}
