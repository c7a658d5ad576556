package view

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

const eps = 1e-9

func pointsClose(a, b gg.Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestSceneToDeviceMapsCenterToWindowCenter(t *testing.T) {
	tests := []struct {
		name        string
		window      gg.Point
		scale       float64
		scaleFactor float64
		center      gg.Point
	}{
		{"unit scale", gg.Pt(600, 400), 1, 1, gg.Pt(0, 0)},
		{"default scale", gg.Pt(600, 400), DefaultScale, 1, gg.Pt(105, 148.5)},
		{"hidpi", gg.Pt(800, 600), 2, 2, gg.Pt(-50, 30)},
		{"fractional dpi", gg.Pt(1024, 768), 0.5, 1.25, gg.Pt(10, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := SceneToDevice(tt.window, tt.scale, tt.scaleFactor, tt.center)
			got := m.TransformPoint(tt.center)
			want := tt.window.Mul(0.5 * tt.scaleFactor)
			if !pointsClose(got, want) {
				t.Errorf("center maps to %+v, want %+v", got, want)
			}
		})
	}
}

func TestSceneToDeviceAppliesScale(t *testing.T) {
	m := SceneToDevice(gg.Pt(600, 400), 2, 3, gg.Pt(0, 0))
	a := m.TransformPoint(gg.Pt(0, 0))
	b := m.TransformPoint(gg.Pt(10, 0))
	if got, want := b.X-a.X, 60.0; math.Abs(got-want) > eps {
		t.Errorf("10 scene units span %v device pixels, want %v", got, want)
	}
}

func TestDeviceToSceneRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		m     gg.Matrix
		probe gg.Point
	}{
		{"panned", SceneToDevice(gg.Pt(600, 400), DefaultScale, 1.5, gg.Pt(50, 70)), gg.Pt(123, 456)},
		{"window", SceneToWindow(gg.Pt(600, 400), 2, gg.Pt(-10, 5)), gg.Pt(0, 0)},
		{"anchored", SceneToDeviceAnchored(gg.NewRect(gg.Pt(5, 5), gg.Pt(100, 200)), 3, 2), gg.Pt(42, -17)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeviceToScene(tt.m).TransformPoint(tt.m.TransformPoint(tt.probe))
			if !pointsClose(got, tt.probe) {
				t.Errorf("round trip gives %+v, want %+v", got, tt.probe)
			}
		})
	}
}

func TestSceneToDeviceAnchoredPinsViewBoxOrigin(t *testing.T) {
	box := gg.NewRect(gg.Pt(10, 20), gg.Pt(110, 220))
	m := SceneToDeviceAnchored(box, 2, 1)
	if got := m.TransformPoint(box.Min); !pointsClose(got, gg.Pt(0, 0)) {
		t.Errorf("view box origin maps to %+v, want (0,0)", got)
	}
	if got, want := m.TransformPoint(box.Max), gg.Pt(200, 400); !pointsClose(got, want) {
		t.Errorf("view box corner maps to %+v, want %+v", got, want)
	}
}

func TestSceneToWindowMatchesDeviceAtUnitDensity(t *testing.T) {
	w := SceneToWindow(gg.Pt(640, 480), 1.5, gg.Pt(12, 34))
	d := SceneToDevice(gg.Pt(640, 480), 1.5, 1, gg.Pt(12, 34))
	if w != d {
		t.Errorf("SceneToWindow = %+v, SceneToDevice at density 1 = %+v", w, d)
	}
}
