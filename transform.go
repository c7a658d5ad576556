package view

import "github.com/gogpu/gg"

// SceneToDevice returns the affine transform mapping scene coordinates to
// physical device pixels for a panning session: translate to the window
// center, apply the uniform zoom, and recenter on the view center.
//
//	device = Translate(window/2 · dpi) · Scale(scale · dpi) · Translate(-center)
//
// windowSize is the logical (DPI-independent) window size; scaleFactor is
// the device pixel density. Callers guarantee scale > 0 and scaleFactor > 0;
// the view state clamps both before they reach this function.
func SceneToDevice(windowSize gg.Point, scale, scaleFactor float64, center gg.Point) gg.Matrix {
	half := windowSize.Mul(0.5 * scaleFactor)
	s := scale * scaleFactor
	return gg.Translate(half.X, half.Y).
		Multiply(gg.Scale(s, s)).
		Multiply(gg.Translate(-center.X, -center.Y))
}

// SceneToWindow is SceneToDevice expressed in logical window coordinates,
// with the device pixel density left out. Pointer positions arrive in
// logical coordinates, so hit testing inverts this transform rather than
// the device one.
func SceneToWindow(windowSize gg.Point, scale float64, center gg.Point) gg.Matrix {
	return SceneToDevice(windowSize, scale, 1, center)
}

// SceneToDeviceAnchored returns the scene-to-device transform for a session
// with panning disabled: the scene's own origin is anchored to the window
// origin and the content is scaled by the resolved zoom, so the window
// always frames the full unpanned content.
func SceneToDeviceAnchored(viewBox gg.Rect, scale, scaleFactor float64) gg.Matrix {
	s := scale * scaleFactor
	return gg.Scale(s, s).
		Multiply(gg.Translate(-viewBox.Min.X, -viewBox.Min.Y))
}

// DeviceToScene inverts a scene-to-device transform, mapping pointer
// positions into scene space.
func DeviceToScene(m gg.Matrix) gg.Matrix {
	return m.Invert()
}
