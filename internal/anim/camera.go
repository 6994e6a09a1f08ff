package anim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera defaults and limits.
const (
	DefaultRadius = 7.0
	DefaultTheta  = 2.80
	DefaultPhi    = 2.0

	MinRadius = 2.0
	MaxRadius = 50.0
	PhiMargin = 0.001

	DragSensitivity = 0.005
	ZoomSensitivity = 0.01
)

// OrbitCamera looks at the origin from spherical coordinates. Theta is the
// azimuth about +Y, Phi the polar angle from +Y.
type OrbitCamera struct {
	Radius float64
	Theta  float64
	Phi    float64

	eye          mgl64.Vec3
	lastX, lastY float64
}

func NewOrbitCamera(radius, theta, phi float64) *OrbitCamera {
	c := &OrbitCamera{Radius: radius, Theta: theta, Phi: phi}
	c.clamp()
	c.Recompute()
	return c
}

// ApplyDrag rotates the camera by a pointer delta in screen pixels.
// Non-finite deltas are ignored.
func (c *OrbitCamera) ApplyDrag(dx, dy float64) {
	if !finite(dx) || !finite(dy) {
		return
	}
	c.Theta += dx * DragSensitivity
	c.Phi += dy * DragSensitivity
	c.clamp()
	c.Recompute()
}

// ApplyZoom moves the camera toward or away from the origin.
func (c *OrbitCamera) ApplyZoom(delta float64) {
	if !finite(delta) {
		return
	}
	c.Radius += delta * ZoomSensitivity
	c.clamp()
	c.Recompute()
}

// Pointer feeds a cursor position. While rotating, moving the cursor right
// or down turns the camera the opposite way; while zooming, right and down
// both move the camera away. The position is always remembered so the next
// drag starts from here. Non-finite positions are dropped.
func (c *OrbitCamera) Pointer(x, y float64, rotate, zoom bool) {
	if !finite(x) || !finite(y) {
		return
	}
	switch {
	case rotate:
		c.ApplyDrag(c.lastX-x, c.lastY-y)
	case zoom:
		c.ApplyZoom((x - c.lastX) + (y - c.lastY))
	}
	c.lastX, c.lastY = x, y
}

// Recompute derives the cartesian eye position from the spherical one.
func (c *OrbitCamera) Recompute() {
	st, ct := math.Sincos(c.Theta)
	sp, cp := math.Sincos(c.Phi)
	c.eye = mgl64.Vec3{
		c.Radius * st * sp,
		c.Radius * cp,
		c.Radius * ct * sp,
	}
}

// Eye returns the last computed eye position.
func (c *OrbitCamera) Eye() mgl64.Vec3 { return c.eye }

// clamp restores the orbit invariants. A non-finite coordinate, reached by
// overflow or by construction, falls back to its default.
func (c *OrbitCamera) clamp() {
	if !finite(c.Theta) {
		c.Theta = DefaultTheta
	}
	if !finite(c.Phi) {
		c.Phi = DefaultPhi
	}
	if !finite(c.Radius) {
		c.Radius = DefaultRadius
	}
	if c.Phi <= 0 {
		c.Phi = PhiMargin
	}
	if c.Phi >= math.Pi {
		c.Phi = math.Pi - PhiMargin
	}
	c.Radius = clampF(c.Radius, MinRadius, MaxRadius)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
