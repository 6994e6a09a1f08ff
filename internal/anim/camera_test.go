package anim

import (
	"math"
	"testing"
)

func TestOrbitCamera_DragClampsPhi(t *testing.T) {
	c := NewOrbitCamera(DefaultRadius, DefaultTheta, DefaultPhi)
	drags := []struct{ dx, dy float64 }{
		{0, 10000}, {5, -10000}, {-300, 800}, {0, -1e9}, {12, 3}, {0, 1e9},
	}
	for _, d := range drags {
		c.ApplyDrag(d.dx, d.dy)
		if !(c.Phi > 0 && c.Phi < math.Pi) {
			t.Fatalf("ApplyDrag(%v, %v) phi=%v; want in (0, pi)", d.dx, d.dy, c.Phi)
		}
	}
}

func TestOrbitCamera_ZoomClampsRadius(t *testing.T) {
	c := NewOrbitCamera(DefaultRadius, DefaultTheta, DefaultPhi)
	for _, d := range []float64{-1e6, 300, 1e6, -450, 7} {
		c.ApplyZoom(d)
		if c.Radius < MinRadius || c.Radius > MaxRadius {
			t.Fatalf("ApplyZoom(%v) radius=%v; want in [%v, %v]", d, c.Radius, MinRadius, MaxRadius)
		}
	}
	c.ApplyZoom(-1e6)
	if c.Radius != MinRadius {
		t.Fatalf("radius=%v; want %v", c.Radius, MinRadius)
	}
	c.ApplyZoom(1e6)
	if c.Radius != MaxRadius {
		t.Fatalf("radius=%v; want %v", c.Radius, MaxRadius)
	}
}

func TestOrbitCamera_Recompute(t *testing.T) {
	tcs := []struct{ r, theta, phi float64 }{
		{7, 2.8, 2.0},
		{2, 0, math.Pi / 2},
		{50, -1.3, 0.4},
		{12.5, 10, 3},
	}
	for _, tc := range tcs {
		c := NewOrbitCamera(tc.r, tc.theta, tc.phi)
		want := [3]float64{
			tc.r * math.Sin(tc.theta) * math.Sin(tc.phi),
			tc.r * math.Cos(tc.phi),
			tc.r * math.Cos(tc.theta) * math.Sin(tc.phi),
		}
		got := c.Eye()
		for i := range want {
			if math.Abs(got[i]-want[i]) > 1e-12 {
				t.Fatalf("Eye(%v,%v,%v)=%v; want %v", tc.r, tc.theta, tc.phi, got, want)
			}
		}
		c.Recompute()
		if c.Eye() != got {
			t.Fatalf("Recompute not idempotent: %v then %v", got, c.Eye())
		}
	}
}

func TestOrbitCamera_Pointer(t *testing.T) {
	c := NewOrbitCamera(DefaultRadius, DefaultTheta, DefaultPhi)
	c.Pointer(100, 100, false, false)
	if c.Theta != DefaultTheta || c.Phi != DefaultPhi || c.Radius != DefaultRadius {
		t.Fatalf("hover moved camera: %+v", c)
	}

	// Dragging right and down decreases theta and phi.
	c.Pointer(110, 120, true, false)
	if want := DefaultTheta - 10*DragSensitivity; math.Abs(c.Theta-want) > 1e-12 {
		t.Fatalf("theta=%v; want %v", c.Theta, want)
	}
	if want := DefaultPhi - 20*DragSensitivity; math.Abs(c.Phi-want) > 1e-12 {
		t.Fatalf("phi=%v; want %v", c.Phi, want)
	}

	// Zoom sums both axes.
	c.Pointer(130, 150, false, true)
	if want := DefaultRadius + 50*ZoomSensitivity; math.Abs(c.Radius-want) > 1e-12 {
		t.Fatalf("radius=%v; want %v", c.Radius, want)
	}
}

func TestOrbitCamera_NonFiniteInput(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	steps := []struct {
		name string
		do   func(c *OrbitCamera)
	}{
		{"drag nan", func(c *OrbitCamera) { c.ApplyDrag(0, nan) }},
		{"drag inf", func(c *OrbitCamera) { c.ApplyDrag(inf, 0) }},
		{"drag -inf", func(c *OrbitCamera) { c.ApplyDrag(0, -inf) }},
		{"zoom nan", func(c *OrbitCamera) { c.ApplyZoom(nan) }},
		{"zoom inf", func(c *OrbitCamera) { c.ApplyZoom(inf) }},
		{"pointer nan", func(c *OrbitCamera) { c.Pointer(nan, 10, true, false) }},
		{"pointer after nan", func(c *OrbitCamera) { c.Pointer(20, 30, false, true) }},
		{"huge drag", func(c *OrbitCamera) {
			c.ApplyDrag(math.MaxFloat64, 0)
			c.ApplyDrag(math.MaxFloat64, 0)
		}},
	}
	c := NewOrbitCamera(DefaultRadius, DefaultTheta, DefaultPhi)
	for _, s := range steps {
		s.do(c)
		if !finite(c.Theta) || !(c.Phi > 0 && c.Phi < math.Pi) || c.Radius < MinRadius || c.Radius > MaxRadius {
			t.Fatalf("%s: camera=%+v; want finite in range", s.name, c)
		}
		for i, v := range c.Eye() {
			if !finite(v) {
				t.Fatalf("%s: eye[%d]=%v; want finite", s.name, i, v)
			}
		}
	}

	c = NewOrbitCamera(nan, inf, nan)
	if c.Radius != DefaultRadius || c.Theta != DefaultTheta || c.Phi != DefaultPhi {
		t.Fatalf("NewOrbitCamera(nan, inf, nan)=%+v; want defaults", c)
	}
}
