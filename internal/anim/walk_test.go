package anim

import (
	"math"
	"testing"
)

func TestWalker_StraightAdvancesZ(t *testing.T) {
	w := NewWalker()
	p := DefaultPose()
	const n = 500
	prev := p.Position[2]
	for i := 1; i <= n; i++ {
		w.Step(&p, PathStraight)
		if p.Position[2] <= prev {
			t.Fatalf("tick %d: z=%v; not above %v", i, p.Position[2], prev)
		}
		prev = p.Position[2]
	}
	if want := StraightStride * n; math.Abs(p.Position[2]-want) > 1e-9 {
		t.Fatalf("z=%v after %d ticks; want %v", p.Position[2], n, want)
	}
	if p.Rotation != DefaultPose().Rotation {
		t.Fatalf("straight walk rotated root: %v", p.Rotation)
	}
}

func TestWalker_BobIsBounded(t *testing.T) {
	w := NewWalker()
	p := DefaultPose()
	flips := 0
	last := w.Phase
	for i := 0; i < 2000; i++ {
		w.Step(&p, PathStraight)
		y := p.Position[1]
		if y > BobTop+1e-9 {
			t.Fatalf("tick %d: y=%v above %v", i, y, BobTop)
		}
		if y < -BobStep-1e-9 {
			t.Fatalf("tick %d: y=%v below %v", i, y, -BobStep)
		}
		if w.Phase != last {
			flips++
			last = w.Phase
		}
	}
	if flips < 10 {
		t.Fatalf("phase flipped %d times in 2000 ticks; want a continuous bob", flips)
	}
}

func TestWalker_FirstTickEasesUp(t *testing.T) {
	w := NewWalker()
	p := DefaultPose()
	w.Step(&p, PathStraight)
	for _, c := range []Channel{
		ChanRightShoulder, ChanLeftShoulder,
		ChanRightUpperLeg, ChanLeftUpperLeg,
		ChanRightLowerLeg, ChanLeftLowerLeg,
	} {
		if got := p.Channel(c); got != WalkBackwards {
			t.Fatalf("%v=%v after one tick; want %v", c, got, WalkBackwards)
		}
	}
	if p.RightElbow != 0 || p.LeftElbow != 0 {
		t.Fatalf("elbows moved: %v %v", p.RightElbow, p.LeftElbow)
	}
	if math.Abs(p.Position[1]-BobStep) > 1e-12 {
		t.Fatalf("y=%v; want %v", p.Position[1], BobStep)
	}
}

func TestWalker_FallingMirrorsLeftKnee(t *testing.T) {
	w := NewWalker()
	w.Phase = GaitFalling
	p := DefaultPose()
	p.Position[1] = 0.05
	p.RightLowerLeg = 3
	p.LeftLowerLeg = 3
	w.oscillate(&p)
	if p.RightLowerLeg != 3-WalkForwards {
		t.Fatalf("right knee=%v; want %v", p.RightLowerLeg, 3-WalkForwards)
	}
	if p.LeftLowerLeg != 3-WalkBackwards {
		t.Fatalf("left knee=%v; want %v", p.LeftLowerLeg, 3-WalkBackwards)
	}
	if w.Angle != CircleAngleInc {
		t.Fatalf("angle=%v; want %v", w.Angle, CircleAngleInc)
	}
}

func TestWalker_Circular(t *testing.T) {
	w := NewWalker()
	p := DefaultPose()
	w.Step(&p, PathCircular)
	if math.Abs(p.Position[0]+CircleRadius) > 1e-9 || math.Abs(p.Position[2]) > 1e-9 {
		t.Fatalf("first circular position=%v; want (-%v, y, 0)", p.Position, CircleRadius)
	}
	if p.Rotation[1] != HeadingStart {
		t.Fatalf("yaw=%v; want %v", p.Rotation[1], HeadingStart)
	}
	for i := 0; i < 100; i++ {
		w.Step(&p, PathCircular)
	}
	if want := math.Mod(HeadingStart+100, 360); p.Rotation[1] != want {
		t.Fatalf("yaw=%v after 101 ticks; want %v", p.Rotation[1], want)
	}
	if w.Heading < 0 || w.Heading >= 360 {
		t.Fatalf("heading=%v; want in [0, 360)", w.Heading)
	}
	r := math.Hypot(p.Position[0], p.Position[2])
	if math.Abs(r-CircleRadius) > 1e-9 {
		t.Fatalf("distance from centre=%v; want %v", r, CircleRadius)
	}
}

func TestWalker_DanceShapeIsNoop(t *testing.T) {
	w := NewWalker()
	p := DefaultPose()
	w.Step(&p, PathDance)
	if p != DefaultPose() {
		t.Fatalf("Step(PathDance) changed pose: %+v", p)
	}
}
