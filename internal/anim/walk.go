package anim

import "math"

// Gait tuning.
const (
	WalkForwards  = 2.0   // angle step when swinging toward the extremum
	WalkBackwards = 1.0   // angle step when easing back
	BobStep       = 0.002 // root Y change per tick
	BobTop        = 0.1   // rising flips to falling above this height
	BobBottom     = 0.002 // falling flips to rising below this height

	StraightStride = 0.075 // root Z advance per tick on the straight path
	CircleRadius   = 15.0
	CircleAngleInc = 0.000001 // path parameter advance per falling tick
	HeadingStart   = 270.0    // circular walk heading, degrees
	HeadingStep    = 1.0      // degrees per tick
)

// GaitPhase is the direction of the vertical bob.
type GaitPhase int

const (
	GaitRising GaitPhase = iota
	GaitFalling
)

func (g GaitPhase) String() string {
	if g == GaitFalling {
		return "falling"
	}
	return "rising"
}

// Walker drives the walk cycle. It owns the gait phase and the circular
// path parameters; the pose it mutates is passed in on each step.
type Walker struct {
	Phase     GaitPhase
	Forwards  float64
	Backwards float64
	Angle     float64 // circular path parameter, radians
	Heading   float64 // circular heading, degrees in [0, 360)
}

func NewWalker() *Walker {
	w := &Walker{}
	w.Reset()
	return w
}

// Reset restores the walker's initial scalars.
func (w *Walker) Reset() {
	*w = Walker{
		Phase:     GaitRising,
		Forwards:  WalkForwards,
		Backwards: WalkBackwards,
		Heading:   HeadingStart,
	}
}

// Step advances p by one tick along shape. PathDance is not a walk shape
// and leaves p untouched.
func (w *Walker) Step(p *Pose, shape PathShape) {
	switch shape {
	case PathCircular:
		p.Position[2] = math.Sin(w.Angle) * CircleRadius
		p.Position[0] = -math.Cos(w.Angle) * CircleRadius
		w.oscillate(p)
		p.Rotation[1] = w.Heading
		w.Heading = math.Mod(w.Heading+HeadingStep, 360)
	case PathStraight:
		p.Position[2] += StraightStride
		w.oscillate(p)
	}
}

// oscillate swings the shoulders and legs in step with the vertical bob.
// A rising tick that crosses BobTop falls through into the falling branch.
func (w *Walker) oscillate(p *Pose) {
	if w.Phase == GaitRising {
		p.Position[1] += BobStep
		p.RightShoulder = w.rise(p.RightShoulder)
		p.LeftShoulder = w.rise(p.LeftShoulder)
		p.RightUpperLeg = w.rise(p.RightUpperLeg)
		p.LeftUpperLeg = w.rise(p.LeftUpperLeg)
		p.RightLowerLeg = w.rise(p.RightLowerLeg)
		p.LeftLowerLeg = w.rise(p.LeftLowerLeg)
		if p.Position[1] > BobTop {
			w.Phase = GaitFalling
		}
	}
	if w.Phase == GaitFalling {
		p.Position[1] -= BobStep
		p.RightShoulder = w.fall(p.RightShoulder)
		p.LeftShoulder = w.fall(p.LeftShoulder)
		p.RightUpperLeg = w.fall(p.RightUpperLeg)
		p.LeftUpperLeg = w.fall(p.LeftUpperLeg)
		// The left knee eases the other way round.
		if p.LeftLowerLeg > 0 {
			p.LeftLowerLeg -= w.Backwards
		} else {
			p.LeftLowerLeg -= w.Forwards
		}
		p.RightLowerLeg = w.fall(p.RightLowerLeg)
		if p.Position[1] < BobBottom {
			w.Phase = GaitRising
		}
		w.Angle += CircleAngleInc
	}
}

func (w *Walker) rise(a float64) float64 {
	if a < 0 {
		return a + w.Forwards
	}
	return a + w.Backwards
}

func (w *Walker) fall(a float64) float64 {
	if a > 0 {
		return a - w.Forwards
	}
	return a - w.Backwards
}
