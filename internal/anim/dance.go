package anim

// DanceLength is the frame at which the routine wraps back to frame 0.
const DanceLength = 740

// Assignment sets one pose channel to a literal value.
type Assignment struct {
	Channel Channel
	Value   float64
}

// Keyframe holds its assignments for every frame in [From, To].
type Keyframe struct {
	From, To int
	Set      []Assignment
}

// Contains reports whether frame falls inside the keyframe's range.
func (k Keyframe) Contains(frame int) bool {
	return frame >= k.From && frame <= k.To
}

func raiseLeft(v float64) []Assignment {
	return []Assignment{{ChanLeftUpperLeg, v}, {ChanLeftShoulder, v}}
}

func raiseRight(v float64) []Assignment {
	return []Assignment{{ChanRightShoulder, v}, {ChanRightUpperLeg, v}}
}

func jump(yaw, y float64) []Assignment {
	return []Assignment{{ChanRotY, yaw}, {ChanPosY, y}}
}

// DanceRoutine is the scripted dance in frame order. Frames not covered by
// any range hold whatever the previous keyframe wrote.
var DanceRoutine = []Keyframe{
	{0, 59, []Assignment{{ChanRotY, 45}}},

	// Left raise, twice.
	{61, 79, raiseLeft(-22.5)},
	{102, 119, raiseLeft(-45)},
	{122, 139, raiseLeft(-55)},
	{162, 179, raiseLeft(-45)},
	{182, 199, raiseLeft(-22.5)},
	{202, 219, raiseLeft(0)},
	{222, 239, raiseLeft(-22.5)},
	{242, 259, raiseLeft(-45)},
	{262, 279, raiseLeft(-55)},
	{282, 299, raiseLeft(-45)},
	{302, 319, raiseLeft(-22.5)},
	{322, 339, raiseLeft(0)},

	// First jump.
	{342, 359, jump(-45, 0.5)},
	{362, 379, jump(-90, 1.5)},
	{382, 399, jump(-135, 0.5)},
	{402, 419, jump(-145, 0)},

	// Right raise, twice.
	{422, 439, raiseRight(22.5)},
	{442, 459, raiseRight(45)},
	{462, 479, raiseRight(55)},
	{482, 499, raiseRight(45)},
	{502, 519, raiseRight(22.5)},
	{522, 539, raiseRight(0)},
	{542, 559, raiseRight(22.5)},
	{562, 579, raiseRight(45)},
	{582, 599, raiseRight(55)},
	{602, 619, raiseRight(45)},
	{622, 639, raiseRight(22.5)},
	{642, 659, raiseRight(0)},

	// Second jump, turning back to face forward.
	{662, 679, jump(-135, 0.5)},
	{682, 699, jump(-90, 1.5)},
	{702, 719, jump(-45, 0.5)},
	{722, 739, jump(0, 0)},
}

// KeyframeAt returns the keyframe covering frame, if any.
func KeyframeAt(frame int) (Keyframe, bool) {
	for _, k := range DanceRoutine {
		if k.Contains(frame) {
			return k, true
		}
	}
	return Keyframe{}, false
}

// Dancer plays DanceRoutine one frame per tick.
type Dancer struct {
	Frame int
}

func NewDancer() *Dancer { return &Dancer{} }

func (d *Dancer) Reset() { d.Frame = 0 }

// Advance moves to the next frame and applies the keyframes covering it.
// Channels no keyframe touches keep their values.
func (d *Dancer) Advance(p *Pose) {
	d.Frame++
	for _, k := range DanceRoutine {
		if !k.Contains(d.Frame) {
			continue
		}
		for _, a := range k.Set {
			p.SetChannel(a.Channel, a.Value)
		}
	}
	if d.Frame >= DanceLength {
		d.Frame = 0
	}
}
