package anim

import "github.com/go-gl/mathgl/mgl64"

// Pose is the figure's configuration at one instant. Joint angles are in
// degrees; Rotation holds the root's X, Y and Z rotations in degrees.
type Pose struct {
	RightShoulder float64 `yaml:"right_shoulder"`
	RightElbow    float64 `yaml:"right_elbow"`
	RightUpperLeg float64 `yaml:"right_upper_leg"`
	RightLowerLeg float64 `yaml:"right_lower_leg"`
	LeftShoulder  float64 `yaml:"left_shoulder"`
	LeftElbow     float64 `yaml:"left_elbow"`
	LeftUpperLeg  float64 `yaml:"left_upper_leg"`
	LeftLowerLeg  float64 `yaml:"left_lower_leg"`

	Position mgl64.Vec3 `yaml:"position,flow"`
	Rotation mgl64.Vec3 `yaml:"rotation,flow"`
}

// DefaultPose returns the rest pose: every angle and offset zero.
func DefaultPose() Pose { return Pose{} }

// Reset returns p to DefaultPose.
func (p *Pose) Reset() { *p = DefaultPose() }

// Channel addresses one scalar of a Pose.
type Channel int

const (
	ChanRightShoulder Channel = iota
	ChanRightElbow
	ChanRightUpperLeg
	ChanRightLowerLeg
	ChanLeftShoulder
	ChanLeftElbow
	ChanLeftUpperLeg
	ChanLeftLowerLeg
	ChanPosX
	ChanPosY
	ChanPosZ
	ChanRotX
	ChanRotY
	ChanRotZ

	numChannels
)

var channelNames = [numChannels]string{
	"right_shoulder", "right_elbow", "right_upper_leg", "right_lower_leg",
	"left_shoulder", "left_elbow", "left_upper_leg", "left_lower_leg",
	"pos_x", "pos_y", "pos_z",
	"rot_x", "rot_y", "rot_z",
}

func (c Channel) String() string {
	if c < 0 || c >= numChannels {
		return "unknown"
	}
	return channelNames[c]
}

// ptr returns the field backing c, or nil for an unknown channel.
func (p *Pose) ptr(c Channel) *float64 {
	switch c {
	case ChanRightShoulder:
		return &p.RightShoulder
	case ChanRightElbow:
		return &p.RightElbow
	case ChanRightUpperLeg:
		return &p.RightUpperLeg
	case ChanRightLowerLeg:
		return &p.RightLowerLeg
	case ChanLeftShoulder:
		return &p.LeftShoulder
	case ChanLeftElbow:
		return &p.LeftElbow
	case ChanLeftUpperLeg:
		return &p.LeftUpperLeg
	case ChanLeftLowerLeg:
		return &p.LeftLowerLeg
	case ChanPosX:
		return &p.Position[0]
	case ChanPosY:
		return &p.Position[1]
	case ChanPosZ:
		return &p.Position[2]
	case ChanRotX:
		return &p.Rotation[0]
	case ChanRotY:
		return &p.Rotation[1]
	case ChanRotZ:
		return &p.Rotation[2]
	}
	return nil
}

// Channel reads one scalar. Unknown channels read as zero.
func (p *Pose) Channel(c Channel) float64 {
	if f := p.ptr(c); f != nil {
		return *f
	}
	return 0
}

// SetChannel writes one scalar. Unknown channels are ignored.
func (p *Pose) SetChannel(c Channel, v float64) {
	if f := p.ptr(c); f != nil {
		*f = v
	}
}
