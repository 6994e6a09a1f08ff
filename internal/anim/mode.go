package anim

// PathShape selects the walk trajectory, or the scripted dance.
type PathShape int

const (
	PathStraight PathShape = iota
	PathCircular
	PathDance
)

func (s PathShape) String() string {
	switch s {
	case PathStraight:
		return "straight"
	case PathCircular:
		return "circular"
	case PathDance:
		return "dance"
	}
	return "unknown"
}

// Mode is the controller's state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeWalkStraight
	ModeWalkCircular
	ModeDance
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeWalkStraight:
		return "walk-straight"
	case ModeWalkCircular:
		return "walk-circular"
	case ModeDance:
		return "dance"
	}
	return "unknown"
}

// Event is a discrete input.
type Event int

const (
	EventNone Event = iota
	EventWireframe
	EventSolid
	EventAxes
	EventPath
	EventReset
	EventWalkToggle
	EventCyclePath
	EventDance
	EventExit
)

var eventNames = map[Event]string{
	EventNone:       "none",
	EventWireframe:  "wireframe-toggle",
	EventSolid:      "solid-toggle",
	EventAxes:       "axis-toggle",
	EventPath:       "path-toggle",
	EventReset:      "reset",
	EventWalkToggle: "walk-toggle",
	EventCyclePath:  "cycle-path",
	EventDance:      "enter-dance",
	EventExit:       "exit",
}

func (e Event) String() string {
	if s, ok := eventNames[e]; ok {
		return s
	}
	return "unknown"
}

// ParseEvent maps an event name as printed by String back to the event.
func ParseEvent(name string) (Event, bool) {
	for e, s := range eventNames {
		if s == name {
			return e, true
		}
	}
	return EventNone, false
}

// DanceCue names the sound played while dancing.
const DanceCue = "dance"

// AudioCue plays and stops named sounds. Play must not block.
type AudioCue interface {
	Play(name string)
	Stop()
}

// SilentCue is an AudioCue that does nothing.
type SilentCue struct{}

func (SilentCue) Play(string) {}
func (SilentCue) Stop()       {}

// Transition describes one handled event.
type Transition struct {
	Event    Event
	From, To Mode
}

// Controller selects the active driver and owns the figure's animation
// state. It is not safe for concurrent use; the tick and input handlers
// are expected to run on one goroutine.
type Controller struct {
	Pose   Pose
	Walker *Walker
	Dancer *Dancer

	// OnChange, when set, is called after every handled event.
	OnChange func(Transition)

	audio       AudioCue
	mode        Mode
	path        PathShape // selected walk shape, straight or circular
	dancePaused bool
	music       bool
}

func NewController(audio AudioCue) *Controller {
	if audio == nil {
		audio = SilentCue{}
	}
	return &Controller{
		Walker: NewWalker(),
		Dancer: NewDancer(),
		audio:  audio,
		mode:   ModeIdle,
		path:   PathStraight,
	}
}

// Mode returns the current state.
func (c *Controller) Mode() Mode { return c.mode }

// Shape returns the active path shape: PathDance while dancing, otherwise
// the selected walk shape.
func (c *Controller) Shape() PathShape {
	if c.mode == ModeDance {
		return PathDance
	}
	return c.path
}

// DancePaused reports whether a walk toggle has frozen the dance.
func (c *Controller) DancePaused() bool { return c.dancePaused }

// Handle applies one input event. Events that only affect rendering leave
// the state machine untouched but still count as a change.
func (c *Controller) Handle(ev Event) {
	from := c.mode
	switch ev {
	case EventReset:
		c.Reset()
	case EventWalkToggle:
		c.toggleWalk()
	case EventCyclePath:
		c.Reset()
		if c.path == PathStraight {
			c.path = PathCircular
		} else {
			c.path = PathStraight
		}
		c.mode = c.walkMode()
	case EventDance:
		c.Reset()
		c.music = !c.music
		if c.music {
			c.audio.Play(DanceCue)
		} else {
			c.audio.Stop()
		}
		c.mode = ModeDance
		c.dancePaused = false
	}
	if c.OnChange != nil {
		c.OnChange(Transition{Event: ev, From: from, To: c.mode})
	}
}

func (c *Controller) toggleWalk() {
	switch c.mode {
	case ModeIdle:
		c.mode = c.walkMode()
	case ModeWalkStraight, ModeWalkCircular:
		c.mode = ModeIdle
	case ModeDance:
		c.dancePaused = !c.dancePaused
	}
}

func (c *Controller) walkMode() Mode {
	if c.path == PathCircular {
		return ModeWalkCircular
	}
	return ModeWalkStraight
}

// Reset returns the pose and every driver scalar to its initial value and
// silences the cue. A running walk keeps walking from the rest pose; the
// dance is not resumable and falls back to idle on the straight path.
func (c *Controller) Reset() {
	c.Pose.Reset()
	c.Walker.Reset()
	c.Dancer.Reset()
	c.dancePaused = false
	if c.mode == ModeDance {
		c.mode = ModeIdle
		c.path = PathStraight
	}
	c.music = false
	c.audio.Stop()
}

// Tick advances the active driver by one fixed step.
func (c *Controller) Tick() {
	switch c.mode {
	case ModeWalkStraight:
		c.Walker.Step(&c.Pose, PathStraight)
	case ModeWalkCircular:
		c.Walker.Step(&c.Pose, PathCircular)
	case ModeDance:
		if !c.dancePaused {
			c.Dancer.Advance(&c.Pose)
		}
	}
}

// Scene composes the current frame with the given path visibility.
func (c *Controller) Scene(showPath bool) *Node {
	return ComposeScene(c.Pose, Decor{Path: c.Shape(), ShowPath: showPath})
}
