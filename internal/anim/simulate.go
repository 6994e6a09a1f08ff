package anim

import "fmt"

// ParseMode maps a mode name as printed by String back to the mode.
func ParseMode(name string) (Mode, error) {
	for _, m := range []Mode{ModeIdle, ModeWalkStraight, ModeWalkCircular, ModeDance} {
		if m.String() == name {
			return m, nil
		}
	}
	return ModeIdle, fmt.Errorf("unknown mode %q", name)
}

// EnterEvents returns the events that take a fresh controller to m.
func EnterEvents(m Mode) []Event {
	switch m {
	case ModeWalkStraight:
		return []Event{EventWalkToggle}
	case ModeWalkCircular:
		return []Event{EventCyclePath}
	case ModeDance:
		return []Event{EventDance}
	}
	return nil
}

// Report is the state of a headless run.
type Report struct {
	Mode       string  `yaml:"mode"`
	Path       string  `yaml:"path"`
	Ticks      int     `yaml:"ticks"`
	DanceFrame int     `yaml:"dance_frame"`
	Heading    float64 `yaml:"heading"`
	Pose       Pose    `yaml:"pose"`
}

// Simulate runs a fresh controller without a window: events are handled in
// order, then the controller ticks the given number of times.
func Simulate(audio AudioCue, events []Event, ticks int) Report {
	c := NewController(audio)
	for _, ev := range events {
		c.Handle(ev)
	}
	for i := 0; i < ticks; i++ {
		c.Tick()
	}
	return Report{
		Mode:       c.Mode().String(),
		Path:       c.Shape().String(),
		Ticks:      ticks,
		DanceFrame: c.Dancer.Frame,
		Heading:    c.Walker.Heading,
		Pose:       c.Pose,
	}
}
