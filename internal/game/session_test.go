package game

import (
	"testing"

	"robot/internal/anim"
	"robot/internal/config"
)

func newTestSession() (*Session, *[]anim.Transition) {
	bus := NewEventBus()
	var changes []anim.Transition
	bus.Subscribe(EventModeChanged, func(e Event) { changes = append(changes, e.Transition) })
	s := NewSession(config.Default(), anim.SilentCue{}, bus)
	s.TakeRedraw()
	return s, &changes
}

func TestSession_RenderToggles(t *testing.T) {
	s, changes := newTestSession()
	startAxes, startPath := s.ShowAxes, s.ShowPath

	tcs := []struct {
		ev                    anim.Event
		wireframe, axes, path bool
	}{
		{anim.EventWireframe, true, startAxes, startPath},
		{anim.EventWireframe, true, startAxes, startPath},
		{anim.EventAxes, true, !startAxes, startPath},
		{anim.EventSolid, false, !startAxes, startPath},
		{anim.EventPath, false, !startAxes, !startPath},
		{anim.EventPath, false, !startAxes, startPath},
	}
	for _, tc := range tcs {
		s.Handle(tc.ev)
		if s.Wireframe != tc.wireframe || s.ShowAxes != tc.axes || s.ShowPath != tc.path {
			t.Fatalf("after %v: wireframe=%v axes=%v path=%v; want %v %v %v",
				tc.ev, s.Wireframe, s.ShowAxes, s.ShowPath, tc.wireframe, tc.axes, tc.path)
		}
		if !s.TakeRedraw() {
			t.Fatalf("%v did not request a redraw", tc.ev)
		}
	}
	if s.Ctrl.Mode() != anim.ModeIdle || len(*changes) != 0 {
		t.Fatalf("render toggles changed mode: %v, %d transitions", s.Ctrl.Mode(), len(*changes))
	}
}

func TestSession_TakeRedrawClears(t *testing.T) {
	bus := NewEventBus()
	s := NewSession(config.Default(), nil, bus)
	if !s.TakeRedraw() {
		t.Fatalf("first frame not requested")
	}
	if s.TakeRedraw() {
		t.Fatalf("redraw not cleared")
	}
	s.RequestRedraw()
	if !s.TakeRedraw() {
		t.Fatalf("RequestRedraw did not request a frame")
	}
}

func TestSession_TickRedraw(t *testing.T) {
	tcs := []struct {
		name   string
		events []anim.Event
		want   bool
	}{
		{"idle", nil, false},
		{"walking", []anim.Event{anim.EventWalkToggle}, true},
		{"circular", []anim.Event{anim.EventCyclePath}, true},
		{"dancing", []anim.Event{anim.EventDance}, true},
		{"paused dance", []anim.Event{anim.EventDance, anim.EventWalkToggle}, false},
	}
	for _, tc := range tcs {
		s, _ := newTestSession()
		for _, ev := range tc.events {
			s.Handle(ev)
		}
		s.TakeRedraw()
		s.Tick()
		if got := s.TakeRedraw(); got != tc.want {
			t.Fatalf("%s: redraw after tick=%v; want %v", tc.name, got, tc.want)
		}
	}
}

func TestSession_ModeChangedEvents(t *testing.T) {
	s, changes := newTestSession()
	s.Handle(anim.EventWalkToggle)
	s.Handle(anim.EventAxes)
	s.Handle(anim.EventWalkToggle)

	want := []anim.Transition{
		{Event: anim.EventWalkToggle, From: anim.ModeIdle, To: anim.ModeWalkStraight},
		{Event: anim.EventWalkToggle, From: anim.ModeWalkStraight, To: anim.ModeIdle},
	}
	if len(*changes) != len(want) {
		t.Fatalf("transitions=%v; want %v", *changes, want)
	}
	for i := range want {
		if (*changes)[i] != want[i] {
			t.Fatalf("transition %d=%+v; want %+v", i, (*changes)[i], want[i])
		}
	}
}
