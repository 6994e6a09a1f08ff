package game

import (
	"robot/internal/anim"
	"robot/internal/config"
)

// Session is the running demo: the animation controller, the camera, and the
// toggles that only affect drawing.
type Session struct {
	Ctrl   *anim.Controller
	Camera *anim.OrbitCamera

	Wireframe bool
	ShowAxes  bool
	ShowPath  bool

	bus    *EventBus
	redraw bool
}

func NewSession(cfg config.Config, audio anim.AudioCue, bus *EventBus) *Session {
	s := &Session{
		Ctrl:     anim.NewController(audio),
		Camera:   anim.NewOrbitCamera(cfg.Camera.Radius, cfg.Camera.Theta, cfg.Camera.Phi),
		ShowAxes: cfg.ShowAxes,
		ShowPath: cfg.ShowPath,
		bus:      bus,
		redraw:   true,
	}
	s.Ctrl.OnChange = func(t anim.Transition) {
		if t.From != t.To {
			bus.Emit(Event{Type: EventModeChanged, Transition: t})
		}
		bus.Emit(Event{Type: EventRedraw, Transition: t})
	}
	bus.Subscribe(EventRedraw, func(Event) { s.redraw = true })
	return s
}

// Handle applies one input event.
func (s *Session) Handle(ev anim.Event) {
	switch ev {
	case anim.EventWireframe:
		s.Wireframe = true
	case anim.EventSolid:
		s.Wireframe = false
	case anim.EventAxes:
		s.ShowAxes = !s.ShowAxes
	case anim.EventPath:
		s.ShowPath = !s.ShowPath
	}
	s.Ctrl.Handle(ev)
}

// Tick advances the animation one step. Idle ticks change nothing on screen
// and do not request a frame.
func (s *Session) Tick() {
	s.Ctrl.Tick()
	if s.Ctrl.Mode() != anim.ModeIdle && !(s.Ctrl.Mode() == anim.ModeDance && s.Ctrl.DancePaused()) {
		s.redraw = true
	}
}

func (s *Session) RequestRedraw() {
	s.bus.Emit(Event{Type: EventRedraw})
}

// TakeRedraw reports and clears a pending frame request.
func (s *Session) TakeRedraw() bool {
	r := s.redraw
	s.redraw = false
	return r
}

func (s *Session) Scene() *anim.Node {
	return s.Ctrl.Scene(s.ShowPath)
}
