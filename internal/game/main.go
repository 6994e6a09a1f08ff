package game

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"robot/internal/anim"
	"robot/internal/config"
)

// RunDesktop opens the window and runs the demo until it is closed. With
// verbose set, every mode change is logged.
func RunDesktop(cfg config.Config, logger *zap.Logger, verbose bool) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	runtime.LockOSThread()

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// GL state.
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	renderer, err := NewRenderer()
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	var cue anim.AudioCue = anim.SilentCue{}
	if cfg.Audio.Enabled {
		audio, err := InitAudio(cfg.Audio, logger)
		if err != nil {
			logger.Warn("audio init failed, continuing without sound", zap.Error(err))
		} else {
			cue = audio
			defer audio.Stop()
		}
	}

	bus := NewEventBus()
	session := NewSession(cfg, cue, bus)
	if verbose {
		bus.Subscribe(EventModeChanged, func(e Event) {
			logger.Info("mode changed",
				zap.Stringer("event", e.Transition.Event),
				zap.Stringer("from", e.Transition.From),
				zap.Stringer("to", e.Transition.To))
		})
	}
	window.SetFramebufferSizeCallback(func(*glfw.Window, int, int) {
		session.RequestRedraw()
	})
	input := NewInput()

	step := 1.0 / float64(cfg.TickRate)
	var acc float64
	last := glfw.GetTime()

	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameTime {
			dt = MaxFrameTime
		}

		glfw.PollEvents()

		for _, ev := range input.Events(window) {
			if ev == anim.EventExit {
				window.SetShouldClose(true)
				break
			}
			session.Handle(ev)
		}
		if window.ShouldClose() {
			break
		}
		if input.UpdatePointer(window, session.Camera) {
			session.RequestRedraw()
		}

		acc += dt
		for acc >= step {
			session.Tick()
			acc -= step
		}

		if !session.TakeRedraw() {
			glfw.WaitEventsTimeout(step)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		renderer.BeginFrame(session.Camera, cfg.Camera, fbW, fbH, session.Wireframe)
		renderer.DrawScene(session.Scene())
		if session.ShowAxes {
			renderer.DrawAxes()
		}
		window.SwapBuffers()
	}
	return nil
}
