package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"

	"robot/internal/anim"
)

// Binding maps one key to a controller event.
type Binding struct {
	Key   glfw.Key
	Label string
	Event anim.Event
	Help  string
}

var Bindings = []Binding{
	{glfw.Key1, "1", anim.EventWireframe, "wireframe"},
	{glfw.Key2, "2", anim.EventSolid, "solid"},
	{glfw.Key3, "3", anim.EventAxes, "toggle axes"},
	{glfw.Key4, "4", anim.EventPath, "toggle path"},
	{glfw.KeyR, "r", anim.EventReset, "reset pose"},
	{glfw.KeyA, "a", anim.EventWalkToggle, "start/stop walking"},
	{glfw.KeyP, "p", anim.EventCyclePath, "switch straight/circular path"},
	{glfw.KeyC, "c", anim.EventDance, "dance"},
	{glfw.KeyEscape, "esc", anim.EventExit, "quit"},
}

// Controls returns the key and mouse help text.
func Controls() string {
	var b strings.Builder
	for _, k := range Bindings {
		fmt.Fprintf(&b, "  %-4s %s\n", k.Label, k.Help)
	}
	b.WriteString("  left drag  orbit camera\n")
	b.WriteString("  right drag zoom\n")
	return b.String()
}

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Events returns the controller events for keys pressed since the last poll,
// in binding order.
func (in *Input) Events(window *glfw.Window) []anim.Event {
	var out []anim.Event
	for _, k := range Bindings {
		if in.JustPressed(window, k.Key) {
			out = append(out, k.Event)
		}
	}
	return out
}

// UpdatePointer feeds the cursor to the camera. Left button orbits, right
// button zooms. It reports whether the camera moved.
func (in *Input) UpdatePointer(window *glfw.Window, cam *anim.OrbitCamera) bool {
	x, y := window.GetCursorPos()
	rotate := window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
	zoom := !rotate && window.GetMouseButton(glfw.MouseButtonRight) == glfw.Press
	before := *cam
	cam.Pointer(x, y, rotate, zoom)
	return cam.Radius != before.Radius || cam.Theta != before.Theta || cam.Phi != before.Phi
}
