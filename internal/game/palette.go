package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Floats returns the colour as GL-ready components in [0, 1].
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Clear RGB
	AxisX RGB
	AxisY RGB
	AxisZ RGB
}{
	Clear: RGB{0, 0, 0},
	AxisX: RGB{255, 0, 0},
	AxisY: RGB{0, 255, 0},
	AxisZ: RGB{0, 0, 255},
}
