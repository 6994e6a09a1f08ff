package game

// Mesh tessellation.
const (
	SphereStacks = 50
	SphereSlices = 50
	TorusSides   = 16
	TorusRings   = 40
)

// Scene drawing.
const (
	AxisLength = 5.0

	// MinThickness replaces a zero scale so flat slabs keep an invertible
	// normal matrix.
	MinThickness = 0.001

	// MaxFrameTime caps the wall-clock step fed to the tick accumulator.
	MaxFrameTime = 0.1
)

// Directional light, world space, pointing toward the light.
var LightDir = [3]float32{0.4, 1.0, 0.6}
