package anim

import "github.com/go-gl/mathgl/mgl64"

// Figure dimensions.
const (
	BodyWidth  = 2.0
	BodyHeight = 4.0
	BodyDepth  = 1.0

	LimbLength = 2.0
	LimbWidth  = 0.4
	LimbDepth  = 1.0

	HeadOffset = 3.0
)

// Primitive is the solid a node draws.
type Primitive int

const (
	PrimNone Primitive = iota
	PrimBox
	PrimSphere
	PrimTorus
)

// Node is one element of the composed scene. Size is the box or sphere
// scale; for a torus it holds the tube and ring radii in X and Y.
type Node struct {
	Name      string
	Local     mgl64.Mat4
	World     mgl64.Mat4
	Primitive Primitive
	Size      mgl64.Vec3
	Color     mgl64.Vec3
	Children  []*Node
}

// Walk visits n and its descendants depth first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns the first node called name, or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// Origin returns the node's origin in world space.
func (n *Node) Origin() mgl64.Vec3 {
	return n.World.Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()
}

// Point maps a node-local point to world space.
func (n *Node) Point(local mgl64.Vec3) mgl64.Vec3 {
	return n.World.Mul4x1(local.Vec4(1)).Vec3()
}

// Decor selects the scene decorations drawn around the figure.
type Decor struct {
	Path     PathShape
	ShowPath bool
}

var (
	colorRobot    = mgl64.Vec3{1, 1, 1}
	colorGround   = mgl64.Vec3{0.9, 0.7, 0.9}
	colorStraight = mgl64.Vec3{0.7, 0.6, 0.5}
	colorCircle   = mgl64.Vec3{0.3, 0.4, 0.5}
)

// builder accumulates world transforms while the tree is assembled.
type builder struct {
	world mgl64.Mat4
}

// child attaches a node with the given local transform under parent and
// returns a builder positioned at it.
func (b builder) child(parent *Node, name string, local mgl64.Mat4, prim Primitive, size, color mgl64.Vec3) (*Node, builder) {
	world := b.world.Mul4(local)
	n := &Node{
		Name:      name,
		Local:     local,
		World:     world,
		Primitive: prim,
		Size:      size,
		Color:     color,
	}
	if parent != nil {
		parent.Children = append(parent.Children, n)
	}
	return n, builder{world: world}
}

func translate(x, y, z float64) mgl64.Mat4 { return mgl64.Translate3D(x, y, z) }

func rotX(deg float64) mgl64.Mat4 { return mgl64.HomogRotate3DX(mgl64.DegToRad(deg)) }
func rotY(deg float64) mgl64.Mat4 { return mgl64.HomogRotate3DY(mgl64.DegToRad(deg)) }
func rotZ(deg float64) mgl64.Mat4 { return mgl64.HomogRotate3DZ(mgl64.DegToRad(deg)) }

// chain multiplies transforms left to right.
func chain(ms ...mgl64.Mat4) mgl64.Mat4 {
	out := mgl64.Ident4()
	for _, m := range ms {
		out = out.Mul4(m)
	}
	return out
}

// ComposeFigure builds the robot's transform tree from p. The root applies
// the root rotation then the root translation; every limb is pivoted at its
// attachment point and shifted along its own length before drawing.
func ComposeFigure(p Pose) *Node {
	return composeFigure(builder{world: mgl64.Ident4()}, nil, p)
}

func composeFigure(b builder, parent *Node, p Pose) *Node {
	rootLocal := chain(
		rotX(p.Rotation[0]),
		rotY(p.Rotation[1]),
		rotZ(p.Rotation[2]),
		translate(p.Position[0], p.Position[1], p.Position[2]),
	)
	root, rb := b.child(parent, "robot", rootLocal, PrimNone, mgl64.Vec3{}, mgl64.Vec3{})

	rb.child(root, "torso", mgl64.Ident4(), PrimBox, mgl64.Vec3{BodyWidth, BodyHeight, BodyDepth}, colorRobot)

	arm := mgl64.Vec3{LimbLength, LimbWidth, LimbDepth}
	half := LimbLength / 2

	upper, ub := rb.child(root, "left_upper_arm",
		chain(translate(1, 1.5, 0), rotZ(-90), rotY(p.LeftShoulder), translate(half, 0, 0)),
		PrimBox, arm, colorRobot)
	ub.child(upper, "left_lower_arm",
		chain(translate(half, 0, 0), rotZ(p.LeftElbow), translate(half, 0, 0)),
		PrimBox, arm, colorRobot)

	upper, ub = rb.child(root, "right_upper_arm",
		chain(translate(-1, 1.5, 0), rotY(180), rotZ(-90), rotY(p.RightShoulder), translate(half, 0, 0)),
		PrimBox, arm, colorRobot)
	ub.child(upper, "right_lower_arm",
		chain(translate(half, 0, 0), rotZ(p.RightElbow), translate(half, 0, 0)),
		PrimBox, arm, colorRobot)

	leg := mgl64.Vec3{LimbWidth, LimbLength, LimbDepth}

	upper, ub = rb.child(root, "left_upper_leg",
		chain(translate(0.8, -2, 0), rotX(p.LeftUpperLeg), translate(0, -half, 0)),
		PrimBox, leg, colorRobot)
	ub.child(upper, "left_lower_leg",
		chain(translate(0, -half, 0), rotX(p.LeftLowerLeg), translate(0, -half, 0)),
		PrimBox, leg, colorRobot)

	upper, ub = rb.child(root, "right_upper_leg",
		chain(translate(-0.8, -2, 0), rotX(180), rotZ(180), rotX(p.RightUpperLeg), translate(0, -half, 0)),
		PrimBox, leg, colorRobot)
	ub.child(upper, "right_lower_leg",
		chain(translate(0, -half, 0), rotX(p.RightLowerLeg), translate(0, -half, 0)),
		PrimBox, leg, colorRobot)

	rb.child(root, "head", translate(0, HeadOffset, 0), PrimSphere, mgl64.Vec3{1, 1, 1}, colorRobot)

	return root
}

// ComposeScene builds the full frame: ground, optional path decoration for
// the walk shape, and the figure.
func ComposeScene(p Pose, d Decor) *Node {
	b := builder{world: mgl64.Ident4()}
	scene, sb := b.child(nil, "scene", mgl64.Ident4(), PrimNone, mgl64.Vec3{}, mgl64.Vec3{})

	sb.child(scene, "ground", translate(0, -6.1, 0), PrimBox, mgl64.Vec3{1000, 0, 1000}, colorGround)

	if d.ShowPath {
		switch d.Path {
		case PathCircular:
			sb.child(scene, "path", chain(rotX(90), translate(0, 0, 10.3)),
				PrimTorus, mgl64.Vec3{5.625, 14.35, 0}, colorCircle)
		case PathStraight:
			sb.child(scene, "path", translate(0, -6.0, 0),
				PrimBox, mgl64.Vec3{10, 0, 1000}, colorStraight)
		}
	}

	composeFigure(sb, scene, p)
	return scene
}
