// Package camera implements a first-person camera that projects world points
// onto a flat canvas through a focal plane.
//
// The camera is a pure state machine: Update takes the previous State and
// the pressed keys and returns the next State. Angles are in degrees.
package camera

import (
	"github.com/1siamBot/wireview/engine/geom"
	"github.com/1siamBot/wireview/engine/input"
)

// Pose is the camera position with yaw (RZ) and pitch (RX).
type Pose struct {
	X, Y, Z float64
	RX, RZ  float64
}

// State is one tick's pose plus the view geometry derived from it.
//
//	P1     camera position
//	P2     P1 plus the unit forward direction
//	P3     P1 plus forward * focal length, a point on the focal plane
//	Normal P3 -> P2, perpendicular to the focal plane
type State struct {
	Pose
	P1, P2, P3 geom.Point
	Normal     geom.Vector
}

// CircleDrawer receives one call per projected point.
type CircleDrawer interface {
	DrawCircle(x, y, radius float64, color string)
}

type Camera struct {
	cfg     Config
	projExp float64 // pixels per focal-plane unit
}

// New validates cfg and builds a camera.
func New(cfg Config) (*Camera, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Camera{
		cfg:     cfg,
		projExp: cfg.CanvasExpansion / cfg.ScreenExpansion,
	}, nil
}

func (c *Camera) Config() Config { return c.cfg }

// ProjectionExpansion is the focal-plane to pixel scale.
func (c *Camera) ProjectionExpansion() float64 { return c.projExp }

// Init returns the state for a starting pose.
func (c *Camera) Init(p Pose) State { return c.derive(p) }

// Update advances one tick. s is not modified; a nil snapshot means no keys
// are held.
func (c *Camera) Update(s State, in input.Snapshot) State {
	pose := s.Pose
	if in == nil {
		return c.derive(pose)
	}

	speed := c.cfg.Speed
	// Horizontal moves follow the yaw. Keys add up with no diagonal
	// normalization.
	move := func(theta float64) {
		pose.X += geom.Sin(theta) * speed
		pose.Y += geom.Cos(theta) * speed
	}
	if in.IsPressed(input.KeyForward) {
		move(pose.RZ)
	}
	if in.IsPressed(input.KeyLeft) {
		move(pose.RZ - 90)
	}
	if in.IsPressed(input.KeyBack) {
		move(pose.RZ + 180)
	}
	if in.IsPressed(input.KeyRight) {
		move(pose.RZ + 90)
	}

	if in.IsPressed(input.KeyAscend) {
		pose.Z += speed
	}
	if in.IsPressed(input.KeyDescend) {
		pose.Z -= speed
	}

	// angles are left unbounded
	step := c.cfg.RotationStep
	if in.IsPressed(input.KeyYawLeft) {
		pose.RZ -= step
	}
	if in.IsPressed(input.KeyYawRight) {
		pose.RZ += step
	}
	if in.IsPressed(input.KeyPitchUp) {
		pose.RX -= step
	}
	if in.IsPressed(input.KeyPitchDown) {
		pose.RX += step
	}

	return c.derive(pose)
}

func (c *Camera) derive(pose Pose) State {
	p1 := geom.P(pose.X, pose.Y, pose.Z)

	// pitch, then yaw
	y1 := geom.Cos(pose.RX)
	z1 := -geom.Sin(pose.RX)
	x1 := geom.Sin(pose.RZ) * y1
	y2 := geom.Cos(pose.RZ) * y1

	fl := c.cfg.FocalLength
	p2 := p1.Offset(x1, y2, z1)
	p3 := p1.Offset(x1*fl, y2*fl, z1*fl)

	return State{
		Pose:   pose,
		P1:     p1,
		P2:     p2,
		P3:     p3,
		Normal: geom.NewVector(p3, p2),
	}
}
