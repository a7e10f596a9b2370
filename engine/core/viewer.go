package core

import (
	"github.com/1siamBot/wireview/engine/camera"
	"github.com/1siamBot/wireview/engine/geom"
	"github.com/1siamBot/wireview/engine/input"
	"github.com/1siamBot/wireview/engine/render"
)

// Viewer owns the camera state and the scene, and runs one render tick per
// call to Tick.
type Viewer struct {
	cfg       Config
	cam       *camera.Camera
	state     camera.State
	points    []geom.Point
	TickCount uint64
}

// NewViewer validates cfg and places the camera at cfg.Pose. points is
// copied.
func NewViewer(cfg Config, points []geom.Point) (*Viewer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cam, err := camera.New(cfg.CameraConfig())
	if err != nil {
		return nil, err
	}
	return &Viewer{
		cfg:    cfg,
		cam:    cam,
		state:  cam.Init(cfg.Pose),
		points: append([]geom.Point(nil), points...),
	}, nil
}

// Tick clears s, advances the camera with in, then draws every scene point.
// It never fails; the error return fits the Driver contract.
func (v *Viewer) Tick(in input.Snapshot, s render.Surface) error {
	s.Clear()
	v.state = v.cam.Update(v.state, in)
	v.cam.Projection(v.state, v.points, s)
	v.TickCount++
	return nil
}

// TickFunc binds Tick to an input source and a surface for a Driver.
func (v *Viewer) TickFunc(in func() input.Snapshot, s render.Surface) TickFunc {
	return func() error { return v.Tick(in(), s) }
}

func (v *Viewer) State() camera.State    { return v.state }
func (v *Viewer) Camera() *camera.Camera { return v.cam }
func (v *Viewer) Config() Config         { return v.cfg }
