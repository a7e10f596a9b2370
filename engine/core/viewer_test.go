package core

import (
	"errors"
	"testing"
	"time"

	"github.com/1siamBot/wireview/engine/camera"
	"github.com/1siamBot/wireview/engine/input"
	"github.com/1siamBot/wireview/engine/render"
	"github.com/1siamBot/wireview/engine/scene"
	. "github.com/smartystreets/goconvey/convey"
)

// logSurface records the order of surface calls.
type logSurface struct {
	ops     []string
	circles [][2]float64
}

func (s *logSurface) Clear() { s.ops = append(s.ops, "clear") }

func (s *logSurface) DrawCircle(x, y, radius float64, color string) {
	s.ops = append(s.ops, "circle")
	s.circles = append(s.circles, [2]float64{x, y})
}

func TestConfig(t *testing.T) {
	Convey("Default config", t, func() {
		cfg := DefaultConfig()
		So(cfg.Validate(), ShouldBeNil)

		w, h := cfg.CanvasSize()
		So(w, ShouldEqual, 320)
		So(h, ShouldEqual, 180)
		So(cfg.TPS(), ShouldEqual, 30)

		cc := cfg.CameraConfig()
		So(cc.CanvasWidth, ShouldEqual, 320)
		So(cc.CanvasHeight, ShouldEqual, 180)
		So(cc.CanvasExpansion, ShouldEqual, 20)
	})

	Convey("Invalid configs are rejected", t, func() {
		bad := []func(*Config){
			func(c *Config) { c.AspectW = 0 },
			func(c *Config) { c.TickPeriod = 0 },
			func(c *Config) { c.CanvasExpansion = 0 },
			func(c *Config) { c.Background = "#xyz" },
			func(c *Config) { c.Camera.PointColor = "" },
			func(c *Config) { c.Camera.Speed = 0 },
			func(c *Config) { c.Camera.FocalLength = -1 },
			func(c *Config) { c.Camera.ScreenExpansion = 0 },
		}
		for _, mutate := range bad {
			cfg := DefaultConfig()
			mutate(&cfg)
			err := cfg.Validate()
			So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)

			v, err := NewViewer(cfg, scene.Cuboid())
			So(v, ShouldBeNil)
			So(err, ShouldNotBeNil)
		}

		Convey("camera errors stay visible", func() {
			cfg := DefaultConfig()
			cfg.Camera.Speed = -1
			So(errors.Is(cfg.Validate(), camera.ErrInvalidConfig), ShouldBeTrue)
		})
	})
}

func TestViewerTick(t *testing.T) {
	Convey("Viewer tick", t, func() {
		v, err := NewViewer(DefaultConfig(), scene.Cuboid())
		So(err, ShouldBeNil)

		Convey("clears, then draws each scene point", func() {
			s := &logSurface{}
			So(v.Tick(input.KeyState{}, s), ShouldBeNil)
			So(s.ops[0], ShouldEqual, "clear")
			So(len(s.ops), ShouldEqual, 9)
			So(v.TickCount, ShouldEqual, 1)

			So(v.Tick(input.KeyState{}, s), ShouldBeNil)
			So(s.ops[9], ShouldEqual, "clear")
			So(len(s.ops), ShouldEqual, 18)
			So(v.TickCount, ShouldEqual, 2)
		})

		Convey("projects after updating", func() {
			s := &logSurface{}
			So(v.Tick(input.NewKeyState(input.KeyForward), s), ShouldBeNil)
			st := v.State()
			So(st.Y, ShouldAlmostEqual, 0.05, 1e-9)

			x, y := v.Camera().Project(st, scene.Cuboid()[0])
			So(s.circles[0], ShouldResemble, [2]float64{x, y})
		})

		Convey("the golden point lands on (220, 30)", func() {
			s := &logSurface{}
			So(v.Tick(nil, s), ShouldBeNil)
			So(s.circles[0][0], ShouldAlmostEqual, 220, 1e-6)
			So(s.circles[0][1], ShouldAlmostEqual, 30, 1e-6)
		})

		Convey("renders into a raster", func() {
			r, err := render.NewRaster(320, 180, v.Config().Background)
			So(err, ShouldBeNil)
			So(v.Tick(input.KeyState{}, r), ShouldBeNil)
			So(r.Img.RGBAAt(220, 30).A, ShouldEqual, 255)
			So(r.Img.RGBAAt(220, 30).R, ShouldEqual, 0)
		})

		Convey("the scene is copied", func() {
			pts := scene.Cuboid()
			v2, err := NewViewer(DefaultConfig(), pts)
			So(err, ShouldBeNil)
			pts[0].X = 100
			s := &logSurface{}
			So(v2.Tick(nil, s), ShouldBeNil)
			So(s.circles[0][0], ShouldAlmostEqual, 220, 1e-6)
		})

		Convey("starts from the configured pose", func() {
			cfg := DefaultConfig()
			cfg.Pose = camera.Pose{Y: -3, RZ: 45}
			v2, err := NewViewer(cfg, nil)
			So(err, ShouldBeNil)
			So(v2.State().P1.Y, ShouldEqual, -3)
			So(v2.State().RZ, ShouldEqual, 45)
		})
	})
}

func TestDriversWithViewer(t *testing.T) {
	Convey("ImmediateDriver runs the viewer for a fixed number of ticks", t, func() {
		v, err := NewViewer(DefaultConfig(), scene.Cuboid())
		So(err, ShouldBeNil)
		keys := input.NewKeyState(input.KeyForward)
		s := &logSurface{}

		err = ImmediateDriver{Ticks: 20}.Run(bg(), v.TickFunc(func() input.Snapshot { return keys }, s))
		So(err, ShouldBeNil)
		So(v.TickCount, ShouldEqual, 20)
		So(v.State().Y, ShouldAlmostEqual, 1.0, 1e-9)
		So(v.State().X, ShouldEqual, 0)
	})

	Convey("IntervalDriver paces the viewer", t, func() {
		v, err := NewViewer(DefaultConfig(), scene.Cuboid())
		So(err, ShouldBeNil)
		keys := input.NewKeyState(input.KeyYawRight)

		start := time.Now()
		d := IntervalDriver{Period: 2 * time.Millisecond, MaxTicks: 5}
		So(d.Run(bg(), v.TickFunc(func() input.Snapshot { return keys }, &logSurface{})), ShouldBeNil)
		So(time.Since(start) >= 10*time.Millisecond, ShouldBeTrue)
		So(v.State().RZ, ShouldEqual, 15)
	})
}
