package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/1siamBot/wireview/engine/camera"
	"github.com/1siamBot/wireview/engine/render"
)

var ErrInvalidConfig = errors.New("core: invalid config")

// Config gathers every tuning constant of the viewer
type Config struct {
	// Canvas is AspectW*CanvasExpansion by AspectH*CanvasExpansion pixels.
	AspectW, AspectH int
	CanvasExpansion  float64

	TickPeriod time.Duration
	Background string

	// LogKeys echoes key presses through the standard logger.
	LogKeys bool

	// Camera canvas fields are overwritten from the ones above.
	Camera camera.Config
	Pose   camera.Pose
}

// DefaultConfig is a 320x180 canvas ticking at ~30Hz with the camera at the
// origin looking along +y.
func DefaultConfig() Config {
	return Config{
		AspectW:         16,
		AspectH:         9,
		CanvasExpansion: 20,
		TickPeriod:      33 * time.Millisecond,
		Background:      "#aaa",
		Camera:          camera.DefaultConfig(),
	}
}

func (c Config) CanvasSize() (w, h int) {
	return int(float64(c.AspectW) * c.CanvasExpansion), int(float64(c.AspectH) * c.CanvasExpansion)
}

// TPS is the tick rate implied by TickPeriod, rounded to whole ticks.
func (c Config) TPS() int {
	if c.TickPeriod <= 0 {
		return 0
	}
	return int((time.Second + c.TickPeriod/2) / c.TickPeriod)
}

// CameraConfig returns the camera settings with the canvas fields filled in.
func (c Config) CameraConfig() camera.Config {
	cc := c.Camera
	cc.CanvasExpansion = c.CanvasExpansion
	cc.CanvasWidth, cc.CanvasHeight = c.CanvasSize()
	return cc
}

func (c Config) Validate() error {
	if c.AspectW <= 0 || c.AspectH <= 0 {
		return fmt.Errorf("%w: aspect ratio %d:%d", ErrInvalidConfig, c.AspectW, c.AspectH)
	}
	if c.TickPeriod <= 0 {
		return fmt.Errorf("%w: tick period must be > 0, got %v", ErrInvalidConfig, c.TickPeriod)
	}
	if _, err := render.ParseColor(c.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidConfig, err)
	}
	if _, err := render.ParseColor(c.Camera.PointColor); err != nil {
		return fmt.Errorf("%w: point color: %v", ErrInvalidConfig, err)
	}
	if err := c.CameraConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
