package camera

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidConfig = errors.New("camera: invalid config")

// Method selects how a sightline is brought onto the focal plane.
type Method uint8

const (
	// MethodPlane intersects the sightline with the focal plane.
	MethodPlane Method = iota
	// MethodSightline walks FocalLength along the sightline instead.
	MethodSightline
)

func (m Method) String() string {
	switch m {
	case MethodPlane:
		return "plane"
	case MethodSightline:
		return "sightline"
	}
	return fmt.Sprintf("Method(%d)", uint8(m))
}

// Config holds the camera's tuning constants
type Config struct {
	Speed        float64 // world units per tick
	RotationStep float64 // degrees per tick

	FocalLength     float64
	ScreenExpansion float64

	// Canvas geometry. CanvasExpansion / ScreenExpansion is the scale from
	// focal-plane units to pixels.
	CanvasExpansion           float64
	CanvasWidth, CanvasHeight int

	PointRadius float64
	PointColor  string

	Method Method
}

// DefaultConfig returns the tuning of a 16:9 canvas at 20x (320x180).
func DefaultConfig() Config {
	return Config{
		Speed:           0.05,
		RotationStep:    3,
		FocalLength:     0.006,
		ScreenExpansion: 0.002,
		CanvasExpansion: 20,
		CanvasWidth:     16 * 20,
		CanvasHeight:    9 * 20,
		PointRadius:     2,
		PointColor:      "#000",
		Method:          MethodPlane,
	}
}

// Validate reports the first field that cannot drive a camera.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"speed", c.Speed},
		{"focal length", c.FocalLength},
		{"screen expansion", c.ScreenExpansion},
		{"canvas expansion", c.CanvasExpansion},
		{"point radius", c.PointRadius},
	}
	for _, f := range positive {
		// also rejects NaN
		if !(f.v > 0) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidConfig, f.name, f.v)
		}
	}
	if math.IsNaN(c.RotationStep) || math.IsInf(c.RotationStep, 0) {
		return fmt.Errorf("%w: rotation step must be finite, got %v", ErrInvalidConfig, c.RotationStep)
	}
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalidConfig, c.CanvasWidth, c.CanvasHeight)
	}
	if c.Method > MethodSightline {
		return fmt.Errorf("%w: unknown projection %v", ErrInvalidConfig, c.Method)
	}
	return nil
}
