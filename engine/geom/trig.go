package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Angles are kept in degrees everywhere; these convert at the point of use.

func Sin(deg float64) float64 { return math.Sin(mgl64.DegToRad(deg)) }
func Cos(deg float64) float64 { return math.Cos(mgl64.DegToRad(deg)) }
func Tan(deg float64) float64 { return math.Tan(mgl64.DegToRad(deg)) }
