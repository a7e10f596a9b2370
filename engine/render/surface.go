// Package render provides the drawing targets a viewer tick paints into.
package render

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Surface is a canvas that can be cleared and dotted with filled circles.
// Non-finite coordinates must be tolerated; implementations skip them.
type Surface interface {
	Clear()
	DrawCircle(x, y, radius float64, color string)
}

// ParseColor accepts #rgb, #rgba, #rrggbb, #rrggbbaa and SVG color names.
func ParseColor(s string) (color.RGBA, error) {
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return c, nil
		}
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	hex := s[1:]
	switch len(hex) {
	case 3, 4:
		// #abc is #aabbcc
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	case 6, 8:
	default:
		return color.RGBA{}, fmt.Errorf("bad color length %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.RGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// Palette caches parsed colors. Unparseable names are logged once and drawn
// black.
type Palette struct {
	cache map[string]color.RGBA
}

func NewPalette() *Palette {
	return &Palette{cache: make(map[string]color.RGBA)}
}

func (p *Palette) Color(s string) color.RGBA {
	if c, ok := p.cache[s]; ok {
		return c
	}
	c, err := ParseColor(s)
	if err != nil {
		log.Printf("Warning: %v, using black", err)
		c = color.RGBA{0, 0, 0, 255}
	}
	p.cache[s] = c
	return c
}

// Finite reports whether none of vs is NaN or infinite.
func Finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
