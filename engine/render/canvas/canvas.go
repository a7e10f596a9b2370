// Package canvas is the ebiten-backed render.Surface used by the viewer
// window.
package canvas

import (
	"image/color"
	"math"

	"github.com/1siamBot/wireview/engine/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas draws into an offscreen image the window later scales to fit.
type Canvas struct {
	Image      *ebiten.Image
	background color.RGBA
	palette    *render.Palette
}

// New creates a w x h canvas. background must parse with render.ParseColor.
func New(w, h int, background string) (*Canvas, error) {
	bg, err := render.ParseColor(background)
	if err != nil {
		return nil, err
	}
	return &Canvas{
		Image:      ebiten.NewImage(w, h),
		background: bg,
		palette:    render.NewPalette(),
	}, nil
}

func (c *Canvas) Clear() {
	c.Image.Fill(c.background)
}

// DrawCircle skips non-finite input; vector paths with NaN vertices are
// not worth handing to the GPU.
func (c *Canvas) DrawCircle(x, y, radius float64, col string) {
	if !render.Finite(x, y, radius) {
		return
	}
	vector.DrawFilledCircle(c.Image, float32(x), float32(y), float32(radius), c.palette.Color(col), true)
}

// DrawTo scales the canvas onto screen, preserving its aspect ratio.
func (c *Canvas) DrawTo(screen *ebiten.Image) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	cw, ch := c.Image.Bounds().Dx(), c.Image.Bounds().Dy()
	scale := math.Min(float64(sw)/float64(cw), float64(sh)/float64(ch))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((float64(sw)-float64(cw)*scale)/2, (float64(sh)-float64(ch)*scale)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(c.Image, op)
}
