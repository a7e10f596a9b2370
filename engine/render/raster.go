package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Raster is a software Surface over an RGBA image. It needs no window, so
// headless tools and tests can render frames with it.
type Raster struct {
	Img        *image.RGBA
	background color.RGBA
	palette    *Palette
}

// NewRaster creates a w x h raster cleared to background.
func NewRaster(w, h int, background string) (*Raster, error) {
	bg, err := ParseColor(background)
	if err != nil {
		return nil, err
	}
	r := &Raster{
		Img:        image.NewRGBA(image.Rect(0, 0, w, h)),
		background: bg,
		palette:    NewPalette(),
	}
	r.Clear()
	return r, nil
}

func (r *Raster) Clear() {
	xdraw.Draw(r.Img, r.Img.Bounds(), &image.Uniform{C: r.background}, image.Point{}, xdraw.Src)
}

// DrawCircle fills every pixel whose centre lies within radius of (x, y).
// Parts outside the image are clipped.
func (r *Raster) DrawCircle(x, y, radius float64, c string) {
	if !Finite(x, y, radius) || radius <= 0 {
		return
	}
	b := r.Img.Bounds()
	if x+radius < float64(b.Min.X) || x-radius > float64(b.Max.X) ||
		y+radius < float64(b.Min.Y) || y-radius > float64(b.Max.Y) {
		return
	}
	col := r.palette.Color(c)

	minX := max(b.Min.X, int(math.Floor(x-radius)))
	maxX := min(b.Max.X-1, int(math.Ceil(x+radius)))
	minY := max(b.Min.Y, int(math.Floor(y-radius)))
	maxY := min(b.Max.Y-1, int(math.Ceil(y+radius)))
	r2 := radius * radius
	for py := minY; py <= maxY; py++ {
		dy := float64(py) + 0.5 - y
		for px := minX; px <= maxX; px++ {
			dx := float64(px) + 0.5 - x
			if dx*dx+dy*dy <= r2 {
				r.Img.SetRGBA(px, py, col)
			}
		}
	}
}

// Scaled returns a copy enlarged by an integer factor with nearest-neighbour
// sampling, keeping the dots crisp.
func (r *Raster) Scaled(factor int) *image.RGBA {
	if factor <= 1 {
		out := image.NewRGBA(r.Img.Bounds())
		copy(out.Pix, r.Img.Pix)
		return out
	}
	b := r.Img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), r.Img, b, xdraw.Src, nil)
	return out
}

// WritePNG encodes the raster, enlarged by factor, as PNG.
func (r *Raster) WritePNG(w io.Writer, factor int) error {
	return png.Encode(w, r.Scaled(factor))
}
