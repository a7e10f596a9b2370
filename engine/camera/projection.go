package camera

import "github.com/1siamBot/wireview/engine/geom"

// Project maps a world point to canvas pixels for state s.
//
// Nothing is culled. Points behind the camera or beside the focal plane
// still produce coordinates, possibly far off canvas or NaN.
func (c *Camera) Project(s State, p geom.Point) (x, y float64) {
	sight := geom.NewVector(s.P1, p)

	var hit geom.Point
	switch c.cfg.Method {
	case MethodSightline:
		hit = geom.AlongSegment(c.cfg.FocalLength, sight)
	default:
		hit = geom.Intersection(s.P3, s.Normal, sight)
	}
	pv := geom.NewVector(s.P1, hit)

	// Undo the camera orientation around P1: yaw by +RZ in the xy plane,
	// then pitch by -RX in the (z, y) plane. Forward ends up on +y.
	sz, cz := geom.Sin(s.RZ), geom.Cos(s.RZ)
	vx := cz*pv.X - sz*pv.Y
	vy := sz*pv.X + cz*pv.Y

	sx, cx := geom.Sin(-s.RX), geom.Cos(-s.RX)
	vz := cx*pv.Z - sx*vy

	x = float64(c.cfg.CanvasWidth)/2 + vx*c.projExp
	y = float64(c.cfg.CanvasHeight)/2 - vz*c.projExp
	return x, y
}

// Projection projects every point and hands each one to d as a filled
// circle.
func (c *Camera) Projection(s State, points []geom.Point, d CircleDrawer) {
	for _, p := range points {
		x, y := c.Project(s, p)
		d.DrawCircle(x, y, c.cfg.PointRadius, c.cfg.PointColor)
	}
}
