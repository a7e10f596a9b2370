// Package scene holds the static set of world points the viewer draws.
package scene

import "github.com/1siamBot/wireview/engine/geom"

// cuboid is a 2x2x2 box centred at (0, 2, 0): one unit ahead of the default
// camera position.
var cuboid = [...]geom.Point{
	{X: 1, Y: 1, Z: 1},
	{X: 1, Y: 3, Z: 1},
	{X: -1, Y: 3, Z: 1},
	{X: -1, Y: 1, Z: 1},
	{X: 1, Y: 1, Z: -1},
	{X: 1, Y: 3, Z: -1},
	{X: -1, Y: 3, Z: -1},
	{X: -1, Y: 1, Z: -1},
}

// Cuboid returns the eight box vertices in their fixed order. Each call
// returns a fresh slice, so callers cannot alter the shared set.
func Cuboid() []geom.Point {
	pts := make([]geom.Point, len(cuboid))
	copy(pts, cuboid[:])
	return pts
}
