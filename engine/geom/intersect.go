package geom

import "math"

// Intersection returns where the line through segment crosses the plane that
// contains planePoint and is perpendicular to normal.
//
// The endpoints are assumed to lie on opposite sides of the plane. The side
// is not checked: for two endpoints on the same side the result is still a
// point on the segment's line, just not the crossing. Both endpoints on the
// plane gives 0/0 and a NaN point.
func Intersection(planePoint Point, normal, segment Vector) Point {
	return segment.Lerp(intersectionRatio(planePoint, normal, segment))
}

func intersectionRatio(planePoint Point, normal, segment Vector) float64 {
	pan := math.Abs(NewVector(planePoint, segment.P1).Dot(normal))
	pbn := math.Abs(NewVector(planePoint, segment.P2).Dot(normal))
	return pan / (pan + pbn)
}

// AlongSegment returns the point dist units from segment.P1 toward
// segment.P2. A zero-length segment yields NaN coordinates.
func AlongSegment(dist float64, segment Vector) Point {
	return segment.Lerp(dist / segment.Len)
}
