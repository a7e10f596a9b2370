package geom

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIntersection(t *testing.T) {
	// plane y = 1, normal along +y
	plane := P(0, 1, 0)
	normal := NewVector(P(0, 0, 0), P(0, 2, 0))

	Convey("Segment crossing the plane", t, func() {
		seg := NewVector(P(0, 0, 0), P(2, 4, -2))
		p := Intersection(plane, normal, seg)
		So(p.X, ShouldAlmostEqual, 0.5, 1e-12)
		So(p.Y, ShouldAlmostEqual, 1, 1e-12)
		So(p.Z, ShouldAlmostEqual, -0.5, 1e-12)
	})

	Convey("Segment starting on the plane point", t, func() {
		seg := NewVector(plane, P(3, 5, 7))
		So(intersectionRatio(plane, normal, seg), ShouldEqual, 0)
		So(Intersection(plane, normal, seg), ShouldResemble, plane)
	})

	Convey("Normal length does not change the crossing", t, func() {
		seg := NewVector(P(1, -1, 1), P(1, 3, 1))
		short := NewVector(P(0, 0, 0), P(0, 0.25, 0))
		So(Intersection(plane, normal, seg), ShouldResemble, Intersection(plane, short, seg))
		So(Intersection(plane, normal, seg).Y, ShouldAlmostEqual, 1, 1e-12)
	})

	Convey("Both endpoints on the same side", t, func() {
		// distances 1 and 3 on the same side give ratio 1/4, which lands
		// between the endpoints instead of on the plane behind them
		seg := NewVector(P(0, 2, 0), P(0, 4, 0))
		p := Intersection(plane, normal, seg)
		So(p.Y, ShouldAlmostEqual, 2.5, 1e-12)
		So(p.Y, ShouldNotAlmostEqual, 1, 1e-6)
	})

	Convey("Both endpoints on the plane", t, func() {
		seg := NewVector(P(-1, 1, 0), P(1, 1, 0))
		p := Intersection(plane, normal, seg)
		So(math.IsNaN(p.X), ShouldBeTrue)
		So(math.IsNaN(p.Y), ShouldBeTrue)
		So(math.IsNaN(p.Z), ShouldBeTrue)
	})
}

func TestAlongSegment(t *testing.T) {
	Convey("AlongSegment", t, func() {
		seg := NewVector(P(1, 1, 1), P(1, 11, 1))

		Convey("walks a fixed distance toward P2", func() {
			So(AlongSegment(2.5, seg), ShouldResemble, P(1, 3.5, 1))
			So(AlongSegment(seg.Len, seg), ShouldResemble, seg.P2)
		})

		Convey("is NaN for a zero-length segment", func() {
			p := AlongSegment(1, NewVector(P(2, 2, 2), P(2, 2, 2)))
			So(math.IsNaN(p.X), ShouldBeTrue)
		})
	})
}
