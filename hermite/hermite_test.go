package hermite

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-9

func near(a, b mgl64.Vec3, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func vecNear(t *testing.T, want, got mgl64.Vec3, msg string) {
	t.Helper()
	if !near(want, got, tolerance) {
		t.Errorf("%s: expected %v, got %v", msg, want, got)
	}
}

func TestBezierEndpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p0, p1 := mgl64.Vec3{1, 2, 3}, mgl64.Vec3{4, -1, 0}
	t0, t1 := mgl64.Vec3{0, 2, 0}, mgl64.Vec3{1, 0, 1}
	pos, dir := Bezier4Point(p0, t0, p1, t1, 0)
	vecNear(t, p0, pos, "start point")
	vecNear(t, t0.Normalize(), dir, "start direction")
	pos, dir = Bezier4Point(p0, t0, p1, t1, 1)
	vecNear(t, p1, pos, "end point")
	vecNear(t, t1.Normalize(), dir, "end direction")
}

func TestBezierColinear(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p0, p1 := mgl64.Vec3{0, 0, 0}, mgl64.Vec3{5, 0, 0}
	tan := mgl64.Vec3{2.5, 0, 0}
	pos, dir := Bezier4Point(p0, tan, p1, tan, 0.5)
	vecNear(t, mgl64.Vec3{2.5, 0, 0}, pos, "mid point")
	vecNear(t, UnitX, dir, "direction")
	// x(s) = 7.5s - 7.5s² + 5s³ for these handles
	pos, _ = Bezier4Point(p0, tan, p1, tan, 0.25)
	assert.InDelta(t, 1.484375, pos.X(), tolerance)
}

func TestBezierReversal(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p0, p1 := mgl64.Vec3{0, 0, 0}, mgl64.Vec3{3, 4, 1}
	t0, t1 := mgl64.Vec3{1, 2, 0}, mgl64.Vec3{2, -1, 0.5}
	for _, s := range []float64{0, 0.1, 0.3, 0.5, 0.77, 1} {
		a, da := Bezier4Point(p0, t0, p1, t1, s)
		b, db := Bezier4Point(p1, t1.Mul(-1), p0, t0.Mul(-1), 1-s)
		vecNear(t, a, b, "reversed segment position")
		vecNear(t, da, db.Mul(-1), "reversed segment direction")
	}
}

func TestBezierNullTangents(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p0, p1 := mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 2}
	_, dir := Bezier4Point(p0, mgl64.Vec3{}, p1, mgl64.Vec3{}, 0)
	vecNear(t, mgl64.Vec3{0, 0, 1}, dir, "chord fallback")
	_, dir = Bezier4Point(p0, mgl64.Vec3{}, p0, mgl64.Vec3{}, 0.5)
	vecNear(t, UnitX, dir, "null curve")
}

func TestLerp(t *testing.T) {
	a, b := mgl64.Vec3{0, 1, 2}, mgl64.Vec3{2, 3, 4}
	vecNear(t, mgl64.Vec3{1, 2, 3}, Lerp(a, b, 0.5), "halfway")
	vecNear(t, a, Lerp(a, b, 0), "start")
	vecNear(t, b, Lerp(a, b, 1), "end")
}
