package hermite

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rollspline.hermite'
func tracer() tracing.Trace {
	return tracing.Select("rollspline.hermite")
}

const _epsilon = 0.0000001

// UnitX is the fallback direction for curves without any extent.
var UnitX = mgl64.Vec3{1, 0, 0}

// Bezier4Point evaluates the segment from p0 to p1 with tangents t0 and t1
// at parameter s in [0,1]. It returns the point on the curve and the unit
// direction of the curve's derivative at s.
//
// If the derivative vanishes at s (zero tangents at an end point), the
// chord direction p1-p0 is returned instead.
func Bezier4Point(p0, t0, p1, t1 mgl64.Vec3, s float64) (mgl64.Vec3, mgl64.Vec3) {
	b := p0.Add(t0)
	c := p1.Sub(t1)
	ab := Lerp(p0, b, s)
	bc := Lerp(b, c, s)
	cd := Lerp(c, p1, s)
	abbc := Lerp(ab, bc, s)
	bccd := Lerp(bc, cd, s)
	pos := Lerp(abbc, bccd, s)
	dir := Direction(bccd.Sub(abbc), p1.Sub(p0))
	return pos, dir
}

// Lerp interpolates linearly between a (t=0) and b (t=1).
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Direction returns v normalized. If v is (nearly) the null vector, it
// tries fallback instead, and if that is null as well it returns UnitX.
func Direction(v, fallback mgl64.Vec3) mgl64.Vec3 {
	if l := v.Len(); l > _epsilon {
		return v.Mul(1 / l)
	}
	if l := fallback.Len(); l > _epsilon {
		tracer().Debugf("null direction, falling back to %v", fallback)
		return fallback.Mul(1 / l)
	}
	return UnitX
}
