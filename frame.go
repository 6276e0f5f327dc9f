package rollspline

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/rollspline/hermite"
)

var (
	worldUp   = mgl64.Vec3{0, 1, 0}
	worldSide = mgl64.Vec3{0, 0, 1}
)

// Frame is the orthonormal, right-handed frame of a joint on the curve,
// together with the values blended from the enclosing controls.
type Frame struct {
	X, Y, Z     mgl64.Vec3 // X follows the curve
	Orientation mgl64.Quat // blended control orientation, before roll
	Roll        float64    // blended roll angle, radians
	Scale       mgl64.Vec3 // blended scale
}

// BlendFrame blends scale, orientation and roll of the controls enclosing
// loc and builds a frame around the curve direction tangent.
//
// The up axis is world-up carried by the blended orientation, then rolled
// around the tangent. Y and Z are made orthogonal to the tangent by cross
// products, so the tangent is never bent.
func BlendFrame(samples []ControlSample, loc SegmentLocation, tangent mgl64.Vec3) Frame {
	a, b := samples[loc.Index1], samples[loc.Index2]
	f := loc.Fraction
	fr := Frame{
		Orientation: slerp(a.Orientation, b.Orientation, f),
		Roll:        lerp(a.Roll, b.Roll, f),
		Scale:       hermite.Lerp(a.Scale, b.Scale, f),
	}
	fr.X = hermite.Direction(tangent, fr.Orientation.Rotate(hermite.UnitX))
	up := fr.Orientation.Rotate(worldUp)
	up = mgl64.QuatRotate(fr.Roll, fr.X).Rotate(up)
	z := fr.X.Cross(up)
	if Is0(z.Len()) {
		// up is parallel to the tangent, borrow the orientation's side axis
		tracer().Debugf("up axis parallel to curve at %s", loc)
		side := fr.Orientation.Rotate(worldSide)
		z = side.Sub(fr.X.Mul(side.Dot(fr.X)))
	}
	fr.Z = hermite.Direction(z, worldSide)
	fr.Y = hermite.Direction(fr.Z.Cross(fr.X), worldUp)
	return fr
}

// Rotation returns the frame's axes as a rotation.
func (fr Frame) Rotation() mgl64.Quat {
	m := mgl64.Mat3FromCols(fr.X, fr.Y, fr.Z)
	return mgl64.Mat4ToQuat(m.Mat4()).Normalize()
}

// slerp interpolates along the shorter arc between a and b.
func slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t)
}
