package rollspline

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// assembleScale builds the output scale from the blended scale. last is the
// scale of the chain's last control, which the literal policy leaks into
// the Y and Z components.
func assembleScale(policy ScaleAssemblyPolicy, blended, last mgl64.Vec3) mgl64.Vec3 {
	if policy == ScaleCorrected {
		return blended
	}
	return mgl64.Vec3{blended.Z(), last.Y(), last.Z()}
}

// Compose builds translation ⋅ rotation ⋅ scale.
func Compose(position mgl64.Vec3, rotation mgl64.Quat, scale mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(position.Elem()).
		Mul4(rotation.Mat4()).
		Mul4(mgl64.Scale3D(scale.Elem()))
}

// Reparent expresses the world transform raw relative to outputParent.
func Reparent(raw, outputParent mgl64.Mat4) (mgl64.Mat4, error) {
	det := outputParent.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return mgl64.Ident4(), ErrSingularParent
	}
	return outputParent.Inv().Mul4(raw), nil
}
