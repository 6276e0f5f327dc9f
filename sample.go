package rollspline

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// TangentScale is applied to a control's X scale to get the length of its
// tangent.
const TangentScale = 2.5

// Controls is the input of an evaluation. The three per-control slices are
// index aligned and must have equal length.
//
// Orientations are taken from Parents, not from Transforms: a parent
// carries the base orientation of a control before any animation of the
// control itself. Positions, tangents and scales come from Transforms.
type Controls struct {
	Parents      []mgl64.Mat4 // orientation source, one per control
	Transforms   []mgl64.Mat4 // control transforms in world space
	RollDegrees  []float64    // roll angle per control, in degrees
	OutputParent mgl64.Mat4   // the result is expressed relative to this
}

// NewControls creates controls where every transform is its own parent,
// with zero roll and an identity output parent.
func NewControls(transforms ...mgl64.Mat4) Controls {
	c := Controls{
		Parents:      make([]mgl64.Mat4, len(transforms)),
		Transforms:   make([]mgl64.Mat4, len(transforms)),
		RollDegrees:  make([]float64, len(transforms)),
		OutputParent: mgl64.Ident4(),
	}
	copy(c.Parents, transforms)
	copy(c.Transforms, transforms)
	return c
}

// N is the number of controls.
func (c Controls) N() int {
	return len(c.Transforms)
}

// Validate checks the control count and the per-control slice lengths.
func (c Controls) Validate() error {
	n := len(c.Parents)
	if n < 1 {
		return ErrNoControls
	}
	if len(c.Transforms) != n || len(c.RollDegrees) != n {
		return fmt.Errorf("%w: %d parents, %d transforms, %d roll angles", ErrLengthMismatch,
			n, len(c.Transforms), len(c.RollDegrees))
	}
	return nil
}

// ControlSample is a control decomposed for interpolation.
type ControlSample struct {
	Position    mgl64.Vec3 // world translation of the control
	Tangent     mgl64.Vec3 // the control's X axis, 2.5 × X scale long
	Orientation mgl64.Quat // world rotation of the control's parent
	Scale       mgl64.Vec3 // world scale of the control
	Roll        float64    // radians
}

// ExtractSamples decomposes every control of c. It expects c to be valid.
func ExtractSamples(c Controls) []ControlSample {
	samples := make([]ControlSample, c.N())
	for i := range samples {
		pos, rot, scl := Decompose(c.Transforms[i])
		_, prot, _ := Decompose(c.Parents[i])
		samples[i] = ControlSample{
			Position:    pos,
			Tangent:     rot.Rotate(mgl64.Vec3{TangentScale * scl.X(), 0, 0}),
			Orientation: prot,
			Scale:       scl,
			Roll:        mgl64.DegToRad(c.RollDegrees[i]),
		}
	}
	return samples
}

// Decompose splits an affine transform into translation, rotation and
// scale. Shear is not recovered. A mirroring transform gets a negative
// X scale.
func Decompose(m mgl64.Mat4) (mgl64.Vec3, mgl64.Quat, mgl64.Vec3) {
	translation := m.Col(3).Vec3()
	sx, sy, sz := mgl64.Extract3DScale(m)
	scale := mgl64.Vec3{sx, sy, sz}
	var axes [3]mgl64.Vec3
	var flat []int // axes collapsed by a zero scale
	for i := range axes {
		if Is0(scale[i]) {
			flat = append(flat, i)
			continue
		}
		axes[i] = m.Col(i).Vec3().Mul(1 / scale[i])
	}
	switch len(flat) {
	case 0:
		if axes[0].Cross(axes[1]).Dot(axes[2]) < 0 {
			scale[0] = -scale[0]
			axes[0] = axes[0].Mul(-1)
		}
	case 1:
		i := flat[0]
		if c := axes[(i+1)%3].Cross(axes[(i+2)%3]); !Is0(c.Len()) {
			axes[i] = c.Normalize()
		} else {
			axes[i] = perpendicular(axes[(i+1)%3], i)
		}
	case 2:
		// complete the remaining axis k with the world axis following it
		k := 3 - flat[0] - flat[1]
		i, j := (k+1)%3, (k+2)%3
		axes[i] = perpendicular(axes[k], i)
		axes[j] = axes[k].Cross(axes[i])
	default:
		return translation, mgl64.QuatIdent(), scale
	}
	rot := mgl64.Mat3FromCols(axes[0], axes[1], axes[2])
	q := mgl64.Mat4ToQuat(rot.Mat4()).Normalize()
	return translation, q, scale
}

// perpendicular returns the world axis i (or the one following it, if i is
// parallel to a), made orthogonal to the unit vector a.
func perpendicular(a mgl64.Vec3, i int) mgl64.Vec3 {
	for n := 0; n < 3; n++ {
		var v mgl64.Vec3
		v[(i+n)%3] = 1
		v = v.Sub(a.Mul(v.Dot(a)))
		if !Is0(v.Len()) {
			return v.Normalize()
		}
	}
	return mgl64.Vec3{1, 0, 0}
}
