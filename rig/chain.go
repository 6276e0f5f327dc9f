package rig

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/rollspline"
)

// Chain builds control chains programmatically. Start with NewChain()
// and add controls; modifiers apply to the control added last:
//
//	controls := NewChain().
//		Control(mgl64.Vec3{0, 0, 0}).
//		Control(mgl64.Vec3{5, 0, 0}).Rotated(mgl64.Vec3{0, 0, 30}).Rolled(45).
//		Control(mgl64.Vec3{10, 0, 0}).Scaled(mgl64.Vec3{2, 1, 1}).
//		Controls()
//
// Unless told otherwise a control is its own parent.
type Chain struct {
	controls     []chainControl
	outputParent mgl64.Mat4
}

type chainControl struct {
	translate mgl64.Vec3
	rotate    mgl64.Vec3 // degrees
	scale     mgl64.Vec3
	parent    *mgl64.Vec3 // parent rotation in degrees, if differing
	roll      float64     // degrees
}

// NewChain creates an empty chain with an identity output parent.
func NewChain() *Chain {
	return &Chain{outputParent: mgl64.Ident4()}
}

// Control appends a control at pos, unrotated and unscaled.
func (ch *Chain) Control(pos mgl64.Vec3) *Chain {
	ch.controls = append(ch.controls, chainControl{
		translate: pos,
		scale:     mgl64.Vec3{1, 1, 1},
	})
	return ch
}

// Rotated sets the rotation of the last control, Euler angles in degrees.
func (ch *Chain) Rotated(deg mgl64.Vec3) *Chain {
	ch.last().rotate = deg
	return ch
}

// Scaled sets the scale of the last control.
func (ch *Chain) Scaled(s mgl64.Vec3) *Chain {
	ch.last().scale = s
	return ch
}

// Rolled sets the roll angle of the last control, in degrees.
func (ch *Chain) Rolled(deg float64) *Chain {
	ch.last().roll = deg
	return ch
}

// ParentRotated gives the last control a parent with its own rotation,
// Euler angles in degrees. The parent shares the control's position.
func (ch *Chain) ParentRotated(deg mgl64.Vec3) *Chain {
	ch.last().parent = &deg
	return ch
}

// OutputParent sets the frame results are expressed in.
func (ch *Chain) OutputParent(m mgl64.Mat4) *Chain {
	ch.outputParent = m
	return ch
}

// N returns the number of controls.
func (ch *Chain) N() int {
	return len(ch.controls)
}

// Controls creates the evaluation input for the chain.
func (ch *Chain) Controls() rollspline.Controls {
	c := rollspline.Controls{
		Parents:      make([]mgl64.Mat4, ch.N()),
		Transforms:   make([]mgl64.Mat4, ch.N()),
		RollDegrees:  make([]float64, ch.N()),
		OutputParent: ch.outputParent,
	}
	for i, ctl := range ch.controls {
		c.Transforms[i] = TRS(ctl.translate, ctl.rotate, ctl.scale)
		c.Parents[i] = c.Transforms[i]
		if ctl.parent != nil {
			c.Parents[i] = TRS(ctl.translate, *ctl.parent, mgl64.Vec3{1, 1, 1})
		}
		c.RollDegrees[i] = ctl.roll
	}
	return c
}

func (ch *Chain) last() *chainControl {
	if ch.N() == 0 {
		panic("cannot modify control of empty chain")
	}
	return &ch.controls[ch.N()-1]
}

// Rotation converts Euler angles in degrees to a rotation. X is applied
// first, then Y, then Z.
func Rotation(deg mgl64.Vec3) mgl64.Quat {
	rx := mgl64.QuatRotate(mgl64.DegToRad(deg.X()), mgl64.Vec3{1, 0, 0})
	ry := mgl64.QuatRotate(mgl64.DegToRad(deg.Y()), mgl64.Vec3{0, 1, 0})
	rz := mgl64.QuatRotate(mgl64.DegToRad(deg.Z()), mgl64.Vec3{0, 0, 1})
	return rz.Mul(ry).Mul(rx)
}

// TRS composes translation, rotation (Euler degrees) and scale.
func TRS(translate, rotateDeg, scale mgl64.Vec3) mgl64.Mat4 {
	return rollspline.Compose(translate, Rotation(rotateDeg), scale)
}
