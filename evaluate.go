package rollspline

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Result holds the intermediate values of an evaluation.
type Result struct {
	Location  SegmentLocation   // where u falls on the chain
	Resampled ResampledLocation // where the curve point was looked up
	Position  mgl64.Vec3        // point on the curve, world space
	Frame     Frame             // joint frame and blended values
	Scale     mgl64.Vec3        // scale as assembled into the output
	World     mgl64.Mat4        // joint transform in world space
	Local     mgl64.Mat4        // joint transform relative to the output parent
}

// Evaluate computes the joint transform for params.U on the chain of
// controls, relative to controls.OutputParent.
func Evaluate(controls Controls, params Params) (mgl64.Mat4, error) {
	r, err := EvaluateDetailed(controls, params)
	if err != nil {
		return mgl64.Ident4(), err
	}
	return r.Local, nil
}

// EvaluateDetailed is Evaluate, reporting intermediate values.
//
// Errors are ErrNoControls and ErrLengthMismatch for unusable controls,
// ErrParameterRange and ErrSubdivisions for unusable parameters, and
// ErrSingularParent. Degenerate geometry does not fail an evaluation.
func EvaluateDetailed(controls Controls, params Params) (*Result, error) {
	if err := controls.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return evaluate(ExtractSamples(controls), controls.OutputParent, params)
}

// EvaluateChain evaluates count joints at evenly spaced parameters,
// u = i/(count-1), from the start to the end of the chain. A single joint
// sits at u = 0. params.U is ignored.
func EvaluateChain(controls Controls, params Params, count int) ([]mgl64.Mat4, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrJointCount, count)
	}
	if err := controls.Validate(); err != nil {
		return nil, err
	}
	params.U = 0
	if err := params.Validate(); err != nil {
		return nil, err
	}
	samples := ExtractSamples(controls)
	joints := make([]mgl64.Mat4, count)
	for i := range joints {
		if count > 1 {
			params.U = float64(i) / float64(count-1)
		}
		r, err := evaluate(samples, controls.OutputParent, params)
		if err != nil {
			return nil, err
		}
		joints[i] = r.Local
	}
	return joints, nil
}

func evaluate(samples []ControlSample, outputParent mgl64.Mat4, params Params) (*Result, error) {
	u := clamp01(params.U)
	loc := LocateSegment(u, len(samples))
	tracer().Debugf("u = %.4g at segment %s of %d controls", u, loc, len(samples))
	pt := pointAt(samples, loc, u, params)
	r := &Result{
		Location:  loc,
		Resampled: pt.location,
		Position:  pt.position,
		Frame:     BlendFrame(samples, loc, pt.tangent),
	}
	r.Scale = assembleScale(params.ScalePolicy, r.Frame.Scale, samples[len(samples)-1].Scale)
	r.World = Compose(r.Position, r.Frame.Rotation(), r.Scale)
	local, err := Reparent(r.World, outputParent)
	if err != nil {
		return nil, err
	}
	r.Local = local
	return r, nil
}
