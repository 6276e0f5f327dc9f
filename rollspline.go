/*
Package rollspline evaluates roll splines for character rigs.

A roll spline drives an intermediate joint from a chain of control
transforms. For a parameter u in [0,1] the chain is treated as a sequence of
cubic segments, one between each pair of neighbouring controls. The
position on the curve, the interpolated orientation, scale and roll angle of
the enclosing controls are combined into a single transform, expressed in
the local space of an output parent.

Evaluation is a pure function of its inputs:

	m, err := rollspline.Evaluate(controls, params)

No state is kept between calls, so independent evaluations may run
concurrently as long as every call owns its input.

Optionally the curve is re-parametrized by arc length, either within the
segment enclosing u or across the whole chain (params.Absolute), which makes
joints driven by evenly spaced u values spread evenly along the curve.

Matrices follow mathgl's convention (column-major, column vectors). The
result r of an evaluation therefore satisfies outputParent⋅r = world.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package rollspline

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rollspline'
func tracer() tracing.Trace {
	return tracing.Select("rollspline")
}

// === Numeric helpers =======================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// ZapMat zaps every entry of a matrix. Used for printing results.
func ZapMat(m mgl64.Mat4) mgl64.Mat4 {
	for i := range m {
		m[i] = Zap(m[i])
	}
	return m
}

// Clamp u to the parameter range [0,1].
func clamp01(u float64) float64 {
	return math.Max(0, math.Min(1, u))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
