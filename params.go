package rollspline

import (
	"fmt"
	"math"
	"strings"
)

// DefaultSubdivisions is the number of arc table samples used if not
// configured otherwise.
const DefaultSubdivisions = 10

// MinSubdivisions is the least number of samples for arc-length resampling.
const MinSubdivisions = 3

// MaxSubdivisions is the largest number of samples for arc-length
// resampling, the range of the host's short attribute.
const MaxSubdivisions = 32767

// ScaleAssemblyPolicy decides how the interpolated scale enters the
// output transform.
type ScaleAssemblyPolicy int

const (
	// ScaleLiteral reproduces the scale assembly of existing rigs: the
	// X component receives the interpolated Z scale, Y and Z carry the
	// scale of the last control of the chain.
	ScaleLiteral ScaleAssemblyPolicy = iota
	// ScaleCorrected applies the interpolated scale per axis.
	ScaleCorrected
)

func (p ScaleAssemblyPolicy) String() string {
	switch p {
	case ScaleLiteral:
		return "literal"
	case ScaleCorrected:
		return "corrected"
	}
	return fmt.Sprintf("ScaleAssemblyPolicy(%d)", int(p))
}

// ParseScalePolicy reads a policy name as produced by String.
// The empty string selects ScaleLiteral.
func ParseScalePolicy(s string) (ScaleAssemblyPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "literal":
		return ScaleLiteral, nil
	case "corrected":
		return ScaleCorrected, nil
	}
	return ScaleLiteral, fmt.Errorf("unknown scale policy %q", s)
}

// ResampleMode selects how positions are looked up on the curve.
type ResampleMode int

const (
	ResampleNone   ResampleMode = iota // evaluate the segment at the raw fraction
	ResampleLocal                      // arc length within the enclosing segment
	ResampleGlobal                     // arc length across the whole chain
)

func (m ResampleMode) String() string {
	switch m {
	case ResampleNone:
		return "direct"
	case ResampleLocal:
		return "local"
	case ResampleGlobal:
		return "global"
	}
	return fmt.Sprintf("ResampleMode(%d)", int(m))
}

// Params are the per-evaluation settings.
type Params struct {
	U            float64             // curve parameter, clamped to [0,1]
	Resample     bool                // re-parametrize by arc length
	Subdivisions int                 // arc table samples, 3 to 32767 if Resample is set
	Absolute     bool                // resample across the whole chain; needs Resample
	ScalePolicy  ScaleAssemblyPolicy // see ScaleAssemblyPolicy
}

// DefaultParams returns u = 0 without resampling, with DefaultSubdivisions
// prepared for resampling and the literal scale policy.
func DefaultParams() Params {
	return Params{
		Subdivisions: DefaultSubdivisions,
		ScalePolicy:  ScaleLiteral,
	}
}

// Mode derives the resample mode. Absolute is ignored unless Resample is set.
func (p Params) Mode() ResampleMode {
	if !p.Resample {
		return ResampleNone
	}
	if p.Absolute {
		return ResampleGlobal
	}
	return ResampleLocal
}

// Validate checks the parameters for an evaluation.
func (p Params) Validate() error {
	if math.IsNaN(p.U) {
		return ErrParameterRange
	}
	if p.Resample && (p.Subdivisions < MinSubdivisions || p.Subdivisions > MaxSubdivisions) {
		return fmt.Errorf("%w: got %d", ErrSubdivisions, p.Subdivisions)
	}
	if p.Absolute && !p.Resample {
		tracer().Debugf("absolute resampling requested without resampling, ignored")
	}
	return nil
}
