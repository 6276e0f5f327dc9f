package rollspline

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/rollspline/hermite"
)

// curvePoint is a position on the chain's curve together with the curve's
// direction there.
type curvePoint struct {
	position mgl64.Vec3
	tangent  mgl64.Vec3
	location ResampledLocation
}

func evalSegment(samples []ControlSample, loc SegmentLocation) (mgl64.Vec3, mgl64.Vec3) {
	a, b := samples[loc.Index1], samples[loc.Index2]
	return hermite.Bezier4Point(a.Position, a.Tangent, b.Position, b.Tangent, loc.Fraction)
}

// pointAt looks up the curve point for the raw location loc (or, for global
// resampling, for u). Resampling which fails for degenerate geometry falls
// back to direct evaluation.
func pointAt(samples []ControlSample, loc SegmentLocation, u float64, p Params) curvePoint {
	mode := p.Mode()
	if mode != ResampleNone {
		var pt curvePoint
		var err error
		if len(samples) < 2 {
			err = fmt.Errorf("%w: chain has a single control", ErrDegenerateGeometry)
		} else if mode == ResampleLocal {
			pt, err = resampleLocal(samples, loc, p.Subdivisions)
		} else {
			pt, err = resampleGlobal(samples, u, p.Subdivisions)
		}
		if err == nil {
			return pt
		}
		tracer().Infof("%s resampling not possible, evaluating directly: %v", mode, err)
	}
	pos, dir := evalSegment(samples, loc)
	return curvePoint{
		position: pos,
		tangent:  dir,
		location: ResampledLocation{Mode: ResampleNone, Query: loc.Fraction, Bracket: -1},
	}
}

// resampleLocal builds an arc table over the segment enclosing loc and
// looks up the local fraction in it.
func resampleLocal(samples []ControlSample, loc SegmentLocation, n int) (curvePoint, error) {
	table, err := hermite.NewArcTable(n, func(s float64) (mgl64.Vec3, mgl64.Vec3) {
		return evalSegment(samples, SegmentLocation{loc.Index1, loc.Index2, s})
	})
	if err != nil {
		return curvePoint{}, err
	}
	return lookup(table, ResampleLocal, loc.Fraction), nil
}

// resampleGlobal builds one arc table across the whole chain, every sample
// finding its own segment, and looks up u in it.
func resampleGlobal(samples []ControlSample, u float64, n int) (curvePoint, error) {
	table, err := hermite.NewArcTable(n, func(s float64) (mgl64.Vec3, mgl64.Vec3) {
		return evalSegment(samples, LocateSegment(s, len(samples)))
	})
	if err != nil {
		return curvePoint{}, err
	}
	return lookup(table, ResampleGlobal, u), nil
}

func lookup(table *hermite.ArcTable, mode ResampleMode, v float64) curvePoint {
	l := table.At(v)
	pt := curvePoint{
		position: l.Position,
		tangent:  l.Tangent,
		location: ResampledLocation{
			Mode:     mode,
			Query:    v,
			Bracket:  l.Bracket,
			Fraction: l.Fraction,
		},
	}
	tracer().Debugf("resampled %s", pt.location)
	return pt
}
