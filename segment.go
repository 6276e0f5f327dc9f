package rollspline

import (
	"fmt"
	"math"
)

// SegmentLocation is a curve parameter resolved to a segment of the chain:
// the segment from control Index1 to control Index2, at local parameter
// Fraction.
//
// For a chain of a single control both indices are 0.
type SegmentLocation struct {
	Index1, Index2 int
	Fraction       float64
}

func (loc SegmentLocation) String() string {
	return fmt.Sprintf("[%d,%d]@%.4g", loc.Index1, loc.Index2, loc.Fraction)
}

// LocateSegment partitions [0,1] uniformly into n-1 segments and finds the
// segment for u. u = 1 resolves to the end of the last segment.
func LocateSegment(u float64, n int) SegmentLocation {
	if n < 2 {
		return SegmentLocation{}
	}
	step := 1.0 / float64(n-1)
	i := int(math.Min(float64(n-2), u/step))
	if i < 0 {
		i = 0
	}
	return SegmentLocation{
		Index1:   i,
		Index2:   i + 1,
		Fraction: (u - step*float64(i)) / step,
	}
}

// ResampledLocation is where the arc-length lookup found a query point.
// It never replaces the SegmentLocation it was derived from; orientation,
// scale and roll are blended at the raw location.
type ResampledLocation struct {
	Mode     ResampleMode
	Query    float64 // the normalized distance looked up
	Bracket  int     // arc table samples Bracket and Bracket+1; -1 without resampling
	Fraction float64 // position within the bracket
}

func (loc ResampledLocation) String() string {
	if loc.Bracket < 0 {
		return fmt.Sprintf("%s@%.4g", loc.Mode, loc.Query)
	}
	return fmt.Sprintf("%s@%.4g: bracket %d + %.4g", loc.Mode, loc.Query, loc.Bracket, loc.Fraction)
}
