package hermite

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrTooFewSamples indicates an arc table with less than 3 samples.
	ErrTooFewSamples = errors.New("arc table needs at least 3 samples")
	// ErrDegenerateGeometry indicates a curve without measurable length.
	ErrDegenerateGeometry = errors.New("degenerate curve geometry")
)

// Sampler evaluates a curve at parameter s in [0,1], returning position
// and unit direction. Bezier4Point with fixed end points is a Sampler.
type Sampler func(s float64) (mgl64.Vec3, mgl64.Vec3)

// ArcTable holds samples of a curve at evenly spaced parameters together
// with the normalized cumulative chord length up to each sample.
type ArcTable struct {
	positions []mgl64.Vec3
	tangents  []mgl64.Vec3
	dist      []float64 // non-decreasing, dist[0] = 0, dist[n-1] = 1
	length    float64
}

// Lookup is the result of looking up a normalized distance in an ArcTable.
type Lookup struct {
	Bracket  int        // samples Bracket and Bracket+1 enclose the distance
	Fraction float64    // position between the two samples, in [0,1]
	Position mgl64.Vec3 // interpolated position
	Tangent  mgl64.Vec3 // interpolated direction, not re-normalized
}

// NewArcTable samples curve at n evenly spaced parameters, s = i/(n-1).
//
// It returns ErrDegenerateGeometry if the samples do not span any distance,
// as the distance table cannot be normalized then.
func NewArcTable(n int, curve Sampler) (*ArcTable, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSamples, n)
	}
	t := &ArcTable{
		positions: make([]mgl64.Vec3, n),
		tangents:  make([]mgl64.Vec3, n),
		dist:      make([]float64, n),
	}
	chords := make([]float64, n)
	step := 1.0 / float64(n-1)
	for i := 0; i < n; i++ {
		s := float64(i) * step
		if i == n-1 {
			s = 1
		}
		t.positions[i], t.tangents[i] = curve(s)
		if i > 0 {
			chords[i] = t.positions[i].Sub(t.positions[i-1]).Len()
		}
	}
	floats.CumSum(t.dist, chords)
	t.length = t.dist[n-1]
	if !(t.length > _epsilon) || math.IsInf(t.length, 0) {
		return nil, fmt.Errorf("%w: arc length is %g", ErrDegenerateGeometry, t.length)
	}
	floats.Scale(1/t.length, t.dist)
	for i := range t.dist {
		t.dist[i] = math.Min(t.dist[i], 1) // keep the table sorted after rounding
	}
	t.dist[n-1] = 1
	tracer().Debugf("arc table with %d samples, length %.4g", n, t.length)
	return t, nil
}

// N returns the number of samples.
func (t *ArcTable) N() int {
	return len(t.dist)
}

// Length is the accumulated chord length of the sampled curve.
func (t *ArcTable) Length() float64 {
	return t.length
}

// Distances returns a copy of the normalized cumulative distances.
func (t *ArcTable) Distances() []float64 {
	d := make([]float64, len(t.dist))
	copy(d, t.dist)
	return d
}

// Sample returns position and direction of sample i.
func (t *ArcTable) Sample(i int) (mgl64.Vec3, mgl64.Vec3) {
	return t.positions[i], t.tangents[i]
}

// At finds the bracket of samples enclosing the normalized distance v and
// interpolates position and direction linearly within it.
// Distances at or beyond the ends of the table (including v = 1) resolve to
// the nearest end sample. A NaN distance resolves to the first sample.
func (t *ArcTable) At(v float64) Lookup {
	last := len(t.dist) - 1
	i := floats.Within(t.dist, v)
	if i < 0 {
		if v >= t.dist[last] {
			return Lookup{
				Bracket:  last - 1,
				Fraction: 1,
				Position: t.positions[last],
				Tangent:  t.tangents[last],
			}
		}
		return Lookup{Position: t.positions[0], Tangent: t.tangents[0]}
	}
	// Within guarantees dist[i] <= v < dist[i+1], so the bracket has width
	f := (v - t.dist[i]) / (t.dist[i+1] - t.dist[i])
	return Lookup{
		Bracket:  i,
		Fraction: f,
		Position: Lerp(t.positions[i], t.positions[i+1], f),
		Tangent:  Lerp(t.tangents[i], t.tangents[i+1], f),
	}
}
