package hermite

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segment(p0, t0, p1, t1 mgl64.Vec3) Sampler {
	return func(s float64) (mgl64.Vec3, mgl64.Vec3) {
		return Bezier4Point(p0, t0, p1, t1, s)
	}
}

func bentSegment() Sampler {
	return segment(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{4, 4, 0}, mgl64.Vec3{5, 0, 0}, mgl64.Vec3{1, -3, 2})
}

func TestArcTableMonotonic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, n := range []int{3, 4, 10, 57} {
		table, err := NewArcTable(n, bentSegment())
		require.NoError(t, err)
		d := table.Distances()
		require.Len(t, d, n)
		assert.Equal(t, 0.0, d[0])
		assert.Equal(t, 1.0, d[n-1])
		for i := 0; i+1 < n; i++ {
			assert.LessOrEqual(t, d[i], d[i+1], "table not monotonic at %d (n=%d)", i, n)
		}
	}
}

func TestArcTableStraightLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tan := mgl64.Vec3{2.5, 0, 0}
	table, err := NewArcTable(10, segment(mgl64.Vec3{}, tan, mgl64.Vec3{5, 0, 0}, tan))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, table.Length(), tolerance)
	for _, v := range []float64{0, 0.1, 0.25, 0.5, 0.8, 0.999} {
		l := table.At(v)
		assert.InDelta(t, 5*v, l.Position.X(), tolerance, "uniform speed at %g", v)
		vecNear(t, UnitX, l.Tangent, "direction")
	}
}

func TestArcTableBracketHull(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	table, err := NewArcTable(12, bentSegment())
	require.NoError(t, err)
	d := table.Distances()
	for v := 0.0; v < 1; v += 0.037 {
		l := table.At(v)
		require.GreaterOrEqual(t, l.Bracket, 0)
		assert.GreaterOrEqual(t, v, d[l.Bracket])
		assert.Less(t, v, d[l.Bracket+1])
		assert.GreaterOrEqual(t, l.Fraction, 0.0)
		assert.LessOrEqual(t, l.Fraction, 1.0)
		a, _ := table.Sample(l.Bracket)
		b, _ := table.Sample(l.Bracket + 1)
		// point lies on the chord between the bracketing samples
		span := b.Sub(a).Len()
		assert.InDelta(t, span, l.Position.Sub(a).Len()+b.Sub(l.Position).Len(), tolerance)
	}
}

func TestArcTableEnds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	table, err := NewArcTable(5, bentSegment())
	require.NoError(t, err)
	first, _ := table.Sample(0)
	last, _ := table.Sample(4)
	vecNear(t, first, table.At(0).Position, "v=0")
	vecNear(t, first, table.At(-0.5).Position, "v<0")
	vecNear(t, first, table.At(math.NaN()).Position, "NaN")
	l := table.At(1)
	vecNear(t, last, l.Position, "v=1")
	assert.Equal(t, 3, l.Bracket)
	assert.Equal(t, 1.0, l.Fraction)
	vecNear(t, last, table.At(1.5).Position, "v>1")
}

func TestArcTableDegenerate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := mgl64.Vec3{1, 1, 1}
	_, err := NewArcTable(10, segment(p, mgl64.Vec3{}, p, mgl64.Vec3{}))
	assert.True(t, errors.Is(err, ErrDegenerateGeometry))
	_, err = NewArcTable(2, bentSegment())
	assert.True(t, errors.Is(err, ErrTooFewSamples))
}

func TestArcTableConverges(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	fine, err := NewArcTable(4000, bentSegment())
	require.NoError(t, err)
	var prev float64 = math.Inf(1)
	for _, n := range []int{5, 20, 80, 320} {
		table, err := NewArcTable(n, bentSegment())
		require.NoError(t, err)
		dev := table.At(0.4).Position.Sub(fine.At(0.4).Position).Len()
		assert.Less(t, dev, prev, "no convergence at n=%d", n)
		prev = dev
	}
	assert.Less(t, prev, 1e-3)
}
