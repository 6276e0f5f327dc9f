package hermite

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keyRecorder is a trace selector remembering the keys asked for.
type keyRecorder struct {
	t    *testing.T
	keys map[string]bool
}

func (r *keyRecorder) Select(key string) tracing.Trace {
	r.keys[key] = true
	return gotestingadapter.New(r.t)
}

func TestTraceKey(t *testing.T) {
	rec := &keyRecorder{t: t, keys: map[string]bool{}}
	tracing.SetTraceSelector(rec)
	defer tracing.SetTraceSelector(nil)
	_, err := NewArcTable(5, func(s float64) (mgl64.Vec3, mgl64.Vec3) {
		return mgl64.Vec3{s, 0, 0}, UnitX
	})
	require.NoError(t, err)
	assert.True(t, rec.keys["rollspline.hermite"], "selected keys %v", rec.keys)
	assert.False(t, rec.keys["rollspline"], "the root package's key is not used")
}
