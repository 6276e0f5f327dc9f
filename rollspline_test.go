package rollspline

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if Zap(a) != 0 || Zap(0.5) != 0.5 {
		t.Errorf("Zap failed")
	}
}

func TestZapMat(t *testing.T) {
	m := mgl64.Ident4()
	m[4] = 1e-12
	m[12] = -3e-9
	z := ZapMat(m)
	assert.Equal(t, mgl64.Ident4(), z)
	assert.Equal(t, 1e-12, m[4], "argument must stay unchanged")
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.3))
	assert.Equal(t, 1.0, clamp01(1.7))
	assert.Equal(t, 0.42, clamp01(0.42))
}

func TestParams(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := DefaultParams()
	assert.Equal(t, DefaultSubdivisions, p.Subdivisions)
	assert.Equal(t, ScaleLiteral, p.ScalePolicy)
	assert.Equal(t, ResampleNone, p.Mode())
	p.Absolute = true
	assert.Equal(t, ResampleNone, p.Mode(), "absolute needs resample")
	assert.NoError(t, p.Validate())
	p.Resample = true
	assert.Equal(t, ResampleGlobal, p.Mode())
	p.Absolute = false
	assert.Equal(t, ResampleLocal, p.Mode())
	p.Subdivisions = 2
	assert.True(t, errors.Is(p.Validate(), ErrSubdivisions))
	p.Subdivisions = MaxSubdivisions
	assert.NoError(t, p.Validate())
	p.Subdivisions = 2000000000
	assert.True(t, errors.Is(p.Validate(), ErrSubdivisions), "huge arc tables are refused")
	p.Resample = false
	assert.NoError(t, p.Validate(), "subdivisions only matter when resampling")
	p.U = math.NaN()
	assert.True(t, errors.Is(p.Validate(), ErrParameterRange))
}

func TestScalePolicyNames(t *testing.T) {
	for _, policy := range []ScaleAssemblyPolicy{ScaleLiteral, ScaleCorrected} {
		parsed, err := ParseScalePolicy(policy.String())
		assert.NoError(t, err)
		assert.Equal(t, policy, parsed)
	}
	p, err := ParseScalePolicy("")
	assert.NoError(t, err)
	assert.Equal(t, ScaleLiteral, p)
	_, err = ParseScalePolicy("uniform")
	assert.Error(t, err)
}
