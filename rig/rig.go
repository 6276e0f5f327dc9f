/*
Package rig reads roll spline rigs from description files and builds
control chains.

A rig file lists the controls of a chain in order, the output parent and
the evaluation parameters. In YAML:

	controls:
	  - name: root
	    translate: [0, 0, 0]
	  - name: mid
	    translate: [5, 0, 0]
	    rotate: [0, 0, 30]    # degrees, X then Y then Z
	    roll: 45              # degrees
	    parent:
	      rotate: [0, 0, 0]
	  - name: tip
	    matrix: [1,0,0,0, 0,1,0,0, 0,0,1,0, 10,0,0,1]   # column-major
	outputParent:
	  translate: [0, 2, 0]
	params:
	  u: 0.25
	  resample: true
	  subdivisions: 20
	  absolute: true
	  scalePolicy: corrected

TOML files use the same keys.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package rig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/rollspline"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'rig'
func tracer() tracing.Trace {
	return tracing.Select("rig")
}

var (
	// ErrUnknownFormat indicates a file format other than YAML or TOML.
	ErrUnknownFormat = errors.New("unknown rig file format")
	// ErrEmptyRig indicates a rig without controls.
	ErrEmptyRig = errors.New("rig has no controls")
	// ErrBadVector indicates a vector or matrix with a wrong number of entries.
	ErrBadVector = errors.New("wrong number of vector entries")
)

// Format is a rig file format.
type Format int

const (
	YAML Format = iota
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat accepts "yaml", "yml" and "toml", in any case, with or
// without a leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return YAML, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Transform describes a transform either by translation, rotation and
// scale, or by a full column-major matrix. A matrix wins if present.
// Missing components default to zero translation, no rotation and unit
// scale.
type Transform struct {
	Translate []float64 `yaml:"translate,omitempty" toml:"translate,omitempty"`
	Rotate    []float64 `yaml:"rotate,omitempty" toml:"rotate,omitempty"`
	Scale     []float64 `yaml:"scale,omitempty" toml:"scale,omitempty"`
	Matrix    []float64 `yaml:"matrix,omitempty" toml:"matrix,omitempty"`
}

// Control describes one control of a chain.
type Control struct {
	Name      string     `yaml:"name,omitempty" toml:"name,omitempty"`
	Translate []float64  `yaml:"translate,omitempty" toml:"translate,omitempty"`
	Rotate    []float64  `yaml:"rotate,omitempty" toml:"rotate,omitempty"`
	Scale     []float64  `yaml:"scale,omitempty" toml:"scale,omitempty"`
	Matrix    []float64  `yaml:"matrix,omitempty" toml:"matrix,omitempty"`
	Parent    *Transform `yaml:"parent,omitempty" toml:"parent,omitempty"`
	Roll      float64    `yaml:"roll,omitempty" toml:"roll,omitempty"`
}

// Params mirrors rollspline.Params in a rig file.
type Params struct {
	U            float64 `yaml:"u" toml:"u"`
	Resample     bool    `yaml:"resample" toml:"resample"`
	Subdivisions int     `yaml:"subdivisions,omitempty" toml:"subdivisions,omitempty"`
	Absolute     bool    `yaml:"absolute" toml:"absolute"`
	ScalePolicy  string  `yaml:"scalePolicy,omitempty" toml:"scalePolicy,omitempty"`
}

// Rig is the content of a rig file.
type Rig struct {
	Controls     []Control  `yaml:"controls" toml:"controls"`
	OutputParent *Transform `yaml:"outputParent,omitempty" toml:"outputParent,omitempty"`
	Params       Params     `yaml:"params" toml:"params"`
}

// Load reads a rig file, choosing the format by file extension.
func Load(path string) (*Rig, error) {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rig, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rig, nil
}

// Decode reads a rig description from r.
func Decode(r io.Reader, format Format) (*Rig, error) {
	rig := &Rig{}
	var err error
	switch format {
	case YAML:
		err = yaml.NewDecoder(r).Decode(rig)
	case TOML:
		err = toml.NewDecoder(r).Decode(rig)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding %s rig: %w", format, err)
	}
	if len(rig.Controls) == 0 {
		return nil, ErrEmptyRig
	}
	tracer().Debugf("decoded %s rig with %d controls", format, len(rig.Controls))
	return rig, nil
}

// EvalControls converts the rig's controls into evaluation input.
func (rig *Rig) EvalControls() (rollspline.Controls, error) {
	if len(rig.Controls) == 0 {
		return rollspline.Controls{}, ErrEmptyRig
	}
	n := len(rig.Controls)
	c := rollspline.Controls{
		Parents:      make([]mgl64.Mat4, n),
		Transforms:   make([]mgl64.Mat4, n),
		RollDegrees:  make([]float64, n),
		OutputParent: mgl64.Ident4(),
	}
	for i, ctl := range rig.Controls {
		own := Transform{Translate: ctl.Translate, Rotate: ctl.Rotate, Scale: ctl.Scale, Matrix: ctl.Matrix}
		m, err := own.Mat4()
		if err != nil {
			return rollspline.Controls{}, fmt.Errorf("control %s: %w", ctl.label(i), err)
		}
		c.Transforms[i], c.Parents[i] = m, m
		if ctl.Parent != nil {
			if c.Parents[i], err = ctl.Parent.Mat4(); err != nil {
				return rollspline.Controls{}, fmt.Errorf("parent of control %s: %w", ctl.label(i), err)
			}
		}
		c.RollDegrees[i] = ctl.Roll
	}
	if rig.OutputParent != nil {
		m, err := rig.OutputParent.Mat4()
		if err != nil {
			return rollspline.Controls{}, fmt.Errorf("output parent: %w", err)
		}
		c.OutputParent = m
	}
	return c, nil
}

// EvalParams converts the rig's parameters. Missing subdivisions default
// to rollspline.DefaultSubdivisions.
func (rig *Rig) EvalParams() (rollspline.Params, error) {
	p := rollspline.DefaultParams()
	policy, err := rollspline.ParseScalePolicy(rig.Params.ScalePolicy)
	if err != nil {
		return p, err
	}
	p.U = rig.Params.U
	p.Resample = rig.Params.Resample
	p.Absolute = rig.Params.Absolute
	p.ScalePolicy = policy
	if rig.Params.Subdivisions != 0 {
		p.Subdivisions = rig.Params.Subdivisions
	}
	return p, nil
}

// Mat4 builds the transform's matrix.
func (t Transform) Mat4() (mgl64.Mat4, error) {
	if len(t.Matrix) > 0 {
		if len(t.Matrix) != 16 {
			return mgl64.Ident4(), fmt.Errorf("%w: matrix has %d entries", ErrBadVector, len(t.Matrix))
		}
		var m mgl64.Mat4
		copy(m[:], t.Matrix)
		return m, nil
	}
	translate, err := vec3(t.Translate, mgl64.Vec3{}, "translate")
	if err != nil {
		return mgl64.Ident4(), err
	}
	rotate, err := vec3(t.Rotate, mgl64.Vec3{}, "rotate")
	if err != nil {
		return mgl64.Ident4(), err
	}
	scale, err := vec3(t.Scale, mgl64.Vec3{1, 1, 1}, "scale")
	if err != nil {
		return mgl64.Ident4(), err
	}
	return TRS(translate, rotate, scale), nil
}

func vec3(v []float64, deflt mgl64.Vec3, what string) (mgl64.Vec3, error) {
	if v == nil {
		return deflt, nil
	}
	if len(v) != 3 {
		return deflt, fmt.Errorf("%w: %s has %d entries", ErrBadVector, what, len(v))
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, nil
}

func (ctl Control) label(i int) string {
	if ctl.Name != "" {
		return fmt.Sprintf("%q", ctl.Name)
	}
	return fmt.Sprintf("#%d", i)
}
