package rig

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/rollspline"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Joint is an evaluated joint, ready for encoding.
type Joint struct {
	U         float64   `yaml:"u" toml:"u"`
	Translate []float64 `yaml:"translate,flow" toml:"translate"`
	Matrix    []float64 `yaml:"matrix,flow" toml:"matrix"` // column-major
}

// NewJoint captures the evaluation result m at parameter u.
func NewJoint(u float64, m mgl64.Mat4) Joint {
	m = rollspline.ZapMat(m)
	t := m.Col(3).Vec3()
	return Joint{
		U:         u,
		Translate: []float64{t.X(), t.Y(), t.Z()},
		Matrix:    append([]float64(nil), m[:]...),
	}
}

type jointList struct {
	Joints []Joint `yaml:"joints" toml:"joints"`
}

// EncodeJoints writes joints to w in the given format.
func EncodeJoints(w io.Writer, joints []Joint, format Format) error {
	list := jointList{Joints: joints}
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(list)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}
