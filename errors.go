package rollspline

import (
	"errors"

	"github.com/npillmayer/rollspline/hermite"
)

var (
	// ErrNoControls indicates an evaluation without any control transform.
	ErrNoControls = errors.New("at least one control transform is required")
	// ErrLengthMismatch indicates per-control inputs of differing lengths.
	ErrLengthMismatch = errors.New("per-control inputs differ in length")
	// ErrSubdivisions indicates resampling with too few or too many subdivisions.
	ErrSubdivisions = errors.New("resampling needs between 3 and 32767 subdivisions")
	// ErrParameterRange indicates a curve parameter which is not a number.
	ErrParameterRange = errors.New("curve parameter is not a number")
	// ErrSingularParent indicates an output parent without an inverse.
	ErrSingularParent = errors.New("output parent transform is singular")
	// ErrJointCount indicates a request for less than one joint.
	ErrJointCount = errors.New("joint count must be positive")
	// ErrDegenerateGeometry indicates a chain which cannot be resampled,
	// either for lack of arc length or because it has a single control.
	// Evaluate handles it by falling back to direct evaluation.
	ErrDegenerateGeometry = hermite.ErrDegenerateGeometry
)
