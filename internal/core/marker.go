package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"

	"vkstatus/internal/types"
)

// Environment holds the marker variables a resolution runs against.
// python_version is the only variable the known constraint files use.
type Environment struct {
	PythonVersion string
}

// EvaluateMarker reports whether a requirement's environment marker
// applies to the given environment. A zero marker always applies.
func EvaluateMarker(marker types.Marker, env Environment) (bool, error) {
	if marker.IsZero() {
		return true, nil
	}
	if marker.Variable != "python_version" {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported marker variable: %s", marker.Variable))
	}
	if env.PythonVersion == "" {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("python version is required to evaluate markers")
	}
	have, err := pep440.Parse(env.PythonVersion)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid python version: %s", env.PythonVersion)).
			WithCause(err)
	}
	want, err := pep440.Parse(marker.Value)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid marker version: %s", marker.Value)).
			WithCause(err)
	}
	cmp := have.Compare(want)
	switch marker.Op {
	case types.ConstraintOpEq, types.ConstraintOpEq2:
		return cmp == 0, nil
	case types.ConstraintOpNe:
		return cmp != 0, nil
	case types.ConstraintOpGt:
		return cmp > 0, nil
	case types.ConstraintOpGte:
		return cmp >= 0, nil
	case types.ConstraintOpLt:
		return cmp < 0, nil
	case types.ConstraintOpLte:
		return cmp <= 0, nil
	default:
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported marker operator: %s", marker.Op))
	}
}
