package types

type Constraint struct {
	Op      ConstraintOp
	Version string
}

// Marker is an environment marker guarding a requirement line, e.g.
// python_version > '3.4'.
type Marker struct {
	Variable string
	Op       ConstraintOp
	Value    string
}

func (m Marker) IsZero() bool {
	return m.Variable == ""
}

// Requirement is one parsed line of a requirements/constraints file.
type Requirement struct {
	Name        string
	Constraints []Constraint
	Marker      Marker
	Source      string
}
