package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"vkstatus/internal/types"
)

// opTokens is the ordered list of constraint operators tried during
// parsing. Longer tokens must precede shorter ones to avoid false matches
// (e.g. ">=" before ">").
var opTokens = []types.ConstraintOp{
	types.ConstraintOpGte,
	types.ConstraintOpLte,
	types.ConstraintOpCompat,
	types.ConstraintOpNe,
	types.ConstraintOpEq2,
	types.ConstraintOpEq,
	types.ConstraintOpGt,
	types.ConstraintOpLt,
}

// ParseRequirement parses one line of a requirements/constraints file:
// "name <op><ver>[, <op><ver>...] [; marker]". A bare name yields a
// requirement with no constraints.
func ParseRequirement(raw string, source string) (types.Requirement, error) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return types.Requirement{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty requirement")
	}

	spec := line
	marker := types.Marker{}
	if idx := strings.Index(line, ";"); idx >= 0 {
		spec = strings.TrimSpace(line[:idx])
		parsed, err := ParseMarker(line[idx+1:])
		if err != nil {
			return types.Requirement{}, err
		}
		marker = parsed
	}

	name, rest := splitName(spec)
	if name == "" || strings.ContainsAny(name, " \t") {
		return types.Requirement{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid requirement: %s", raw))
	}

	req := types.Requirement{Name: name, Marker: marker, Source: source}
	if rest == "" {
		return req, nil
	}
	for _, part := range strings.Split(rest, ",") {
		constraint, err := parseConstraint(part)
		if err != nil {
			return types.Requirement{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid requirement: %s", raw)).
				WithCause(err)
		}
		req.Constraints = append(req.Constraints, constraint)
	}
	return req, nil
}

// splitName cuts a requirement spec at the earliest operator token,
// returning the package name and the remaining constraint list.
func splitName(spec string) (string, string) {
	cut := len(spec)
	for _, op := range opTokens {
		if idx := strings.Index(spec, string(op)); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	return strings.TrimSpace(spec[:cut]), strings.TrimSpace(spec[cut:])
}

// parseConstraint parses a single "<op><version>" element.
func parseConstraint(raw string) (types.Constraint, error) {
	raw = strings.TrimSpace(raw)
	for _, op := range opTokens {
		if strings.HasPrefix(raw, string(op)) {
			version := strings.TrimSpace(raw[len(op):])
			if version == "" {
				return types.Constraint{}, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("constraint without version: %s", raw))
			}
			return types.Constraint{Op: op, Version: version}, nil
		}
	}
	return types.Constraint{}, errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("constraint without operator: %s", raw))
}

// ParseMarker parses an environment marker such as
// "python_version > '3.4'". Only single comparisons are supported.
func ParseMarker(raw string) (types.Marker, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return types.Marker{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty environment marker")
	}
	for _, op := range opTokens {
		idx := strings.Index(raw, string(op))
		if idx < 0 {
			continue
		}
		variable := strings.TrimSpace(raw[:idx])
		value := strings.TrimSpace(raw[idx+len(op):])
		value = strings.Trim(value, `'"`)
		if variable == "" || value == "" {
			return types.Marker{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid environment marker: %s", raw))
		}
		return types.Marker{Variable: variable, Op: op, Value: value}, nil
	}
	return types.Marker{}, errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid environment marker: %s", raw))
}
