package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"

	"vkstatus/internal/types"
)

// preparedConstraint is a pre-parsed version constraint ready for
// repeated comparison. For apt it holds a parsed Debian version; for
// pip it holds a PEP 440 specifier set.
type preparedConstraint struct {
	op  types.ConstraintOp
	deb debversion.Version
	pep pep440.Specifiers
}

// versionCache memoizes parsed version objects to avoid repeated parsing
// during constraint evaluation and sorting.
type versionCache struct {
	ecosystem types.Ecosystem
	deb       map[string]debversion.Version
	pep       map[string]pep440.Version
	spec      map[string]pep440.Specifiers
}

func newVersionCache(ecosystem types.Ecosystem) *versionCache {
	return &versionCache{
		ecosystem: ecosystem,
		deb:       map[string]debversion.Version{},
		pep:       map[string]pep440.Version{},
		spec:      map[string]pep440.Specifiers{},
	}
}

func (c *versionCache) debVersion(value string) (debversion.Version, error) {
	if parsed, ok := c.deb[value]; ok {
		return parsed, nil
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		return debversion.Version{}, err
	}
	c.deb[value] = parsed
	return parsed, nil
}

func (c *versionCache) pepVersion(value string) (pep440.Version, error) {
	if parsed, ok := c.pep[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, err
	}
	c.pep[value] = parsed
	return parsed, nil
}

func (c *versionCache) pepSpec(value string) (pep440.Specifiers, error) {
	if parsed, ok := c.spec[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.NewSpecifiers(value)
	if err != nil {
		return pep440.Specifiers{}, err
	}
	c.spec[value] = parsed
	return parsed, nil
}

// compare returns -1, 0, or 1 comparing two version strings using the
// cache's ecosystem semantics. Returns 0 on parse errors.
func (c *versionCache) compare(a string, b string) int {
	switch c.ecosystem {
	case types.EcosystemApt:
		v1, err := c.debVersion(a)
		if err != nil {
			return 0
		}
		v2, err := c.debVersion(b)
		if err != nil {
			return 0
		}
		return v1.Compare(v2)
	case types.EcosystemPip:
		v1, err := c.pepVersion(a)
		if err != nil {
			return 0
		}
		v2, err := c.pepVersion(b)
		if err != nil {
			return 0
		}
		return v1.Compare(v2)
	default:
		return 0
	}
}

// BestCandidate selects the highest version from candidates satisfying
// every constraint of the requirement under the given ecosystem.
func BestCandidate(ecosystem types.Ecosystem, req types.Requirement, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no available versions for %s", req.Name))
	}
	cache := newVersionCache(ecosystem)
	prepared, err := prepareConstraints(ecosystem, req.Constraints, cache)
	if err != nil {
		return "", err
	}
	var matching []string
	for _, version := range candidates {
		ok, err := satisfiesAll(ecosystem, version, prepared, cache)
		if err != nil {
			return "", err
		}
		if ok {
			matching = append(matching, version)
		}
	}
	if len(matching) == 0 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("no compatible version for %s", req.Name))
	}
	sort.Slice(matching, func(i, j int) bool {
		return cache.compare(matching[i], matching[j]) > 0
	})
	return matching[0], nil
}

// prepareConstraints parses each constraint's version string upfront so
// it can be reused across multiple candidate comparisons.
func prepareConstraints(ecosystem types.Ecosystem, constraints []types.Constraint, cache *versionCache) ([]preparedConstraint, error) {
	var out []preparedConstraint
	for _, constraint := range constraints {
		if constraint.Op == types.ConstraintOpNone {
			continue
		}
		switch ecosystem {
		case types.EcosystemApt:
			parsed, err := cache.debVersion(constraint.Version)
			if err != nil {
				return nil, err
			}
			out = append(out, preparedConstraint{op: constraint.Op, deb: parsed})
		case types.EcosystemPip:
			spec, err := cache.pepSpec(toPep440Spec(constraint))
			if err != nil {
				return nil, err
			}
			out = append(out, preparedConstraint{op: constraint.Op, pep: spec})
		default:
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("unsupported ecosystem")
		}
	}
	return out, nil
}

func satisfiesAll(ecosystem types.Ecosystem, version string, constraints []preparedConstraint, cache *versionCache) (bool, error) {
	if len(constraints) == 0 {
		return true, nil
	}
	switch ecosystem {
	case types.EcosystemApt:
		return satisfiesDeb(version, constraints, cache)
	case types.EcosystemPip:
		return satisfiesPep440(version, constraints, cache)
	default:
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported ecosystem")
	}
}

func satisfiesDeb(version string, constraints []preparedConstraint, cache *versionCache) (bool, error) {
	v, err := cache.debVersion(version)
	if err != nil {
		return false, err
	}
	for _, constraint := range constraints {
		c := constraint.deb
		switch constraint.op {
		case types.ConstraintOpEq, types.ConstraintOpEq2:
			if !v.Equal(c) {
				return false, nil
			}
		case types.ConstraintOpGte:
			if v.LessThan(c) && !v.Equal(c) {
				return false, nil
			}
		case types.ConstraintOpLte:
			if v.GreaterThan(c) && !v.Equal(c) {
				return false, nil
			}
		case types.ConstraintOpGt:
			if !v.GreaterThan(c) {
				return false, nil
			}
		case types.ConstraintOpLt:
			if !v.LessThan(c) {
				return false, nil
			}
		default:
			return false, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("unsupported constraint operator")
		}
	}
	return true, nil
}

func satisfiesPep440(version string, constraints []preparedConstraint, cache *versionCache) (bool, error) {
	parsed, err := cache.pepVersion(version)
	if err != nil {
		return false, err
	}
	for _, constraint := range constraints {
		if !constraint.pep.Check(parsed) {
			return false, nil
		}
	}
	return true, nil
}

// toPep440Spec converts an internal constraint to a PEP 440 specifier
// string (e.g. ">= 1.11", "~= 2.3").
func toPep440Spec(constraint types.Constraint) string {
	op := string(constraint.Op)
	switch constraint.Op {
	case types.ConstraintOpEq, types.ConstraintOpEq2:
		op = "=="
	case types.ConstraintOpNe:
		op = "!="
	case types.ConstraintOpCompat:
		op = "~="
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s", op, constraint.Version))
}
