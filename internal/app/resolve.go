package app

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"vkstatus/internal/core"
	"vkstatus/internal/types"
)

// Resolve loads a requirements file, keeps the lines whose environment
// marker applies, and picks the best candidate version per package. At
// most one marker-guarded line per package may apply for a given
// environment; overlapping applicable markers are a constraint-file
// defect and fail the run.
//
// Without candidate versions the applicable constraint set itself is
// reported, one spec per package.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	if strings.TrimSpace(req.Path) == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("requirements file path is required")
	}
	ecosystem := req.Ecosystem
	if ecosystem == "" {
		ecosystem = types.EcosystemPip
	}
	requirements, err := s.Requirements.LoadRequirements(req.Path)
	if err != nil {
		return ResolveResult{}, err
	}
	env := core.Environment{PythonVersion: req.PythonVersion}

	applicable := map[string]types.Requirement{}
	var order []string
	for _, requirement := range requirements {
		assert.NotEmpty(ctx, requirement.Name, "parsed requirement must carry a name")
		applies, err := core.EvaluateMarker(requirement.Marker, env)
		if err != nil {
			return ResolveResult{}, err
		}
		if !applies {
			continue
		}
		existing, seen := applicable[requirement.Name]
		if !seen {
			applicable[requirement.Name] = requirement
			order = append(order, requirement.Name)
			continue
		}
		if !existing.Marker.IsZero() && !requirement.Marker.IsZero() {
			return ResolveResult{}, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("overlapping markers for %s (%s and %s)",
					requirement.Name, existing.Source, requirement.Source))
		}
		// unguarded lines merge into the applicable set
		existing.Constraints = append(existing.Constraints, requirement.Constraints...)
		applicable[requirement.Name] = existing
	}
	if len(applicable) == 0 {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no requirement applies to this environment")
	}

	result := ResolveResult{}
	for _, name := range order {
		requirement := applicable[name]
		resolved := ResolvedRequirement{
			Name: name,
			Spec: formatSpec(requirement),
		}
		if len(req.Candidates) > 0 {
			version, err := core.BestCandidate(ecosystem, requirement, req.Candidates)
			if err != nil {
				return ResolveResult{}, err
			}
			resolved.Version = version
		}
		result.Resolved = append(result.Resolved, resolved)
		log.Ctx(ctx).Debug().
			Str("package", name).
			Str("version", resolved.Version).
			Msg("requirement resolved")
	}
	return result, nil
}

func formatSpec(requirement types.Requirement) string {
	parts := make([]string, 0, len(requirement.Constraints))
	for _, constraint := range requirement.Constraints {
		parts = append(parts, fmt.Sprintf("%s%s", constraint.Op, constraint.Version))
	}
	return strings.Join(parts, ",")
}
