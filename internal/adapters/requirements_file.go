package adapters

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"vkstatus/internal/core"
	"vkstatus/internal/types"
)

// RequirementsFileAdapter reads pip-style requirements/constraints
// files: one requirement per line, '#' comments and blank lines skipped.
type RequirementsFileAdapter struct{}

func NewRequirementsFileAdapter() RequirementsFileAdapter {
	return RequirementsFileAdapter{}
}

func (a RequirementsFileAdapter) LoadRequirements(path string) ([]types.Requirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("requirements file not found").
			WithCause(err)
	}
	var requirements []types.Requirement
	for i, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		requirement, err := core.ParseRequirement(trimmed, fmt.Sprintf("%s:%d", path, i+1))
		if err != nil {
			return nil, err
		}
		requirements = append(requirements, requirement)
	}
	return requirements, nil
}
