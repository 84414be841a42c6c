package ports

import "vkstatus/internal/types"

type RequirementsPort interface {
	LoadRequirements(path string) ([]types.Requirement, error)
}
