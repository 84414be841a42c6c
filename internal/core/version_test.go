package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vkstatus/internal/types"
)

func pipRequirement(t *testing.T, raw string) types.Requirement {
	t.Helper()
	requirement, err := ParseRequirement(raw, "test")
	require.NoError(t, err)
	return requirement
}

func TestBestCandidatePip(t *testing.T) {
	candidates := []string{"1.10.4", "1.11", "1.16.6", "1.17.0", "1.19.5"}

	tests := []struct {
		raw  string
		want string
	}{
		{"numpy >= 1.11, < 1.17", "1.16.6"},
		{"numpy >= 1.17", "1.19.5"},
		{"numpy < 1.11", "1.10.4"},
		{"numpy", "1.19.5"},
	}
	for _, tt := range tests {
		got, err := BestCandidate(types.EcosystemPip, pipRequirement(t, tt.raw), candidates)
		require.NoError(t, err, "raw: %s", tt.raw)
		require.Equal(t, tt.want, got, "raw: %s", tt.raw)
	}
}

func TestBestCandidatePipNoMatch(t *testing.T) {
	_, err := BestCandidate(types.EcosystemPip, pipRequirement(t, "numpy >= 2.0"), []string{"1.17.0", "1.19.5"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no compatible version")
}

func TestBestCandidateNoCandidates(t *testing.T) {
	_, err := BestCandidate(types.EcosystemPip, pipRequirement(t, "numpy"), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no available versions")
}

func TestBestCandidateApt(t *testing.T) {
	candidates := []string{"1.2.3-1", "1.2.4-1", "2.0.0-1"}

	requirement := types.Requirement{
		Name: "libfoo",
		Constraints: []types.Constraint{
			{Op: types.ConstraintOpGte, Version: "1.2.3-1"},
			{Op: types.ConstraintOpLt, Version: "2.0.0-1"},
		},
	}
	got, err := BestCandidate(types.EcosystemApt, requirement, candidates)
	require.NoError(t, err)
	require.Equal(t, "1.2.4-1", got)
}

func TestBestCandidateUnsupportedEcosystem(t *testing.T) {
	_, err := BestCandidate("npm", pipRequirement(t, "numpy >= 1.17"), []string{"1.17.0"})
	require.Error(t, err)
}
