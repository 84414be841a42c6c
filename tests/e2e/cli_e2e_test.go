package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"vkstatus/tests/testutil"
)

const constraintsFixture = `numpy >= 1.11, < 1.17 ; python_version == '3.4'
numpy >= 1.17 ; python_version > '3.4'
`

func runCLI(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()
	root := testutil.RepoRoot(t)
	// Build the binary instead of using `go run`: `go run` always exits 1
	// on child failure, hiding the program's real exit code.
	bin := filepath.Join(t.TempDir(), "vkstatus")
	build := exec.Command("go", "build", "-o", bin, "./cmd/vkstatus")
	build.Dir = root
	build.Env = append(os.Environ(), "GO111MODULE=on")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("building vkstatus: %v\n%s", err, out)
	}
	cmd := exec.Command(bin, args...)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	return cmd.CombinedOutput()
}

func TestResolveCommandE2E(t *testing.T) {
	path := testutil.WriteTempFile(t, "constraints.txt", constraintsFixture)

	out, err := runCLI(t, "resolve", path,
		"--python-version", "3.4",
		"--candidates", "1.10.4,1.11,1.16.6,1.17.0,1.19.5",
	)
	require.NoError(t, err, string(out))
	require.Contains(t, string(out), "numpy==1.16.6")
}

func TestResolveCommandExitCodeE2E(t *testing.T) {
	path := testutil.WriteTempFile(t, "constraints.txt", constraintsFixture)

	out, err := runCLI(t, "resolve", path, "--python-version", "3.3")
	require.Error(t, err, string(out))
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 4, exitErr.ExitCode(), string(out))
}

func TestSessionsCommandE2E(t *testing.T) {
	log := strings.Join([]string{
		"100,Egor,Tensin,egor.tensin,true,,,2016-05-02T10:00:00Z",
		"100,Egor,Tensin,egor.tensin,false,,,2016-05-02T10:30:00Z",
		"",
	}, "\n")
	input := testutil.WriteTempFile(t, "status.csv", log)
	output := filepath.Join(t.TempDir(), "report.csv")

	out, err := runCLI(t, "sessions", input, output)
	require.NoError(t, err, string(out))

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "100,Egor,Tensin,egor.tensin,30m0s\n", string(content))
}
