package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadWatchList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watch.yaml")
	content := "users:\n  - egor.tensin\n  - id100\ninterval_seconds: 30\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	list, err := NewWatchFileAdapter().LoadWatchList(path)
	require.NoError(t, err)
	require.Equal(t, []string{"egor.tensin", "id100"}, list.Users)
	require.Equal(t, 30, list.IntervalSeconds)
}

func TestLoadWatchListEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interval_seconds: 30\n"), 0644))

	_, err := NewWatchFileAdapter().LoadWatchList(path)
	require.Error(t, err)
}
