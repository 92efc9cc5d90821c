package housekeep

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/poruru/housekeeper/internal/infra/envfile"
	"github.com/poruru/housekeeper/internal/infra/fileops"
	"github.com/stretchr/testify/require"
)

var errInjected = errors.New("injected failure")

// faultyFS delegates to the real filesystem and fails the configured call.
type faultyFS struct {
	fileops.OS
	failRemove string
	failStat   string
	failCopy   bool
	failMkdir  bool
	writes     int
}

func (f *faultyFS) DirExists(path string) (bool, error) {
	if f.failStat != "" && filepath.Base(path) == f.failStat {
		return false, errInjected
	}
	return f.OS.DirExists(path)
}

func (f *faultyFS) RemoveDir(path string) error {
	if f.failRemove != "" && filepath.Base(path) == f.failRemove {
		return errInjected
	}
	f.writes++
	return f.OS.RemoveDir(path)
}

func (f *faultyFS) EnsureDir(path string) error {
	if f.failMkdir {
		return errInjected
	}
	f.writes++
	return f.OS.EnsureDir(path)
}

func (f *faultyFS) CopyFile(src, dst string) (int64, error) {
	if f.failCopy {
		return 0, errInjected
	}
	f.writes++
	return f.OS.CopyFile(src, dst)
}

func newHousekeeper(layout Layout, fs FileOps) *Housekeeper {
	if fs == nil {
		fs = fileops.OS{}
	}
	return New(layout, fs, envfile.Reader{})
}

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.MkdirAll(filepath.Join(root, name, "nested"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, name, "nested", "artifact"), []byte("x"), 0o644))
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
