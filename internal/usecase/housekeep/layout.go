// Where: internal/usecase/housekeep/layout.go
// What: Filesystem layout the housekeeper operates on.
// Why: Resolve every path against one root so commands never depend on the process cwd.
package housekeep

import (
	"path/filepath"

	"github.com/poruru/housekeeper/internal/meta"
)

// Layout names the housekeeping paths. Relative entries are resolved against Root.
type Layout struct {
	Root      string
	ExeDir    string
	BuildDir  string
	EnvSource string
	StageDir  string
	EnvTarget string
}

// DefaultLayout returns the built-in layout rooted at root.
func DefaultLayout(root string) Layout {
	return Layout{
		Root:      root,
		ExeDir:    meta.ExeDir,
		BuildDir:  meta.BuildDir,
		EnvSource: meta.EnvSource,
		StageDir:  meta.StageDir,
		EnvTarget: meta.EnvTarget,
	}
}

// Abs joins a layout entry with Root.
func (l Layout) Abs(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	root := l.Root
	if root == "" {
		root = "."
	}
	return filepath.Join(root, filepath.FromSlash(rel))
}
