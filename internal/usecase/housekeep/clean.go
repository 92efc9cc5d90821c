// Where: internal/usecase/housekeep/clean.go
// What: clean-all and clean-build operations.
// Why: Remove build and deployment output directories when present.
package housekeep

import (
	"errors"
	"path/filepath"
)

var errRemoveRoot = errors.New("refusing to remove the working root")

// CleanReport lists the layout entries that were removed and those that were absent.
// Entries are the layout names (e.g. "exe"), not absolute paths.
type CleanReport struct {
	Removed []string
	Absent  []string
	DryRun  bool
}

// Nothing reports whether no directory was present.
func (r CleanReport) Nothing() bool {
	return len(r.Removed) == 0
}

// CleanAll removes the exe and build directories, each only if present.
// The first removal failure aborts the operation.
func (h *Housekeeper) CleanAll(dryRun bool) (CleanReport, error) {
	return h.clean(dryRun, h.layout.ExeDir, h.layout.BuildDir)
}

// CleanBuild removes the build directory if present.
func (h *Housekeeper) CleanBuild(dryRun bool) (CleanReport, error) {
	return h.clean(dryRun, h.layout.BuildDir)
}

func (h *Housekeeper) clean(dryRun bool, names ...string) (CleanReport, error) {
	report := CleanReport{DryRun: dryRun}
	for _, name := range names {
		path := h.layout.Abs(name)
		if filepath.Clean(path) == filepath.Clean(h.layout.Abs(".")) {
			return report, fsError("remove", path, errRemoveRoot)
		}
		exists, err := h.fs.DirExists(path)
		if err != nil {
			return report, fsError("stat", path, err)
		}
		if !exists {
			h.logger.Debug("directory absent", "path", path)
			report.Absent = append(report.Absent, name)
			continue
		}
		if dryRun {
			h.logger.Debug("dry run: skipping removal", "path", path)
			report.Removed = append(report.Removed, name)
			continue
		}
		h.logger.Debug("removing directory", "path", path)
		if err := h.fs.RemoveDir(path); err != nil {
			return report, fsError("remove", path, err)
		}
		report.Removed = append(report.Removed, name)
	}
	return report, nil
}
