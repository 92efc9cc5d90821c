// Where: internal/usecase/housekeep/stage.go
// What: stage-env operation.
// Why: Copy the production env file into the deployment tree unchanged.
package housekeep

import (
	"sort"
	"strings"
)

// StageOptions configures StageEnv.
type StageOptions struct {
	// RequiredKeys must be present and non-blank in the env source.
	RequiredKeys []string
	DryRun       bool
}

// StageReport describes a stage-env run. Source and Target are layout names.
type StageReport struct {
	Source string
	Target string
	Bytes  int64
	Keys   int
	Parsed bool
	// ParseErr is set when the source is not valid dotenv and no keys were required.
	ParseErr error
	DryRun   bool
}

// StageEnv copies the env source to the env target, creating the stage directory.
// Nothing is written when the source is missing or fails validation.
func (h *Housekeeper) StageEnv(opts StageOptions) (StageReport, error) {
	layout := h.layout
	report := StageReport{Source: layout.EnvSource, Target: layout.EnvTarget, DryRun: opts.DryRun}
	src := layout.Abs(layout.EnvSource)

	exists, err := h.fs.FileExists(src)
	if err != nil {
		return report, fsError("stat", src, err)
	}
	if !exists {
		return report, ErrEnvSourceMissing
	}

	values, parseErr := h.env.Read(src)
	if parseErr == nil {
		report.Parsed = true
		report.Keys = len(values)
	}
	if len(opts.RequiredKeys) > 0 {
		if parseErr != nil {
			return report, &ValidationError{Path: layout.EnvSource, Err: parseErr}
		}
		if missing := missingKeys(values, opts.RequiredKeys); len(missing) > 0 {
			return report, &ValidationError{Path: layout.EnvSource, Missing: missing}
		}
	}

	if parseErr != nil {
		h.logger.Debug("env source is not valid dotenv", "path", src, "error", parseErr)
		report.ParseErr = parseErr
	}

	stageDir := layout.Abs(layout.StageDir)
	dst := layout.Abs(layout.EnvTarget)
	if opts.DryRun {
		h.logger.Debug("dry run: skipping copy", "src", src, "dst", dst)
		return report, nil
	}

	if err := h.fs.EnsureDir(stageDir); err != nil {
		return report, fsError("mkdir", stageDir, err)
	}
	h.logger.Debug("copying env file", "src", src, "dst", dst)
	written, err := h.fs.CopyFile(src, dst)
	if err != nil {
		return report, fsError("copy", dst, err)
	}
	report.Bytes = written
	return report, nil
}

// missingKeys returns the required keys that are absent or blank in values, sorted.
func missingKeys(values map[string]string, required []string) []string {
	seen := map[string]struct{}{}
	var missing []string
	for _, key := range required {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if strings.TrimSpace(values[key]) == "" {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
