// Where: internal/usecase/housekeep/errors.go
// What: Error taxonomy for housekeeping operations.
// Why: Let the command layer map outcomes to exit codes with errors.Is/As.
package housekeep

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEnvSourceMissing is returned by StageEnv when the env source file does not exist.
var ErrEnvSourceMissing = errors.New("env source not found")

// FileSystemError wraps a failed filesystem call.
type FileSystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error {
	return e.Err
}

// ValidationError reports an env source that does not satisfy the required keys.
type ValidationError struct {
	Path    string
	Missing []string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validate %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("validate %s: missing required keys: %s", e.Path, strings.Join(e.Missing, ", "))
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func fsError(op, path string, err error) error {
	return &FileSystemError{Op: op, Path: path, Err: err}
}
