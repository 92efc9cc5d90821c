// Where: internal/command/error_helpers.go
// What: Exit codes and error output.
// Why: Map usecase and config errors to stable process exit codes.
package command

import (
	"errors"

	"github.com/poruru/housekeeper/internal/infra/config"
	"github.com/poruru/housekeeper/internal/infra/ui"
	"github.com/poruru/housekeeper/internal/usecase/housekeep"
)

const (
	exitOK           = 0
	exitMissingInput = 1
	exitUsage        = 2
	exitFileSystem   = 3
	exitValidation   = 4
)

// exitCodeFor maps an error to the process exit code.
func exitCodeFor(err error) int {
	var (
		fsErr  *housekeep.FileSystemError
		valErr *housekeep.ValidationError
		cfgErr *config.Error
	)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, housekeep.ErrEnvSourceMissing):
		return exitMissingInput
	case errors.As(err, &cfgErr):
		return exitUsage
	case errors.As(err, &valErr):
		return exitValidation
	case errors.As(err, &fsErr):
		return exitFileSystem
	default:
		return 1
	}
}

// exitWithError prints err and returns its exit code.
func exitWithError(console ui.UserInterface, err error) int {
	console.Error(err.Error())
	return exitCodeFor(err)
}
