// Where: internal/wire/wire.go
// What: CLI dependency wiring.
// Why: Centralize dependency construction for every binary and for tests.
package wire

import (
	"io"
	"os"

	"github.com/poruru/housekeeper/internal/command"
	"github.com/poruru/housekeeper/internal/infra/envfile"
	"github.com/poruru/housekeeper/internal/infra/fileops"
)

var (
	// Getwd returns the current working directory. Tests may override this helper.
	Getwd = os.Getwd
	// Stdout is the writer used for CLI output.
	Stdout io.Writer = os.Stdout
	// Stderr is the writer used for errors and logs.
	Stderr io.Writer = os.Stderr
)

// BuildDependencies constructs CLI dependencies backed by the real filesystem.
func BuildDependencies() command.Dependencies {
	return command.Dependencies{
		Out:       Stdout,
		ErrOut:    Stderr,
		Getwd:     Getwd,
		FileOps:   fileops.OS{},
		EnvReader: envfile.Reader{},
	}
}

// Main runs the CLI and returns the exit code. A non-empty fixed command is
// prepended to args, which is how the single-purpose binaries are built.
func Main(fixed string, args []string) int {
	if fixed != "" {
		args = append([]string{fixed}, args...)
	}
	return command.Run(args, BuildDependencies())
}
