// Where: internal/command/version.go
// What: version command handler.
// Why: Print build version without loading any workspace config.
package command

import (
	"github.com/poruru/housekeeper/internal/infra/ui"
	"github.com/poruru/housekeeper/internal/version"
)

// runVersion prints the version information of the CLI.
func runVersion(console ui.UserInterface) int {
	console.Info(version.GetVersion())
	return exitOK
}
