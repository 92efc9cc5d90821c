// Where: cmd/clean-build/main.go
// What: Fixed-command entrypoint for clean-build.
// Why: Remove build/ without naming a subcommand.
package main

import (
	"os"

	"github.com/poruru/housekeeper/internal/wire"
)

func main() {
	os.Exit(wire.Main("clean-build", os.Args[1:]))
}
