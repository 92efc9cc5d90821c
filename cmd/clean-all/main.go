// Where: cmd/clean-all/main.go
// What: Fixed-command entrypoint for clean-all.
// Why: Remove exe/ and build/ without naming a subcommand.
package main

import (
	"os"

	"github.com/poruru/housekeeper/internal/wire"
)

func main() {
	os.Exit(wire.Main("clean-all", os.Args[1:]))
}
