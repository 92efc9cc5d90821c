// Where: cmd/housekeeper/main.go
// What: CLI entrypoint.
// Why: Run any housekeeping subcommand from one binary.
package main

import (
	"os"

	"github.com/poruru/housekeeper/internal/wire"
)

func main() {
	os.Exit(wire.Main("", os.Args[1:]))
}
