// Where: cmd/stage-env/main.go
// What: Fixed-command entrypoint for stage-env.
// Why: Stage .env.prod into exe/main without naming a subcommand.
package main

import (
	"os"

	"github.com/poruru/housekeeper/internal/wire"
)

func main() {
	os.Exit(wire.Main("stage-env", os.Args[1:]))
}
