// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep binary naming and the default filesystem layout in one place.
package meta

const (
	// Project Identity
	AppName = "housekeeper"

	// Config
	ConfigFile    = ".housekeeper.yaml"
	ConfigVersion = 1

	// Default Layout (relative to the working directory)
	ExeDir    = "exe"
	BuildDir  = "build"
	EnvSource = ".env.prod"
	StageDir  = "exe/main"
	EnvTarget = "exe/main/.env"
)
