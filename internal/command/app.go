// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/poruru/housekeeper/internal/infra/config"
	"github.com/poruru/housekeeper/internal/infra/envfile"
	"github.com/poruru/housekeeper/internal/infra/fileops"
	"github.com/poruru/housekeeper/internal/infra/logging"
	"github.com/poruru/housekeeper/internal/infra/ui"
	"github.com/poruru/housekeeper/internal/meta"
	"github.com/poruru/housekeeper/internal/usecase/housekeep"
)

// Dependencies holds all injected dependencies required for CLI command execution.
type Dependencies struct {
	Out       io.Writer
	ErrOut    io.Writer
	Getwd     func() (string, error)
	FileOps   housekeep.FileOps
	EnvReader housekeep.EnvReader
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Config     string        `name:"config" default:"${config_file}" env:"HOUSEKEEPER_CONFIG" help:"Path to config file (relative paths resolve against --root)"`
	Root       string        `short:"C" name:"root" env:"HOUSEKEEPER_ROOT" help:"Working root (default: current directory)"`
	Verbose    bool          `short:"v" env:"HOUSEKEEPER_VERBOSE" help:"Enable debug logging on stderr"`
	NoEmoji    bool          `name:"no-emoji" env:"HOUSEKEEPER_NO_EMOJI" help:"Disable emoji output"`
	CleanAll   CleanAllCmd   `cmd:"" name:"clean-all" help:"Remove exe/ and build/ if present"`
	CleanBuild CleanBuildCmd `cmd:"" name:"clean-build" help:"Remove build/ if present"`
	StageEnv   StageEnvCmd   `cmd:"" name:"stage-env" help:"Copy .env.prod to exe/main/.env"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

type (
	CleanAllCmd struct {
		DryRun bool `name:"dry-run" help:"Report what would be removed without removing it"`
	}
	CleanBuildCmd struct {
		DryRun bool `name:"dry-run" help:"Report what would be removed without removing it"`
	}
	StageEnvCmd struct {
		DryRun  bool     `name:"dry-run" help:"Validate and report without copying"`
		Require []string `name:"require" sep:"," help:"Key that must be set in the env source (repeatable or comma-separated)"`
	}
	VersionCmd struct{}
)

// session is the per-invocation state shared by command handlers.
type session struct {
	ui     ui.UserInterface
	logger *slog.Logger
	config config.Config
	hk     *housekeep.Housekeeper
}

type commandHandler func(CLI, session) int

var handlers = map[string]commandHandler{
	"clean-all":   runCleanAll,
	"clean-build": runCleanBuild,
	"stage-env":   runStageEnv,
}

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. It returns the process exit code.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := deps.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}

	if len(args) == 0 {
		return runNoArgs(out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description("Directory cleanup and environment staging."),
		kong.Writers(out, errOut),
		kong.Vars{"config_file": meta.ConfigFile},
	)
	if err != nil {
		return exitWithError(ui.NewConsoleUI(out, errOut, false), err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(ui.NewConsoleUI(out, errOut, false), err)
	}

	console := ui.NewConsoleUI(out, errOut, !cli.NoEmoji)
	command := ctx.Command()
	if command == "version" {
		return runVersion(console)
	}

	handler, ok := handlers[command]
	if !ok {
		console.Error(fmt.Sprintf("unknown command: %s", command))
		return exitUsage
	}

	s, err := newSession(cli, deps, console, logging.New(errOut, cli.Verbose))
	if err != nil {
		return exitWithError(console, err)
	}
	return handler(cli, s)
}

func newSession(cli CLI, deps Dependencies, console ui.UserInterface, logger *slog.Logger) (session, error) {
	root, err := resolveRoot(cli.Root, deps.Getwd)
	if err != nil {
		return session{}, err
	}

	configPath := cli.Config
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(root, configPath)
	}
	cfg, found, err := config.Load(configPath)
	if err != nil {
		return session{}, err
	}
	logger.Debug("resolved workspace", "root", root, "config", configPath, "config_found", found)
	if rel, err := filepath.Rel(root, configPath); found && err == nil && filepath.IsLocal(rel) {
		if err := cfg.Protects(rel); err != nil {
			return session{}, &config.Error{Path: configPath, Err: err}
		}
	}

	layout := housekeep.Layout{
		Root:      root,
		ExeDir:    cfg.Paths.ExeDir,
		BuildDir:  cfg.Paths.BuildDir,
		EnvSource: cfg.Paths.EnvSource,
		StageDir:  cfg.Paths.StageDir,
		EnvTarget: cfg.Paths.EnvTarget,
	}
	fs := deps.FileOps
	if fs == nil {
		fs = fileops.OS{}
	}
	env := deps.EnvReader
	if env == nil {
		env = envfile.Reader{}
	}
	hk := housekeep.New(layout, fs, env, housekeep.WithLogger(logger))
	return session{ui: console, logger: logger, config: cfg, hk: hk}, nil
}

func resolveRoot(flagValue string, getwd func() (string, error)) (string, error) {
	if root := strings.TrimSpace(flagValue); root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return "", fmt.Errorf("resolve root %s: %w", root, err)
		}
		return abs, nil
	}
	if getwd == nil {
		getwd = os.Getwd
	}
	wd, err := getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return wd, nil
}

// runNoArgs prints a short usage summary when the CLI is invoked without arguments.
func runNoArgs(out io.Writer) int {
	cmd := meta.AppName
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s clean-all     remove exe/ and build/ if present\n", cmd)
	fmt.Fprintf(out, "  %s clean-build   remove build/ if present\n", cmd)
	fmt.Fprintf(out, "  %s stage-env     copy .env.prod to exe/main/.env\n", cmd)
	fmt.Fprintln(out, "")
	fmt.Fprintf(out, "Try: %s --help\n", cmd)
	return exitOK
}

// handleParseError reports a flag or argument error with a usage hint.
func handleParseError(console ui.UserInterface, err error) int {
	console.Error(err.Error())
	console.Info(fmt.Sprintf("Try: %s --help", meta.AppName))
	return exitUsage
}
