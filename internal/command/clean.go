// Where: internal/command/clean.go
// What: clean-all and clean-build command handlers.
// Why: Translate clean reports into one message per actual outcome.
package command

import (
	"fmt"

	"github.com/poruru/housekeeper/internal/usecase/housekeep"
)

func runCleanAll(cli CLI, s session) int {
	report, err := s.hk.CleanAll(cli.CleanAll.DryRun)
	printRemoved(s, report)
	if err != nil {
		return exitWithError(s.ui, err)
	}
	if report.Nothing() {
		layout := s.hk.Layout()
		s.ui.Info(fmt.Sprintf("neither %s nor %s directory exists", layout.ExeDir, layout.BuildDir))
	}
	return exitOK
}

func runCleanBuild(cli CLI, s session) int {
	report, err := s.hk.CleanBuild(cli.CleanBuild.DryRun)
	printRemoved(s, report)
	if err != nil {
		return exitWithError(s.ui, err)
	}
	if report.Nothing() {
		s.ui.Info(fmt.Sprintf("%s directory does not exist, nothing to remove", s.hk.Layout().BuildDir))
	}
	return exitOK
}

func printRemoved(s session, report housekeep.CleanReport) {
	for _, name := range report.Removed {
		if report.DryRun {
			s.ui.Info(fmt.Sprintf("would remove %s directory", name))
			continue
		}
		s.ui.Success(fmt.Sprintf("%s directory removed", name))
	}
}
