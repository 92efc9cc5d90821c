// Where: internal/command/stage.go
// What: stage-env command handler.
// Why: Report the staged env file or the missing input.
package command

import (
	"errors"
	"fmt"

	"github.com/poruru/housekeeper/internal/usecase/housekeep"
)

func runStageEnv(cli CLI, s session) int {
	required := append([]string{}, s.config.Stage.RequiredKeys...)
	required = append(required, cli.StageEnv.Require...)

	report, err := s.hk.StageEnv(housekeep.StageOptions{
		RequiredKeys: required,
		DryRun:       cli.StageEnv.DryRun,
	})
	if errors.Is(err, housekeep.ErrEnvSourceMissing) {
		s.ui.Error(fmt.Sprintf("%s not found", report.Source))
		return exitMissingInput
	}
	if err != nil {
		return exitWithError(s.ui, err)
	}

	if report.ParseErr != nil {
		s.ui.Warn(fmt.Sprintf("%s is not valid dotenv: %v", report.Source, report.ParseErr))
	}
	if report.DryRun {
		s.ui.Info(fmt.Sprintf("would copy %s to %s", report.Source, report.Target))
		return exitOK
	}
	s.ui.Success(fmt.Sprintf("%s copied to %s", report.Source, report.Target))
	s.logger.Debug("staged env file", "bytes", report.Bytes, "keys", report.Keys, "parsed", report.Parsed)
	return exitOK
}
