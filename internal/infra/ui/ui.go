// Where: internal/infra/ui/ui.go
// What: UserInterface abstraction for commands and usecases.
// Why: Let tests capture output without depending on Console formatting.
package ui

import "io"

// UserInterface exposes the output helpers used by commands.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Error(msg string)
}

// NewConsoleUI returns a UserInterface backed by Console.
func NewConsoleUI(out, errOut io.Writer, emoji bool) UserInterface {
	return NewWithEmoji(out, errOut, emoji)
}
