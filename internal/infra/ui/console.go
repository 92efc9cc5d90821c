// Where: internal/infra/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize status prefixes across housekeeping commands.
package ui

import (
	"fmt"
	"io"
	"strings"
)

// Console provides helper methods for formatted output.
// Errors go to ErrOut; everything else goes to Out.
type Console struct {
	Out          io.Writer
	ErrOut       io.Writer
	EmojiEnabled bool
}

// NewWithEmoji creates a new Console with explicit emoji settings.
func NewWithEmoji(out, errOut io.Writer, enabled bool) *Console {
	return &Console{Out: out, ErrOut: errOut, EmojiEnabled: enabled}
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.prefix("✅", "[ok]"), msg)
}

// Info prints an info message.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.Out, "%s\n", msg)
}

// Warn prints a warning message with an emoji.
func (c *Console) Warn(msg string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.prefix("⚠️", "[warn]"), msg)
}

// Error prints an error message to ErrOut.
func (c *Console) Error(msg string) {
	out := c.ErrOut
	if out == nil {
		out = c.Out
	}
	fmt.Fprintf(out, "%s%s\n", c.prefix("✗", "[error]"), msg)
}

func (c *Console) prefix(emoji, plain string) string {
	if !c.EmojiEnabled || strings.TrimSpace(emoji) == "" {
		return plain + " "
	}
	return emoji + " "
}
