// Where: internal/usecase/housekeep/housekeeper.go
// What: Housekeeper construction and its dependencies.
// Why: Keep the operations testable by injecting the filesystem and env reader.
package housekeep

import (
	"io"
	"log/slog"
)

// FileOps is the filesystem surface used by the housekeeper.
type FileOps interface {
	DirExists(path string) (bool, error)
	FileExists(path string) (bool, error)
	RemoveDir(path string) error
	EnsureDir(path string) error
	CopyFile(src, dst string) (int64, error)
}

// EnvReader parses a dotenv file into key/value pairs without modifying it.
type EnvReader interface {
	Read(path string) (map[string]string, error)
}

// Housekeeper runs clean and stage operations over a Layout.
type Housekeeper struct {
	layout Layout
	fs     FileOps
	env    EnvReader
	logger *slog.Logger
}

// Option configures a Housekeeper.
type Option func(*Housekeeper)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Housekeeper) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// New returns a Housekeeper for layout.
func New(layout Layout, fs FileOps, env EnvReader, opts ...Option) *Housekeeper {
	h := &Housekeeper{
		layout: layout,
		fs:     fs,
		env:    env,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Layout returns the layout this housekeeper operates on.
func (h *Housekeeper) Layout() Layout {
	return h.layout
}
