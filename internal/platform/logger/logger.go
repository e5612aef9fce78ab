package logger

import (
	"log/slog"
	"os"
)

// New returns the structured logger services consume via WithLogger options.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
