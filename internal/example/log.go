package example

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
)

// NewLogger returns a text logger writing to w at the named level
// (debug, info, warn or error).
func NewLogger(w io.Writer, verbosity string) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(verbosity))); err != nil {
		return nil, errors.Wrapf(err, "invalid verbosity %q", verbosity)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
