package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/npsgo/pension-calculator/internal/calculation"
)

// slogAdapter bridges the engine's Logger interface onto log/slog.
type slogAdapter struct {
	l *slog.Logger
}

func newLogger(debug bool) calculation.Logger {
	if !debug {
		return calculation.NopLogger{}
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slogAdapter{l: slog.New(h)}
}

func (a slogAdapter) Debugf(format string, args ...any) { a.l.Debug(fmt.Sprintf(format, args...)) }
func (a slogAdapter) Infof(format string, args ...any)  { a.l.Info(fmt.Sprintf(format, args...)) }
func (a slogAdapter) Warnf(format string, args ...any)  { a.l.Warn(fmt.Sprintf(format, args...)) }
func (a slogAdapter) Errorf(format string, args ...any) { a.l.Error(fmt.Sprintf(format, args...)) }
