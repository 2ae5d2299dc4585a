package ucum

import (
	"os"

	"github.com/rs/zerolog"
)

// logger receives diagnostics from static table construction (NewRegistry,
// including registries extended with WithAtom/WithPrefix). It is silent by default: the parse/convert path never
// logs (spec.md §5 — pure, no I/O), so this only fires for table-building
// mistakes made by this package or by a caller extending a Registry.
var logger zerolog.Logger = zerolog.Nop()

// SetLogger installs a logger for registry-construction diagnostics.
// Passing zerolog.Nop() (the default) silences all output.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// NewConsoleLogger is a convenience constructor for a human-readable logger,
// useful when debugging a custom atom table during development.
func NewConsoleLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
