package logger

import (
	"io"
	"os"
)

// Bound to the root command's persistent flags.
var (
	FlagVerboseCount int  // -V
	FlagQuiet        bool // -q, errors only
	FlagSilent       bool // -s, nothing at all
	FlagJSON         bool // --json
)

// ConfigureLoggerFromFlags applies the Flag* values. Colors are off for JSON
// output and when NO_COLOR is set.
func ConfigureLoggerFromFlags() {
	opts := Options{
		Level: "info",
		JSON:  FlagJSON,
		Color: !FlagJSON && os.Getenv("NO_COLOR") == "",
		Out:   os.Stdout,
	}

	switch {
	case FlagSilent:
		opts.Level = "error"
		opts.Out = io.Discard
	case FlagQuiet:
		opts.Level = "error"
		opts.Out = os.Stdout
	case FlagVerboseCount > 0:
		opts.Level = "debug"
	}

	Configure(opts)
}
