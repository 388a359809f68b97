package printer

import (
	"time"

	"github.com/fatih/color"
)

type ColorPrinter struct {
	Success func(format string, a ...interface{}) string
	Error   func(format string, a ...interface{}) string
	Warning func(format string, a ...interface{}) string
	Info    func(format string, a ...interface{}) string
	Debug   func(format string, a ...interface{}) string

	colors  []*color.Color
	enabled bool
}

func NewColorPrinter() *ColorPrinter {
	success := color.New(color.FgGreen)
	failure := color.New(color.FgRed)
	warning := color.New(color.FgYellow)
	info := color.New(color.FgBlue)
	debug := color.New(color.FgCyan)

	return &ColorPrinter{
		Success: success.SprintfFunc(),
		Error:   failure.SprintfFunc(),
		Warning: warning.SprintfFunc(),
		Info:    info.SprintfFunc(),
		Debug:   debug.SprintfFunc(),
		colors:  []*color.Color{success, failure, warning, info, debug},
		enabled: true,
	}
}

// SetEnabled turns coloring on or off for this printer only. Output still
// honours the global color.NoColor switch (NO_COLOR, non-tty).
func (p *ColorPrinter) SetEnabled(on bool) {
	p.enabled = on
	for _, c := range p.colors {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	if on && color.NoColor {
		for _, c := range p.colors {
			c.DisableColor()
		}
	}
}

func (p *ColorPrinter) Enabled() bool { return p.enabled }

// Latency thresholds used when coloring benchmark results.
const (
	FastLatency = 300 * time.Millisecond
	SlowLatency = 1 * time.Second
)

// Latency colors a rendered latency: green under FastLatency, yellow under
// SlowLatency, red above it or when the mirror did not answer.
func (p *ColorPrinter) Latency(d time.Duration, reachable bool, label string) string {
	switch {
	case !reachable:
		return p.Error("%s", label)
	case d < FastLatency:
		return p.Success("%s", label)
	case d < SlowLatency:
		return p.Warning("%s", label)
	default:
		return p.Error("%s", label)
	}
}
