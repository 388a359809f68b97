package models

import (
	"math"
	"strings"
	"time"
)

// Unreachable is the latency recorded for a mirror that timed out, failed at
// the transport level or answered with a non 2xx/3xx status.
const Unreachable = time.Duration(math.MaxInt64)

type Mirror struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// Matches reports whether url designates the same endpoint as the mirror.
func (m Mirror) Matches(url string) bool {
	return SameURL(m.URL, url)
}

// SameURL compares two URLs ignoring trailing slashes and ASCII case.
func SameURL(a, b string) bool {
	return strings.EqualFold(
		strings.TrimRight(strings.TrimSpace(a), "/"),
		strings.TrimRight(strings.TrimSpace(b), "/"),
	)
}

// FindByURL returns the first mirror of the list matching url.
func FindByURL(mirrors []Mirror, url string) (Mirror, bool) {
	for _, m := range mirrors {
		if m.Matches(url) {
			return m, true
		}
	}
	return Mirror{}, false
}

// FindByName looks a mirror up by name, case-insensitively.
func FindByName(mirrors []Mirror, name string) (Mirror, bool) {
	for _, m := range mirrors {
		if strings.EqualFold(m.Name, strings.TrimSpace(name)) {
			return m, true
		}
	}
	return Mirror{}, false
}

type BenchmarkResult struct {
	Mirror  Mirror
	Latency time.Duration
}

func (r BenchmarkResult) Reachable() bool {
	return r.Latency != Unreachable
}

// LatencyLabel renders the latency for humans ("123ms" or "timeout").
func (r BenchmarkResult) LatencyLabel() string {
	if !r.Reachable() {
		return "timeout"
	}
	return r.Latency.Round(time.Millisecond).String()
}
