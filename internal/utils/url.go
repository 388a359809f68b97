package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeProbeURL turns a catalog URL into something an HTTP client can
// probe: transport prefixes such as "sparse+" or "git+" are dropped and only
// the first of a comma separated list (GOPROXY style) is kept.
func NormalizeProbeURL(raw string) string {
	u := strings.TrimSpace(raw)
	if i := strings.Index(u, ","); i >= 0 {
		u = strings.TrimSpace(u[:i])
	}
	if i := strings.Index(u, "+"); i > 0 {
		rest := strings.ToLower(u[i+1:])
		if strings.HasPrefix(rest, "http://") || strings.HasPrefix(rest, "https://") {
			u = u[i+1:]
		}
	}
	return u
}

// ParseProbeURL normalizes raw and rejects anything that is not an absolute
// http(s) URL.
func ParseProbeURL(raw string) (*url.URL, error) {
	parsed, err := url.Parse(NormalizeProbeURL(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q in %s", parsed.Scheme, raw)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("missing host in %s", raw)
	}
	return parsed, nil
}

// HostOf returns the host part of a mirror URL, used for pip's trusted-host.
func HostOf(raw string) string {
	parsed, err := ParseProbeURL(raw)
	if err != nil {
		return ""
	}
	return parsed.Host
}
