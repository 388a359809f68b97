package utils

import (
	"regexp"
	"strings"
)

var versionPattern = regexp.MustCompile(`\d+(?:\.\d+){1,3}(?:[-+][0-9A-Za-z.]+)?`)

// ExtractVersion pulls the first dotted version number out of a `--version`
// style output ("pip 24.0 from /usr/lib/...", "go version go1.22.3 linux/amd64").
func ExtractVersion(output string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if v := versionPattern.FindString(line); v != "" {
			return v, true
		}
	}
	return "", false
}

// IsSemver returns true if the string looks like x.y.z.
func IsSemver(v string) bool {
	return regexp.MustCompile(`^\d+\.\d+\.\d+$`).MatchString(v)
}
