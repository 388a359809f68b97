package source

import (
	"regexp"
	"strings"

	"github.com/MrSnakeDoc/devhub/internal/models"
	"github.com/MrSnakeDoc/devhub/internal/utils"
)

var (
	pipIndexRe   = regexp.MustCompile(`(?m)^[ \t]*index-url[ \t]*=[ \t]*(.*?)[ \t]*$`)
	pipTrustedRe = regexp.MustCompile(`(?m)^[ \t]*trusted-host[ \t]*=.*$`)
	pipGlobalRe  = regexp.MustCompile(`(?m)^[ \t]*\[global\][ \t]*$`)
	pipSectionRe = regexp.MustCompile(`(?m)^[ \t]*\[`)
)

// NewPip manages index-url (and trusted-host) in the [global] section of
// pip.conf.
func NewPip(env Env) Manager {
	def := env.configPath("pip", "pip.conf")
	if env.GOOS == "windows" {
		def = env.appDataPath("pip", "pip.ini")
	}
	return &fileBackend{
		id:     "pip",
		path:   env.path("pip", def),
		env:    env,
		format: pipFormat{},
	}
}

type pipFormat struct{}

// extract prefers the [global] index-url and falls back to one set for a
// single command, such as [install].
func (pipFormat) extract(content []byte) (string, bool, error) {
	if start, end, ok := pipGlobalBody(string(content)); ok {
		if url, ok := firstGroup(pipIndexRe, content[start:end]); ok {
			return url, true, nil
		}
	}
	url, ok := firstGroup(pipIndexRe, content)
	return url, ok, nil
}

func (pipFormat) render(existing []byte, m models.Mirror) ([]byte, error) {
	s := string(existing)
	if s != "" && !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	indexLine := "index-url = " + m.URL

	var trustedLine string
	if host := utils.HostOf(m.URL); host != "" {
		trustedLine = "trusted-host = " + host
	}

	block := indexLine
	if trustedLine != "" {
		block += "\n" + trustedLine
	}

	start, end, ok := pipGlobalBody(s)
	if !ok {
		if s != "" && !endsWithBlankLine(s) {
			s += "\n"
		}
		return []byte(appendLine(s, "[global]\n"+block)), nil
	}

	body := s[start:end]
	if out, ok := replaceFirst(pipIndexRe, body, indexLine); ok {
		body = out
		if trustedLine != "" {
			if out, ok := replaceFirst(pipTrustedRe, body, trustedLine); ok {
				body = out
			} else {
				body, _ = insertAfter(pipIndexRe, body, trustedLine)
			}
		}
	} else {
		body = block + "\n" + body
		// A stale trusted-host under [global] would now be duplicated.
		if trustedLine != "" {
			body = dropLaterMatches(pipTrustedRe, body)
		}
	}
	return []byte(s[:start] + body + s[end:]), nil
}

// pipGlobalBody returns the offsets of the lines between the [global] header
// and the next section header.
func pipGlobalBody(s string) (int, int, bool) {
	loc := pipGlobalRe.FindStringIndex(s)
	if loc == nil {
		return 0, 0, false
	}
	start := loc[1]
	if start < len(s) && s[start] == '\n' {
		start++
	}
	end := len(s)
	if next := pipSectionRe.FindStringIndex(s[start:]); next != nil {
		end = start + next[0]
	}
	return start, end, true
}

// dropLaterMatches keeps the first match of re and removes the following ones
// along with their line break.
func dropLaterMatches(re *regexp.Regexp, s string) string {
	locs := re.FindAllStringIndex(s, -1)
	for i := len(locs) - 1; i >= 1; i-- {
		start, end := locs[i][0], locs[i][1]
		if end < len(s) && s[end] == '\n' {
			end++
		}
		s = s[:start] + s[end:]
	}
	return s
}

func endsWithBlankLine(s string) bool {
	return len(s) >= 2 && s[len(s)-2:] == "\n\n"
}
