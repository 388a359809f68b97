package source

import (
	"regexp"
	"strings"
)

// firstGroup returns the trimmed first capture group of re in content.
func firstGroup(re *regexp.Regexp, content []byte) (string, bool) {
	m := re.FindSubmatch(content)
	if m == nil || len(m) < 2 {
		return "", false
	}
	v := strings.TrimSpace(string(m[1]))
	v = strings.Trim(v, `"'`)
	if v == "" {
		return "", false
	}
	return v, true
}

// replaceFirst swaps the first match of re in s with line.
func replaceFirst(re *regexp.Regexp, s, line string) (string, bool) {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s, false
	}
	return s[:loc[0]] + line + s[loc[1]:], true
}

// insertAfter inserts text on the line following the first match of re.
func insertAfter(re *regexp.Regexp, s, text string) (string, bool) {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s, false
	}
	return insertAt(s, loc[1], text), true
}

// insertAt inserts text on the line following offset pos of s.
func insertAt(s string, pos int, text string) string {
	if nl := strings.IndexByte(s[pos:], '\n'); nl >= 0 {
		end := pos + nl + 1
		return s[:end] + text + "\n" + s[end:]
	}
	return s + "\n" + text + "\n"
}

// appendLine adds line at the end of s, keeping a single trailing newline.
func appendLine(s, line string) string {
	if s != "" && !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return s + line + "\n"
}
