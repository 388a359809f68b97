package source

import (
	"regexp"

	"github.com/MrSnakeDoc/devhub/internal/models"
)

var (
	rcRegistryRe   = regexp.MustCompile(`(?m)^[ \t]*registry[ \t]*=[ \t]*(.*?)[ \t]*$`)
	yarnRegistryRe = regexp.MustCompile(`(?m)^[ \t]*registry[ \t]+("[^"\n]*"|[^ \t\n"=]+)[ \t]*$`)
)

// NewNpm manages the registry line of ~/.npmrc.
func NewNpm(env Env) Manager {
	return &fileBackend{
		id:     "npm",
		path:   env.path("npm", env.homePath(".npmrc")),
		env:    env,
		format: rcFormat{re: rcRegistryRe, line: func(url string) string { return "registry=" + url }},
	}
}

// NewPnpm manages the registry line of pnpm's global rc file.
func NewPnpm(env Env) Manager {
	return &fileBackend{
		id:     "pnpm",
		path:   env.path("pnpm", env.configPath("pnpm", "rc")),
		env:    env,
		format: rcFormat{re: rcRegistryRe, line: func(url string) string { return "registry=" + url }},
	}
}

// NewYarn manages the registry line of ~/.yarnrc (yarn classic syntax).
func NewYarn(env Env) Manager {
	return &fileBackend{
		id:     "yarn",
		path:   env.path("yarn", env.homePath(".yarnrc")),
		env:    env,
		format: rcFormat{re: yarnRegistryRe, line: func(url string) string { return `registry "` + url + `"` }},
	}
}

// rcFormat is a line oriented file with a single registry directive.
type rcFormat struct {
	re   *regexp.Regexp
	line func(url string) string
}

func (f rcFormat) extract(content []byte) (string, bool, error) {
	url, ok := firstGroup(f.re, content)
	return url, ok, nil
}

func (f rcFormat) render(existing []byte, m models.Mirror) ([]byte, error) {
	s := string(existing)
	if out, ok := replaceFirst(f.re, s, f.line(m.URL)); ok {
		return []byte(out), nil
	}
	return []byte(appendLine(s, f.line(m.URL))), nil
}
