package source

import (
	"context"
	"strings"

	"github.com/MrSnakeDoc/devhub/internal/logger"
	"github.com/MrSnakeDoc/devhub/internal/models"
)

const (
	brewBottleVar = "HOMEBREW_BOTTLE_DOMAIN"
	brewPath      = "(shell profile)"
)

var brewVars = []string{
	"HOMEBREW_API_DOMAIN",
	brewBottleVar,
	"HOMEBREW_BREW_GIT_REMOTE",
	"HOMEBREW_CORE_GIT_REMOTE",
}

// brewEnv reads the bottle domain from the environment. Homebrew has no
// config file devhub could own, so set and restore print the shell lines to
// apply.
type brewEnv struct {
	env Env
}

func NewBrew(env Env) Manager {
	return &brewEnv{env: env}
}

func (b *brewEnv) Identifier() string              { return "brew" }
func (b *brewEnv) RequiresElevatedPrivilege() bool { return false }
func (b *brewEnv) ConfigPath() string              { return brewPath }
func (b *brewEnv) Candidates() []models.Mirror     { return b.env.candidates("brew") }

func (b *brewEnv) CurrentURL(context.Context) (string, bool, error) {
	url := strings.TrimSpace(b.env.getenv(brewBottleVar))
	return url, url != "", nil
}

func (b *brewEnv) SetSource(_ context.Context, m models.Mirror) error {
	base := strings.TrimRight(m.URL, "/")
	logger.Info("Add the following lines to your shell profile (~/.zshrc or ~/.bashrc):")
	for _, line := range BrewExports(base) {
		logger.Plain("%s", line)
	}
	logger.Info("Then reload it: source ~/.zshrc")
	return nil
}

func (b *brewEnv) Restore(context.Context) error {
	logger.Info("Remove the HOMEBREW_* mirror variables from your shell profile, or run:")
	for _, v := range brewVars {
		logger.Plain("unset %s", v)
	}
	return nil
}

// BrewExports returns the export lines pointing Homebrew at base.
func BrewExports(base string) []string {
	return []string{
		`export HOMEBREW_API_DOMAIN="` + base + `/api"`,
		`export ` + brewBottleVar + `="` + base + `"`,
		`export HOMEBREW_BREW_GIT_REMOTE="` + base + `/git/homebrew/brew.git"`,
		`export HOMEBREW_CORE_GIT_REMOTE="` + base + `/git/homebrew/homebrew-core.git"`,
	}
}
