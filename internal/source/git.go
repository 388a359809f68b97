package source

import (
	"bytes"
	"strings"

	gitconfig "github.com/go-git/go-git/v5/plumbing/format/config"

	"github.com/MrSnakeDoc/devhub/internal/logger"
	"github.com/MrSnakeDoc/devhub/internal/models"
)

const (
	githubURL     = "https://github.com/"
	gitURLSection = "url"
	gitInsteadOf  = "insteadOf"
)

// NewGit rewrites https://github.com/ through the mirror with an insteadOf
// rule in ~/.gitconfig. Applying the mirror named "official" only removes
// the rule, so CurrentURL then reports no URL and status shows the default
// instead of the "Official" entry.
func NewGit(env Env) Manager {
	return &fileBackend{
		id:     "git",
		path:   env.path("git", env.homePath(".gitconfig")),
		env:    env,
		format: gitFormat{},
		notice: func(m models.Mirror) {
			if isOfficialGit(m) {
				logger.Info("Requests to %s go to GitHub directly again", githubURL)
				return
			}
			logger.Info("Requests to %s are now redirected to %s/", githubURL, strings.TrimRight(m.URL, "/"))
		},
	}
}

type gitFormat struct{}

func (gitFormat) extract(content []byte) (string, bool, error) {
	cfg, err := decodeGitConfig(content)
	if err != nil {
		return "", false, err
	}
	if !cfg.HasSection(gitURLSection) {
		return "", false, nil
	}
	for _, sub := range cfg.Section(gitURLSection).Subsections {
		if rewritesGitHub(sub) {
			return strings.TrimRight(sub.Name, "/"), true, nil
		}
	}
	return "", false, nil
}

func (gitFormat) render(existing []byte, m models.Mirror) ([]byte, error) {
	cfg, err := decodeGitConfig(existing)
	if err != nil {
		return nil, err
	}

	if cfg.HasSection(gitURLSection) {
		sec := cfg.Section(gitURLSection)
		for _, sub := range append(gitconfig.Subsections(nil), sec.Subsections...) {
			if rewritesGitHub(sub) {
				sec.RemoveSubsection(sub.Name)
			}
		}
	}

	if !isOfficialGit(m) {
		name := strings.TrimRight(m.URL, "/") + "/"
		cfg.Section(gitURLSection).Subsection(name).SetOption(gitInsteadOf, githubURL)
	}

	if cfg.HasSection(gitURLSection) {
		sec := cfg.Section(gitURLSection)
		if len(sec.Subsections) == 0 && len(sec.Options) == 0 {
			cfg.RemoveSection(gitURLSection)
		}
	}

	var buf bytes.Buffer
	if err := gitconfig.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeGitConfig(content []byte) (*gitconfig.Config, error) {
	cfg := gitconfig.New()
	if len(bytes.TrimSpace(content)) == 0 {
		return cfg, nil
	}
	if err := gitconfig.NewDecoder(bytes.NewReader(content)).Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func rewritesGitHub(sub *gitconfig.Subsection) bool {
	for _, v := range sub.Options.GetAll(gitInsteadOf) {
		if strings.TrimRight(v, "/") == strings.TrimRight(githubURL, "/") {
			return true
		}
	}
	return false
}

func isOfficialGit(m models.Mirror) bool {
	return strings.EqualFold(m.Name, "official") || models.SameURL(m.URL, githubURL)
}
