package source

import (
	"context"
	"strings"
	"time"

	"github.com/MrSnakeDoc/devhub/internal/errs"
	"github.com/MrSnakeDoc/devhub/internal/logger"
	"github.com/MrSnakeDoc/devhub/internal/models"
	"github.com/MrSnakeDoc/devhub/internal/runner"
)

const (
	DefaultGoProxy = "https://proxy.golang.org,direct"
	goEnvTimeout   = 10 * time.Second
	goProxyPath    = "(env var GOPROXY)"
)

// goProxy drives GOPROXY through `go env`, which persists it in the go env
// file of the user.
type goProxy struct {
	env Env
}

func NewGo(env Env) Manager {
	return &goProxy{env: env}
}

func (g *goProxy) Identifier() string              { return "go" }
func (g *goProxy) RequiresElevatedPrivilege() bool { return false }
func (g *goProxy) ConfigPath() string              { return goProxyPath }
func (g *goProxy) Candidates() []models.Mirror     { return g.env.candidates("go") }

// CurrentURL reports no URL when the go toolchain cannot be run.
func (g *goProxy) CurrentURL(ctx context.Context) (string, bool, error) {
	out, err := g.runner().Run(ctx, goEnvTimeout, runner.Capture, "go", "env", "GOPROXY")
	if err != nil {
		logger.Debug("go env GOPROXY failed: %v", err)
		return "", false, nil
	}
	url := strings.TrimSpace(string(out))
	if url == "" || url == "off" {
		return "", false, nil
	}
	return url, true, nil
}

func (g *goProxy) SetSource(ctx context.Context, m models.Mirror) error {
	return g.write(ctx, m.URL)
}

// Restore writes the upstream default back.
func (g *goProxy) Restore(ctx context.Context) error {
	return g.write(ctx, DefaultGoProxy)
}

func (g *goProxy) write(ctx context.Context, url string) error {
	out, err := g.runner().Run(ctx, goEnvTimeout, runner.Capture, "go", "env", "-w", "GOPROXY="+url)
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			logger.Debug("go env -w output: %s", msg)
		}
		return errs.IO("go env -w", "GOPROXY", err)
	}
	return nil
}

func (g *goProxy) runner() runner.CommandRunner {
	if g.env.Runner == nil {
		return runner.ExecRunner{}
	}
	return g.env.Runner
}
