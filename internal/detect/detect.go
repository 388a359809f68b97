package detect

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrSnakeDoc/devhub/internal/logger"
	"github.com/MrSnakeDoc/devhub/internal/models"
	"github.com/MrSnakeDoc/devhub/internal/runner"
	"github.com/MrSnakeDoc/devhub/internal/utils"
)

const versionTimeout = 5 * time.Second

type probe struct {
	binaries []string
	args     []string
}

// probes lists, per tool id, the binaries to look for and how to ask them
// their version.
var probes = map[string]probe{
	"pip":    {binaries: []string{"pip", "pip3"}, args: []string{"--version"}},
	"uv":     {binaries: []string{"uv"}, args: []string{"--version"}},
	"conda":  {binaries: []string{"conda"}, args: []string{"--version"}},
	"npm":    {binaries: []string{"npm"}, args: []string{"--version"}},
	"yarn":   {binaries: []string{"yarn"}, args: []string{"--version"}},
	"pnpm":   {binaries: []string{"pnpm"}, args: []string{"--version"}},
	"cargo":  {binaries: []string{"cargo"}, args: []string{"--version"}},
	"go":     {binaries: []string{"go"}, args: []string{"version"}},
	"maven":  {binaries: []string{"mvn"}, args: []string{"-v"}},
	"gradle": {binaries: []string{"gradle"}, args: []string{"--version"}},
	"docker": {binaries: []string{"docker"}, args: []string{"--version"}},
	"brew":   {binaries: []string{"brew"}, args: []string{"--version"}},
	"apt":    {binaries: []string{"apt"}, args: []string{"--version"}},
	"git":    {binaries: []string{"git"}, args: []string{"--version"}},
}

// Detector finds whether a tool is installed and which version it is.
// Results are informational only.
type Detector struct {
	runner   runner.CommandRunner
	lookPath func(string) (string, error)
}

func New(r runner.CommandRunner) *Detector {
	if r == nil {
		r = runner.ExecRunner{}
	}
	return &Detector{runner: r, lookPath: utils.LookForFileInPath}
}

// WithLookPath replaces the PATH lookup, for tests.
func (d *Detector) WithLookPath(f func(string) (string, error)) *Detector {
	d.lookPath = f
	return d
}

func (d *Detector) Detect(ctx context.Context, tool string) models.DetectionInfo {
	info := models.DetectionInfo{Name: tool}

	p, ok := probes[strings.ToLower(tool)]
	if !ok {
		p = probe{binaries: []string{tool}, args: []string{"--version"}}
	}

	for _, bin := range p.binaries {
		path, err := d.lookPath(bin)
		if err != nil {
			continue
		}
		info.Installed = true
		info.Path = path

		out, err := d.runner.Run(ctx, versionTimeout, runner.Combined, bin, p.args...)
		if err != nil {
			logger.Debug("%s %s failed: %v", bin, strings.Join(p.args, " "), err)
			return info
		}
		if v, ok := utils.ExtractVersion(string(out)); ok {
			info.Version = v
		}
		return info
	}
	return info
}

// DetectAll runs Detect for every tool concurrently, keeping input order.
func (d *Detector) DetectAll(ctx context.Context, tools []string) []models.DetectionInfo {
	out := make([]models.DetectionInfo, len(tools))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, tool := range tools {
		g.Go(func() error {
			out[i] = d.Detect(gctx, tool)
			return nil
		})
	}
	_ = g.Wait()
	return out
}
