package core

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/devhub/internal/backup"
	"github.com/MrSnakeDoc/devhub/internal/bench"
	"github.com/MrSnakeDoc/devhub/internal/errs"
	"github.com/MrSnakeDoc/devhub/internal/logger"
	"github.com/MrSnakeDoc/devhub/internal/models"
	"github.com/MrSnakeDoc/devhub/internal/source"
	"github.com/MrSnakeDoc/devhub/internal/utils"
)

// CurrentMirrorName labels the configured URL when it is benchmarked next to
// the catalog candidates.
const CurrentMirrorName = "Current"

// Tools resolves tool identifiers to their managers. *registry.Registry
// implements it.
type Tools interface {
	Supported() []string
	Get(id string) (source.Manager, error)
	All() []source.Manager
}

// Ranker orders mirrors by latency. *bench.Engine implements it.
type Ranker interface {
	Rank(ctx context.Context, mirrors []models.Mirror) []models.BenchmarkResult
}

// Hub is the entry point used by the CLI.
//
// Fields:
//   - tools: the tool registry
//   - ranker: the benchmark engine
//   - backups: the backup store shared with the managers
type Hub struct {
	tools   Tools
	ranker  Ranker
	backups *backup.Store
}

// New builds a Hub. A nil store falls back to backup.NewStore().
func New(tools Tools, ranker Ranker, backups *backup.Store) *Hub {
	if backups == nil {
		backups = backup.NewStore()
	}
	return &Hub{tools: tools, ranker: ranker, backups: backups}
}

func (h *Hub) ListSupportedTools() []string {
	return h.tools.Supported()
}

// Manager returns the backend of a tool, or an *errs.UnknownToolError.
func (h *Hub) Manager(tool string) (source.Manager, error) {
	return h.tools.Get(tool)
}

// Status reads the configured mirror of a tool and matches it against the
// catalog.
func (h *Hub) Status(ctx context.Context, tool string) (models.ToolStatus, error) {
	mgr, err := h.tools.Get(tool)
	if err != nil {
		return models.ToolStatus{}, err
	}
	return status(ctx, mgr)
}

// StatusAll returns the status of every supported tool in identifier order.
// A tool whose configuration cannot be read is reported with Err set.
func (h *Hub) StatusAll(ctx context.Context) []models.ToolStatus {
	managers := h.tools.All()
	out := make([]models.ToolStatus, 0, len(managers))
	for _, mgr := range managers {
		st, err := status(ctx, mgr)
		if err != nil {
			logger.Warn("%s: %v", mgr.Identifier(), err)
			st = models.ToolStatus{Tool: mgr.Identifier(), ConfigPath: mgr.ConfigPath(), Err: err}
		}
		out = append(out, st)
	}
	return out
}

func status(ctx context.Context, mgr source.Manager) (models.ToolStatus, error) {
	url, ok, err := mgr.CurrentURL(ctx)
	if err != nil {
		return models.ToolStatus{}, fmt.Errorf("failed to read %s configuration: %w", mgr.Identifier(), err)
	}
	return models.NewToolStatus(mgr.Identifier(), mgr.ConfigPath(), url, ok, mgr.Candidates()), nil
}

func (h *Hub) ListCandidates(tool string) ([]models.Mirror, error) {
	mgr, err := h.tools.Get(tool)
	if err != nil {
		return nil, err
	}
	return mgr.Candidates(), nil
}

// FindCandidate looks a mirror of tool up by name, ignoring case.
func (h *Hub) FindCandidate(tool, name string) (models.Mirror, error) {
	candidates, err := h.ListCandidates(tool)
	if err != nil {
		return models.Mirror{}, err
	}
	m, ok := models.FindByName(candidates, name)
	if !ok {
		return models.Mirror{}, fmt.Errorf("%w: %q for %s", errs.ErrMirrorNotFound, name, tool)
	}
	return m, nil
}

// Benchmark ranks the catalog candidates of tool.
func (h *Hub) Benchmark(ctx context.Context, tool string) ([]models.BenchmarkResult, error) {
	candidates, err := h.ListCandidates(tool)
	if err != nil {
		return nil, err
	}
	return h.ranker.Rank(ctx, candidates), nil
}

// BenchmarkWithCurrent ranks the candidates plus the configured URL when it
// is not one of them. An unreadable configuration is ignored.
func (h *Hub) BenchmarkWithCurrent(ctx context.Context, tool string) ([]models.BenchmarkResult, error) {
	mgr, err := h.tools.Get(tool)
	if err != nil {
		return nil, err
	}

	mirrors := mgr.Candidates()
	url, ok, err := mgr.CurrentURL(ctx)
	switch {
	case err != nil:
		logger.Debug("skipping current %s mirror: %v", tool, err)
	case ok:
		if !utils.Some(mirrors, func(m models.Mirror) bool { return m.Matches(url) }) {
			mirrors = append(mirrors, models.Mirror{Name: CurrentMirrorName, URL: url})
		}
	}
	return h.ranker.Rank(ctx, mirrors), nil
}

// ApplyMirror writes m into the configuration of tool. The previous
// configuration is backed up by the manager first.
func (h *Hub) ApplyMirror(ctx context.Context, tool string, m models.Mirror) error {
	mgr, err := h.tools.Get(tool)
	if err != nil {
		return err
	}
	if _, err := utils.ParseProbeURL(m.URL); err != nil {
		return fmt.Errorf("invalid mirror %q: %w", m.Name, err)
	}

	logger.Debug("applying %s (%s) to %s", m.Name, m.URL, mgr.ConfigPath())
	if err := mgr.SetSource(ctx, m); err != nil {
		return fmt.Errorf("failed to set %s mirror: %w", mgr.Identifier(), err)
	}
	return nil
}

// ApplyFastest benchmarks the candidates of tool and applies the fastest
// reachable one. Nothing is written when every candidate is unreachable.
func (h *Hub) ApplyFastest(ctx context.Context, tool string) (models.Mirror, error) {
	results, err := h.Benchmark(ctx, tool)
	if err != nil {
		return models.Mirror{}, err
	}
	best, err := bench.Fastest(results)
	if err != nil {
		return models.Mirror{}, fmt.Errorf("%s: %w", tool, err)
	}
	if err := h.ApplyMirror(ctx, tool, best.Mirror); err != nil {
		return models.Mirror{}, err
	}
	return best.Mirror, nil
}

// RestoreDefault rolls the configuration of tool back to its latest backup.
func (h *Hub) RestoreDefault(ctx context.Context, tool string) error {
	mgr, err := h.tools.Get(tool)
	if err != nil {
		return err
	}
	if err := mgr.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore %s: %w", mgr.Identifier(), err)
	}
	return nil
}

// Backups lists the backups of the configuration file of tool, newest first.
// Tools configured through the environment have none.
func (h *Hub) Backups(tool string) ([]backup.Entry, error) {
	mgr, err := h.tools.Get(tool)
	if err != nil {
		return nil, err
	}
	if fb, ok := mgr.(source.FileBacked); !ok || !fb.FileBacked() {
		return nil, nil
	}
	return h.backups.List(mgr.ConfigPath())
}
