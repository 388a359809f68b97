package middleware

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/devhub/internal/backup"
	"github.com/MrSnakeDoc/devhub/internal/bench"
	"github.com/MrSnakeDoc/devhub/internal/catalog"
	"github.com/MrSnakeDoc/devhub/internal/core"
	"github.com/MrSnakeDoc/devhub/internal/globalconfig"
	"github.com/MrSnakeDoc/devhub/internal/registry"
	"github.com/MrSnakeDoc/devhub/internal/source"
)

// LoadHub builds the catalog, the registry and the benchmark engine from the
// settings and stores the resulting *core.Hub under CtxKeyHub. It must run
// after LoadSettings.
func LoadHub(cmd *cobra.Command, args []string, next func(cmd *cobra.Command, args []string) error) error {
	err := withValue(cmd, CtxKeyHub, func() (any, error) {
		settings, err := Get[*globalconfig.Settings](cmd, CtxKeySettings)
		if err != nil {
			return nil, err
		}
		return NewHub(settings)
	})
	if err != nil {
		return err
	}
	return next(cmd, args)
}

// NewHub wires a Hub for the current user.
func NewHub(settings *globalconfig.Settings) (*core.Hub, error) {
	cat, err := catalog.Load(settings.Catalog.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load mirror catalog: %w", err)
	}

	store := backup.NewStore()
	env := source.DefaultEnv(cat, store)
	env.Paths = settings.Paths

	engine := bench.New(
		bench.WithTimeout(settings.Benchmark.Timeout),
		bench.WithWorkers(settings.Benchmark.Workers),
		bench.WithUserAgent(settings.Benchmark.UserAgent),
	)
	return core.New(registry.New(env), engine, store), nil
}
