package internal

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/devhub/internal/bench"
	"github.com/MrSnakeDoc/devhub/internal/core"
	"github.com/MrSnakeDoc/devhub/internal/logger"
	"github.com/MrSnakeDoc/devhub/internal/models"
	"github.com/MrSnakeDoc/devhub/internal/utils"
)

func NewTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test <tool>",
		Short: "Benchmark the mirrors of a tool",
		Long: `Send a HEAD request to every known mirror of a tool, and to the configured
one when it is not in the catalog, then rank them by latency.

Examples:
  devhub test pip
  devhub test cargo --timeout 2s`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool := args[0]
			hub, err := hubFrom(cmd)
			if err != nil {
				return err
			}

			logger.Info("Testing %s mirrors...", tool)
			results, err := hub.BenchmarkWithCurrent(cmd.Context(), tool)
			if err != nil {
				return usageError(err, tool, "")
			}

			rows := make([][]string, 0, len(results))
			for i, r := range results {
				name := r.Mirror.Name
				if name == core.CurrentMirrorName {
					name += " (configured)"
				}
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					name,
					logger.Latency(r.Latency, r.Reachable(), r.LatencyLabel()),
					utils.Truncate(r.Mirror.URL, 60),
				})
			}
			utils.CreateTable("", []string{"#", "Mirror", "Latency", "URL"}, rows)

			reachable := utils.Filter(results, models.BenchmarkResult.Reachable)
			logger.Info("%d/%d mirrors answered", len(reachable), len(results))

			best, err := bench.Fastest(results)
			if err != nil {
				return usageError(err, tool, "")
			}
			logger.Success("Fastest: %s (%s)", best.Mirror.Name, best.LatencyLabel())
			return nil
		},
	}
	return cmd
}
