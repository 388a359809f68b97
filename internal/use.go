package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/devhub/internal/bench"
	"github.com/MrSnakeDoc/devhub/internal/errs"
	"github.com/MrSnakeDoc/devhub/internal/logger"
	"github.com/MrSnakeDoc/devhub/internal/middleware"
	"github.com/MrSnakeDoc/devhub/internal/models"
	"github.com/MrSnakeDoc/devhub/internal/prompter"
	"github.com/MrSnakeDoc/devhub/internal/utils/pathutils"
)

func NewUseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use <tool> [mirror]",
		Short: "Switch a tool to a mirror",
		Long: `Switch a tool to a named mirror from the catalog, or benchmark every mirror
and switch to the fastest one. The previous configuration is backed up first.

Examples:
  devhub use pip Aliyun       # switch pip to the Aliyun mirror
  devhub use npm --fastest    # benchmark and switch to the fastest one
  devhub use npm --fastest -i # same, but ask before switching`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool := args[0]
			fastest, err := cmd.Flags().GetBool("fastest")
			if err != nil {
				return err
			}

			switch {
			case len(args) == 1 && !fastest:
				return middleware.FlagComboError(errs.SourceOrFastest, tool)
			case len(args) == 2 && fastest:
				return middleware.FlagComboError(errs.SourceWithFastest, tool, args[1])
			}

			hub, err := hubFrom(cmd)
			if err != nil {
				return err
			}
			mgr, err := hub.Manager(tool)
			if err != nil {
				return usageError(err, tool, "")
			}

			interactive, err := cmd.Flags().GetBool("interactive")
			if err != nil {
				return err
			}

			var m models.Mirror
			switch {
			case fastest && interactive:
				logger.Info("Benchmarking %s mirrors...", mgr.Identifier())
				results, err := hub.Benchmark(cmd.Context(), tool)
				if err != nil {
					return err
				}
				best, err := bench.Fastest(results)
				if err != nil {
					return usageError(err, mgr.Identifier(), "")
				}
				p := prompter.New(cmd.InOrStdin(), cmd.OutOrStdout())
				ok, err := p.Confirm(fmt.Sprintf("Switch %s to %s (%s)?", mgr.Identifier(), best.Mirror.Name, best.LatencyLabel()), true)
				if err != nil {
					return err
				}
				if !ok {
					logger.Info("Aborted, %s left untouched", mgr.Identifier())
					return nil
				}
				m = best.Mirror
				if err := hub.ApplyMirror(cmd.Context(), tool, m); err != nil {
					return err
				}
			case fastest:
				logger.Info("Benchmarking %s mirrors...", mgr.Identifier())
				m, err = hub.ApplyFastest(cmd.Context(), tool)
				if err != nil {
					return usageError(err, mgr.Identifier(), "")
				}
			default:
				m, err = hub.FindCandidate(tool, args[1])
				if err != nil {
					return usageError(err, mgr.Identifier(), args[1])
				}
				if err := hub.ApplyMirror(cmd.Context(), tool, m); err != nil {
					return err
				}
			}

			logger.Success("%s now uses %s (%s)", mgr.Identifier(), m.Name, m.URL)
			logger.Debug("config: %s", pathutils.Display(mgr.ConfigPath()))
			return nil
		},
	}

	cmd.Flags().BoolP("fastest", "f", false, "Benchmark the mirrors and use the fastest")
	cmd.Flags().BoolP("interactive", "i", false, "With --fastest, confirm before switching")
	return cmd
}
