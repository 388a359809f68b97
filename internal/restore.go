package internal

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/devhub/internal/errs"
	"github.com/MrSnakeDoc/devhub/internal/logger"
	"github.com/MrSnakeDoc/devhub/internal/middleware"
	"github.com/MrSnakeDoc/devhub/internal/utils/pathutils"
)

func NewRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <tool>",
		Short: "Restore the configuration saved before the last change",
		Long: `Restore the newest backup of a tool's configuration. A tool that had no
configuration file before devhub touched it gets its file removed again.

Examples:
  devhub restore pip`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool := args[0]
			hub, err := hubFrom(cmd)
			if err != nil {
				return err
			}
			mgr, err := hub.Manager(tool)
			if err != nil {
				return usageError(err, tool, "")
			}

			if err := hub.RestoreDefault(cmd.Context(), tool); err != nil {
				if errors.Is(err, errs.ErrNoBackup) {
					return middleware.FlagComboError(errs.RestoreWithoutCopy, mgr.Identifier(), pathutils.Display(mgr.ConfigPath()))
				}
				return err
			}

			logger.Success("%s restored", mgr.Identifier())
			return nil
		},
	}
	return cmd
}
