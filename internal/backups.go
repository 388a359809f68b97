package internal

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/devhub/internal/logger"
	"github.com/MrSnakeDoc/devhub/internal/utils"
	"github.com/MrSnakeDoc/devhub/internal/utils/pathutils"
)

func NewBackupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backups <tool>",
		Short: "List the backups devhub kept for a tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool := args[0]
			hub, err := hubFrom(cmd)
			if err != nil {
				return err
			}

			entries, err := hub.Backups(tool)
			if err != nil {
				return usageError(err, tool, "")
			}
			if len(entries) == 0 {
				logger.Info("No backups for %s", tool)
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				kind := "copy"
				if e.Absent {
					kind = "no file"
				}
				rows = append(rows, []string{e.Time().Format(time.DateTime), kind, pathutils.Display(e.Path)})
			}
			utils.CreateTable("", []string{"Taken", "Kind", "Backup"}, rows)
			return nil
		},
	}
	return cmd
}
