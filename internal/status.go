package internal

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/devhub/internal/logger"
	"github.com/MrSnakeDoc/devhub/internal/models"
	"github.com/MrSnakeDoc/devhub/internal/utils"
	"github.com/MrSnakeDoc/devhub/internal/utils/pathutils"
)

func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [tool]",
		Short: "Show the configured mirror of one or every tool",
		Long: `Show which mirror each tool is configured to use.

Examples:
  devhub status        # every supported tool
  devhub status pip    # only pip`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hub, err := hubFrom(cmd)
			if err != nil {
				return err
			}

			var statuses []models.ToolStatus
			if len(args) == 1 {
				st, err := hub.Status(cmd.Context(), args[0])
				if err != nil {
					return usageError(err, args[0], "")
				}
				statuses = []models.ToolStatus{st}
			} else {
				statuses = hub.StatusAll(cmd.Context())
			}

			rows := make([][]string, 0, len(statuses))
			for _, st := range statuses {
				url := st.CurrentURL
				if !st.HasURL {
					url = "-"
				}
				rows = append(rows, []string{
					st.Tool,
					st.Label(),
					utils.Truncate(url, 60),
					pathutils.Display(st.ConfigPath),
				})
			}
			utils.CreateTable("", []string{"Tool", "Mirror", "URL", "Config"}, rows)

			if len(statuses) == 1 && statuses[0].HasURL && !statuses[0].Known {
				logger.Info("%s uses a mirror that is not in the catalog", statuses[0].Tool)
			}
			return nil
		},
	}
	return cmd
}
