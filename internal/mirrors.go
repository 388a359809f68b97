package internal

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/devhub/internal/logger"
	"github.com/MrSnakeDoc/devhub/internal/utils"
)

func NewMirrorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mirrors <tool>",
		Short: "List the known mirrors of a tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool := args[0]
			hub, err := hubFrom(cmd)
			if err != nil {
				return err
			}

			candidates, err := hub.ListCandidates(tool)
			if err != nil {
				return usageError(err, tool, "")
			}

			st, err := hub.Status(cmd.Context(), tool)
			if err != nil {
				logger.Debug("cannot read current %s mirror: %v", tool, err)
			}

			rows := make([][]string, 0, len(candidates))
			for _, m := range candidates {
				mark := ""
				if st.HasURL && m.Matches(st.CurrentURL) {
					mark = "*"
				}
				rows = append(rows, []string{mark, m.Name, m.URL})
			}
			utils.CreateTable("", []string{"", "Name", "URL"}, rows)
			return nil
		},
	}
	return cmd
}
