package internal

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/devhub/internal/detect"
	"github.com/MrSnakeDoc/devhub/internal/models"
	"github.com/MrSnakeDoc/devhub/internal/runner"
	"github.com/MrSnakeDoc/devhub/internal/utils"
)

// detector is replaced in tests.
var detector = func() *detect.Detector { return detect.New(runner.ExecRunner{}) }

func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List supported tools and whether they are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hub, err := hubFrom(cmd)
			if err != nil {
				return err
			}

			tools := hub.ListSupportedTools()
			infos := detector().DetectAll(cmd.Context(), tools)

			rows := utils.Map(infos, func(info models.DetectionInfo) []string {
				installed := "no"
				if info.Installed {
					installed = "yes"
				}
				return []string{info.Name, installed, info.Version, info.Path}
			})
			utils.CreateTable("Supported tools", []string{"Tool", "Installed", "Version", "Path"}, rows)
			return nil
		},
	}
	return cmd
}
