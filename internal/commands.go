package internal

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/devhub/internal/middleware"
)

var (
	withHub     = middleware.UseMiddlewareChain(middleware.LoadSettings, middleware.LoadHub)
	withHubRoot = middleware.UseMiddlewareChain(middleware.LoadSettings, middleware.LoadHub, middleware.WarnElevated)
)

var defaultCommands = []middleware.CommandFactory{
	withHub(NewListCmd),
	withHub(NewStatusCmd),
	withHub(NewMirrorsCmd),
	withHub(NewTestCmd),
	withHubRoot(NewUseCmd),
	withHubRoot(NewRestoreCmd),
	withHub(NewBackupsCmd),
}

func RegisterSubCommands(cmd *cobra.Command) {
	for _, factory := range defaultCommands {
		cmd.AddCommand(factory())
	}
}
