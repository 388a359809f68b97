package internal

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/devhub/internal/logger"
	"github.com/MrSnakeDoc/devhub/internal/middleware"
	"github.com/MrSnakeDoc/devhub/internal/version"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devhub",
		Short: "Switch the package mirrors of your developer tools",
		Long: `devhub inspects and switches the package source ("mirror") of pip, npm, cargo,
go, docker, apt and more from one place, and benchmarks the candidates to pick
the fastest one. Every change is backed up and can be restored.`,
		Example: `  devhub status
  devhub test pip
  devhub use pip --fastest
  devhub restore pip`,
		PersistentPreRun: func(*cobra.Command, []string) {
			logger.ConfigureLoggerFromFlags()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := cmd.Flags().GetBool("version")
			if err != nil {
				return err
			}
			if v {
				version.Print(cmd.OutOrStdout())
				return nil
			}
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolP("version", "v", false, "Print version information")

	pf := cmd.PersistentFlags()
	pf.CountVarP(&logger.FlagVerboseCount, "verbose", "V", "Increase verbosity (-V debug)")
	pf.BoolVarP(&logger.FlagQuiet, "quiet", "q", false, "Only print errors")
	pf.BoolVarP(&logger.FlagSilent, "silent", "s", false, "Print nothing")
	pf.BoolVar(&logger.FlagJSON, "json", false, "Log as JSON lines")
	pf.String("config", "", "Settings file (default $XDG_CONFIG_HOME/devhub/config.yaml)")
	pf.Duration("timeout", 0, "Per-mirror benchmark timeout (default 5s)")
	pf.Int("workers", 0, "Concurrent probes, 0 for one per mirror")

	RegisterSubCommands(cmd)

	return cmd
}

func Execute() error {
	root := NewRootCmd()

	if os.Getenv("COMP_LINE") != "" ||
		(len(os.Args) > 1 && strings.HasPrefix(os.Args[1], "__complete")) {
		return root.Execute()
	}

	logger.ConfigureLoggerFromFlags()
	if err := root.Execute(); err != nil {
		if !middleware.IsLogged(err) {
			logger.LogError("%v", err)
		}
		return err
	}
	return nil
}
