package middleware

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/devhub/internal/core"
	"github.com/MrSnakeDoc/devhub/internal/logger"
)

// euid is swapped in tests. It returns -1 on Windows.
var euid = os.Geteuid

// WarnElevated warns before a mutating command touches a system-wide file
// (docker, apt) without root. The command still runs. It must run after
// LoadHub and expects the tool as first argument.
func WarnElevated(cmd *cobra.Command, args []string, next func(cmd *cobra.Command, args []string) error) error {
	if len(args) == 0 || euid() <= 0 {
		return next(cmd, args)
	}

	hub, err := Get[*core.Hub](cmd, CtxKeyHub)
	if err != nil {
		return err
	}
	mgr, err := hub.Manager(args[0])
	if err == nil && mgr.RequiresElevatedPrivilege() {
		logger.Warn("%s writes %s, which usually requires root. Re-run with sudo if the write fails.",
			mgr.Identifier(), mgr.ConfigPath())
	}
	return next(cmd, args)
}
