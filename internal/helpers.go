package internal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/devhub/internal/core"
	"github.com/MrSnakeDoc/devhub/internal/errs"
	"github.com/MrSnakeDoc/devhub/internal/middleware"
)

func hubFrom(cmd *cobra.Command) (*core.Hub, error) {
	return middleware.Get[*core.Hub](cmd, middleware.CtxKeyHub)
}

// usageError turns lookup failures the user can fix into logged messages.
// Other errors are returned as is.
func usageError(err error, tool, mirror string) error {
	var unknown *errs.UnknownToolError
	switch {
	case errors.As(err, &unknown):
		hint := ""
		if unknown.Suggestion != "" {
			hint = fmt.Sprintf(", did you mean %q?", unknown.Suggestion)
		}
		return middleware.FlagComboError(errs.ToolNotSupported, unknown.Name, hint, strings.Join(unknown.Supported, ", "))
	case errors.Is(err, errs.ErrMirrorNotFound):
		return middleware.FlagComboError(errs.MirrorNotInCatalog, tool, mirror)
	case errors.Is(err, errs.ErrAllUnreachable):
		return middleware.FlagComboError(errs.AllMirrorsTimedOut, tool)
	default:
		return err
	}
}
