package middleware

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/devhub/internal/globalconfig"
)

// LoadSettings reads devhub's settings (file, DEVHUB_* env, flags) and
// stores them under CtxKeySettings.
func LoadSettings(cmd *cobra.Command, args []string, next func(cmd *cobra.Command, args []string) error) error {
	err := withValue(cmd, CtxKeySettings, func() (any, error) {
		v := globalconfig.NewViper()
		if err := globalconfig.BindFlags(v, cmd.Flags()); err != nil {
			return nil, err
		}

		var path string
		if f := cmd.Flags().Lookup("config"); f != nil {
			path = f.Value.String()
		}

		settings, err := globalconfig.Load(v, path)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		return settings, nil
	})
	if err != nil {
		return err
	}
	return next(cmd, args)
}
