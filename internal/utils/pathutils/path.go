package pathutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ToHomePathFormat shortens a path below the home directory to "~/...".
func ToHomePathFormat(path string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return shortenHome(path, home), nil
}

// Display is ToHomePathFormat for output: on error the path is kept.
func Display(path string) string {
	short, err := ToHomePathFormat(path)
	if err != nil {
		return path
	}
	return short
}

func shortenHome(path, home string) string {
	home = strings.TrimRight(home, string(filepath.Separator))
	if home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + strings.TrimPrefix(path, home)
	}
	return path
}

// ToAbsolutePath expands a leading "~" and makes relative paths absolute.
func ToAbsolutePath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return filepath.Abs(path)
}
