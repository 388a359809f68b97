// Package source holds one Manager per supported tool. Every manager knows
// where its tool keeps the mirror setting, how to read it and how to
// rewrite it.
package source

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"

	"github.com/MrSnakeDoc/devhub/internal/backup"
	"github.com/MrSnakeDoc/devhub/internal/catalog"
	"github.com/MrSnakeDoc/devhub/internal/models"
	"github.com/MrSnakeDoc/devhub/internal/runner"
)

//go:generate mockgen -destination=mocks/mock_source.go -package=mocks github.com/MrSnakeDoc/devhub/internal/source Manager

// Manager is the capability set shared by every tool backend.
type Manager interface {
	// Identifier is the stable lowercase tool key.
	Identifier() string
	// RequiresElevatedPrivilege is a hint surfaced before mutation; it is not
	// enforced.
	RequiresElevatedPrivilege() bool
	Candidates() []models.Mirror
	// ConfigPath is the file holding the setting, or a placeholder for tools
	// configured through the environment.
	ConfigPath() string
	// CurrentURL returns the configured mirror. A missing file is not an
	// error: it reports ok=false.
	CurrentURL(ctx context.Context) (url string, ok bool, err error)
	SetSource(ctx context.Context, m models.Mirror) error
	Restore(ctx context.Context) error
}

// FileBacked is implemented by managers whose setting lives in the file
// named by ConfigPath. Only those keep backups.
type FileBacked interface {
	FileBacked() bool
}

// Env is everything a backend needs from the outside world. Tests build one
// rooted in a temp dir.
type Env struct {
	Home       string
	ConfigHome string
	GOOS       string
	Getenv     func(string) string
	Runner     runner.CommandRunner
	// OSRelease is the os-release file used to detect the apt distribution.
	OSRelease string
	// Paths overrides the config path of a tool, keyed by identifier.
	Paths   map[string]string
	Catalog *catalog.Catalog
	Backups *backup.Store
}

// DefaultEnv resolves the current user's environment. An undetectable home
// directory falls back to ".".
func DefaultEnv(cat *catalog.Catalog, store *backup.Store) Env {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return Env{
		Home:       home,
		ConfigHome: xdg.ConfigHome,
		GOOS:       runtime.GOOS,
		Getenv:     os.Getenv,
		Runner:     runner.ExecRunner{},
		OSRelease:  "/etc/os-release",
		Catalog:    cat,
		Backups:    store,
	}
}

func (e Env) getenv(key string) string {
	if e.Getenv == nil {
		return ""
	}
	return e.Getenv(key)
}

func (e Env) path(id, def string) string {
	if p := strings.TrimSpace(e.Paths[id]); p != "" {
		return p
	}
	return def
}

func (e Env) homePath(parts ...string) string {
	home := e.Home
	if home == "" {
		home = "."
	}
	return filepath.Join(append([]string{home}, parts...)...)
}

func (e Env) configPath(parts ...string) string {
	dir := e.ConfigHome
	if dir == "" {
		dir = e.homePath(".config")
	}
	return filepath.Join(append([]string{dir}, parts...)...)
}

// appDataPath is %APPDATA% on Windows, where pip and uv look first.
func (e Env) appDataPath(parts ...string) string {
	if dir := e.getenv("APPDATA"); dir != "" {
		return filepath.Join(append([]string{dir}, parts...)...)
	}
	return e.configPath(parts...)
}

func (e Env) candidates(key string) []models.Mirror {
	if e.Catalog == nil {
		return nil
	}
	return e.Catalog.CandidatesFor(key)
}

func (e Env) backups() *backup.Store {
	if e.Backups == nil {
		return backup.NewStore()
	}
	return e.Backups
}
