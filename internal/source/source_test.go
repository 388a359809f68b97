package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/devhub/internal/backup"
	"github.com/MrSnakeDoc/devhub/internal/catalog"
	"github.com/MrSnakeDoc/devhub/internal/errs"
	"github.com/MrSnakeDoc/devhub/internal/logger"
	"github.com/MrSnakeDoc/devhub/internal/models"
	"github.com/MrSnakeDoc/devhub/internal/runner"
)

func init() {
	logger.UseTestMode()
}

func testEnv(t *testing.T) Env {
	t.Helper()
	dir := t.TempDir()

	cat, err := catalog.Default()
	require.NoError(t, err)

	return Env{
		Home:       filepath.Join(dir, "home"),
		ConfigHome: filepath.Join(dir, "config"),
		GOOS:       "linux",
		Getenv:     func(string) string { return "" },
		Runner:     runner.NewMockRunner(),
		OSRelease:  filepath.Join(dir, "os-release"),
		Paths: map[string]string{
			"docker": filepath.Join(dir, "etc", "docker", "daemon.json"),
			"apt":    filepath.Join(dir, "etc", "apt", "sources.list"),
		},
		Catalog: cat,
		Backups: backup.NewStore(backup.WithLockDir(filepath.Join(dir, "locks"))),
	}
}

var fileBacked = map[string]func(Env) Manager{
	"pip":    NewPip,
	"uv":     NewUv,
	"conda":  NewConda,
	"npm":    NewNpm,
	"yarn":   NewYarn,
	"pnpm":   NewPnpm,
	"cargo":  NewCargo,
	"maven":  NewMaven,
	"gradle": NewGradle,
	"docker": NewDocker,
	"apt":    NewApt,
	"git":    NewGit,
}

func TestFileBackends_Lifecycle(t *testing.T) {
	ctx := context.Background()

	for id, factory := range fileBacked {
		t.Run(id, func(t *testing.T) {
			env := testEnv(t)
			mgr := factory(env)
			assert.Equal(t, id, mgr.Identifier())

			candidates := mgr.Candidates()
			require.GreaterOrEqual(t, len(candidates), 2)
			mirror := candidates[1]

			_, ok, err := mgr.CurrentURL(ctx)
			require.NoError(t, err)
			assert.False(t, ok, "missing file reports no URL")

			require.NoError(t, mgr.SetSource(ctx, mirror))
			url, ok, err := mgr.CurrentURL(ctx)
			require.NoError(t, err)
			require.True(t, ok)
			assert.True(t, models.SameURL(mirror.URL, url), "got %s want %s", url, mirror.URL)

			require.NoError(t, mgr.Restore(ctx))
			_, ok, err = mgr.CurrentURL(ctx)
			require.NoError(t, err)
			assert.False(t, ok, "restore returns to no config")
		})
	}
}

func TestFileBackends_Idempotent(t *testing.T) {
	ctx := context.Background()

	for id, factory := range fileBacked {
		t.Run(id, func(t *testing.T) {
			mgr := factory(testEnv(t))
			mirror := mgr.Candidates()[1]

			require.NoError(t, mgr.SetSource(ctx, mirror))
			first, err := os.ReadFile(mgr.ConfigPath())
			require.NoError(t, err)

			require.NoError(t, mgr.SetSource(ctx, mirror))
			second, err := os.ReadFile(mgr.ConfigPath())
			require.NoError(t, err)

			assert.Equal(t, string(first), string(second))
		})
	}
}

func TestFileBackends_SwitchAndRestorePrevious(t *testing.T) {
	ctx := context.Background()
	mgr := NewPip(testEnv(t))
	candidates := mgr.Candidates()

	require.NoError(t, mgr.SetSource(ctx, candidates[1]))
	require.NoError(t, mgr.SetSource(ctx, candidates[2]))

	url, _, err := mgr.CurrentURL(ctx)
	require.NoError(t, err)
	assert.Equal(t, candidates[2].URL, url)

	require.NoError(t, mgr.Restore(ctx))
	url, _, err = mgr.CurrentURL(ctx)
	require.NoError(t, err)
	assert.Equal(t, candidates[1].URL, url)
}

func TestFileBackends_RestoreReturnsPriorBytes(t *testing.T) {
	ctx := context.Background()
	prior := map[string]string{
		"pip":    "[global]\ntimeout = 60\n",
		"npm":    "save-exact=true\n",
		"conda":  "channels:\n  - conda-forge\n",
		"cargo":  "[net]\ngit-fetch-with-cli = true\n",
		"docker": "{\n  // managed by hand\n  \"debug\": true,\n}\n",
		"git":    "[user]\n\tname = Jane\n",
		"maven":  "<settings>\n</settings>\n",
	}

	for id, content := range prior {
		t.Run(id, func(t *testing.T) {
			env := testEnv(t)
			mgr := fileBacked[id](env)
			path := mgr.ConfigPath()
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			require.NoError(t, mgr.SetSource(ctx, mgr.Candidates()[1]))
			require.NoError(t, mgr.Restore(ctx))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, content, string(data))
		})
	}
}

func TestFileBackends_RestoreWithoutBackup(t *testing.T) {
	env := testEnv(t)
	mgr := NewNpm(env)
	path := mgr.ConfigPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("registry=https://custom.example/\n"), 0o644))

	err := mgr.Restore(context.Background())
	assert.ErrorIs(t, err, errs.ErrNoBackup)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "registry=https://custom.example/\n", string(data))
}

func TestFileBackends_MalformedConfigIsParseFailure(t *testing.T) {
	ctx := context.Background()
	corrupt := map[string]string{
		"cargo":  "[source.crates-io\nreplace-with = \"ustc\"\n",
		"uv":     "[[index]\nurl = \"https://pypi.org/simple\"\n",
		"docker": "{\"registry-mirrors\": [\"https://old.example\"\n",
		"conda":  "just a string",
		"git":    "[user\n\tname = Jane\n",
	}

	for id, content := range corrupt {
		t.Run(id, func(t *testing.T) {
			env := testEnv(t)
			mgr := fileBacked[id](env)
			path := mgr.ConfigPath()
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			_, _, err := mgr.CurrentURL(ctx)
			assert.ErrorIs(t, err, errs.ErrParse)

			err = mgr.SetSource(ctx, mgr.Candidates()[1])
			assert.ErrorIs(t, err, errs.ErrParse)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, content, string(data), "file is left as it was")

			entries, err := env.Backups.List(path)
			require.NoError(t, err)
			assert.Empty(t, entries, "no backup for a failed write")
		})
	}
}

func TestFileBackend_ReadErrorIsIO(t *testing.T) {
	env := testEnv(t)
	env.Paths = map[string]string{"npm": t.TempDir()}

	_, _, err := NewNpm(env).CurrentURL(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrIO)
}

func TestElevatedPrivilege(t *testing.T) {
	env := testEnv(t)
	for id, factory := range fileBacked {
		want := id == "docker" || id == "apt"
		assert.Equal(t, want, factory(env).RequiresElevatedPrivilege(), id)
	}
	assert.False(t, NewGo(env).RequiresElevatedPrivilege())
	assert.False(t, NewBrew(env).RequiresElevatedPrivilege())
}

func TestDefaultPaths(t *testing.T) {
	env := testEnv(t)
	env.Paths = nil

	assert.Equal(t, filepath.Join(env.ConfigHome, "pip", "pip.conf"), NewPip(env).ConfigPath())
	assert.Equal(t, filepath.Join(env.ConfigHome, "uv", "uv.toml"), NewUv(env).ConfigPath())
	assert.Equal(t, filepath.Join(env.Home, ".npmrc"), NewNpm(env).ConfigPath())
	assert.Equal(t, filepath.Join(env.Home, ".cargo", "config.toml"), NewCargo(env).ConfigPath())
	assert.Equal(t, "/etc/docker/daemon.json", NewDocker(env).ConfigPath())
	assert.Equal(t, "/etc/apt/sources.list", NewApt(env).ConfigPath())
	assert.Equal(t, "(env var GOPROXY)", NewGo(env).ConfigPath())
	assert.Equal(t, "(shell profile)", NewBrew(env).ConfigPath())

	env.GOOS = "windows"
	env.Getenv = func(k string) string {
		if k == "APPDATA" {
			return "C:/Users/jane/AppData/Roaming"
		}
		return ""
	}
	assert.Equal(t, filepath.Join("C:/Users/jane/AppData/Roaming", "pip", "pip.ini"), NewPip(env).ConfigPath())

	env.GOOS = "darwin"
	assert.Equal(t, filepath.Join(env.Home, ".docker", "daemon.json"), NewDocker(env).ConfigPath())

	env.Home = ""
	assert.Equal(t, filepath.Join(".", ".npmrc"), NewNpm(env).ConfigPath())
}
