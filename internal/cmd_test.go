package internal

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/devhub/internal/backup"
	"github.com/MrSnakeDoc/devhub/internal/bench"
	"github.com/MrSnakeDoc/devhub/internal/catalog"
	"github.com/MrSnakeDoc/devhub/internal/core"
	"github.com/MrSnakeDoc/devhub/internal/detect"
	"github.com/MrSnakeDoc/devhub/internal/globalconfig"
	"github.com/MrSnakeDoc/devhub/internal/middleware"
	"github.com/MrSnakeDoc/devhub/internal/models"
	"github.com/MrSnakeDoc/devhub/internal/registry"
	"github.com/MrSnakeDoc/devhub/internal/runner"
	"github.com/MrSnakeDoc/devhub/internal/source"
)

// fixedRanker reports the mirror named fast as the only reachable one.
type fixedRanker struct{ fast string }

func (r fixedRanker) Rank(_ context.Context, mirrors []models.Mirror) []models.BenchmarkResult {
	out := make([]models.BenchmarkResult, 0, len(mirrors))
	for _, m := range mirrors {
		d := models.Unreachable
		if m.Name == r.fast {
			d = 20 * time.Millisecond
		}
		out = append(out, models.BenchmarkResult{Mirror: m, Latency: d})
	}
	bench.Sort(out)
	return out
}

type harness struct {
	ctx context.Context
	env source.Env
}

func newHarness(t *testing.T, ranker core.Ranker) *harness {
	t.Helper()
	dir := t.TempDir()

	cat, err := catalog.Default()
	require.NoError(t, err)
	store := backup.NewStore(backup.WithLockDir(filepath.Join(dir, "locks")))

	env := source.Env{
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
		Backups: store,
	}

	settings := &globalconfig.Settings{
		Benchmark: globalconfig.BenchmarkSettings{Timeout: time.Second, UserAgent: "devhub-test"},
	}
	ctx := context.WithValue(context.Background(), middleware.CtxKeySettings, settings)
	ctx = context.WithValue(ctx, middleware.CtxKeyHub, core.New(registry.New(env), ranker, store))
	return &harness{ctx: ctx, env: env}
}

func (h *harness) run(args ...string) error {
	return h.runWithInput("", args...)
}

func (h *harness) runWithInput(input string, args ...string) error {
	root := NewRootCmd()
	root.SetContext(h.ctx)
	root.SetIn(strings.NewReader(input))
	root.SetOut(io.Discard)
	root.SetArgs(append([]string{"-s"}, args...))
	_, err := root.ExecuteC()
	return err
}

func (h *harness) pipConf() string {
	return filepath.Join(h.env.ConfigHome, "pip", "pip.conf")
}

func TestUseCmd_FlagValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "No mirror without --fastest", args: []string{"use", "pip"}},
		{name: "--fastest with a mirror name", args: []string{"use", "pip", "Aliyun", "--fastest"}},
		{name: "Unknown mirror", args: []string{"use", "pip", "Nowhere"}},
		{name: "Unknown tool", args: []string{"use", "nmp", "Aliyun"}},
	}

	h := newHarness(t, fixedRanker{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.run(tt.args...)
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !strings.Contains(err.Error(), "already logged") {
				t.Errorf("expected sentinel error, got: %v", err)
			}
		})
	}

	assert.NoFileExists(t, h.pipConf())
}

func TestUseAndRestore(t *testing.T) {
	h := newHarness(t, fixedRanker{})

	require.NoError(t, h.run("use", "pip", "aliyun"))
	data, err := os.ReadFile(h.pipConf())
	require.NoError(t, err)
	assert.Contains(t, string(data), "mirrors.aliyun.com")

	require.NoError(t, h.run("status", "pip"))
	require.NoError(t, h.run("status"))
	require.NoError(t, h.run("backups", "pip"))

	require.NoError(t, h.run("restore", "pip"))
	assert.NoFileExists(t, h.pipConf())
}

func TestUseFastest(t *testing.T) {
	h := newHarness(t, fixedRanker{fast: "Tsinghua"})

	require.NoError(t, h.run("use", "pip", "--fastest"))
	data, err := os.ReadFile(h.pipConf())
	require.NoError(t, err)
	assert.Contains(t, string(data), "tsinghua")
}

func TestUseFastest_InteractiveDeclined(t *testing.T) {
	h := newHarness(t, fixedRanker{fast: "Tsinghua"})

	require.NoError(t, h.runWithInput("n\n", "use", "pip", "--fastest", "-i"))
	assert.NoFileExists(t, h.pipConf())

	require.NoError(t, h.runWithInput("\n", "use", "pip", "--fastest", "-i"))
	assert.FileExists(t, h.pipConf())
}

func TestUseFastest_AllUnreachable(t *testing.T) {
	h := newHarness(t, fixedRanker{})

	err := h.run("use", "pip", "--fastest")
	assert.ErrorIs(t, err, middleware.ErrLogged)
	assert.NoFileExists(t, h.pipConf())
}

func TestRestoreCmd_NoBackup(t *testing.T) {
	h := newHarness(t, fixedRanker{})
	assert.ErrorIs(t, h.run("restore", "npm"), middleware.ErrLogged)
}

func TestReadOnlyCommands(t *testing.T) {
	h := newHarness(t, fixedRanker{fast: "Official"})

	require.NoError(t, h.run("mirrors", "cargo"))
	require.NoError(t, h.run("test", "pip"))
	require.NoError(t, h.run("backups", "go"))
	assert.ErrorIs(t, h.run("mirrors", "nmp"), middleware.ErrLogged)
}

func TestRootCmd_Version(t *testing.T) {
	h := newHarness(t, fixedRanker{})
	require.NoError(t, h.run("--version"))
}

func TestListCmd(t *testing.T) {
	orig := detector
	t.Cleanup(func() { detector = orig })

	mock := runner.NewMockRunner()
	mock.MockVersion("git", "git version 2.43.0")
	detector = func() *detect.Detector {
		return detect.New(mock).WithLookPath(func(name string) (string, error) {
			if name == "git" {
				return "/usr/bin/git", nil
			}
			return "", os.ErrNotExist
		})
	}

	h := newHarness(t, fixedRanker{})
	require.NoError(t, h.run("list"))
	assert.True(t, mock.VerifyCommand("git", "--version"))
}
