package globalconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func isolateXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolateXDG(t)

	s, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, s.Benchmark.Timeout)
	assert.Equal(t, 0, s.Benchmark.Workers)
	assert.Equal(t, DefaultUserAgent, s.Benchmark.UserAgent)
	assert.Equal(t, filepath.Join(dir, "devhub", "mirrors.yaml"), s.Catalog.File)
	assert.Empty(t, s.ConfigFile)
}

func TestLoad_DefaultFileIsRead(t *testing.T) {
	dir := isolateXDG(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "devhub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "devhub", "config.yaml"), []byte("benchmark:\n  workers: 3\n"), 0o644))

	s, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Benchmark.Workers)
	assert.Equal(t, DefaultConfigPath(), s.ConfigFile)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
benchmark:
  timeout: 2s
  workers: 4
catalog:
  file: /srv/devhub/mirrors.yaml
paths:
  Docker: /opt/docker/daemon.json
`)
	s, err := Load(NewViper(), path)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, s.Benchmark.Timeout)
	assert.Equal(t, 4, s.Benchmark.Workers)
	assert.Equal(t, "/srv/devhub/mirrors.yaml", s.Catalog.File)
	assert.Equal(t, map[string]string{"docker": "/opt/docker/daemon.json"}, s.Paths)
	assert.Equal(t, path, s.ConfigFile)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "benchmark:\n  timeout: 2s\n")
	t.Setenv("DEVHUB_BENCHMARK_TIMEOUT", "750ms")

	s, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, s.Benchmark.Timeout)
}

func TestLoad_FlagsOverrideEverything(t *testing.T) {
	path := writeConfig(t, "benchmark:\n  workers: 2\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Duration("timeout", DefaultTimeout, "")
	flags.Int("workers", 0, "")
	require.NoError(t, flags.Parse([]string{"--workers", "8", "--timeout", "1s"}))

	v := NewViper()
	require.NoError(t, BindFlags(v, flags))
	s, err := Load(v, path)
	require.NoError(t, err)

	assert.Equal(t, 8, s.Benchmark.Workers)
	assert.Equal(t, time.Second, s.Benchmark.Timeout)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	_, err := Load(NewViper(), writeConfig(t, "benchmark:\n  workers: -1\n"))
	assert.Error(t, err)

	s, err := Load(NewViper(), writeConfig(t, "benchmark:\n  timeout: 0s\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, s.Benchmark.Timeout)

	_, err = Load(NewViper(), writeConfig(t, "benchmark: [\n"))
	assert.Error(t, err)
}
