package registry

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/devhub/internal/backup"
	"github.com/MrSnakeDoc/devhub/internal/catalog"
	"github.com/MrSnakeDoc/devhub/internal/errs"
	"github.com/MrSnakeDoc/devhub/internal/logger"
	"github.com/MrSnakeDoc/devhub/internal/source"
	"github.com/MrSnakeDoc/devhub/internal/utils"
)

func init() {
	logger.UseTestMode()
}

var allTools = []string{
	"apt", "brew", "cargo", "conda", "docker", "git", "go",
	"gradle", "maven", "npm", "pip", "pnpm", "uv", "yarn",
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	dir := t.TempDir()
	env := source.Env{
		Home:       dir,
		ConfigHome: filepath.Join(dir, "config"),
		GOOS:       "linux",
		OSRelease:  filepath.Join(dir, "os-release"),
		Catalog:    cat,
		Backups:    backup.NewStore(backup.WithLockDir("")),
	}
	return New(env)
}

func TestSupported(t *testing.T) {
	assert.Equal(t, allTools, testRegistry(t).Supported())
}

func TestGet_EveryToolHasHTTPCandidates(t *testing.T) {
	r := testRegistry(t)
	for _, id := range r.Supported() {
		mgr, err := r.Get(id)
		require.NoError(t, err)
		assert.Equal(t, id, mgr.Identifier())

		candidates := mgr.Candidates()
		require.NotEmpty(t, candidates, id)
		for _, m := range candidates {
			_, err := utils.ParseProbeURL(m.URL)
			assert.NoError(t, err, "%s/%s", id, m.Name)
		}
	}
}

func TestGet_CaseInsensitive(t *testing.T) {
	mgr, err := testRegistry(t).Get("  PIP ")
	require.NoError(t, err)
	assert.Equal(t, "pip", mgr.Identifier())
}

func TestGet_UnknownTool(t *testing.T) {
	_, err := testRegistry(t).Get("nmp")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrUnknownTool))

	var unknown *errs.UnknownToolError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "npm", unknown.Suggestion)
	assert.Equal(t, allTools, unknown.Supported)

	_, err = testRegistry(t).Get("kubernetes")
	require.True(t, errors.As(err, &unknown))
	assert.Empty(t, unknown.Suggestion)
}

func TestAll(t *testing.T) {
	managers := testRegistry(t).All()
	require.Len(t, managers, len(allTools))
	for i, m := range managers {
		assert.Equal(t, allTools[i], m.Identifier())
	}
}

func TestEditDistance(t *testing.T) {
	assert.Equal(t, 0, editDistance("pip", "pip"))
	assert.Equal(t, 1, editDistance("nmp", "npm"))
	assert.Equal(t, 1, editDistance("carg", "cargo"))
	assert.Equal(t, 2, editDistance("nmp", "pip"))
	assert.Equal(t, 3, editDistance("", "uv "))
}
