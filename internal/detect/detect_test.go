package detect

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrSnakeDoc/devhub/internal/logger"
	"github.com/MrSnakeDoc/devhub/internal/runner"
)

func init() {
	logger.UseTestMode()
}

func fakePath(installed map[string]string) func(string) (string, error) {
	return func(bin string) (string, error) {
		if p, ok := installed[bin]; ok {
			return p, nil
		}
		return "", errors.New("not found")
	}
}

func TestDetect_InstalledWithVersion(t *testing.T) {
	mock := runner.NewMockRunner()
	mock.MockVersion("go", "go version go1.22.3 linux/amd64\n", "version")
	mock.MockVersion("mvn", "Apache Maven 3.9.6 (bc0240f3c744dd6b6ec2920b3cd08dcc295161ae)\n", "-v")

	d := New(mock).WithLookPath(fakePath(map[string]string{"go": "/usr/local/go/bin/go", "mvn": "/usr/bin/mvn"}))

	info := d.Detect(context.Background(), "go")
	assert.True(t, info.Installed)
	assert.Equal(t, "1.22.3", info.Version)
	assert.Equal(t, "/usr/local/go/bin/go", info.Path)

	info = d.Detect(context.Background(), "maven")
	assert.True(t, info.Installed)
	assert.Equal(t, "3.9.6", info.Version)
}

func TestDetect_FallsBackToSecondBinary(t *testing.T) {
	mock := runner.NewMockRunner()
	mock.MockVersion("pip3", "pip 24.0 from /usr/lib/python3/dist-packages/pip (python 3.12)\n")

	info := New(mock).WithLookPath(fakePath(map[string]string{"pip3": "/usr/bin/pip3"})).Detect(context.Background(), "pip")
	assert.True(t, info.Installed)
	assert.Equal(t, "24.0", info.Version)
	assert.True(t, mock.VerifyCommand("pip3", "--version"))
}

func TestDetect_NotInstalled(t *testing.T) {
	mock := runner.NewMockRunner()
	info := New(mock).WithLookPath(fakePath(nil)).Detect(context.Background(), "cargo")

	assert.False(t, info.Installed)
	assert.Empty(t, info.Version)
	assert.True(t, mock.VerifyRunCount("cargo", 0))
}

func TestDetect_VersionFailureKeepsInstalled(t *testing.T) {
	mock := runner.NewMockRunner()
	mock.AddResponse("docker|--version", nil, errors.New("permission denied"))

	info := New(mock).WithLookPath(fakePath(map[string]string{"docker": "/usr/bin/docker"})).Detect(context.Background(), "docker")
	assert.True(t, info.Installed)
	assert.Empty(t, info.Version)
}

func TestDetectAll_KeepsOrder(t *testing.T) {
	mock := runner.NewMockRunner()
	mock.MockVersion("git", "git version 2.43.0\n")
	d := New(mock).WithLookPath(fakePath(map[string]string{"git": "/usr/bin/git"}))

	infos := d.DetectAll(context.Background(), []string{"uv", "git", "yarn"})
	assert.Len(t, infos, 3)
	assert.Equal(t, "uv", infos[0].Name)
	assert.Equal(t, "git", infos[1].Name)
	assert.True(t, infos[1].Installed)
	assert.Equal(t, "2.43.0", infos[1].Version)
	assert.False(t, infos[2].Installed)
}
