package runner

import (
	"context"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found")
	}
}

func TestExecRunner_Modes(t *testing.T) {
	requireShell(t)
	ctx := context.Background()
	script := "echo out; echo err 1>&2"

	out, err := ExecRunner{}.Run(ctx, 5*time.Second, Capture, "sh", "-c", script)
	require.NoError(t, err)
	assert.Equal(t, "out\n", string(out))

	out, err = ExecRunner{}.Run(ctx, 5*time.Second, Combined, "sh", "-c", script)
	require.NoError(t, err)
	assert.Contains(t, string(out), "out")
	assert.Contains(t, string(out), "err")
}

func TestExecRunner_FailureCarriesStderr(t *testing.T) {
	requireShell(t)

	_, err := ExecRunner{}.Run(context.Background(), 0, Capture, "sh", "-c", "echo boom 1>&2; exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	var exitErr *exec.ExitError
	assert.ErrorAs(t, err, &exitErr)
}

func TestMockRunner_RecordsCalls(t *testing.T) {
	m := NewMockRunner()
	m.MockGoEnv("GOPROXY", "https://goproxy.cn,direct")

	out, err := m.Run(context.Background(), time.Second, Capture, "go", "env", "GOPROXY")
	require.NoError(t, err)
	assert.Equal(t, "https://goproxy.cn,direct\n", string(out))
	assert.True(t, m.VerifyCommand("go", "env", "GOPROXY"))
	assert.True(t, m.VerifyRunCount("go", 1))

	args, ok := m.LastArgs("go")
	require.True(t, ok)
	assert.Equal(t, []string{"env", "GOPROXY"}, args)
}
