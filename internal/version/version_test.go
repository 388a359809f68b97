package version

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })
	Version = "1.2.3"

	var buf bytes.Buffer
	Print(&buf)

	out := buf.String()
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
	assert.Equal(t, "1.2.3", Short())
}
