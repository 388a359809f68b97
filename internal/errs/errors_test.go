package errs

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathError_MatchesKindAndCause(t *testing.T) {
	err := IO("read", "/tmp/pip.conf", fs.ErrPermission)

	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.NotErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "/tmp/pip.conf")
}

func TestNoBackup(t *testing.T) {
	err := NoBackup("/etc/docker/daemon.json")

	assert.ErrorIs(t, err, ErrNoBackup)
	assert.Equal(t, "restore /etc/docker/daemon.json: no backup found", err.Error())
}

func TestUnknownToolError(t *testing.T) {
	err := error(&UnknownToolError{Name: "pipx", Suggestion: "pip", Supported: []string{"npm", "pip"}})

	assert.ErrorIs(t, err, ErrUnknownTool)
	var ute *UnknownToolError
	assert.True(t, errors.As(err, &ute))
	assert.Equal(t, []string{"npm", "pip"}, ute.Supported)
	assert.Contains(t, err.Error(), `did you mean "pip"?`)
}

func TestMsg_UnknownCodeFallsBack(t *testing.T) {
	assert.Equal(t, "NOPE", Msg(Code("NOPE")))
	assert.Contains(t, Msg(SourceOrFastest, "pip"), "devhub use pip --fastest")
}
