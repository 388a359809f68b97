package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"

	"github.com/tailscale/hujson"
	"github.com/tidwall/gjson"

	"github.com/MrSnakeDoc/devhub/internal/logger"
	"github.com/MrSnakeDoc/devhub/internal/models"
)

const dockerMirrorsKey = "registry-mirrors"

var errInvalidJSON = errors.New("invalid JSON document")

// NewDocker manages registry-mirrors in the daemon configuration. Comments
// and trailing commas are tolerated on read.
func NewDocker(env Env) Manager {
	var def string
	switch env.GOOS {
	case "darwin":
		def = env.homePath(".docker", "daemon.json")
	case "windows":
		def = filepath.Join(env.getenv("PROGRAMDATA"), "docker", "config", "daemon.json")
	default:
		def = "/etc/docker/daemon.json"
	}
	return &fileBackend{
		id:       "docker",
		path:     env.path("docker", def),
		elevated: true,
		env:      env,
		format:   dockerFormat{},
		notice: func(models.Mirror) {
			logger.Warn("Restart the Docker daemon for the change to take effect")
			logger.Info("  Linux: sudo systemctl restart docker")
			logger.Info("  macOS/Windows: restart Docker Desktop")
		},
	}
}

type dockerFormat struct{}

func standardJSON(content []byte) ([]byte, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return []byte("{}"), nil
	}
	return hujson.Standardize(bytes.Clone(content))
}

func (dockerFormat) extract(content []byte) (string, bool, error) {
	std, err := standardJSON(content)
	if err != nil {
		return "", false, err
	}
	if !gjson.ValidBytes(std) {
		return "", false, errInvalidJSON
	}
	first := gjson.GetBytes(std, dockerMirrorsKey+".0")
	if first.Type != gjson.String || first.String() == "" {
		return "", false, nil
	}
	return first.String(), true, nil
}

func (dockerFormat) render(existing []byte, m models.Mirror) ([]byte, error) {
	std, err := standardJSON(existing)
	if err != nil {
		return nil, err
	}

	doc := map[string]any{}
	if err := json.Unmarshal(std, &doc); err != nil {
		return nil, err
	}
	doc[dockerMirrorsKey] = []string{m.URL}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
