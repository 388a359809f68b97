package source

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/devhub/internal/models"
)

// NewConda manages default_channels and custom_channels in ~/.condarc.
func NewConda(env Env) Manager {
	return &fileBackend{
		id:     "conda",
		path:   env.path("conda", env.homePath(".condarc")),
		env:    env,
		format: condaFormat{},
	}
}

type condaFormat struct{}

func (condaFormat) extract(content []byte) (string, bool, error) {
	doc, err := decodeYAML(content)
	if err != nil {
		return "", false, err
	}
	channels, _ := doc["default_channels"].([]any)
	if len(channels) == 0 {
		return "", false, nil
	}
	first, _ := channels[0].(string)
	first = strings.TrimRight(strings.TrimSpace(first), "/")
	first = strings.TrimSuffix(first, "/pkgs/main")
	return first, first != "", nil
}

func (condaFormat) render(existing []byte, m models.Mirror) ([]byte, error) {
	doc, err := decodeYAML(existing)
	if err != nil {
		return nil, err
	}
	base := strings.TrimRight(m.URL, "/")

	if _, ok := doc["channels"]; !ok {
		doc["channels"] = []any{"defaults"}
	}
	doc["show_channel_urls"] = true
	doc["default_channels"] = []any{
		base + "/pkgs/main",
		base + "/pkgs/r",
		base + "/pkgs/msys2",
	}

	custom, _ := doc["custom_channels"].(map[string]any)
	if custom == nil {
		custom = map[string]any{}
	}
	custom["conda-forge"] = base + "/cloud"
	custom["pytorch"] = base + "/cloud"
	doc["custom_channels"] = custom

	return yaml.Marshal(doc)
}

func decodeYAML(content []byte) (map[string]any, error) {
	doc := map[string]any{}
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}
