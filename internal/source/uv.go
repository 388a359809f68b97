package source

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/MrSnakeDoc/devhub/internal/models"
)

// NewUv manages the default [[index]] entry of uv.toml.
func NewUv(env Env) Manager {
	def := env.configPath("uv", "uv.toml")
	if env.GOOS == "windows" {
		def = env.appDataPath("uv", "uv.toml")
	}
	return &fileBackend{
		id:     "uv",
		path:   env.path("uv", def),
		env:    env,
		format: uvFormat{},
	}
}

type uvFormat struct{}

func (uvFormat) extract(content []byte) (string, bool, error) {
	doc, err := decodeTOML(content)
	if err != nil {
		return "", false, err
	}
	for _, entry := range tableArray(doc["index"]) {
		if isDefault, _ := entry["default"].(bool); !isDefault {
			continue
		}
		if url, ok := entry["url"].(string); ok && url != "" {
			return url, true, nil
		}
	}
	return "", false, nil
}

func (uvFormat) render(existing []byte, m models.Mirror) ([]byte, error) {
	doc, err := decodeTOML(existing)
	if err != nil {
		return nil, err
	}

	indexes := []any{map[string]any{"url": m.URL, "default": true}}
	for _, entry := range tableArray(doc["index"]) {
		if isDefault, _ := entry["default"].(bool); isDefault {
			continue
		}
		indexes = append(indexes, entry)
	}
	doc["index"] = indexes

	return toml.Marshal(doc)
}

func decodeTOML(content []byte) (map[string]any, error) {
	doc := map[string]any{}
	if len(content) == 0 {
		return doc, nil
	}
	if err := toml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func tableArray(v any) []map[string]any {
	var out []map[string]any
	switch items := v.(type) {
	case []any:
		for _, item := range items {
			if t, ok := item.(map[string]any); ok {
				out = append(out, t)
			}
		}
	case []map[string]any:
		out = items
	}
	return out
}

func table(v any) map[string]any {
	t, _ := v.(map[string]any)
	return t
}
