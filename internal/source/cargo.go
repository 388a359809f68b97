package source

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/MrSnakeDoc/devhub/internal/models"
)

const cargoMirrorName = "mirror"

// NewCargo manages the crates-io source replacement of ~/.cargo/config.toml.
func NewCargo(env Env) Manager {
	return &fileBackend{
		id:     "cargo",
		path:   env.path("cargo", env.homePath(".cargo", "config.toml")),
		env:    env,
		format: cargoFormat{},
	}
}

type cargoFormat struct{}

func (cargoFormat) extract(content []byte) (string, bool, error) {
	doc, err := decodeTOML(content)
	if err != nil {
		return "", false, err
	}
	sources := table(doc["source"])
	replaceWith, _ := table(sources["crates-io"])["replace-with"].(string)
	if replaceWith == "" {
		return "", false, nil
	}
	url, _ := table(sources[replaceWith])["registry"].(string)
	return url, url != "", nil
}

func (cargoFormat) render(existing []byte, m models.Mirror) ([]byte, error) {
	doc, err := decodeTOML(existing)
	if err != nil {
		return nil, err
	}

	sources := table(doc["source"])
	if sources == nil {
		sources = map[string]any{}
	}
	cratesIO := table(sources["crates-io"])
	if cratesIO == nil {
		cratesIO = map[string]any{}
	}
	cratesIO["replace-with"] = cargoMirrorName
	sources["crates-io"] = cratesIO
	sources[cargoMirrorName] = map[string]any{"registry": m.URL}
	doc["source"] = sources

	return toml.Marshal(doc)
}
