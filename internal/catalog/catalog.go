package catalog

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/devhub/internal/logger"
	"github.com/MrSnakeDoc/devhub/internal/models"
	"github.com/MrSnakeDoc/devhub/internal/utils"
)

//go:embed mirrors.yaml
var builtin []byte

const OverrideFileName = "mirrors.yaml"

// Catalog maps a tool identifier to its ordered candidate mirrors. It is
// read-only once built.
type Catalog struct {
	tools map[string][]models.Mirror
}

// New builds a catalog from an in-memory map. Keys are lowercased.
func New(tools map[string][]models.Mirror) *Catalog {
	c := &Catalog{tools: make(map[string][]models.Mirror, len(tools))}
	for id, mirrors := range tools {
		c.tools[normalizeID(id)] = append([]models.Mirror(nil), mirrors...)
	}
	return c
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	tools, err := Parse(builtin)
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in catalog: %w", err)
	}
	return New(tools), nil
}

// DefaultOverridePath is the user-editable catalog location.
func DefaultOverridePath() string {
	return filepath.Join(xdg.ConfigHome, "devhub", OverrideFileName)
}

// Load returns the built-in catalog merged with the file at overridePath.
// Every tool present in the override replaces the built-in list of that tool.
// A missing override is not an error; an unreadable or invalid one is logged
// and ignored so a typo never leaves devhub without candidates.
func Load(overridePath string) (*Catalog, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	if overridePath == "" {
		return c, nil
	}

	data, exists, err := utils.ReadFileIfExists(overridePath)
	if err != nil {
		logger.Warn("Cannot read mirror catalog %s, using built-in list: %v", overridePath, err)
		return c, nil
	}
	if !exists {
		return c, nil
	}

	override, err := Parse(data)
	if err != nil {
		logger.Warn("Invalid mirror catalog %s, using built-in list: %v", overridePath, err)
		return c, nil
	}

	for id, mirrors := range override {
		c.tools[normalizeID(id)] = mirrors
	}
	logger.Debug("Loaded mirror catalog override %s (%d tools)", overridePath, len(override))
	return c, nil
}

// Parse decodes a catalog document (YAML, or JSON which is a subset) and
// validates every entry.
func Parse(data []byte) (map[string][]models.Mirror, error) {
	var raw map[string][]models.Mirror
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	for id, mirrors := range raw {
		if len(mirrors) == 0 {
			return nil, fmt.Errorf("tool %q has no mirrors", id)
		}
		for i, m := range mirrors {
			if strings.TrimSpace(m.Name) == "" {
				return nil, fmt.Errorf("tool %q: mirror #%d has no name", id, i+1)
			}
			if _, err := utils.ParseProbeURL(m.URL); err != nil {
				return nil, fmt.Errorf("tool %q: mirror %q: %w", id, m.Name, err)
			}
		}
	}
	return raw, nil
}

// CandidatesFor returns a copy of the candidate list for id, or nil.
func (c *Catalog) CandidatesFor(id string) []models.Mirror {
	mirrors, ok := c.tools[normalizeID(id)]
	if !ok {
		return nil
	}
	return append([]models.Mirror(nil), mirrors...)
}

// Tools lists the catalog keys in sorted order.
func (c *Catalog) Tools() []string {
	return utils.SortedKeys(c.tools)
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
