package source

import (
	"regexp"
	"strings"

	"github.com/MrSnakeDoc/devhub/internal/models"
)

var gradleURLRe = regexp.MustCompile(`url\s*(?:=\s*)?(?:uri\(\s*)?['"]([^'"]+)['"]`)

const gradleTemplate = `allprojects {
    repositories {
        maven { url '{url}' }
        mavenLocal()
        mavenCentral()
    }
}

settingsEvaluated { settings ->
    settings.pluginManagement {
        repositories {
            maven { url '{url}' }
            gradlePluginPortal()
            mavenCentral()
        }
    }
}
`

// NewGradle writes an init script routing every project and plugin lookup
// through the mirror.
func NewGradle(env Env) Manager {
	return &fileBackend{
		id:     "gradle",
		path:   env.path("gradle", env.homePath(".gradle", "init.gradle")),
		env:    env,
		format: gradleFormat{},
	}
}

type gradleFormat struct{}

func (gradleFormat) extract(content []byte) (string, bool, error) {
	url, ok := firstGroup(gradleURLRe, content)
	return url, ok, nil
}

func (gradleFormat) render(_ []byte, m models.Mirror) ([]byte, error) {
	url := strings.ReplaceAll(m.URL, "'", `\'`)
	return []byte(strings.ReplaceAll(gradleTemplate, "{url}", url)), nil
}
