package source

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/subosito/gotenv"

	"github.com/MrSnakeDoc/devhub/internal/logger"
	"github.com/MrSnakeDoc/devhub/internal/models"
	"github.com/MrSnakeDoc/devhub/internal/utils"
)

const (
	distroUbuntu = "ubuntu"
	distroDebian = "debian"
)

var aptDebRe = regexp.MustCompile(`(?m)^[ \t]*deb[ \t]+(?:\[[^\]]*\][ \t]+)?(https?://\S+)[ \t]+`)

var aptDefaultCodename = map[string]string{
	distroUbuntu: "jammy",
	distroDebian: "bookworm",
}

// NewApt manages /etc/apt/sources.list. The distribution and release
// codename come from os-release; an unreadable file means Ubuntu.
func NewApt(env Env) Manager {
	distro, codename := detectDistro(env.OSRelease)
	return &fileBackend{
		id:         "apt",
		catalogKey: "apt-" + distro,
		path:       env.path("apt", "/etc/apt/sources.list"),
		elevated:   true,
		env:        env,
		format:     aptFormat{distro: distro, codename: codename},
		notice: func(models.Mirror) {
			logger.Info("Run 'sudo apt update' to refresh the package index")
		},
	}
}

type aptFormat struct {
	distro   string
	codename string
}

func (aptFormat) extract(content []byte) (string, bool, error) {
	url, ok := firstGroup(aptDebRe, content)
	return url, ok, nil
}

func (f aptFormat) render(_ []byte, m models.Mirror) ([]byte, error) {
	url := m.URL
	c := f.codename

	var lines []string
	if f.distro == distroDebian {
		security := strings.TrimRight(url, "/") + "-security"
		lines = []string{
			"deb " + url + " " + c + " main contrib non-free",
			"deb " + url + " " + c + "-updates main contrib non-free",
			"deb " + security + " " + c + "-security main contrib non-free",
		}
	} else {
		lines = []string{
			"deb " + url + " " + c + " main restricted universe multiverse",
			"deb " + url + " " + c + "-updates main restricted universe multiverse",
			"deb " + url + " " + c + "-backports main restricted universe multiverse",
			"deb " + url + " " + c + "-security main restricted universe multiverse",
		}
	}
	return []byte(strings.Join(lines, "\n") + "\n"), nil
}

// detectDistro reads ID, ID_LIKE and VERSION_CODENAME from an os-release file.
func detectDistro(path string) (distro, codename string) {
	distro = distroUbuntu
	if path == "" {
		return distro, aptDefaultCodename[distro]
	}

	data, exists, err := utils.ReadFileIfExists(path)
	if err != nil || !exists {
		if err != nil {
			logger.Debug("cannot read %s: %v", path, err)
		}
		return distro, aptDefaultCodename[distro]
	}

	release := gotenv.Parse(bytes.NewReader(data))
	ids := strings.ToLower(release["ID"] + " " + release["ID_LIKE"])
	switch {
	case strings.Contains(ids, distroUbuntu):
		distro = distroUbuntu
	case strings.Contains(ids, distroDebian):
		distro = distroDebian
	}

	// Ubuntu derivatives carry their own VERSION_CODENAME.
	if distro == distroUbuntu {
		codename = strings.TrimSpace(release["UBUNTU_CODENAME"])
	}
	if codename == "" {
		codename = strings.TrimSpace(release["VERSION_CODENAME"])
	}
	if codename == "" {
		codename = aptDefaultCodename[distro]
	}
	return distro, codename
}
