package globalconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/MrSnakeDoc/devhub/internal/catalog"
	"github.com/MrSnakeDoc/devhub/internal/utils/pathutils"
)

const (
	EnvPrefix  = "DEVHUB"
	configFile = "config.yaml"

	KeyTimeout     = "benchmark.timeout"
	KeyWorkers     = "benchmark.workers"
	KeyUserAgent   = "benchmark.user_agent"
	KeyCatalogFile = "catalog.file"
	KeyPaths       = "paths"

	DefaultTimeout   = 5 * time.Second
	DefaultUserAgent = "devhub"
)

// Settings is devhub's own configuration. Every field has a default, so a
// missing config file is fine.
type Settings struct {
	Benchmark BenchmarkSettings `mapstructure:"benchmark"`
	Catalog   CatalogSettings   `mapstructure:"catalog"`
	// Paths overrides the config file location of a tool, keyed by tool id.
	Paths map[string]string `mapstructure:"paths"`

	// ConfigFile is the file the settings were read from, empty if none.
	ConfigFile string `mapstructure:"-"`
}

type BenchmarkSettings struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	Workers   int           `mapstructure:"workers"`
	UserAgent string        `mapstructure:"user_agent"`
}

type CatalogSettings struct {
	File string `mapstructure:"file"`
}

func GetConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "devhub")
}

func DefaultConfigPath() string {
	return filepath.Join(GetConfigDir(), configFile)
}

// NewViper returns a viper instance with devhub's defaults and DEVHUB_*
// environment overrides (benchmark.timeout -> DEVHUB_BENCHMARK_TIMEOUT).
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyUserAgent, DefaultUserAgent)
	v.SetDefault(KeyCatalogFile, catalog.DefaultOverridePath())
	v.SetDefault(KeyPaths, map[string]string{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags maps command line flags onto settings keys. Flags that do not
// exist on the set are skipped.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range map[string]string{
		KeyTimeout: "timeout",
		KeyWorkers: "workers",
	} {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// Load reads path, or the default config file when path is empty. Only an
// explicitly requested file must exist.
func Load(v *viper.Viper, path string) (*Settings, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	absPath, err := pathutils.ToAbsolutePath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	v.SetConfigFile(absPath)
	v.SetConfigType("yaml")

	used := absPath
	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", absPath, err)
		}
		used = ""
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	s.ConfigFile = used

	if err := s.normalize(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) normalize() error {
	if s.Benchmark.Timeout <= 0 {
		s.Benchmark.Timeout = DefaultTimeout
	}
	if s.Benchmark.Workers < 0 {
		return fmt.Errorf("invalid %s %d: must be 0 or more", KeyWorkers, s.Benchmark.Workers)
	}
	if s.Benchmark.UserAgent == "" {
		s.Benchmark.UserAgent = DefaultUserAgent
	}

	if s.Catalog.File != "" {
		p, err := pathutils.ToAbsolutePath(s.Catalog.File)
		if err != nil {
			return fmt.Errorf("failed to resolve catalog path: %w", err)
		}
		s.Catalog.File = p
	}

	paths := make(map[string]string, len(s.Paths))
	for id, p := range s.Paths {
		abs, err := pathutils.ToAbsolutePath(p)
		if err != nil {
			return fmt.Errorf("failed to resolve path of %s: %w", id, err)
		}
		paths[strings.ToLower(id)] = abs
	}
	s.Paths = paths
	return nil
}
