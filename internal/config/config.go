package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/milestones/internal/domain"
	"gopkg.in/yaml.v3"
)

// Defaults are the view settings applied when a command does not set them.
type Defaults struct {
	AnchorMode  domain.AnchorMode
	Granularity domain.Granularity
	LabelFormat domain.LabelFormat
	Statuses    []domain.Status
}

// Config holds everything the CLI reads before wiring services.
type Config struct {
	// Path is the config file that was read, or "" when none existed.
	Path     string
	DBPath   string
	LogFile  string
	Defaults Defaults

	problems []string
}

// fileConfig is the on-disk YAML shape. Values stay strings so bad entries
// can be reported instead of failing the whole load.
type fileConfig struct {
	DBPath   string `yaml:"db_path"`
	LogFile  string `yaml:"log_file"`
	Defaults struct {
		AnchorMode  string   `yaml:"anchor_mode"`
		Granularity string   `yaml:"granularity"`
		LabelFormat string   `yaml:"label_format"`
		Statuses    []string `yaml:"statuses"`
	} `yaml:"defaults"`
}

// DefaultConfig returns the built-in settings. The database lives at
// ~/.milestones/milestones.db and logging is off.
func DefaultConfig() Config {
	dbPath := "milestones.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".milestones", "milestones.db")
	}
	return Config{
		DBPath: dbPath,
		Defaults: Defaults{
			AnchorMode:  domain.AnchorNamedSentinel,
			Granularity: domain.GranularityMonthly,
			LabelFormat: domain.LabelMonthShortYear,
			Statuses:    append([]domain.Status(nil), domain.DefaultStatusFilter...),
		},
	}
}

// Load layers the config file and then MILESTONES_* environment variables
// over the defaults. A missing file is not an error; an unreadable or
// malformed one is. Invalid individual values are skipped and reported by
// Validate.
func Load() (Config, error) {
	cfg := DefaultConfig()

	path, err := configPath()
	if err == nil {
		if err := cfg.loadFile(path); err != nil {
			return cfg, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// Validate returns the problems found while loading, one message per
// ignored value.
func (c Config) Validate() []string {
	return append([]string(nil), c.problems...)
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	c.Path = path

	if fc.DBPath != "" {
		c.DBPath = expandHome(fc.DBPath)
	}
	if fc.LogFile != "" {
		c.LogFile = expandHome(fc.LogFile)
	}
	c.setAnchorMode(fc.Defaults.AnchorMode, "defaults.anchor_mode")
	c.setGranularity(fc.Defaults.Granularity, "defaults.granularity")
	c.setLabelFormat(fc.Defaults.LabelFormat, "defaults.label_format")
	if len(fc.Defaults.Statuses) > 0 {
		if sts, err := domain.ParseStatuses(fc.Defaults.Statuses); err != nil {
			c.problems = append(c.problems, fmt.Sprintf("defaults.statuses: %v", err))
		} else {
			c.Defaults.Statuses = sts
		}
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("MILESTONES_DB"); v != "" {
		c.DBPath = expandHome(v)
	}
	if v := os.Getenv("MILESTONES_LOG"); v != "" {
		c.LogFile = v
	}
	c.setAnchorMode(os.Getenv("MILESTONES_ANCHOR_MODE"), "MILESTONES_ANCHOR_MODE")
	c.setGranularity(os.Getenv("MILESTONES_GRANULARITY"), "MILESTONES_GRANULARITY")
	c.setLabelFormat(os.Getenv("MILESTONES_LABEL_FORMAT"), "MILESTONES_LABEL_FORMAT")
}

func (c *Config) setAnchorMode(v, source string) {
	if v == "" {
		return
	}
	m, err := domain.ParseAnchorMode(v)
	if err != nil {
		c.problems = append(c.problems, fmt.Sprintf("%s: %v", source, err))
		return
	}
	c.Defaults.AnchorMode = m
}

func (c *Config) setGranularity(v, source string) {
	if v == "" {
		return
	}
	g, err := domain.ParseGranularity(v)
	if err != nil {
		c.problems = append(c.problems, fmt.Sprintf("%s: %v", source, err))
		return
	}
	c.Defaults.Granularity = g
}

func (c *Config) setLabelFormat(v, source string) {
	if v == "" {
		return
	}
	f, err := domain.ParseLabelFormat(v)
	if err != nil {
		c.problems = append(c.problems, fmt.Sprintf("%s: %v", source, err))
		return
	}
	c.Defaults.LabelFormat = f
}

// configPath returns MILESTONES_CONFIG, else the XDG location.
func configPath() (string, error) {
	if p := os.Getenv("MILESTONES_CONFIG"); p != "" {
		return expandHome(p), nil
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "milestones", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "milestones", "config.yaml"), nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
