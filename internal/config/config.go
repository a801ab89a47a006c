package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

const (
	defaultSourceExt            = ".scene"
	defaultExportExt            = ".json"
	defaultWatchDebounceSeconds = 2
)

// PipelineConfig describes the directory layout the batch pipeline works over.
type PipelineConfig struct {
	ModelsDir  string `yaml:"models_dir"`
	ExportDir  string `yaml:"export_dir"`
	ReportsDir string `yaml:"reports_dir"`
	SourceExt  string `yaml:"source_ext"`
	ExportExt  string `yaml:"export_ext"`
}

// WorkspaceConfig describes the interactive authoring workspace.
type WorkspaceConfig struct {
	Dir string `yaml:"dir"`
}

type WatchConfig struct {
	DebounceSeconds int `yaml:"debounce_seconds"`
}

// Debounce is the coalescing window for filesystem events in watch mode.
func (w WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceSeconds) * time.Second
}

type LogConfig struct {
	Level          string `yaml:"level"`
	FilePath       string `yaml:"file_path"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxFiles   int    `yaml:"file_max_files"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

type Config struct {
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Workspace WorkspaceConfig `yaml:"workspace"`
	Watch     WatchConfig     `yaml:"watch"`
	Log       LogConfig       `yaml:"log"`
}

// MustLoad reads and validates the YAML config, panicking on any problem.
// Directory preconditions are environment errors, not per-asset conditions,
// so failing hard here is the intended behavior.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("cannot unmarshal config: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if cfg.Pipeline.ModelsDir == "" {
		return nil, fmt.Errorf("pipeline.models_dir must be set")
	}
	if cfg.Pipeline.ExportDir == "" {
		return nil, fmt.Errorf("pipeline.export_dir must be set")
	}
	if cfg.Pipeline.ReportsDir == "" {
		return nil, fmt.Errorf("pipeline.reports_dir must be set")
	}

	return &cfg, nil
}

// applyEnv lets the environment (usually a .env loaded in main) override the
// directory layout without editing the config file.
func (c *Config) applyEnv() {
	if v := os.Getenv("ASSETPIPE_MODELS_DIR"); v != "" {
		c.Pipeline.ModelsDir = v
	}
	if v := os.Getenv("ASSETPIPE_EXPORT_DIR"); v != "" {
		c.Pipeline.ExportDir = v
	}
	if v := os.Getenv("ASSETPIPE_REPORTS_DIR"); v != "" {
		c.Pipeline.ReportsDir = v
	}
	if v := os.Getenv("ASSETPIPE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

func (c *Config) applyDefaults() {
	if c.Pipeline.SourceExt == "" {
		c.Pipeline.SourceExt = defaultSourceExt
	}
	if c.Pipeline.ExportExt == "" {
		c.Pipeline.ExportExt = defaultExportExt
	}
	if c.Watch.DebounceSeconds <= 0 {
		c.Watch.DebounceSeconds = defaultWatchDebounceSeconds
	}
	if c.Log.Level == "" {
		c.Log.Level = LogLevelInfo
	}
	if c.Workspace.Dir == "" {
		c.Workspace.Dir = "_workspace"
	}
}
