package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EmbedderConfig selects and configures the definition embedder.
type EmbedderConfig struct {
	Type             string   `yaml:"type"`
	SensoryKeywords  []string `yaml:"sensory_keywords,omitempty"`
	AbstractKeywords []string `yaml:"abstract_keywords,omitempty"`
}

// SegmenterConfig overrides the segmentation pattern tables. Empty lists
// keep the bundled defaults; the list order is the match order.
type SegmenterConfig struct {
	Prefixes     []string `yaml:"prefixes,omitempty"`
	Suffixes     []string `yaml:"suffixes,omitempty"`
	RootPatterns []string `yaml:"root_patterns,omitempty"`
	ChunkSize    int      `yaml:"chunk_size"`
}

// LexiconConfig selects the word -> definition source.
type LexiconConfig struct {
	Path string `yaml:"path,omitempty"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Embedder  EmbedderConfig  `yaml:"embedder"`
	Segmenter SegmenterConfig `yaml:"segmenter"`
	Lexicon   LexiconConfig   `yaml:"lexicon"`
	Log       LogConfig       `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/morphembed/config.yaml.
// If neither exists, it writes defaults to the user path and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "morphembed", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Embedder:  EmbedderConfig{Type: "heuristic"},
		Segmenter: SegmenterConfig{ChunkSize: 4},
		Log:       LogConfig{Level: "info"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Embedder.Type == "" {
		cfg.Embedder.Type = "heuristic"
	}
	if cfg.Segmenter.ChunkSize <= 0 {
		cfg.Segmenter.ChunkSize = 4
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}
