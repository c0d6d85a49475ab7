package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join("config", "thinkiplex.yaml")
}

// Load reads the config from path (or the default location when path is
// empty). Environment variables prefixed THINKIPLEX override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("global.base_dir", mustGetwd())
	v.SetDefault("global.video_quality", "720p")
	v.SetDefault("global.extract_audio", true)
	v.SetDefault("global.audio_quality", 0)
	v.SetDefault("global.audio_format", "mp3")
	v.SetDefault("global.ffmpeg_presentation_merge", true)

	v.SetEnvPrefix("THINKIPLEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv("THINKIPLEX_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		// Not finding the config file is fine — a default is written on save.
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Global.BaseDir = ExpandHome(cfg.Global.BaseDir)

	return &cfg, nil
}

// Save writes the config to path (default location when empty).
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func mustGetwd() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
