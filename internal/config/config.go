package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultBaseURL is used when no base URL is configured anywhere.
const DefaultBaseURL = "http://localhost:8001"

// Config holds application configuration.
type Config struct {
	Service ServiceConfig
	Export  ExportConfig
	Logger  LoggerConfig
}

// ServiceConfig points at the remote generation service.
type ServiceConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	Path           string
	Shape          string // "writer" or "essay", see client.PayloadShape
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// ExportConfig holds exporter output settings.
type ExportConfig struct {
	Dir string
}

// LoggerConfig holds zap/lumberjack settings. The TUI owns the terminal,
// so logs go to a file.
type LoggerConfig struct {
	Level      string
	File       string
	MaxSizeMB  int `mapstructure:"max_size_mb"`
	MaxBackups int `mapstructure:"max_backups"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// INKWELL_. An explicit path (flag or INKWELL_CONFIG) wins over the default
// search location.
func Load(explicitPath string) (Config, error) {
	v := viper.New()

	home, _ := os.UserHomeDir()
	v.SetDefault("service.base_url", DefaultBaseURL)
	v.SetDefault("service.path", "/generate-essay")
	v.SetDefault("service.shape", "writer")
	v.SetDefault("service.timeout_seconds", 120)
	v.SetDefault("export.dir", filepath.Join(home, "Documents", "inkwell"))
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file", filepath.Join(home, ".local", "state", "inkwell", "inkwell.log"))
	v.SetDefault("logger.max_size_mb", 10)
	v.SetDefault("logger.max_backups", 3)

	v.SetConfigType("toml")

	cfgPath := explicitPath
	if cfgPath == "" {
		cfgPath = os.Getenv("INKWELL_CONFIG")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "inkwell"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("INKWELL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
