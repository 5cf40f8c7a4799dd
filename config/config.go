// Package config はアプリケーション設定を管理します。
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	// データディレクトリのパス
	DataDir string `yaml:"data_dir"`

	// ログ設定
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig はログ出力の設定です。
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	JSON  bool   `yaml:"json"`
}

// 環境変数名
const (
	EnvConfigFile = "PAYBACK_CONFIG"
	EnvDataDir    = "PAYBACK_DATA_DIR"
	EnvLogLevel   = "PAYBACK_LOG_LEVEL"
	EnvLogJSON    = "PAYBACK_LOG_JSON"
)

// DefaultConfig はデフォルト設定を返します。
func DefaultConfig() *Config {
	return &Config{
		DataDir: filepath.Join(".", "data"),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load はYAMLファイルを読み込み、環境変数で上書きした設定を返します。
// pathが空の場合は環境変数 PAYBACK_CONFIG を参照し、それも空ならファイルは読みません。
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save は設定をYAMLファイルに書き込みます。
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate は設定値を検証します。
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir is required")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}
	return nil
}

// applyEnvOverrides は環境変数の値で設定を上書きします。
func (c *Config) applyEnvOverrides() {
	// データディレクトリの設定
	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		c.DataDir = dataDir
	}

	// ログの設定
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
	if v := os.Getenv(EnvLogJSON); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.JSON = b
		}
	}
}
