package docstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	URL  string `yaml:"url"`
	Name string `yaml:"name"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type AuthConfig struct {
	Secret string `yaml:"secret"`
}

type Config struct {
	Version  string         `yaml:"version"`
	Mode     string         `yaml:"mode"`
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Auth     AuthConfig     `yaml:"auth"`
}

// LoadConfig は設定ファイルを読み、環境変数で上書きする。
// ファイルが無い場合はデフォルト＋環境変数のみで動かす（コンテナ運用向け）。
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Mode: "dev",
		Database: DatabaseConfig{
			URL:  "mongodb://localhost:27017",
			Name: "library",
		},
		Server: ServerConfig{Port: 8000},
	}

	buf, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// デフォルトのまま続行
	case err != nil:
		return nil, fmt.Errorf("設定ファイルの読み込み失敗: %w", err)
	default:
		if err := yaml.Unmarshal(buf, cfg); err != nil {
			return nil, fmt.Errorf("設定ファイルのパース失敗: %w", err)
		}
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("DATABASE_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("PORT のパース失敗: %w", err)
		}
		cfg.Server.Port = p
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}

	return cfg, nil
}
