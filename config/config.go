package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPAddr string `koanf:"http_addr"`
	} `koanf:"app"`

	DB struct {
		URL      string `koanf:"url"` // full DSN; wins over the individual fields
		Host     string `koanf:"host"`
		Port     string `koanf:"port"`
		User     string `koanf:"user"`
		Password string `koanf:"password"`
		Name     string `koanf:"name"`
	} `koanf:"db"`

	Redis struct {
		Addr     string        `koanf:"addr"` // empty disables the stats cache
		Password string        `koanf:"password"`
		StatsTTL time.Duration `koanf:"stats_ttl"`
	} `koanf:"redis"`

	Uploads struct {
		Dir             string        `koanf:"dir"`
		BackupDir       string        `koanf:"backup_dir"`
		BackupRetention time.Duration `koanf:"backup_retention"`
	} `koanf:"uploads"`

	Log struct {
		File string `koanf:"file"`
	} `koanf:"log"`
}

// Load reads an optional YAML file and overlays KAYES_-prefixed environment
// variables on top (nested keys with __, e.g. KAYES_DB__URL).
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider("KAYES_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "KAYES_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "kayesbackend"
	}
	if c.App.HTTPAddr == "" {
		if port := os.Getenv("PORT"); port != "" {
			c.App.HTTPAddr = ":" + port
		} else {
			c.App.HTTPAddr = ":8080"
		}
	}
	if c.DB.Host == "" {
		c.DB.Host = "localhost"
	}
	if c.DB.Port == "" {
		c.DB.Port = "5432"
	}
	if c.Redis.StatsTTL == 0 {
		c.Redis.StatsTTL = 30 * time.Second
	}
	if c.Uploads.Dir == "" {
		c.Uploads.Dir = "./uploads"
	}
	if c.Uploads.BackupDir == "" {
		c.Uploads.BackupDir = "./backup/uploads"
	}
	if c.Uploads.BackupRetention == 0 {
		c.Uploads.BackupRetention = 4 * 24 * time.Hour
	}
	if c.Log.File == "" {
		c.Log.File = "./logs/app.log"
	}
}

func (c Config) Validate() error {
	if c.DB.URL == "" && c.DB.Name == "" {
		return fmt.Errorf("db.url or db.name required")
	}
	return nil
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	if c.DB.URL != "" {
		return c.DB.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DB.Host, c.DB.User, c.DB.Password, c.DB.Name, c.DB.Port,
	)
}
