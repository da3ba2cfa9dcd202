package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultAPIBaseURL = "https://backend-training-jo66.onrender.com/api"
	envPrefix         = "CAPACITA"
)

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type ProgressConfig struct {
	DwellPeriod time.Duration `mapstructure:"dwell_period"`
	DwellTotal  time.Duration `mapstructure:"dwell_total"`
}

type NoticeConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type Config struct {
	HomeDir  string         `mapstructure:"-"`
	DBPath   string         `mapstructure:"-"`
	API      APIConfig      `mapstructure:"api"`
	Progress ProgressConfig `mapstructure:"progress"`
	Notice   NoticeConfig   `mapstructure:"notice"`
	Log      LogConfig      `mapstructure:"log"`
}

// DefaultHome resolves ~/.capacita, falling back to the working directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".capacita"
	}
	return filepath.Join(home, ".capacita")
}

func New(homeDir string) (Config, error) {
	if homeDir == "" {
		return Config{}, fmt.Errorf("home dir is required")
	}
	if err := loadDotEnv(filepath.Join(homeDir, ".env")); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.AddConfigPath(homeDir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.base_url", DefaultAPIBaseURL)
	v.SetDefault("api.timeout", 15*time.Second)
	v.SetDefault("progress.dwell_period", 10*time.Second)
	v.SetDefault("progress.dwell_total", 300*time.Second)
	v.SetDefault("notice.ttl", 3*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(homeDir, "logs", "capacita.log"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.HomeDir = homeDir
	cfg.DBPath = filepath.Join(homeDir, "capacita.db")
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.Progress.DwellPeriod <= 0 || c.Progress.DwellTotal <= 0 {
		return fmt.Errorf("progress dwell period and total must be positive")
	}
	if c.Progress.DwellPeriod > c.Progress.DwellTotal {
		return fmt.Errorf("progress.dwell_period must not exceed progress.dwell_total")
	}
	return nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}
