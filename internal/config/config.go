package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type APIConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

type ListConfig struct {
	PageSize int
}

type SessionConfig struct {
	FilePath string
}

type StubConfig struct {
	Host string
	Port int
}

type Config struct {
	Environment string
	API         APIConfig
	List        ListConfig
	Session     SessionConfig
	Stub        StubConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		API: APIConfig{
			BaseURL:        v.GetString("TMS_API_BASE_URL"),
			RequestTimeout: v.GetDuration("TMS_API_TIMEOUT"),
		},
		List: ListConfig{
			PageSize: v.GetInt("TMS_LIST_PAGE_SIZE"),
		},
		Session: SessionConfig{
			FilePath: v.GetString("TMS_SESSION_FILE"),
		},
		Stub: StubConfig{
			Host: v.GetString("STUB_HTTP_HOST"),
			Port: v.GetInt("STUB_HTTP_PORT"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:7480/api"
	}
	if cfg.API.RequestTimeout == 0 {
		cfg.API.RequestTimeout = 15 * time.Second
	}
	if cfg.List.PageSize == 0 {
		cfg.List.PageSize = 20
	}
	if cfg.Session.FilePath == "" {
		cfg.Session.FilePath = defaultSessionPath()
	}
	if cfg.Stub.Host == "" {
		cfg.Stub.Host = "0.0.0.0"
	}
	if cfg.Stub.Port == 0 {
		cfg.Stub.Port = 7480
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.List.PageSize < 1 || cfg.List.PageSize > 200 {
		return fmt.Errorf("TMS_LIST_PAGE_SIZE must be between 1 and 200")
	}
	if cfg.API.RequestTimeout < time.Second {
		return fmt.Errorf("TMS_API_TIMEOUT must be at least 1s")
	}
	return nil
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tms-session"
	}
	return filepath.Join(home, ".config", "tms-console", "session")
}
