package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Behyna/ujumbesms/pkg/mq"
	"github.com/Behyna/ujumbesms/pkg/mysql"
	"github.com/Behyna/ujumbesms/pkg/ujumbesms"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Ujumbe   ujumbesms.Config `mapstructure:"ujumbe"`
	Log      Log              `mapstructure:"log"`
	API      API              `mapstructure:"api"`
	Database mysql.Config     `mapstructure:"database"`
	RabbitMQ mq.Config        `mapstructure:"rabbitmq"`
	Sender   Sender           `mapstructure:"sender"`
	History  History          `mapstructure:"history"`
	Metrics  Metrics          `mapstructure:"metrics"`
}

// Log.File, when set, adds a rotated JSON log file next to stdout.
type Log struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Sender struct {
	MaxRetry   int           `mapstructure:"max_retry"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type History struct {
	SyncInterval time.Duration `mapstructure:"sync_interval"`
}

// Metrics is the scrape listener of the worker binaries. The API serves /metrics on its own port.
type Metrics struct {
	Port string `mapstructure:"port"`
}

var envBindings = map[string]string{
	"ujumbe.api_key":  "UJUMBESMS_API_KEY",
	"ujumbe.email":    "UJUMBESMS_EMAIL",
	"ujumbe.base_url": "UJUMBESMS_BASE_URL",
}

func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath("./config")

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ujumbe.base_url", ujumbesms.DefaultBaseURL)
	v.SetDefault("ujumbe.timeout", 30*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", true)
	v.SetDefault("api.port", ":8080")
	v.SetDefault("sender.max_retry", 3)
	v.SetDefault("sender.retry_delay", 200*time.Millisecond)
	v.SetDefault("sender.timeout", 15*time.Second)
	v.SetDefault("history.sync_interval", 5*time.Minute)
	v.SetDefault("metrics.port", ":9091")
}

func (c *Config) Validate() error {
	if c.Ujumbe.APIKey == "" {
		return errors.New("missing ujumbe.api_key (UJUMBESMS_API_KEY)")
	}
	if c.Ujumbe.Email == "" {
		return errors.New("missing ujumbe.email (UJUMBESMS_EMAIL)")
	}
	if c.Sender.MaxRetry <= 0 {
		return fmt.Errorf("invalid sender.max_retry %d (must be positive)", c.Sender.MaxRetry)
	}
	if c.Sender.Timeout <= 0 {
		return errors.New("invalid sender.timeout (must be positive)")
	}
	if c.History.SyncInterval <= 0 {
		return errors.New("invalid history.sync_interval (must be positive)")
	}

	return nil
}
