package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SGFIN_SERVER_ADDRESS.
const EnvPrefix = "SGFIN"

// AppConfig holds the settings of the CLI, server and TUI.
type AppConfig struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Store    StoreConfig    `mapstructure:"store"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Report   ReportConfig   `mapstructure:"report"`
	Preparer PreparerConfig `mapstructure:"preparer"`
}

type ServerConfig struct {
	Address     string   `mapstructure:"address"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputFile string `mapstructure:"output_file"` // optional file output
}

type StoreConfig struct {
	Driver string `mapstructure:"driver"` // sqlite, memory
	Path   string `mapstructure:"path"`
}

type CacheConfig struct {
	Driver        string        `mapstructure:"driver"` // redis, memory, none
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	TTL           time.Duration `mapstructure:"ttl"`
}

type ReportConfig struct {
	OutputDir string `mapstructure:"output_dir"`
	Format    string `mapstructure:"format"`
}

// PreparerConfig is the default report preparer. A profile saved in the store
// takes precedence.
type PreparerConfig struct {
	Name      string `mapstructure:"name"`
	CEANumber string `mapstructure:"cea_number"`
	Mobile    string `mapstructure:"mobile"`
	Email     string `mapstructure:"email"`
}

func (p PreparerConfig) Preparer() domain.Preparer {
	return domain.Preparer{Name: p.Name, CEANumber: p.CEANumber, Mobile: p.Mobile, Email: p.Email}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_file", "")
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "sgfin.db")
	v.SetDefault("cache.driver", "memory")
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("cache.ttl", "1h")
	v.SetDefault("report.output_dir", ".")
	v.SetDefault("report.format", "pdf")
	v.SetDefault("preparer.name", "")
	v.SetDefault("preparer.cea_number", "")
	v.SetDefault("preparer.mobile", "")
	v.SetDefault("preparer.email", "")
}

// LoadAppConfig reads the YAML file at path, when given, over the defaults
// and applies SGFIN_* environment overrides.
func LoadAppConfig(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultAppConfig returns the built-in defaults without file or environment
// overrides.
func DefaultAppConfig() *AppConfig {
	v := viper.New()
	setDefaults(v)
	var cfg AppConfig
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Validate checks the enumerated settings.
func (c *AppConfig) Validate() error {
	switch c.Store.Driver {
	case "sqlite", "memory":
	default:
		return fmt.Errorf("invalid store driver: %s", c.Store.Driver)
	}
	if c.Store.Driver == "sqlite" && c.Store.Path == "" {
		return fmt.Errorf("store path is required for sqlite")
	}
	switch c.Cache.Driver {
	case "redis", "memory", "none":
	default:
		return fmt.Errorf("invalid cache driver: %s", c.Cache.Driver)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache ttl cannot be negative")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}
	return nil
}
