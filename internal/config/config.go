package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
	"github.com/username/hotel-reservations/internal/hoteldb"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes environment overrides, e.g. HOTELS_LOG_LEVEL
const EnvPrefix = "HOTELS"

// Config represents application configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	Output   OutputConfig   `mapstructure:"output"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // empty logs to the console
	Level string `mapstructure:"level"`
}

// DatabaseConfig represents the hotel database location
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// OutputConfig represents where answers are written
type OutputConfig struct {
	Path string `mapstructure:"path"` // empty writes to stdout
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("database.path", "hotels.yml")
	v.SetDefault("output.path", "")
}

// Load loads configuration from file. A missing file is not an error:
// defaults and environment overrides apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.hotel-reservations")
	}

	// Read environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.Log.GetLevel(); err != nil {
		return err
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if _, err := hoteldb.FormatFromPath(c.Database.Path); err != nil {
		return fmt.Errorf("database.path: %w", err)
	}

	return nil
}

// GetLevel returns the zap level for log.level
func (c *LogConfig) GetLevel() (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log.level must be one of debug, info, warn, error; got '%s'", c.Level)
	}
	return level, nil
}
