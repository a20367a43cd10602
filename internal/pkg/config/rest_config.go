package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RestConfig holds the configuration of the REST API process.
type RestConfig struct {
	Port      string           `mapstructure:"port" validate:"required,numeric"`
	StaticDir string           `mapstructure:"static_dir"`
	Database  DatabaseSettings `mapstructure:"database"`
	Logger    LoggerSettings   `mapstructure:"logger"`
}

// Validate checks that all fields in RestConfig are valid
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if err := c.Database.Validate(); err != nil {
		return err
	}

	return c.Logger.Validate()
}

// InitializeRestConfig reads the REST API configuration from the given
// YAML file, applies environment overrides and validates the result.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	v.SetDefault("port", "8080")
	v.SetDefault("static_dir", "./static")
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// PORT from the environment wins over the file, for container setups.
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
