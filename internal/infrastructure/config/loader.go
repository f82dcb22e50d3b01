package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/amirhossein-jamali/numduration"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment variable read by the service
const EnvPrefix = "ND"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
	"../.env",
	"../../.env",
}

// LoadConfig loads configuration for the environment named by ND_ENV
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return Load(getEnvironment(), ConfigPaths)
}

// Load reads <env>.yaml from the first of paths that has it. A missing file
// leaves the defaults in place; environment variables override both.
func Load(env string, paths []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)
	if env == Production {
		v.SetDefault("logger.format", "json")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	if err := processDurations(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// loadDotEnvFile loads environment variables from the first .env file found
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// getEnvironment determines the environment from ND_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes the camel-cased keys reachable from the environment
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"SERVER_HOST":                "server.host",
		"SERVER_PORT":                "server.port",
		"SERVER_READ_TIMEOUT":        "server.readTimeout",
		"SERVER_WRITE_TIMEOUT":       "server.writeTimeout",
		"SERVER_IDLE_TIMEOUT":        "server.idleTimeout",
		"SERVER_READ_HEADER_TIMEOUT": "server.readHeaderTimeout",
		"SERVER_SHUTDOWN_TIMEOUT":    "server.shutdownTimeout",
		"LOGGER_LEVEL":               "logger.level",
		"LOGGER_FORMAT":              "logger.format",
		"METRICS_ENABLED":            "metrics.enabled",
		"METRICS_PATH":               "metrics.path",
	}
	for env, key := range overrides {
		val := os.Getenv(EnvPrefix + "_" + env)
		if val == "" {
			continue
		}
		// Timeouts are plain second counts, which the duration decode hook would reject as strings
		if n, err := strconv.Atoi(val); err == nil {
			v.Set(key, n)
		} else {
			v.Set(key, val)
		}
	}
}

// processDurations turns the configured second counts into durations
func processDurations(config *Config) error {
	fields := map[string]*time.Duration{
		"server.readTimeout":       &config.Server.ReadTimeout,
		"server.writeTimeout":      &config.Server.WriteTimeout,
		"server.idleTimeout":       &config.Server.IdleTimeout,
		"server.readHeaderTimeout": &config.Server.ReadHeaderTimeout,
		"server.shutdownTimeout":   &config.Server.ShutdownTimeout,
	}
	for key, field := range fields {
		d, err := numduration.Seconds(int64(*field))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*field = d
	}
	return nil
}
