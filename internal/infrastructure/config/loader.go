package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

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
	"../configs/.env",
}

// LoadConfig loads configuration for the current environment. Configuration
// files are optional; defaults plus FT_* environment variables are enough to
// run the service.
func LoadConfig() (*Config, error) {
	// Load environment variables from a .env file first, if one exists
	loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine; defaults and env vars carry the rest
	}

	// Environment variables override config values
	v.SetEnvPrefix("FT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// Validate checks that all settings required to serve requests are present
func (c *Config) Validate() error {
	var missing []string

	if c.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if c.Database.Host == "" {
		missing = append(missing, "database.host (or FT_DB_HOST)")
	}
	if c.Database.Username == "" {
		missing = append(missing, "database.username (or FT_DB_USERNAME)")
	}
	if c.Database.Password == "" {
		missing = append(missing, "database.password (or FT_DB_PASSWORD)")
	}
	if c.Database.Database == "" {
		missing = append(missing, "database.database (or FT_DB_NAME)")
	}
	if c.RateLimit.Requests <= 0 {
		missing = append(missing, "rateLimit.requests")
	}
	if c.RateLimit.Window <= 0 {
		missing = append(missing, "rateLimit.window")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	if c.Environment != Development && c.Environment != Production && c.Environment != Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test)
	}

	return nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5001)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	// Database defaults for non-sensitive settings
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 5) // seconds

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	// Rate limiter defaults: 10 requests per 30-second window
	v.SetDefault("rateLimit.requests", 10)
	v.SetDefault("rateLimit.window", 30) // seconds
	v.SetDefault("rateLimit.redisDB", 0)
}

// getEnvironment determines the environment from FT_ENV
func getEnvironment() string {
	env := os.Getenv("FT_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
// for sensitive or deployment-specific settings
func processEnvOverrides(v *viper.Viper) {
	if dbHost := os.Getenv("FT_DB_HOST"); dbHost != "" {
		v.Set("database.host", dbHost)
	}
	if dbPort := os.Getenv("FT_DB_PORT"); dbPort != "" {
		v.Set("database.port", dbPort)
	}
	if dbUser := os.Getenv("FT_DB_USERNAME"); dbUser != "" {
		v.Set("database.username", dbUser)
	}
	if dbPass := os.Getenv("FT_DB_PASSWORD"); dbPass != "" {
		v.Set("database.password", dbPass)
	}
	if dbName := os.Getenv("FT_DB_NAME"); dbName != "" {
		v.Set("database.database", dbName)
	}
	if sslMode := os.Getenv("FT_DB_SSL_MODE"); sslMode != "" {
		v.Set("database.sslMode", sslMode)
	}
	if serverPort := os.Getenv("FT_SERVER_PORT"); serverPort != "" {
		v.Set("server.port", serverPort)
	}
	if logLevel := os.Getenv("FT_LOGGER_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}
	if requests := os.Getenv("FT_RATE_LIMIT_REQUESTS"); requests != "" {
		v.Set("rateLimit.requests", requests)
	}
	if window := os.Getenv("FT_RATE_LIMIT_WINDOW_SECONDS"); window != "" {
		v.Set("rateLimit.window", window)
	}
	if redisAddr := os.Getenv("FT_REDIS_ADDR"); redisAddr != "" {
		v.Set("rateLimit.redisAddr", redisAddr)
	}
	if redisPassword := os.Getenv("FT_REDIS_PASSWORD"); redisPassword != "" {
		v.Set("rateLimit.redisPassword", redisPassword)
	}
}

// processDurations converts duration fields from their raw values
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.RateLimit.Window = time.Duration(config.RateLimit.Window) * time.Second
}
