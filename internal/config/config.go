package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	JWT      JWTConfig
	Draw     DrawConfig
	Beacon   BeaconConfig
	Notify   NotifyConfig
	Events   EventsConfig
	Metrics  MetricsConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int // Seconds
}

// DrawConfig holds draw and quick-pick configuration
type DrawConfig struct {
	DefaultEntropyMode string
	QuickPickMaxBound  int
	QuickPickMaxCount  int
}

// BeaconConfig holds randomness beacon configuration
type BeaconConfig struct {
	BaseURL    string
	APIKey     string
	MockBeacon bool
}

// NotifyConfig holds winner notification configuration
type NotifyConfig struct {
	WebhookURL string
	APIKey     string
	MockNotify bool
}

// EventsConfig holds event publishing configuration
type EventsConfig struct {
	Enabled bool
	NATSURL string
}

// MetricsConfig holds metrics reporting configuration
type MetricsConfig struct {
	LogIntervalSeconds int
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Read configuration
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Unmarshal configuration
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "draw-engine")
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("LogLevel", "info")
	viper.SetDefault("Draw.DefaultEntropyMode", "CRYPTO")
	viper.SetDefault("Draw.QuickPickMaxBound", 1000000)
	viper.SetDefault("Draw.QuickPickMaxCount", 100)
	viper.SetDefault("Beacon.BaseURL", "https://api.drand.sh")
	viper.SetDefault("Beacon.MockBeacon", true)
	viper.SetDefault("Notify.MockNotify", true)
	viper.SetDefault("Events.Enabled", false)
	viper.SetDefault("Events.NATSURL", "nats://localhost:4222")
	viper.SetDefault("Metrics.LogIntervalSeconds", 60)
}
