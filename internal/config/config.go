/**
 * @description
 * This file handles the configuration management for the property service.
 * It uses the 'viper' library to load configuration from environment
 * variables, providing a centralized and consistent way to manage
 * application settings.
 */
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	ServerPort      string `mapstructure:"SERVER_PORT"`
	DatabaseURL     string `mapstructure:"DATABASE_URL"`
	SupabaseJWKSURL string `mapstructure:"SUPABASE_JWKS_URL"`
	RabbitMQURL     string `mapstructure:"RABBITMQ_URL"`
	RedisURL        string `mapstructure:"REDIS_URL"`
	EventsExchange  string `mapstructure:"EVENTS_EXCHANGE"`
	EventsQueue     string `mapstructure:"EVENTS_QUEUE"`

	BadgeRefreshSchedule string `mapstructure:"BADGE_REFRESH_SCHEDULE"`
	RenewalScanSchedule  string `mapstructure:"RENEWAL_SCAN_SCHEDULE"`
	LeaseExpirySchedule  string `mapstructure:"LEASE_EXPIRY_SCHEDULE"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (config Config, err error) {
	viper.SetDefault("SERVER_PORT", "8090")
	viper.SetDefault("EVENTS_EXCHANGE", "leasely.events")
	viper.SetDefault("EVENTS_QUEUE", "leasely.notifications")
	viper.SetDefault("BADGE_REFRESH_SCHEDULE", "@every 30s")
	viper.SetDefault("RENEWAL_SCAN_SCHEDULE", "0 8 * * *")
	viper.SetDefault("LEASE_EXPIRY_SCHEDULE", "30 0 * * *")
	viper.AutomaticEnv()

	// Bind environment variables explicitly to ensure they appear in Unmarshal
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("DATABASE_URL")
	_ = viper.BindEnv("SUPABASE_JWKS_URL")
	_ = viper.BindEnv("RABBITMQ_URL")
	_ = viper.BindEnv("REDIS_URL")
	_ = viper.BindEnv("EVENTS_EXCHANGE")
	_ = viper.BindEnv("EVENTS_QUEUE")
	_ = viper.BindEnv("BADGE_REFRESH_SCHEDULE")
	_ = viper.BindEnv("RENEWAL_SCAN_SCHEDULE")
	_ = viper.BindEnv("LEASE_EXPIRY_SCHEDULE")

	if err = viper.Unmarshal(&config); err != nil {
		return config, err
	}
	if config.DatabaseURL == "" {
		return config, fmt.Errorf("DATABASE_URL is required")
	}
	if config.SupabaseJWKSURL == "" {
		return config, fmt.Errorf("SUPABASE_JWKS_URL is required")
	}
	return config, nil
}
