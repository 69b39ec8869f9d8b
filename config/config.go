package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Completion endpoint configuration.
	CompletionAPIURL      string `mapstructure:"COMPLETION_API_URL"`
	CompletionModel       string `mapstructure:"COMPLETION_MODEL"`
	CompletionTimeoutSecs int    `mapstructure:"COMPLETION_TIMEOUT_SECS"`

	// Centralized-credential mode: when set, every session resolves to
	// this key and per-session keys are ignored.
	CentralCompletionKey string `mapstructure:"CENTRAL_COMPLETION_KEY"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Mongo connection string for booking records.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Checkout.
	StripeKey  string  `mapstructure:"STRIPE_KEY"`
	BookingFee float64 `mapstructure:"BOOKING_FEE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("COMPLETION_API_URL", "https://api.perplexity.ai/chat/completions")
	viper.SetDefault("COMPLETION_MODEL", "sonar")
	viper.SetDefault("COMPLETION_TIMEOUT_SECS", 30)
	viper.SetDefault("CENTRAL_COMPLETION_KEY", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("BOOKING_FEE", 49.0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
