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

	// Document store selection: "firestore" (default) or "redis".
	StoreBackend string `mapstructure:"STORE_BACKEND"`

	// Firestore configuration.
	FirestoreProjectID string `mapstructure:"FIRESTORE_PROJECT_ID"`
	FirebaseCredFile   string `mapstructure:"FIREBASE_CRED_FILE"`

	// MongoDB (analytics/records archive).
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	RecordsDB   string `mapstructure:"RECORDS_DB"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisStoreDB  int    `mapstructure:"REDIS_STORE_DB"`
	RedisNotifDB  int    `mapstructure:"REDIS_NOTIF_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Business configuration snapshot (site.json).
	SiteConfigPath string `mapstructure:"SITE_CONFIG_PATH"`

	// Remote atomic-conversion callable. Empty means "not deployed".
	ConvertFnURL string `mapstructure:"CONVERT_FN_URL"`

	// Admin access.
	AdminUser         string `mapstructure:"ADMIN_USER"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`

	// Outbound SMS relay (optional).
	SMSEnabled    bool   `mapstructure:"SMS_ENABLED"`
	SMSEndpoint   string `mapstructure:"SMS_ENDPOINT"`
	SMSAuthHeader string `mapstructure:"SMS_AUTH_HEADER"`
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
	viper.SetDefault("STORE_BACKEND", "firestore")
	viper.SetDefault("FIRESTORE_PROJECT_ID", "")
	viper.SetDefault("FIREBASE_CRED_FILE", "")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("RECORDS_DB", "turfbook_records")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_STORE_DB", 0)
	viper.SetDefault("REDIS_NOTIF_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("SITE_CONFIG_PATH", "./data/site.json")
	viper.SetDefault("CONVERT_FN_URL", "")
	viper.SetDefault("ADMIN_USER", "admin")
	viper.SetDefault("SMS_ENABLED", false)

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
