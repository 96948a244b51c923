package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	JWT       JWTConfig
	SMTP      SMTPConfig
	Tracking  TrackingConfig
	GeoIP     GeoIPConfig
	Redis     RedisConfig
	Scheduler SchedulerConfig
	LogLevel  string
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
	ExpiresIn int
}

// SMTPConfig holds delivery transport configuration
type SMTPConfig struct {
	MockTransport bool
	TimeoutSecs   int
	SkipTLSVerify bool
}

// TrackingConfig holds open/click tracking configuration
type TrackingConfig struct {
	// BaseURL is the externally reachable prefix of the tracking endpoints,
	// e.g. "https://mail.example.com/api/v1".
	BaseURL string
}

// GeoIPConfig holds IP geolocation lookup configuration
type GeoIPConfig struct {
	BaseURL string
}

// RedisConfig holds the optional geo-lookup cache configuration
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	TTLHours int
}

// SchedulerConfig holds the scheduled-campaign ticker configuration
type SchedulerConfig struct {
	Enabled      bool
	IntervalSecs int
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", GetEnv("PORT", "4000"))
	viper.SetDefault("Server.AllowedHosts", GetEnvAsSlice("ALLOWED_HOSTS", ",", []string{"localhost:3000"}))
	viper.SetDefault("MongoDB.URI", GetEnv("MONGODB_URI", "mongodb://localhost:27017"))
	viper.SetDefault("MongoDB.Database", GetEnv("MONGODB_DATABASE", "campaign-backend"))
	viper.SetDefault("JWT.Secret", GetEnv("JWT_SECRET", ""))
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("SMTP.MockTransport", GetEnvAsBool("SMTP_MOCK", true))
	viper.SetDefault("SMTP.TimeoutSecs", 30)
	viper.SetDefault("SMTP.SkipTLSVerify", false)
	viper.SetDefault("Tracking.BaseURL", GetEnv("TRACKING_BASE_URL", "http://localhost:4000/api/v1"))
	viper.SetDefault("GeoIP.BaseURL", GetEnv("GEOIP_BASE_URL", "http://ip-api.com"))
	viper.SetDefault("Redis.Enabled", GetEnvAsBool("REDIS_ENABLED", false))
	viper.SetDefault("Redis.Addr", GetEnv("REDIS_ADDR", "localhost:6379"))
	viper.SetDefault("Redis.Password", GetEnv("REDIS_PASSWORD", ""))
	viper.SetDefault("Redis.DB", GetEnvAsInt("REDIS_DB", 0))
	viper.SetDefault("Redis.TTLHours", 24)
	viper.SetDefault("Scheduler.Enabled", GetEnvAsBool("SCHEDULER_ENABLED", true))
	viper.SetDefault("Scheduler.IntervalSecs", GetEnvAsInt("SCHEDULER_INTERVAL", 60))
	viper.SetDefault("LogLevel", "info")
}
