package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultFallbackWeekTabs is used when the spreadsheet metadata cannot be read.
var DefaultFallbackWeekTabs = []string{
	"week 28_2025", "week 29_2025", "week 30_2025", "week 31_2025", "week 32_2025",
	"week 33_2025", "week 34_2025", "week 35_2025", "week 36_2025", "week 37_2025",
	"week 38_2025", "week 39_2025", "week 40_2025", "week 41_2025", "week 42_2025",
	"week 43_2025", "week 44_2025", "week 45_2025", "week 46_2025", "week 47_2025",
	"week 48_2025", "week 49_2025", "week 50_2025", "week 51_2025", "week 52_2025",
}

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Browser origins allowed to make credentialed cross-origin calls.
	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Sessions.
	SessionSecret string        `mapstructure:"SESSION_SECRET"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL"`
	StoreBackend  string        `mapstructure:"STORE_BACKEND"`
	LockBackend   string        `mapstructure:"LOCK_BACKEND"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Mongo holds display names only.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Google OAuth client.
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	PostLoginRedirect  string `mapstructure:"POST_LOGIN_REDIRECT"`

	// Schedule source and calendar target.
	SpreadsheetSource  string   `mapstructure:"SPREADSHEET_SOURCE"`
	SpreadsheetID      string   `mapstructure:"SPREADSHEET_ID"`
	XLSXPath           string   `mapstructure:"XLSX_PATH"`
	CalendarID         string   `mapstructure:"CALENDAR_ID"`
	TimeZone           string   `mapstructure:"TIME_ZONE"`
	FallbackWeekTabs   []string `mapstructure:"FALLBACK_WEEK_TABS"`
	SyncConcurrency    int      `mapstructure:"SYNC_CONCURRENCY"`
	DefaultAllDayColor string   `mapstructure:"DEFAULT_ALL_DAY_COLOR"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("CORS_ORIGINS", []string{})
	v.SetDefault("SESSION_SECRET", "calendar-app-secret")
	v.SetDefault("SESSION_TTL", 24*time.Hour)
	v.SetDefault("STORE_BACKEND", "redis")
	v.SetDefault("LOCK_BACKEND", "memory")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_SESSION_DB", 0)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "shiftsync")
	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_REDIRECT_URL", "http://localhost:3000/oauth2callback")
	v.SetDefault("POST_LOGIN_REDIRECT", "/dashboard")
	v.SetDefault("SPREADSHEET_SOURCE", "google")
	v.SetDefault("SPREADSHEET_ID", "1kgAILNyBFTsEwFVmykiVCf5J6vnqtI4mLcvgC6ss75A")
	v.SetDefault("XLSX_PATH", "")
	v.SetDefault("CALENDAR_ID", "primary")
	v.SetDefault("TIME_ZONE", "America/Phoenix")
	v.SetDefault("FALLBACK_WEEK_TABS", DefaultFallbackWeekTabs)
	v.SetDefault("SYNC_CONCURRENCY", 1)
	v.SetDefault("DEFAULT_ALL_DAY_COLOR", "10")
}

// Load reads configuration from an optional config.yaml, the environment and defaults.
func Load(v *viper.Viper) (Config, error) {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	// Env values arrive comma separated, possibly with padding.
	cfg.FallbackWeekTabs = splitList(strings.Join(cfg.FallbackWeekTabs, ","))
	cfg.CORSOrigins = splitList(strings.Join(cfg.CORSOrigins, ","))
	if cfg.SyncConcurrency < 1 {
		cfg.SyncConcurrency = 1
	}
	return cfg, nil
}

func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
