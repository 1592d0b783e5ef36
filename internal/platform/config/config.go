package config

import (
	"fmt"
	"log"
	"strings"
	"time"
	_ "time/tzdata" // settlement zone must resolve on minimal images

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	JWTSecret      string
	MigrationsPath string

	// Logging
	LogLevel string
	LogFile  string // empty means stdout only

	// HTTP
	SettlementRunRateLimit string // ulule limiter format, e.g. "5-M"
	CORSAllowedOrigins     []string

	// Daily settlement job
	SettlementEnabled      bool
	SettlementLocation     *time.Location
	SettlementWorkers      int
	SettlementRunOnStartup bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("RATE_LIMIT", "5-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("SETTLEMENT_ENABLED", true)
	v.SetDefault("SETTLEMENT_TIMEZONE", "Asia/Ho_Chi_Minh")
	v.SetDefault("SETTLEMENT_WORKERS", 4)
	v.SetDefault("SETTLEMENT_RUN_ON_STARTUP", false)

	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.LogLevel = v.GetString("LOG_LEVEL")
	cfg.LogFile = v.GetString("LOG_FILE")
	cfg.SettlementRunRateLimit = v.GetString("RATE_LIMIT")

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.SettlementEnabled = v.GetBool("SETTLEMENT_ENABLED")
	cfg.SettlementRunOnStartup = v.GetBool("SETTLEMENT_RUN_ON_STARTUP")

	tz := v.GetString("SETTLEMENT_TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid SETTLEMENT_TIMEZONE %q: %w", tz, err)
	}
	cfg.SettlementLocation = loc

	cfg.SettlementWorkers = v.GetInt("SETTLEMENT_WORKERS")
	if cfg.SettlementWorkers <= 0 {
		log.Printf("Warning: invalid SETTLEMENT_WORKERS (%d). Defaulting to 1.\n", cfg.SettlementWorkers)
		cfg.SettlementWorkers = 1
	}

	return cfg, nil
}
