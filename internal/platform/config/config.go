package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// AnonKey authorizes the unload beacon, which cannot carry a JWT because
	// the browser fires it during page teardown.
	AnonKey string

	// Live rates poller: primary proxy first, public feed as fallback.
	LiveRatesProxyURL    string
	LiveRatesFallbackURL string
	LiveRatesInterval    time.Duration

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "exchange-board-backend")
	viper.SetDefault("ANON_KEY", "")
	viper.SetDefault("LIVE_RATES_PROXY_URL", "http://localhost:3000/api/live-rates")
	viper.SetDefault("LIVE_RATES_FALLBACK_URL", "https://finans.truncgil.com/today.json")
	viper.SetDefault("LIVE_RATES_INTERVAL", "10s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AnonKey = viper.GetString("ANON_KEY")
	if cfg.AnonKey == "" {
		log.Println("Warning: ANON_KEY not set. The unload beacon endpoint will reject all requests.")
	}

	cfg.LiveRatesProxyURL = viper.GetString("LIVE_RATES_PROXY_URL")
	cfg.LiveRatesFallbackURL = viper.GetString("LIVE_RATES_FALLBACK_URL")

	liveRatesIntervalStr := viper.GetString("LIVE_RATES_INTERVAL")
	liveRatesInterval, err := time.ParseDuration(liveRatesIntervalStr)
	if err != nil {
		liveRatesInterval = 10 * time.Second
		log.Printf("Warning: Invalid value for LIVE_RATES_INTERVAL ('%s'). Defaulting to %s.\n", liveRatesIntervalStr, liveRatesInterval.String())
	}
	cfg.LiveRatesInterval = liveRatesInterval

	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")

	return cfg, nil
}
