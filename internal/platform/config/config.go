package config

import (
	"log"
	"strings"
	"time"

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

	// Optional shared translation cache; empty uses an in-process cache.
	RedisURL string

	// Optional remote translation API.
	TranslationAPIURL    string
	TranslationAPIKey    string
	TranslationCacheSize int
	TranslationCacheTTL  time.Duration
	TranslationLanguages []string

	RateLimit          string // ulule format, e.g. "100-M"
	CORSAllowedOrigins []string
	RetryMaxElapsed    time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("TRANSLATION_API_URL", "")
	v.SetDefault("TRANSLATION_API_KEY", "")
	v.SetDefault("TRANSLATION_CACHE_SIZE", 4096)
	v.SetDefault("TRANSLATION_CACHE_TTL", "24h")
	v.SetDefault("TRANSLATION_LANGUAGES", "en,hi")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RETRY_MAX_ELAPSED", "10s")

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:          v.GetString("PGSQL_URL"),
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:        v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		MigrationsPath:       v.GetString("MIGRATIONS_PATH"),
		RedisURL:             v.GetString("REDIS_URL"),
		TranslationAPIURL:    v.GetString("TRANSLATION_API_URL"),
		TranslationAPIKey:    v.GetString("TRANSLATION_API_KEY"),
		TranslationCacheSize: v.GetInt("TRANSLATION_CACHE_SIZE"),
		TranslationCacheTTL:  v.GetDuration("TRANSLATION_CACHE_TTL"),
		TranslationLanguages: splitList(v.GetString("TRANSLATION_LANGUAGES")),
		RateLimit:            v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RetryMaxElapsed:      v.GetDuration("RETRY_MAX_ELAPSED"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.TranslationCacheSize <= 0 {
		cfg.TranslationCacheSize = 4096
	}
	if cfg.RetryMaxElapsed <= 0 {
		cfg.RetryMaxElapsed = 10 * time.Second
	}

	return cfg, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
