// Package config loads and validates environment variables at startup.
// Missing provider credentials are not fatal: the server still boots and
// reports CONFIG_ERROR on content routes, unless demo mode opts into the
// static fixture dataset instead.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Data-source selection, decided once at startup.
const (
	SourceAirtable     = "airtable"
	SourceStatic       = "static"
	SourceUnconfigured = "unconfigured"
)

// Config holds all runtime configuration for the portal API.
type Config struct {
	Addr string

	AirtableAPIKey  string
	AirtableBaseID  string
	AirtableBaseURL string // empty means the provider default

	JWTSecret string

	RedisURL string // empty means in-memory local state

	DemoMode bool

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	addr := os.Getenv("APP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	rps := 10.0
	if s := os.Getenv("RATE_LIMIT_RPS"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("RATE_LIMIT_RPS must be a positive number, got %q", s)
		}
		rps = v
	}
	burst := 20
	if s := os.Getenv("RATE_LIMIT_BURST"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("RATE_LIMIT_BURST must be a positive integer, got %q", s)
		}
		burst = v
	}

	return &Config{
		Addr:               addr,
		AirtableAPIKey:     os.Getenv("AIRTABLE_API_KEY"),
		AirtableBaseID:     os.Getenv("AIRTABLE_BASE_ID"),
		AirtableBaseURL:    os.Getenv("AIRTABLE_BASE_URL"),
		JWTSecret:          secret,
		RedisURL:           os.Getenv("REDIS_URL"),
		DemoMode:           os.Getenv("DEMO_MODE") == "true",
		CORSAllowedOrigins: origins,
		RateLimitRPS:       rps,
		RateLimitBurst:     burst,
	}, nil
}

// Source picks the content strategy from credential presence.
func (c *Config) Source() string {
	if c.AirtableAPIKey != "" && c.AirtableBaseID != "" {
		return SourceAirtable
	}
	if c.DemoMode {
		return SourceStatic
	}
	return SourceUnconfigured
}
