package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port           string `env:"PORT, default=5000"`
	Env            string `env:"ENV, default=development"`
	LogLevel       string `env:"LOG_LEVEL, default=info"`
	StaticDir      string `env:"STATIC_DIR, default=./public"`
	Timezone       string `env:"TIMEZONE, default=Europe/Stockholm"`
	FrontendURLs   string `env:"FRONTEND_URL, default=https://omsorgsplus.se"`
	ForceHTTPS     bool   `env:"FORCE_HTTPS, default=false"`
	TrustProxy     bool   `env:"TRUST_PROXY, default=false"`
	AdminJWTSecret string `env:"ADMIN_JWT_SECRET"`
	BodyLimit      string `env:"BODY_LIMIT, default=1M"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Mail      MailConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB, default=omsorgsplus"`
	// Strict makes an unreachable store at boot fatal.
	Strict bool `env:"MONGO_STRICT, default=false"`
}

type RedisConfig struct {
	Enabled  bool   `env:"REDIS_ENABLED, default=false"`
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type MailConfig struct {
	Host     string        `env:"MAIL_HOST"`
	Port     int           `env:"MAIL_PORT, default=587"`
	Username string        `env:"MAIL_USERNAME"`
	Password string        `env:"MAIL_PASSWORD"`
	FromName string        `env:"MAIL_FROM_NAME, default=OmsorgsPlus"`
	Operator string        `env:"MAIL_OPERATOR"`
	Timeout  time.Duration `env:"MAIL_TIMEOUT, default=15s"`
}

type RateLimitConfig struct {
	Enabled  bool          `env:"RATE_LIMIT_ENABLED, default=true"`
	Requests int           `env:"RATE_LIMIT_REQUESTS, default=300"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW, default=15m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("config: PORT %q is not a valid port", c.Port)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("config: TIMEZONE %q: %w", c.Timezone, err)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0) {
		return fmt.Errorf("config: rate limit needs positive RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW")
	}
	if c.Mail.Host != "" && c.Mail.Username == "" {
		return fmt.Errorf("config: MAIL_USERNAME is required when MAIL_HOST is set")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Location returns the zone used to read and display booking times.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// AllowedOrigins splits FRONTEND_URL on commas.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.FrontendURLs, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// OperatorAddress is where notifications go: MAIL_OPERATOR, else the relay
// account itself.
func (c *Config) OperatorAddress() string {
	if c.Mail.Operator != "" {
		return c.Mail.Operator
	}
	return c.Mail.Username
}
