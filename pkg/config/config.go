package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

const defaultSessionSecret = "dev_session_secret"

type Config struct {
	Env  string
	Port int

	Database  DatabaseConfig
	Redis     RedisConfig
	Session   SessionConfig
	Auth      AuthConfig
	Upload    UploadConfig
	RateLimit RateLimitConfig
	Log       LogConfig

	StaticRoot string
	// TrustedProxies lists the peers whose X-Forwarded-For is honoured.
	// Empty means the client IP is always the TCP peer.
	TrustedProxies []string
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	AutoMigrate  bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// SessionConfig controls the signed session cookie.
type SessionConfig struct {
	Secret     string
	TTL        time.Duration
	CookieName string
	Secure     bool
}

// AuthConfig tunes password hashing.
type AuthConfig struct {
	BcryptCost int
}

// UploadConfig describes where teacher photos land and what is accepted.
type UploadConfig struct {
	Dir               string
	PublicPrefix      string
	MaxBytes          int64
	AllowedExtensions []string
}

// RateLimitConfig throttles credential endpoints per client IP.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := fromViper(v)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate rejects settings that are only acceptable on a developer machine.
func (c *Config) validate() error {
	if c.Env != EnvProduction {
		return nil
	}
	if secret := strings.TrimSpace(c.Session.Secret); secret == "" || secret == defaultSessionSecret {
		return errors.New("SESSION_SECRET must be set to a non-default value in production")
	}
	return nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.StaticRoot = v.GetString("STATIC_ROOT")
	cfg.TrustedProxies = splitAndTrim(v.GetString("TRUSTED_PROXIES"))

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		AutoMigrate:  v.GetBool("DB_AUTO_MIGRATE"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Session = SessionConfig{
		Secret:     v.GetString("SESSION_SECRET"),
		TTL:        parseDuration(v.GetString("SESSION_TTL"), 24*time.Hour),
		CookieName: v.GetString("SESSION_COOKIE_NAME"),
		Secure:     cfg.Env == EnvProduction,
	}

	cfg.Auth = AuthConfig{BcryptCost: v.GetInt("AUTH_BCRYPT_COST")}

	maxUpload := v.GetInt64("UPLOAD_MAX_BYTES")
	if maxUpload <= 0 {
		maxUpload = 2 * 1024 * 1024
	}
	cfg.Upload = UploadConfig{
		Dir:               v.GetString("UPLOAD_DIR"),
		PublicPrefix:      v.GetString("UPLOAD_PUBLIC_PREFIX"),
		MaxBytes:          maxUpload,
		AllowedExtensions: splitAndTrim(strings.ToLower(v.GetString("UPLOAD_ALLOWED_EXTENSIONS"))),
	}

	cfg.RateLimit = RateLimitConfig{
		Limit:  v.GetInt("LOGIN_RATE_LIMIT"),
		Window: parseDuration(v.GetString("LOGIN_RATE_WINDOW"), time.Minute),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("STATIC_ROOT", "./static")
	v.SetDefault("TRUSTED_PROXIES", "")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "kland_db")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("SESSION_SECRET", defaultSessionSecret)
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SESSION_COOKIE_NAME", "kland_session")
	v.SetDefault("AUTH_BCRYPT_COST", 10)

	v.SetDefault("UPLOAD_DIR", "./static/images/uploads/teachers")
	v.SetDefault("UPLOAD_PUBLIC_PREFIX", "uploads/teachers")
	v.SetDefault("UPLOAD_MAX_BYTES", 2*1024*1024)
	v.SetDefault("UPLOAD_ALLOWED_EXTENSIONS", "png,jpg,jpeg,gif")

	v.SetDefault("LOGIN_RATE_LIMIT", 10)
	v.SetDefault("LOGIN_RATE_WINDOW", "1m")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
