package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverSQLite   = "sqlite"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port         string
	JWTSecret    string
	JWTIssuer    string
	JWTTTL       time.Duration
	CORSOrigins  []string
	CORSMaxAge   time.Duration
	DemoPassword string
	Storage      StorageConfig
	Logger       LoggerConfig
	Metrics      MetricsConfig
}

// StorageConfig selects and configures the document mirror.
type StorageConfig struct {
	Driver        string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
	SQLitePath    string
}

// LoggerConfig configures zap output.
type LoggerConfig struct {
	Level      string
	Format     string
	Output     string
	FilePath   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// MetricsConfig configures the Prometheus registry.
type MetricsConfig struct {
	Namespace string
	Buckets   []float64
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		Port:         fallback(os.Getenv("PORT"), "8080"),
		JWTSecret:    strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTIssuer:    fallback(os.Getenv("JWT_ISSUER"), "dataflow-backend"),
		CORSOrigins:  parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		CORSMaxAge:   time.Duration(intOr(os.Getenv("CORS_MAX_AGE_SECONDS"), 600)) * time.Second,
		DemoPassword: fallback(os.Getenv("DEMO_PASSWORD"), "password"),
		Storage: StorageConfig{
			Driver:        strings.ToLower(fallback(os.Getenv("STORAGE_DRIVER"), DriverSQLite)),
			DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
			RedisAddr:     fallback(os.Getenv("REDIS_ADDR"), "localhost:6379"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       intOr(os.Getenv("REDIS_DB"), 0),
			RedisPrefix:   fallback(os.Getenv("REDIS_PREFIX"), ""),
			SQLitePath:    fallback(os.Getenv("SQLITE_PATH"), "data/dataflow.db"),
		},
		Logger: LoggerConfig{
			Level:      fallback(os.Getenv("LOG_LEVEL"), "info"),
			Format:     fallback(os.Getenv("LOG_FORMAT"), "json"),
			Output:     fallback(os.Getenv("LOG_OUTPUT"), "stdout"),
			FilePath:   fallback(os.Getenv("LOG_FILE"), "logs/dataflow.log"),
			MaxSize:    intOr(os.Getenv("LOG_MAX_SIZE_MB"), 100),
			MaxBackups: intOr(os.Getenv("LOG_MAX_BACKUPS"), 3),
			MaxAge:     intOr(os.Getenv("LOG_MAX_AGE_DAYS"), 7),
			Compress:   strings.EqualFold(strings.TrimSpace(os.Getenv("LOG_COMPRESS")), "true"),
		},
		Metrics: MetricsConfig{
			Namespace: fallback(os.Getenv("METRICS_NAMESPACE"), "dataflow"),
		},
	}

	minutes := fallback(os.Getenv("JWT_TTL_MINUTES"), "60")
	if ttlMinutes, err := strconv.Atoi(minutes); err == nil && ttlMinutes > 0 {
		cfg.JWTTTL = time.Duration(ttlMinutes) * time.Minute
	} else {
		cfg.JWTTTL = 60 * time.Minute
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	if err := cfg.Storage.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (s StorageConfig) validate() error {
	switch s.Driver {
	case DriverMemory, DriverSQLite, DriverRedis:
		return nil
	case DriverPostgres:
		if s.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required when STORAGE_DRIVER=postgres")
		}
		return nil
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", s.Driver)
	}
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func intOr(value string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return n
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
