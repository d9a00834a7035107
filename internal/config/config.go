package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BindAddr          string
	EvaluatorBindAddr string
	HTTPAddr          string
	TLSCert           string
	TLSKey            string
	MaxMessageSizeMB  int

	ShedThreshold         time.Duration
	CatalogTTL            time.Duration
	CriteriaTTL           time.Duration
	CriteriaNegativeCache bool
	JudgmentQueueCapacity int
	AggregatorTxTimeout   time.Duration
	ShutdownTimeout       time.Duration

	DeploymentHint DeploymentHint
	Endpoints      Endpoints
	EvaluationMode EvaluationMode
	ServiceName    string
	ServiceToken   string

	AuthSecret string
	AuthAlg    string

	LogLevel    string
	LogFormat   string
	Environment string

	DatabaseURL string
	DBName      string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBSSLMode   string
}

type EvaluationMode string

const (
	EvaluationEmbedded EvaluationMode = "embedded"
	EvaluationRemote   EvaluationMode = "remote"
)

// DSN returns DATABASE_URL when set, otherwise a keyword DSN built from DB_*.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// DSNForLog is DSN with the password masked.
func (c *Config) DSNForLog() string {
	if c.DatabaseURL != "" {
		return "DATABASE_URL=***"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=*** dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBName, c.DBSSLMode)
}

// IsDev reports ENVIRONMENT=dev, which lowers the default log level to debug.
func (c *Config) IsDev() bool {
	return c.Environment == "dev"
}

func (c *Config) TLSEnabled() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using system environment variables")
	}

	hint, err := ParseDeploymentHint(getEnv("DEPLOYMENT_HINT", string(HintDirect)))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BindAddr:              getEnv("BIND_ADDR", "0.0.0.0:50051"),
		EvaluatorBindAddr:     getEnv("EVALUATOR_BIND_ADDR", "0.0.0.0:50052"),
		HTTPAddr:              getEnv("HTTP_ADDR", "0.0.0.0:8081"),
		TLSCert:               getEnv("TLS_CERT", ""),
		TLSKey:                getEnv("TLS_KEY", ""),
		MaxMessageSizeMB:      getEnvInt("MAX_MESSAGE_SIZE_MB", 50),
		ShedThreshold:         time.Duration(getEnvInt("SHED_THRESHOLD_MS", 1000)) * time.Millisecond,
		CatalogTTL:            time.Duration(getEnvInt("CATALOG_TTL_S", 300)) * time.Second,
		CriteriaTTL:           time.Duration(getEnvInt("CRITERIA_TTL_S", 300)) * time.Second,
		CriteriaNegativeCache: getEnvBool("CRITERIA_NEGATIVE_CACHE", false),
		JudgmentQueueCapacity: getEnvInt("JUDGMENT_QUEUE_CAPACITY", 1024),
		AggregatorTxTimeout:   getEnvDuration("AGGREGATOR_TX_TIMEOUT", 5*time.Second),
		ShutdownTimeout:       getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		DeploymentHint:        hint,
		Endpoints:             ResolveEndpoints(hint, os.Getenv),
		EvaluationMode:        EvaluationMode(strings.ToLower(getEnv("EVALUATION_MODE", string(EvaluationEmbedded)))),
		ServiceName:           getEnv("SERVICE_NAME", "stream-hub"),
		ServiceToken:          getEnv("SERVICE_TOKEN", ""),
		AuthSecret:            getEnv("AUTH_SECRET", ""),
		AuthAlg:               strings.ToUpper(getEnv("AUTH_ALG", "HS256")),
		LogLevel:              os.Getenv("LOG_LEVEL"),
		LogFormat:             getEnv("LOG_FORMAT", "text"),
		Environment:           getEnv("ENVIRONMENT", "production"),
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		DBHost:                getEnv("DB_HOST", "localhost"),
		DBPort:                getEnv("DB_PORT", "5432"),
		DBUser:                getEnv("DB_USER", "postgres"),
		DBPassword:            getEnv("DB_PASSWORD", ""),
		DBName:                getEnv("DB_NAME", "inspection"),
		DBSSLMode:             getEnv("DB_SSLMODE", "disable"),
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
		if cfg.IsDev() {
			cfg.LogLevel = "debug"
		}
	}

	if cfg.DatabaseURL == "" && cfg.DBPassword == "" {
		slog.Warn("DB_PASSWORD is not set")
	}

	return cfg, nil
}

// Validate checks the settings every command relies on.
func (c *Config) Validate() error {
	if c.ShedThreshold <= 0 {
		return fmt.Errorf("config: SHED_THRESHOLD_MS must be positive")
	}
	if c.CatalogTTL <= 0 || c.CriteriaTTL <= 0 {
		return fmt.Errorf("config: CATALOG_TTL_S and CRITERIA_TTL_S must be positive")
	}
	if c.JudgmentQueueCapacity <= 0 {
		return fmt.Errorf("config: JUDGMENT_QUEUE_CAPACITY must be positive")
	}
	if c.MaxMessageSizeMB <= 0 {
		return fmt.Errorf("config: MAX_MESSAGE_SIZE_MB must be positive")
	}
	switch c.EvaluationMode {
	case EvaluationEmbedded, EvaluationRemote:
	default:
		return fmt.Errorf("config: unknown EVALUATION_MODE %q", c.EvaluationMode)
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		return fmt.Errorf("config: TLS_CERT and TLS_KEY must be set together")
	}
	return nil
}

// ValidateAuth is required by commands that accept device streams.
func (c *Config) ValidateAuth() error {
	if c.AuthSecret == "" {
		return fmt.Errorf("config: AUTH_SECRET is required")
	}
	switch c.AuthAlg {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("config: unsupported AUTH_ALG %q", c.AuthAlg)
	}
	return nil
}

// MaxMessageBytes is MAX_MESSAGE_SIZE_MB in bytes.
func (c *Config) MaxMessageBytes() int {
	return c.MaxMessageSizeMB * 1024 * 1024
}

// Logger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func (c *Config) Logger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func getEnv(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
