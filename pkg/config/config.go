package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Data source drivers.
const (
	DataSourceFixtures = "fixtures"
	DataSourcePostgres = "postgres"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	DataSource DataSourceConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Session    SessionConfig
	CORS       CORSConfig
	Log        LogConfig
	Orders     OrdersConfig
	Exports    ExportsConfig
	Dashboard  DashboardConfig
	Intents    IntentsConfig
}

// DataSourceConfig selects where source records are read from.
type DataSourceConfig struct {
	Driver       string
	FixturesPath string
}

type DatabaseConfig struct {
	Host             string
	Port             int
	User             string
	Password         string
	Name             string
	SSLMode          string
	MaxOpenConns     int
	MaxIdleConns     int
	// StatementTimeout bounds each source query server-side; zero leaves the server default.
	StatementTimeout time.Duration
}

type RedisConfig struct {
	URL         string
	Host        string
	Port        int
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
}

// CacheConfig governs the read-through cache for source records.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// SessionConfig holds the secret shared with the external session layer.
type SessionConfig struct {
	Secret string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// OrdersConfig carries order history conversion settings.
type OrdersConfig struct {
	UYUPerUSD float64
}

// ExportsConfig shapes roster and order downloads.
type ExportsConfig struct {
	CSVDelimiter string
}

// DashboardConfig tunes educator dashboard composition.
type DashboardConfig struct {
	QuickAccessLimit int
}

// IntentsConfig configures intent dispatch workers and sinks.
type IntentsConfig struct {
	Workers    int
	BufferSize int
	MaxRetries int
	RetryDelay time.Duration
	AMQPURL    string
	AMQPQueue  string
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
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.DataSource = DataSourceConfig{
		Driver:       strings.ToLower(strings.TrimSpace(v.GetString("DATA_SOURCE"))),
		FixturesPath: v.GetString("FIXTURES_PATH"),
	}
	if cfg.DataSource.Driver != DataSourcePostgres {
		cfg.DataSource.Driver = DataSourceFixtures
	}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),

		StatementTimeout: parseDuration(v.GetString("DB_STATEMENT_TIMEOUT"), 0),
	}

	cfg.Redis = RedisConfig{
		URL:         v.GetString("REDIS_URL"),
		Host:        v.GetString("REDIS_HOST"),
		Port:        v.GetInt("REDIS_PORT"),
		Password:    v.GetString("REDIS_PASSWORD"),
		DB:          v.GetInt("REDIS_DB"),
		PoolSize:    v.GetInt("REDIS_POOL_SIZE"),
		DialTimeout: parseDuration(v.GetString("REDIS_DIAL_TIMEOUT"), 0),
	}

	cfg.Cache = CacheConfig{
		Enabled: v.GetBool("ENABLE_CACHE"),
		TTL:     parseDuration(v.GetString("CACHE_TTL"), 2*time.Minute),
	}

	cfg.Session = SessionConfig{Secret: v.GetString("SESSION_SECRET")}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	rate := v.GetFloat64("ORDERS_UYU_PER_USD")
	if rate <= 0 {
		rate = 40
	}
	cfg.Orders = OrdersConfig{UYUPerUSD: rate}

	cfg.Exports = ExportsConfig{CSVDelimiter: v.GetString("EXPORT_CSV_DELIMITER")}

	cfg.Dashboard = DashboardConfig{QuickAccessLimit: v.GetInt("DASHBOARD_QUICK_ACCESS_LIMIT")}

	cfg.Intents = IntentsConfig{
		Workers:    v.GetInt("INTENT_WORKERS"),
		BufferSize: v.GetInt("INTENT_BUFFER"),
		MaxRetries: v.GetInt("INTENT_RETRIES"),
		RetryDelay: parseDuration(v.GetString("INTENT_RETRY_DELAY"), time.Second),
		AMQPURL:    v.GetString("AMQP_URL"),
		AMQPQueue:  v.GetString("AMQP_QUEUE"),
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DATA_SOURCE", DataSourceFixtures)
	v.SetDefault("FIXTURES_PATH", "")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "tinta_academy")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_STATEMENT_TIMEOUT", "5s")

	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 0)
	v.SetDefault("REDIS_DIAL_TIMEOUT", "")

	v.SetDefault("ENABLE_CACHE", false)
	v.SetDefault("CACHE_TTL", "2m")

	v.SetDefault("SESSION_SECRET", "dev_session_secret")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ORDERS_UYU_PER_USD", 40)
	v.SetDefault("EXPORT_CSV_DELIMITER", "comma")
	v.SetDefault("DASHBOARD_QUICK_ACCESS_LIMIT", 4)

	v.SetDefault("INTENT_WORKERS", 2)
	v.SetDefault("INTENT_BUFFER", 64)
	v.SetDefault("INTENT_RETRIES", 3)
	v.SetDefault("INTENT_RETRY_DELAY", "1s")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_QUEUE", "tinta_intents")
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
