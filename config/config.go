package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Toss     TossConfig
	Aligo    AligoConfig
	Log      LogConfig
	Ledger   LedgerConfig
}

type ServerConfig struct {
	Addr            string        `envconfig:"SERVER_ADDR" default:":8080"`
	Mode            string        `envconfig:"SERVER_MODE" default:"release"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName   string `envconfig:"DB_NAME" default:"postgres"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`

	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"10"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	MaxConnIdleTime time.Duration `envconfig:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
	ConnectTimeout  time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"5s"`

	// AutoMigrate 啟動時套用 schema migrations
	AutoMigrate bool `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`

	DialTimeout time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"3s"`
}

type AuthConfig struct {
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
}

// TossConfig payment provider webhook settings. An empty secret disables signature checking.
type TossConfig struct {
	WebhookSecret string        `envconfig:"TOSS_WEBHOOK_SECRET" default:""`
	DedupTTL      time.Duration `envconfig:"TOSS_DEDUP_TTL" default:"24h"`
}

type AligoConfig struct {
	Endpoint    string        `envconfig:"ALIGO_ENDPOINT" default:"https://apis.aligo.in/send/"`
	APIKey      string        `envconfig:"ALIGO_API_KEY" default:""`
	UserID      string        `envconfig:"ALIGO_USER_ID" default:""`
	SenderPhone string        `envconfig:"ALIGO_SENDER_PHONE" default:""`
	Timeout     time.Duration `envconfig:"ALIGO_TIMEOUT" default:"10s"`
}

// Configured reports whether every credential needed to reach the gateway is present.
func (c AligoConfig) Configured() bool {
	return c.APIKey != "" && c.UserID != "" && c.SenderPhone != ""
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type LedgerConfig struct {
	// TrackMargin false 時交易紀錄的佣金一律記 0
	TrackMargin bool `envconfig:"LEDGER_TRACK_MARGIN" default:"true"`

	// 帳目同步失敗時的重試佇列（Redis Stream），預設關閉，失敗只記 log
	RetryEnabled     bool          `envconfig:"LEDGER_RETRY_ENABLED" default:"false"`
	RetryClaimIdle   time.Duration `envconfig:"LEDGER_RETRY_CLAIM_IDLE" default:"30s"`
	RetryMaxAttempts int           `envconfig:"LEDGER_RETRY_MAX_ATTEMPTS" default:"5"`
}

var AppConfig *Config

func LoadConfig() (*Config, error) {
	cfg := &Config{}

	// 標籤已帶完整變數名，prefix 留空
	sections := []struct {
		name string
		spec interface{}
	}{
		{"server", &cfg.Server},
		{"database", &cfg.Database},
		{"redis", &cfg.Redis},
		{"auth", &cfg.Auth},
		{"toss", &cfg.Toss},
		{"aligo", &cfg.Aligo},
		{"log", &cfg.Log},
		{"ledger", &cfg.Ledger},
	}
	for _, s := range sections {
		if err := envconfig.Process("", s.spec); err != nil {
			return nil, fmt.Errorf("load %s config: %w", s.name, err)
		}
	}

	AppConfig = cfg
	return AppConfig, nil
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",

		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: time.Minute,
		ConnectTimeout:  2 * time.Second,
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,

		DialTimeout: time.Second,
	}

	return &Config{
		Server:   ServerConfig{Addr: ":0", Mode: "test", ShutdownTimeout: time.Second},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Auth:     AuthConfig{JWTSecret: "test-secret"},
		Toss:     TossConfig{DedupTTL: time.Minute},
		Log:      LogConfig{Level: "error"},
		Ledger:   LedgerConfig{TrackMargin: true, RetryClaimIdle: time.Second, RetryMaxAttempts: 3},
	}
}
