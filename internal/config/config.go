// File: internal/config/config.go
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config 服務全部設定，由環境變數載入
type Config struct {
	Database Database `env-prefix:"DB_"`
	HTTP     HTTP     `env-prefix:"HTTP_"`
	Redis    Redis    `env-prefix:"REDIS_"`
	Auth     Auth     `env-prefix:"JWT_"`
	Audit    Audit    `env-prefix:"AUDIT_"`

	CategoryCacheTTL time.Duration `env:"CATEGORY_CACHE_TTL" env-default:"5m" validate:"gte=0"`
}

type Database struct {
	Host     string `env:"HOST"     validate:"required"`
	Port     int    `env:"PORT"     env-default:"5432" validate:"gte=1,lte=65535"`
	User     string `env:"USER"     validate:"required"`
	Password string `env:"PASSWORD" validate:"required"`
	Name     string `env:"NAME"     validate:"required"`
	SSLMode  string `env:"SSL_MODE" env-default:"disable"`
	PoolMax  int32  `env:"POOL_MAX" env-default:"10" validate:"gte=1,lte=100"`
}

type HTTP struct {
	Port        int    `env:"PORT"         env-default:"3000" validate:"gte=1,lte=65535"`
	CORSOrigins string `env:"CORS_ORIGINS" env-default:"http://localhost:3000"`
}

type Redis struct {
	Addr     string `env:"ADDR"     validate:"required"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB"       env-default:"0" validate:"gte=0"`
}

type Auth struct {
	Secret string `env:"SECRET" validate:"required"`
}

type Audit struct {
	Workers   int `env:"WORKERS" env-default:"2" validate:"gte=1,lte=32"`
	QueueSize int `env:"QUEUE"   env-default:"64" validate:"gte=1"`
}

// Load 讀取環境變數並驗證設定內容
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config read: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validate: %w", err)
	}
	return cfg, nil
}

// DatabaseURL 組出 postgres 連線字符串
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.Database.User),
		url.QueryEscape(c.Database.Password),
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Addr HTTP 監聽位址
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTP.Port)
}
