package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Storage drivers
const (
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"
	StorageDriverRedis    = "redis"
)

// EnvProduction значение app.env для production сборки
const EnvProduction = "production"

// Config конфигурация клиента
type Config struct {
	App      AppConfig      `toml:"app"`
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	API      APIConfig      `toml:"api"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Wizard   WizardConfig   `toml:"wizard"`
}

// AppConfig общие параметры приложения
type AppConfig struct {
	Env string `toml:"env"`
}

// IsProduction возвращает true для production окружения
func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, EnvProduction)
}

// ServerConfig параметры локального HTTP API
type ServerConfig struct {
	HTTPPort        int     `toml:"http_port"`
	ReadTimeout     int     `toml:"read_timeout"`
	WriteTimeout    int     `toml:"write_timeout"`
	IdleTimeout     int     `toml:"idle_timeout"`
	ShutdownTimeout int     `toml:"shutdown_timeout"`
	RateLimitRPS    float64 `toml:"rate_limit_rps"`   // 0 = без ограничения
	RateLimitBurst  int     `toml:"rate_limit_burst"`
	RateLimitIdle   int     `toml:"rate_limit_idle"`  // секунды до удаления неактивного адреса
	TrustProxy      bool    `toml:"trust_proxy"`      // адрес клиента из X-Forwarded-For
}

// RateLimitIdleDuration время хранения лимита неактивного адреса
func (c ServerConfig) RateLimitIdleDuration() time.Duration {
	return time.Duration(c.RateLimitIdle) * time.Second
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// APIConfig параметры удаленного API бронирований
type APIConfig struct {
	BaseURL string `toml:"base_url"`
	// Timeout в секундах, 0 = без таймаута (вызовы ограничиваются только контекстом)
	Timeout int `toml:"timeout"`
}

// TimeoutDuration возвращает таймаут как time.Duration
func (c APIConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// StorageConfig параметры хранилища сессии
type StorageConfig struct {
	Driver        string `toml:"driver"`
	FilePath      string `toml:"file_path"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	RedisPrefix   string `toml:"redis_prefix"`
}

// DatabaseConfig параметры подключения к PostgreSQL (storage.driver = "postgres")
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// WizardConfig параметры мастера бронирования
type WizardConfig struct {
	DebounceMS int `toml:"debounce_ms"`
}

// Debounce возвращает окно тишины перед проверкой доступности
func (c WizardConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		App: AppConfig{Env: "development"},
		Server: ServerConfig{
			HTTPPort:        8090,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			RateLimitRPS:    20,
			RateLimitBurst:  40,
			RateLimitIdle:   600,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics", ServiceName: "luxora_client"},
		API:     APIConfig{BaseURL: "http://localhost:8000/api"},
		Storage: StorageConfig{
			Driver:      StorageDriverFile,
			FilePath:    ".luxora/storage.json",
			RedisAddr:   "localhost:6379",
			RedisPrefix: "luxora:",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "luxora_client",
			SSLMode:         "disable",
			MaxOpenConns:    5,
			MaxIdleConns:    2,
			ConnMaxLifetime: 300,
		},
		Wizard: WizardConfig{DebounceMS: 250},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию.
// Перед этим подгружается .env (если есть), затем применяются переменные окружения LUXORA_*.
// Отсутствующий файл не является ошибкой.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("config: api.base_url is required")
	}
	if c.API.Timeout < 0 {
		return errors.New("config: api.timeout must not be negative")
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.Wizard.DebounceMS < 0 {
		return errors.New("config: wizard.debounce_ms must not be negative")
	}

	switch c.Storage.Driver {
	case StorageDriverFile:
		if c.Storage.FilePath == "" {
			return errors.New("config: storage.file_path is required for file driver")
		}
	case StorageDriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return errors.New("config: database.host and database.dbname are required for postgres driver")
		}
	case StorageDriverRedis:
		if c.Storage.RedisAddr == "" {
			return errors.New("config: storage.redis_addr is required for redis driver")
		}
	default:
		return fmt.Errorf("config: unknown storage.driver %q", c.Storage.Driver)
	}

	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("LUXORA_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("LUXORA_ENV"); v != "" {
		cfg.App.Env = v
	}
	if v := os.Getenv("LUXORA_STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("LUXORA_LOG_LEVEL"); v != "" {
		cfg.Logs.Level = v
	}
	if v := os.Getenv("LUXORA_HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid LUXORA_HTTP_PORT %q: %w", v, err)
		}
		cfg.Server.HTTPPort = port
	}
	if v := os.Getenv("LUXORA_TRUST_PROXY"); v != "" {
		trust, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid LUXORA_TRUST_PROXY %q: %w", v, err)
		}
		cfg.Server.TrustProxy = trust
	}
	return nil
}
