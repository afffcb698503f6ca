package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid value")
)

// Config корневая конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Slots     SlotsConfig     `toml:"slots"`
	Sessions  SessionsConfig  `toml:"sessions"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SlotsConfig настройки генерации слотов
type SlotsConfig struct {
	BatchSize              int    `toml:"batch_size"`
	StepMinutes            int    `toml:"step_minutes"`
	RefreshIntervalSeconds int    `toml:"refresh_interval_seconds"`
	Timezone               string `toml:"timezone"` // пусто = локальная зона сервера
}

// SessionsConfig настройки сессий страницы
type SessionsConfig struct {
	CookieName          string `toml:"cookie_name"`
	IdleTimeoutMinutes  int    `toml:"idle_timeout_minutes"`
	SweepIntervalSecond int    `toml:"sweep_interval_seconds"`
}

// RateLimitConfig настройки ограничения частоты запросов с одного клиента
type RateLimitConfig struct {
	Enabled           bool `toml:"enabled"`
	RequestsPerMinute int  `toml:"requests_per_minute"`
	Burst             int  `toml:"burst"`
	TrustForwardedFor bool `toml:"trust_forwarded_for"` // брать IP из X-Forwarded-For (только за доверенным прокси)
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "ride_slot_service",
		},
		Slots: SlotsConfig{
			BatchSize:              6,
			StepMinutes:            10,
			RefreshIntervalSeconds: 60,
		},
		Sessions: SessionsConfig{
			CookieName:          "ride_session",
			IdleTimeoutMinutes:  30,
			SweepIntervalSecond: 60,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 200,
			Burst:             50,
		},
	}
}

// Load загружает конфигурацию из TOML файла
// Перед чтением файла подгружает .env (если есть), затем применяет переопределения из окружения
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv переопределяет отдельные значения переменными окружения
func (c *Config) applyEnv() error {
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q", ErrInvalidConfig, v)
		}
		c.Server.HTTPPort = port
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logs.Level = v
	}

	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: METRICS_ENABLED=%q", ErrInvalidConfig, v)
		}
		c.Metrics.Enabled = enabled
	}

	return nil
}

// Validate проверяет корректность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	if c.Slots.BatchSize <= 0 {
		return fmt.Errorf("%w: slots.batch_size must be positive", ErrInvalidConfig)
	}

	if c.Slots.StepMinutes <= 0 {
		return fmt.Errorf("%w: slots.step_minutes must be positive", ErrInvalidConfig)
	}

	if c.Slots.RefreshIntervalSeconds <= 0 {
		return fmt.Errorf("%w: slots.refresh_interval_seconds must be positive", ErrInvalidConfig)
	}

	if c.Slots.Timezone != "" {
		if _, err := time.LoadLocation(c.Slots.Timezone); err != nil {
			return fmt.Errorf("%w: slots.timezone: %v", ErrInvalidConfig, err)
		}
	}

	if c.Sessions.CookieName == "" {
		return fmt.Errorf("%w: sessions.cookie_name is required", ErrInvalidConfig)
	}

	if c.Sessions.IdleTimeoutMinutes <= 0 || c.Sessions.SweepIntervalSecond <= 0 {
		return fmt.Errorf("%w: sessions timeouts must be positive", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit values must be positive", ErrInvalidConfig)
	}

	return nil
}

// Location возвращает часовой пояс для отображения времени слотов
func (s SlotsConfig) Location() *time.Location {
	if s.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Step шаг между слотами
func (s SlotsConfig) Step() time.Duration {
	return time.Duration(s.StepMinutes) * time.Minute
}

// RefreshInterval период перегенерации слотов
func (s SlotsConfig) RefreshInterval() time.Duration {
	return time.Duration(s.RefreshIntervalSeconds) * time.Second
}

// IdleTimeout время простоя, после которого сессия закрывается
func (s SessionsConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// SweepInterval период очистки простаивающих сессий
func (s SessionsConfig) SweepInterval() time.Duration {
	return time.Duration(s.SweepIntervalSecond) * time.Second
}
