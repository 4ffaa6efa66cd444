package config

import (
	"fmt"
	"regexp"

	"github.com/BurntSushi/toml"
)

// emailPattern простая проверка формата local@domain.tld
// Применяется только к админскому списку рассылки: публичная форма
// заявки формат email намеренно не проверяет
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	MailRelay MailRelayConfig `toml:"mailrelay"`
	Auth      AuthConfig      `toml:"auth"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// MailRelayConfig настройки email relay
type MailRelayConfig struct {
	URL             string   `toml:"url"`
	APIKey          string   `toml:"api_key"`
	Timeout         int      `toml:"timeout"` // секунды
	From            string   `toml:"from"`
	AdminRecipients []string `toml:"admin_recipients"`
}

// AuthConfig настройки админской авторизации
type AuthConfig struct {
	AdminToken        string `toml:"admin_token"`
	SessionTTLMinutes int    `toml:"session_ttl_minutes"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Auth.AdminToken == "" {
		return fmt.Errorf("config: auth.admin_token is required")
	}
	if c.Auth.SessionTTLMinutes <= 0 {
		return fmt.Errorf("config: auth.session_ttl_minutes must be positive")
	}
	if c.MailRelay.From != "" && !emailPattern.MatchString(c.MailRelay.From) {
		return fmt.Errorf("config: mailrelay.from is not a valid email address: %q", c.MailRelay.From)
	}
	for _, addr := range c.MailRelay.AdminRecipients {
		if !emailPattern.MatchString(addr) {
			return fmt.Errorf("config: mailrelay.admin_recipients contains invalid email address: %q", addr)
		}
	}
	return nil
}
