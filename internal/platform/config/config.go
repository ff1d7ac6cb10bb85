package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Assignment AssignmentConfig `yaml:"assignment"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。
type DatabaseConfig struct {
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
}

// AssignmentConfig は委任・異動ワークフローの日数上限に関する設定です。
// 未指定の項目には既定値が適用されます。
type AssignmentConfig struct {
	MinDelegationDays int `yaml:"min_delegation_days"`
	MaxDelegationDays int `yaml:"max_delegation_days"`
	MaxTransferDays   int `yaml:"max_transfer_days"`
	ExpiryWarnDays    int `yaml:"expiry_warn_days"`
	MaxExtensions     int `yaml:"max_extensions"`
}

const (
	defaultMinDelegationDays = 1
	defaultMaxDelegationDays = 90
	defaultMaxTransferDays   = 90
	defaultExpiryWarnDays    = 7
	defaultMaxExtensions     = 2
)

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}

	if err := c.Database.validateAndNormalize(); err != nil {
		return err
	}

	if err := c.Assignment.validateAndNormalize(); err != nil {
		return err
	}

	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func (a *AssignmentConfig) validateAndNormalize() error {
	if a.MinDelegationDays < 0 || a.MaxDelegationDays < 0 || a.MaxTransferDays < 0 || a.ExpiryWarnDays < 0 || a.MaxExtensions < 0 {
		return fmt.Errorf("config: assignment values must not be negative")
	}

	if a.MinDelegationDays == 0 {
		a.MinDelegationDays = defaultMinDelegationDays
	}
	if a.MaxDelegationDays == 0 {
		a.MaxDelegationDays = defaultMaxDelegationDays
	}
	if a.MaxTransferDays == 0 {
		a.MaxTransferDays = defaultMaxTransferDays
	}
	if a.ExpiryWarnDays == 0 {
		a.ExpiryWarnDays = defaultExpiryWarnDays
	}
	if a.MaxExtensions == 0 {
		a.MaxExtensions = defaultMaxExtensions
	}

	if a.MinDelegationDays > a.MaxDelegationDays {
		return fmt.Errorf("config: assignment.min_delegation_days must not exceed max_delegation_days")
	}

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。認証情報は URL エスケープされます。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}
