// Package config defines the configuration structs shared across layers.
package config

import "fmt"

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// GetAddr returns the listen address in host:port form.
func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds the relational store settings.
// Driver selects between mysql and sqlite; for sqlite, Database is the file path.
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// RedisConfig holds the Redis settings used by the idempotency store.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// GetAddr returns the Redis address in host:port form.
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// GatewayConfig holds the simulated payment gateway settings.
// Seed parameterizes the injected PRNG; zero means seed from the clock.
type GatewayConfig struct {
	Seed         int64   `mapstructure:"seed"`
	ApprovalRate float64 `mapstructure:"approval_rate"`
}

// IdempotencyConfig holds the idempotency gate settings.
type IdempotencyConfig struct {
	RetentionHours  int `mapstructure:"retention_hours"`
	InFlightSeconds int `mapstructure:"in_flight_seconds"`
}
