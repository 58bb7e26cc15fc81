// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Weather WeatherConfig `mapstructure:"weather"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig holds the inbound HTTP surface settings.
type ServerConfig struct {
	Port               int      `mapstructure:"port"`
	ReadHeaderTimeout  int      `mapstructure:"read_header_timeout"` // milliseconds
	ShutdownTimeout    int      `mapstructure:"shutdown_timeout"`    // milliseconds
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// ReadHeaderTimeoutDuration returns the header read timeout as a duration.
func (s ServerConfig) ReadHeaderTimeoutDuration() time.Duration {
	return time.Duration(s.ReadHeaderTimeout) * time.Millisecond
}

// ShutdownTimeoutDuration returns the graceful shutdown window as a duration.
func (s ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(s.ShutdownTimeout) * time.Millisecond
}

// WeatherConfig holds settings for the upstream weather provider.
type WeatherConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Units   string `mapstructure:"units"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// TimeoutDuration returns the outbound call timeout as a duration.
func (w WeatherConfig) TimeoutDuration() time.Duration {
	return time.Duration(w.Timeout) * time.Millisecond
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
