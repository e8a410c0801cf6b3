// Package config handles configuration loading for the botlibre command.
//
// Configuration is loaded from a YAML file with support for environment
// variable expansion (${VAR} or $VAR syntax). This allows secrets like the
// application id and the user password to be injected at runtime.
//
// # Configuration Sections
//
//   - server: REST API base URL, application id and HTTP settings
//   - login: user credentials used to connect before each command
//   - logging: log format and level
//   - debug: trace every request and response payload
//   - errorMode: "strict" or "lenient" failure reporting
//
// # Example Configuration
//
//	server:
//	  url: https://www.botlibre.com/rest/api
//	  applicationId: ${BOTLIBRE_APP_ID}
//	  timeout: 20s
//	  tls:
//	    caFile: /etc/ssl/botlibre-ca.pem
//
//	login:
//	  user: alice
//	  password: ${BOTLIBRE_PASSWORD}
//
//	logging:
//	  format: json
//	  level: info
//
//	errorMode: strict
//
// See [Load] for loading configuration from a file.
package config

import (
	"crypto/x509"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/andreabenini/BotLibre/pkg/credentials"
	"github.com/andreabenini/BotLibre/pkg/message"
	"github.com/andreabenini/BotLibre/pkg/sdk"
	"github.com/andreabenini/BotLibre/pkg/transport"
)

// DefaultURL is the hosted Botlibre REST API
const DefaultURL = "https://www.botlibre.com/rest/api"

// Config is the root configuration structure
type Config struct {
	Server    ServerConfig  `yaml:"server"`
	Login     LoginConfig   `yaml:"login"`
	Logging   LoggingConfig `yaml:"logging"`
	Debug     bool          `yaml:"debug"`
	ErrorMode string        `yaml:"errorMode"`
}

// ServerConfig holds the server and HTTP client settings
type ServerConfig struct {
	URL           string        `yaml:"url"`
	ApplicationID string        `yaml:"applicationId"`
	Timeout       time.Duration `yaml:"timeout"`
	UserAgent     string        `yaml:"userAgent"`
	TLS           struct {
		// CAFile is a PEM bundle that replaces the system roots
		CAFile     string `yaml:"caFile"`
		MinVersion string `yaml:"minVersion"`
	} `yaml:"tls"`
}

// LoginConfig holds the user credentials. Token may replace Password.
type LoginConfig struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Token    string `yaml:"token"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse reads configuration from YAML data
func Parse(data []byte) (*Config, error) {
	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Server.URL == "" {
		c.Server.URL = DefaultURL
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.UserAgent == "" {
		c.Server.UserAgent = transport.DefaultUserAgent
	}
	if c.Server.TLS.MinVersion == "" {
		c.Server.TLS.MinVersion = "1.2"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.ErrorMode == "" {
		c.ErrorMode = sdk.ErrorModeStrict.String()
	}
}

// Validate checks the configuration. It is called by Load and must be called
// again after overriding values.
func (c *Config) Validate() error {
	if _, err := credentials.New(c.Server.URL, c.Server.ApplicationID); err != nil {
		return fmt.Errorf("server.url: %w", err)
	}

	if c.Server.Timeout < 0 {
		return fmt.Errorf("server.timeout must not be negative")
	}

	switch c.Server.TLS.MinVersion {
	case "1.2", "1.3":
		// Valid versions
	default:
		return fmt.Errorf("server.tls.minVersion must be '1.2' or '1.3', got '%s'", c.Server.TLS.MinVersion)
	}

	if _, err := sdk.ParseErrorMode(c.ErrorMode); err != nil {
		return fmt.Errorf("errorMode: %w", err)
	}

	switch c.Logging.Format {
	case "text", "json":
		// Valid formats
	default:
		return fmt.Errorf("logging.format must be 'text' or 'json', got '%s'", c.Logging.Format)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	if c.Login.User == "" && (c.Login.Password != "" || c.Login.Token != "") {
		return fmt.Errorf("login.user is required when a password or token is set")
	}

	return nil
}

// Credentials returns the server credentials
func (c *Config) Credentials() (*credentials.Credentials, error) {
	return credentials.New(c.Server.URL, c.Server.ApplicationID)
}

// HTTPSConfig returns the transport configuration
func (c *Config) HTTPSConfig() (*transport.HTTPSConfig, error) {
	cfg := transport.DefaultHTTPSConfig()
	cfg.Timeout = c.Server.Timeout
	cfg.UserAgent = c.Server.UserAgent
	if c.Server.TLS.MinVersion == "1.3" {
		cfg.MinTLSVersion = transport.TLS13
	}

	if c.Server.TLS.CAFile != "" {
		pem, err := os.ReadFile(c.Server.TLS.CAFile)
		if err != nil {
			return nil, fmt.Errorf("reading CA file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", c.Server.TLS.CAFile)
		}
		cfg.RootCAs = pool
	}

	return cfg, nil
}

// Mode returns the parsed error mode
func (c *Config) Mode() sdk.ErrorMode {
	mode, _ := sdk.ParseErrorMode(c.ErrorMode)
	return mode
}

// LogLevel returns the parsed log level
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.Logging.Level))); err != nil {
		return 0, fmt.Errorf("logging.level: %w", err)
	}
	return level, nil
}

// User returns the login as a connect request, or nil when no user is configured
func (c *Config) User() *message.UserConfig {
	if c.Login.User == "" {
		return nil
	}
	return &message.UserConfig{
		Base:     message.Base{User: c.Login.User, Token: c.Login.Token},
		Password: c.Login.Password,
	}
}
