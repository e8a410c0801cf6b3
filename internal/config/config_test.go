package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreabenini/BotLibre/pkg/sdk"
	"github.com/andreabenini/BotLibre/pkg/transport"
)

func TestLoad(t *testing.T) {
	t.Setenv("BOTLIBRE_APP_ID", "9876")
	t.Setenv("BOTLIBRE_PASSWORD", "s3cret")

	path := filepath.Join(t.TempDir(), "botlibre.yaml")
	data := `
server:
  url: https://bots.example.com/rest/api
  applicationId: ${BOTLIBRE_APP_ID}
  timeout: 5s
  tls:
    minVersion: "1.3"
login:
  user: alice
  password: ${BOTLIBRE_PASSWORD}
logging:
  format: json
  level: debug
debug: true
errorMode: lenient
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://bots.example.com/rest/api", cfg.Server.URL)
	assert.Equal(t, "9876", cfg.Server.ApplicationID)
	assert.Equal(t, 5*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "alice", cfg.Login.User)
	assert.Equal(t, "s3cret", cfg.Login.Password)
	assert.True(t, cfg.Debug)
	assert.Equal(t, sdk.ErrorModeLenient, cfg.Mode())

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	creds, err := cfg.Credentials()
	require.NoError(t, err)
	assert.Equal(t, "9876", creds.ApplicationID())

	https, err := cfg.HTTPSConfig()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, https.Timeout)
	assert.Equal(t, uint16(transport.TLS13), https.MinTLSVersion)

	user := cfg.User()
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.User)
	assert.Equal(t, "s3cret", user.Password)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("server:\n  applicationId: \"1\"\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultURL, cfg.Server.URL)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, transport.DefaultUserAgent, cfg.Server.UserAgent)
	assert.Equal(t, "1.2", cfg.Server.TLS.MinVersion)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "strict", cfg.ErrorMode)
	assert.Equal(t, sdk.ErrorModeStrict, cfg.Mode())
	assert.False(t, cfg.Debug)
	assert.Nil(t, cfg.User())

	def := Default()
	assert.Equal(t, DefaultURL, def.Server.URL)
	assert.Equal(t, cfg.Logging, def.Logging)
	assert.NoError(t, def.Validate())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "server: [unclosed"},
		{"bad url", "server:\n  url: ftp://example.com\n"},
		{"bad tls version", "server:\n  tls:\n    minVersion: \"1.1\"\n"},
		{"negative timeout", "server:\n  timeout: -1s\n"},
		{"bad error mode", "errorMode: silent\n"},
		{"bad log format", "logging:\n  format: xml\n"},
		{"bad log level", "logging:\n  level: chatty\n"},
		{"password without user", "login:\n  password: x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Errorf("expected error for %q", tt.data)
			}
		})
	}
}

func TestHTTPSConfig_CAFile(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.pem")
	require.NoError(t, os.WriteFile(empty, []byte("not a certificate"), 0o600))

	cfg := Default()
	cfg.Server.TLS.CAFile = empty
	_, err := cfg.HTTPSConfig()
	assert.Error(t, err)

	cfg.Server.TLS.CAFile = filepath.Join(dir, "missing.pem")
	_, err = cfg.HTTPSConfig()
	assert.Error(t, err)
}

func TestUser_Token(t *testing.T) {
	cfg, err := Parse([]byte("login:\n  user: bob\n  token: \"12345\"\n"))
	require.NoError(t, err)

	user := cfg.User()
	require.NotNil(t, user)
	assert.Equal(t, "12345", user.Token)
	assert.Empty(t, user.Password)
}
