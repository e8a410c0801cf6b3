package credentials

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantURL  string
		wantHost string
		wantApp  string
		wantErr  bool
	}{
		{"https with path", "https://www.botlibre.com/rest/api", "https://www.botlibre.com/rest/api", "www.botlibre.com", "/rest/api", false},
		{"trailing slash", "http://localhost:8080/rest/api/", "http://localhost:8080/rest/api", "localhost:8080", "/rest/api", false},
		{"host only", "https://api.example.com", "https://api.example.com", "api.example.com", "", false},
		{"relative", "/rest/api", "", "", "", true},
		{"unsupported scheme", "ftp://example.com", "", "", "", true},
		{"missing host", "https://", "", "", "", true},
		{"unparsable", "http://[::1", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := New(tt.url, "app")
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidURL) {
					t.Errorf("expected ErrInvalidURL, got %v", err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, creds.URL())
			assert.Equal(t, tt.wantHost, creds.Host())
			assert.Equal(t, tt.wantApp, creds.App())
			assert.Equal(t, "app", creds.ApplicationID())
		})
	}
}

func TestNewBotlibre(t *testing.T) {
	creds := NewBotlibre("123")
	assert.Equal(t, "https://www.botlibre.com/rest/api", creds.URL())
	assert.Equal(t, "www.botlibre.com", creds.Host())
	assert.Equal(t, "123", creds.ApplicationID())
}

func TestEndpoint(t *testing.T) {
	creds, err := New("https://api.example.com/rest/api/", "app")
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/rest/api/post-chat", creds.Endpoint("post-chat"))
	assert.Equal(t, "https://api.example.com/rest/api/check-user", creds.Endpoint("/check-user"))
}

func TestWithApplicationID(t *testing.T) {
	creds := NewBotlibre("one")
	other := creds.WithApplicationID("two")

	assert.Equal(t, "one", creds.ApplicationID())
	assert.Equal(t, "two", other.ApplicationID())
	assert.Equal(t, creds.URL(), other.URL())
	assert.NotContains(t, other.String(), "two")
}
