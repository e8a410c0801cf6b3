package credentials

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Botlibre hosted service defaults
const (
	BotlibreHost = "www.botlibre.com"
	BotlibreApp  = ""
	BotlibrePath = "/rest/api"
)

// ErrInvalidURL is returned when the server URL cannot be used as a base URL
var ErrInvalidURL = errors.New("invalid server URL")

// Credentials holds the server URL and the application id used to
// authenticate every request. A Credentials value is immutable.
type Credentials struct {
	host          string
	app           string
	url           string
	applicationID string
}

// New creates credentials for the server at serverURL.
// The URL must be absolute (http or https); a trailing slash is removed.
func New(serverURL, applicationID string) (*Credentials, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	return &Credentials{
		host:          u.Host,
		app:           strings.TrimRight(u.Path, "/"),
		url:           strings.TrimRight(serverURL, "/"),
		applicationID: applicationID,
	}, nil
}

// NewBotlibre creates credentials for the hosted Botlibre service.
// You can obtain an application id from the Botlibre developer page.
func NewBotlibre(applicationID string) *Credentials {
	return &Credentials{
		host:          BotlibreHost,
		app:           BotlibreApp,
		url:           "https://" + BotlibreHost + BotlibreApp + BotlibrePath,
		applicationID: applicationID,
	}
}

// URL returns the base URL all endpoint paths are appended to
func (c *Credentials) URL() string {
	return c.url
}

// Host returns the server host (and port, if any)
func (c *Credentials) Host() string {
	return c.host
}

// App returns the application path on the server
func (c *Credentials) App() string {
	return c.app
}

// ApplicationID returns the application id sent with every request
func (c *Credentials) ApplicationID() string {
	return c.applicationID
}

// WithApplicationID returns a copy of the credentials with a different application id
func (c *Credentials) WithApplicationID(applicationID string) *Credentials {
	cp := *c
	cp.applicationID = applicationID
	return &cp
}

// Endpoint joins the base URL and an endpoint path
func (c *Credentials) Endpoint(path string) string {
	return c.url + "/" + strings.TrimLeft(path, "/")
}

// String implements fmt.Stringer without exposing the application id
func (c *Credentials) String() string {
	return c.url
}
