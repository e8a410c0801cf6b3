package sdk

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/andreabenini/BotLibre/pkg/credentials"
	"github.com/andreabenini/BotLibre/pkg/message"
	"github.com/andreabenini/BotLibre/pkg/transport"
)

// DefaultUserImage is the image shown for users without an avatar
const DefaultUserImage = "images/user-thumb.jpg"

// Transport performs a single request/response exchange.
// *transport.HTTPSClient implements it.
type Transport interface {
	Send(ctx context.Context, req *transport.Request) ([]byte, error)
}

// ConnectionConfig holds connection configuration
type ConnectionConfig struct {
	// Credentials is the server URL and application id (required)
	Credentials *credentials.Credentials
	// Transport overrides the HTTPS transport, e.g. with a stub in tests
	Transport Transport
	// HTTPSConfig configures the default HTTPS transport. Ignored if Transport is set.
	HTTPSConfig *transport.HTTPSConfig
	// Logger receives debug traces and lenient-mode warnings (default: slog.Default())
	Logger *slog.Logger
	// Debug logs every outgoing and incoming payload
	Debug bool
	// ErrorMode selects strict (default) or lenient failure reporting
	ErrorMode ErrorMode
}

// Connection issues operations to a Botlibre server and caches the session:
// the current user and the current domain.
//
// A Connection does not hold a live network connection. Each operation is a
// single blocking exchange through the Transport. Methods are safe for
// concurrent use.
type Connection struct {
	transport Transport
	logger    *slog.Logger
	errorMode ErrorMode

	mu          sync.RWMutex
	credentials *credentials.Credentials
	user        *message.UserConfig
	domain      *message.DomainConfig
	debug       bool
	lastError   error
}

// NewConnection creates a new connection
func NewConnection(config *ConnectionConfig) (*Connection, error) {
	if config == nil {
		return nil, ErrConfigRequired
	}
	if config.Credentials == nil {
		return nil, fmt.Errorf("%w: credentials are required", ErrInvalidArgument)
	}

	t := config.Transport
	if t == nil {
		t = transport.NewHTTPSClient(config.HTTPSConfig)
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Connection{
		transport:   t,
		logger:      logger,
		errorMode:   config.ErrorMode,
		credentials: config.Credentials,
		debug:       config.Debug,
	}, nil
}

// User returns a copy of the current user, or nil if not connected
func (c *Connection) User() *message.UserConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// SetUser sets the current user without contacting the server.
// The connection keeps its own copy; later changes to user have no effect.
func (c *Connection) SetUser(user *message.UserConfig) {
	if user != nil {
		u := *user
		user = &u
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = user
}

// Domain returns a copy of the current domain, or nil
func (c *Connection) Domain() *message.DomainConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.domain == nil {
		return nil
	}
	d := *c.domain
	return &d
}

// SetDomain sets the current domain without contacting the server.
// Subsequent requests carry its id.
func (c *Connection) SetDomain(domain *message.DomainConfig) {
	if domain != nil {
		d := *domain
		domain = &d
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.domain = domain
}

// Credentials returns the connection's credentials
func (c *Connection) Credentials() *credentials.Credentials {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.credentials
}

// SetCredentials replaces the credentials. The session is kept.
func (c *Connection) SetCredentials(creds *credentials.Credentials) error {
	if creds == nil {
		return fmt.Errorf("%w: credentials are required", ErrInvalidArgument)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.credentials = creds
	return nil
}

// Debug reports whether payload tracing is enabled
func (c *Connection) Debug() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.debug
}

// SetDebug enables or disables payload tracing
func (c *Connection) SetDebug(debug bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debug = debug
}

// ErrorMode returns the connection's error mode
func (c *Connection) ErrorMode() ErrorMode {
	return c.errorMode
}

// LastError returns the most recent operation failure, in either error mode.
// It is reset by the next successful exchange.
func (c *Connection) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// Disconnect clears the current user and domain. No request is sent.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = nil
	c.domain = nil
}

// DefaultUserImage returns the image path used for users without an avatar
func (c *Connection) DefaultUserImage() string {
	return DefaultUserImage
}

// Types returns the browsable content types
func (c *Connection) Types() []message.ContentType { return message.ContentTypes() }

// ChannelTypes returns the live chat channel types
func (c *Connection) ChannelTypes() []message.ChannelType { return message.ChannelTypes() }

// AccessModes returns the content access modes
func (c *Connection) AccessModes() []message.AccessMode { return message.AccessModes() }

// MediaAccessModes returns the channel media access modes
func (c *Connection) MediaAccessModes() []message.MediaAccessMode {
	return message.MediaAccessModes()
}

// LearningModes returns the bot learning modes
func (c *Connection) LearningModes() []message.LearningMode { return message.LearningModes() }

// CorrectionModes returns the bot correction modes
func (c *Connection) CorrectionModes() []message.CorrectionMode { return message.CorrectionModes() }

// BotModes returns the live chat bot modes
func (c *Connection) BotModes() []message.BotMode { return message.BotModes() }

// session snapshots, under one lock, the credentials an exchange is sent to
// and the authentication attached to its payload
func (c *Connection) session() (*credentials.Credentials, message.Auth) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	a := message.Auth{Application: c.credentials.ApplicationID()}
	if c.user != nil {
		a.User = c.user.User
		a.Token = c.user.Token
	}
	if c.domain != nil {
		a.Domain = c.domain.ID
	}
	return c.credentials, a
}

func (c *Connection) setLastError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastError = err
}
