package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TLS version constants
const (
	TLS12 = tls.VersionTLS12
	TLS13 = tls.VersionTLS13
)

// Content types
const (
	ContentTypeXML = "application/xml"
)

// DefaultUserAgent is sent when HTTPSConfig.UserAgent is empty
const DefaultUserAgent = "go-botlibre/1.0"

// Recommended TLS 1.2 cipher suites
var RecommendedTLS12CipherSuites = []uint16{
	tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
	tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
	tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
	tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
}

// HTTPSConfig contains HTTPS client configuration
type HTTPSConfig struct {
	MinTLSVersion   uint16
	MaxTLSVersion   uint16
	CipherSuites    []uint16
	Certificates    []tls.Certificate
	RootCAs         *x509.CertPool
	Timeout         time.Duration
	IdleConnTimeout time.Duration
	UserAgent       string
	// MaxResponseBytes caps the response body size, 0 means unlimited.
	// Larger bodies fail with ErrResponseTooLarge.
	MaxResponseBytes int64
}

// DefaultHTTPSConfig returns a default HTTPS configuration
func DefaultHTTPSConfig() *HTTPSConfig {
	return &HTTPSConfig{
		MinTLSVersion:    TLS12,
		MaxTLSVersion:    TLS13,
		CipherSuites:     RecommendedTLS12CipherSuites,
		Timeout:          30 * time.Second,
		IdleConnTimeout:  90 * time.Second,
		UserAgent:        DefaultUserAgent,
		MaxResponseBytes: 16 << 20,
	}
}

// Request is a single request/response exchange
type Request struct {
	Method string
	URL    string
	Body   []byte
	Header http.Header
}

// NewPOST creates a POST request carrying an XML document
func NewPOST(url string, body []byte) *Request {
	h := make(http.Header)
	h.Set("Content-Type", ContentTypeXML)
	h.Set("Accept", ContentTypeXML)
	return &Request{Method: http.MethodPost, URL: url, Body: body, Header: h}
}

// NewGET creates a GET request without a body
func NewGET(url string) *Request {
	h := make(http.Header)
	h.Set("Accept", ContentTypeXML)
	return &Request{Method: http.MethodGet, URL: url, Header: h}
}

// ErrResponseTooLarge is returned when a response body exceeds
// HTTPSConfig.MaxResponseBytes
var ErrResponseTooLarge = errors.New("response body too large")

// StatusError is returned when the server answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, string(e.Body))
}

// HTTPSClient performs request/response exchanges over HTTPS
type HTTPSClient struct {
	client *http.Client
	config *HTTPSConfig
}

// NewHTTPSClient creates a new HTTPS client
func NewHTTPSClient(config *HTTPSConfig) *HTTPSClient {
	if config == nil {
		config = DefaultHTTPSConfig()
	}

	tlsConfig := &tls.Config{
		MinVersion:   config.MinTLSVersion,
		MaxVersion:   config.MaxTLSVersion,
		CipherSuites: config.CipherSuites,
		Certificates: config.Certificates,
		RootCAs:      config.RootCAs,
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		TLSClientConfig:     tlsConfig,
		IdleConnTimeout:     config.IdleConnTimeout,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
	}

	return &HTTPSClient{
		client: &http.Client{
			Transport: transport,
			Timeout:   config.Timeout,
		},
		config: config,
	}
}

// NewHTTPSClientWithHTTPClient wraps an existing http.Client, e.g. one
// returned by httptest.Server.Client
func NewHTTPSClientWithHTTPClient(client *http.Client, config *HTTPSConfig) *HTTPSClient {
	if config == nil {
		config = DefaultHTTPSConfig()
	}
	return &HTTPSClient{client: client, config: config}
}

// Send performs the exchange and returns the response body.
// Network errors, context cancellation and non-2xx statuses are errors;
// a 2xx response with an empty body returns an empty slice.
func (c *HTTPSClient) Send(ctx context.Context, r *Request) ([]byte, error) {
	method := r.Method
	if method == "" {
		method = http.MethodPost
	}

	var body io.Reader
	if method != http.MethodGet && r.Body != nil {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}
	if req.Header.Get("User-Agent") == "" {
		ua := c.config.UserAgent
		if ua == "" {
			ua = DefaultUserAgent
		}
		req.Header.Set("User-Agent", ua)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: body}
	}

	limit := c.config.MaxResponseBytes
	var reader io.Reader = resp.Body
	if limit > 0 {
		reader = io.LimitReader(resp.Body, limit+1)
	}

	responseBody, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if limit > 0 && int64(len(responseBody)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, limit)
	}

	return responseBody, nil
}
