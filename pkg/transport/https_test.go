package transport

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestDefaultHTTPSConfig(t *testing.T) {
	config := DefaultHTTPSConfig()

	if config == nil {
		t.Fatal("expected non-nil config")
	}

	if config.MinTLSVersion != TLS12 {
		t.Errorf("expected MinTLSVersion TLS12, got %d", config.MinTLSVersion)
	}
	if config.MaxTLSVersion != TLS13 {
		t.Errorf("expected MaxTLSVersion TLS13, got %d", config.MaxTLSVersion)
	}
	if len(config.CipherSuites) == 0 {
		t.Error("expected CipherSuites to be set")
	}
	if config.Timeout != 30*time.Second {
		t.Errorf("expected Timeout 30s, got %v", config.Timeout)
	}
	if config.IdleConnTimeout != 90*time.Second {
		t.Errorf("expected IdleConnTimeout 90s, got %v", config.IdleConnTimeout)
	}
	if config.UserAgent != DefaultUserAgent {
		t.Errorf("expected UserAgent %q, got %q", DefaultUserAgent, config.UserAgent)
	}
}

func TestRecommendedTLS12CipherSuites(t *testing.T) {
	for _, suite := range RecommendedTLS12CipherSuites {
		if tls.CipherSuiteName(suite) == "" {
			t.Errorf("unknown cipher suite: %d", suite)
		}
	}
}

func TestNewHTTPSClient_NilConfig(t *testing.T) {
	client := NewHTTPSClient(nil)

	if client == nil {
		t.Fatal("expected non-nil client")
	}
	if client.client == nil {
		t.Error("expected http.Client to be initialized")
	}
	if client.config == nil {
		t.Error("expected config to be set to default")
	}
}

func TestNewHTTPSClient_CustomConfig(t *testing.T) {
	client := NewHTTPSClient(&HTTPSConfig{
		MinTLSVersion: TLS13,
		MaxTLSVersion: TLS13,
		Timeout:       60 * time.Second,
	})

	if client.config.MinTLSVersion != TLS13 {
		t.Error("expected custom MinTLSVersion")
	}
	if client.client.Timeout != 60*time.Second {
		t.Error("expected custom Timeout on http.Client")
	}
}

func TestNewPOST(t *testing.T) {
	req := NewPOST("https://example.com/post-chat", []byte("<chat/>"))

	if req.Method != http.MethodPost {
		t.Errorf("expected POST, got %s", req.Method)
	}
	if req.Header.Get("Content-Type") != ContentTypeXML {
		t.Errorf("expected Content-Type %s", ContentTypeXML)
	}
	if req.Header.Get("Accept") != ContentTypeXML {
		t.Errorf("expected Accept %s", ContentTypeXML)
	}
}

func TestHTTPSClient_Send(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/rest/api/post-chat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/xml" {
			t.Errorf("expected content-type 'application/xml', got '%s'", ct)
		}
		if r.Header.Get("User-Agent") != DefaultUserAgent {
			t.Errorf("expected User-Agent %q", DefaultUserAgent)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "<chat/>" {
			t.Errorf("unexpected request body: %s", body)
		}

		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<response/>"))
	}))
	defer server.Close()

	client := NewHTTPSClient(nil)

	response, err := client.Send(context.Background(), NewPOST(server.URL+"/rest/api/post-chat", []byte("<chat/>")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(response) != "<response/>" {
		t.Errorf("unexpected response: %s", string(response))
	}
}

func TestHTTPSClient_Send_CustomHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Request-ID") != "abc" {
			t.Errorf("expected X-Request-ID header")
		}
		if r.Header.Get("User-Agent") != "custom/2.0" {
			t.Errorf("expected custom User-Agent, got %s", r.Header.Get("User-Agent"))
		}
	}))
	defer server.Close()

	req := NewPOST(server.URL, []byte("<chat/>"))
	req.Header.Set("X-Request-ID", "abc")

	client := NewHTTPSClient(&HTTPSConfig{UserAgent: "custom/2.0"})
	if _, err := client.Send(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHTTPSClient_Send_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	response, err := NewHTTPSClient(nil).Send(context.Background(), NewPOST(server.URL, []byte("<x/>")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(response) != 0 {
		t.Errorf("expected empty response, got %q", response)
	}
}

func TestHTTPSClient_Send_GET(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.ContentLength > 0 {
			t.Errorf("expected no body on GET")
		}
		w.Write([]byte("<ok/>"))
	}))
	defer server.Close()

	req := NewGET(server.URL)
	req.Body = []byte("<ignored/>")

	response, err := NewHTTPSClient(nil).Send(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(response) != "<ok/>" {
		t.Errorf("unexpected response: %s", response)
	}
}

func TestHTTPSClient_Send_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	_, err := NewHTTPSClient(nil).Send(context.Background(), NewPOST(server.URL, []byte("<x/>")))
	if err == nil {
		t.Fatal("expected error for non-2xx status")
	}

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StatusError, got %T", err)
	}
	if se.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", se.StatusCode)
	}
	if !strings.Contains(se.Error(), "Internal Server Error") {
		t.Errorf("expected body in error message, got %s", se.Error())
	}
}

func TestHTTPSClient_Send_Accepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("<user/>"))
	}))
	defer server.Close()

	response, err := NewHTTPSClient(nil).Send(context.Background(), NewPOST(server.URL, nil))
	if err != nil {
		t.Fatalf("expected 201 to succeed: %v", err)
	}
	if string(response) != "<user/>" {
		t.Errorf("unexpected response: %s", response)
	}
}

func TestHTTPSClient_Send_MaxResponseBytes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("a", 100)))
	}))
	defer server.Close()

	tests := []struct {
		name    string
		max     int64
		wantErr bool
	}{
		{"over limit", 10, true},
		{"exactly at limit", 100, false},
		{"unlimited", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewHTTPSClient(&HTTPSConfig{MaxResponseBytes: tt.max})
			response, err := client.Send(context.Background(), NewPOST(server.URL, nil))
			if tt.wantErr {
				if !errors.Is(err, ErrResponseTooLarge) {
					t.Fatalf("expected ErrResponseTooLarge, got %v", err)
				}
				if response != nil {
					t.Errorf("expected no body, got %d bytes", len(response))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(response) != 100 {
				t.Errorf("expected full body of 100 bytes, got %d", len(response))
			}
		})
	}
}

func TestHTTPSClient_Send_InvalidURL(t *testing.T) {
	_, err := NewHTTPSClient(nil).Send(context.Background(), NewPOST("http://invalid.invalid.invalid:99999", []byte("<x/>")))
	if err == nil {
		t.Error("expected error for invalid URL")
	}
}

func TestHTTPSClient_Send_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewHTTPSClient(&HTTPSConfig{Timeout: 10 * time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Send(ctx, NewPOST(server.URL, []byte("<x/>")))
	if err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestHTTPSClient_WithHTTPClient_TLS(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<secure/>"))
	}))
	defer server.Close()

	client := NewHTTPSClientWithHTTPClient(server.Client(), nil)
	response, err := client.Send(context.Background(), NewPOST(server.URL, []byte("<x/>")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(response) != "<secure/>" {
		t.Errorf("unexpected response: %s", response)
	}
}

func TestTLSConstants(t *testing.T) {
	if TLS12 != tls.VersionTLS12 {
		t.Errorf("TLS12 constant mismatch")
	}
	if TLS13 != tls.VersionTLS13 {
		t.Errorf("TLS13 constant mismatch")
	}
}
