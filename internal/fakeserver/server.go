// Package fakeserver provides an in-process HTTP server speaking the Botlibre
// XML API, for end-to-end tests and local experiments.
//
// The server keeps users, bot instances, forums and posts in memory. It
// implements every endpoint used by package sdk:
//
//   - POST {basePath}/check-user, create-user, view-user, flag-user
//   - POST {basePath}/post-chat, avatar-message, speak, get-learning
//   - POST {basePath}/check-forum-post, create-forum-post, create-reply,
//     update-forum-post, delete-forum-post, flag-forum-post
//   - POST {basePath}/(un)subscribe-post, (un)subscribe-forum
//   - POST {basePath}/thumbs-up-{type}, thumbs-down-{type}, star-{type}
//   - POST {basePath}/get-{type}-admins
//   - POST {basePath}/save-response, delete-response
//   - POST {basePath}/create-user-message
//   - POST {basePath}/save-avatar-media, delete-avatar-media, delete-avatar-background
//   - GET  /health
//
// Every request must carry the configured application id. Operations that
// change content require a connected user (user id and token attributes).
// Failures are answered with a non-2xx status and a plain text body, the
// way the real server does.
package fakeserver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/beevik/etree"
)

// DefaultBasePath is the REST API path of a Botlibre server
const DefaultBasePath = "/rest/api"

// Config holds server configuration
type Config struct {
	// BasePath is prepended to every endpoint (default: /rest/api)
	BasePath string
	// ApplicationID, when set, must be sent with every request
	ApplicationID string
	// Logger receives request logs (default: slog.Default())
	Logger *slog.Logger
}

// Request is a request received by the server
type Request struct {
	Path       string
	Root       string
	Attr       map[string]string
	Body       []byte
	RequestID  string
	ReceivedAt time.Time
}

// Server is an in-memory Botlibre API server
type Server struct {
	config  Config
	logger  *slog.Logger
	handler http.Handler
	httpSrv *http.Server
	store   *store

	mu        sync.RWMutex
	requests  []*Request
	overrides map[string]override
}

// override replaces the answer of an endpoint
type override struct {
	status int
	body   []byte
}

// New creates a new server
func New(cfg Config) *Server {
	if cfg.BasePath == "" {
		cfg.BasePath = DefaultBasePath
	}
	cfg.BasePath = "/" + strings.Trim(cfg.BasePath, "/")
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	s := &Server{
		config:    cfg,
		logger:    cfg.Logger,
		store:     newStore(),
		overrides: make(map[string]override),
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)
	s.handler = mux

	return s
}

// Handler returns the HTTP handler, e.g. for httptest.NewServer
func (s *Server) Handler() http.Handler {
	return s.handler
}

// BasePath returns the API base path
func (s *Server) BasePath() string {
	return s.config.BasePath
}

// Start begins listening on the specified address
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	s.logger.Info("starting fake server", "addr", addr, "base_path", s.config.BasePath)
	return s.httpSrv.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// Requests returns the requests received so far
func (s *Server) Requests() []*Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Respond makes the endpoint answer with status and body instead of
// handling the request. Use it to simulate failures and malformed bodies.
func (s *Server) Respond(endpoint string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[strings.Trim(endpoint, "/")] = override{status: status, body: []byte(body)}
}

// Reset removes all overrides
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides = make(map[string]override)
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	base := s.config.BasePath

	mux.HandleFunc("GET /health", s.handleHealth)

	routes := map[string]http.HandlerFunc{
		"check-user":               s.handleCheckUser,
		"create-user":              s.handleCreateUser,
		"view-user":                s.handleViewUser,
		"flag-user":                s.handleFlagUser,
		"post-chat":                s.handleChat,
		"avatar-message":           s.handleAvatarMessage,
		"speak":                    s.handleSpeak,
		"get-learning":             s.handleGetLearning,
		"check-forum-post":         s.handleCheckForumPost,
		"create-forum-post":        s.withUser(s.handleCreateForumPost),
		"create-reply":             s.withUser(s.handleCreateReply),
		"update-forum-post":        s.withUser(s.handleUpdateForumPost),
		"delete-forum-post":        s.withUser(s.handleDeleteForumPost),
		"flag-forum-post":          s.withUser(s.handleFlagForumPost),
		"subscribe-post":           s.withUser(s.handleSubscribe("post", true)),
		"unsubscribe-post":         s.withUser(s.handleSubscribe("post", false)),
		"subscribe-forum":          s.withUser(s.handleSubscribe("forum", true)),
		"unsubscribe-forum":        s.withUser(s.handleSubscribe("forum", false)),
		"thumbs-up-post":           s.withUser(s.handleRatePost(1, 0)),
		"thumbs-down-post":         s.withUser(s.handleRatePost(0, 1)),
		"star-post":                s.withUser(s.handleStarPost),
		"save-response":            s.withUser(s.handleSaveResponse),
		"delete-response":          s.withUser(s.handleDeleteResponse),
		"create-user-message":      s.withUser(s.handleCreateUserMessage),
		"save-avatar-media":        s.withUser(s.handleAccepted),
		"delete-avatar-media":      s.withUser(s.handleAccepted),
		"delete-avatar-background": s.withUser(s.handleAccepted),
	}
	for path, h := range routes {
		mux.HandleFunc("POST "+base+"/"+path, s.withRequest(s.withApplication(h)))
	}

	// Templated endpoints: get-{type}-admins, thumbs-up-{type}, ...
	mux.HandleFunc("POST "+base+"/{endpoint}", s.withRequest(s.withApplication(s.handleTemplated)))
}

// Middleware

type contextKey string

const (
	requestContextKey contextKey = "request"
	userContextKey    contextKey = "user"
)

// withRequest reads and records the request, then applies any override
func (s *Server) withRequest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			s.textError(w, "failed to read request", http.StatusBadRequest)
			return
		}

		endpoint := strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, s.config.BasePath), "/")
		req := &Request{
			Path:       endpoint,
			Attr:       make(map[string]string),
			Body:       body,
			RequestID:  r.Header.Get("X-Request-ID"),
			ReceivedAt: time.Now().UTC(),
		}

		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(body); err != nil || doc.Root() == nil {
			s.record(req)
			s.textError(w, "invalid XML request", http.StatusBadRequest)
			return
		}
		req.Root = doc.Root().Tag
		for _, a := range doc.Root().Attr {
			req.Attr[a.Key] = a.Value
		}
		s.record(req)

		s.logger.Debug("received request", "endpoint", endpoint, "root", req.Root, "request_id", req.RequestID)

		s.mu.RLock()
		o, ok := s.overrides[endpoint]
		s.mu.RUnlock()
		if ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(o.status)
			w.Write(o.body)
			return
		}

		ctx := context.WithValue(r.Context(), requestContextKey, req)
		next(w, r.WithContext(ctx))
	}
}

// withApplication rejects requests without the configured application id
func (s *Server) withApplication(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.config.ApplicationID != "" && requestFromContext(r.Context()).Attr["application"] != s.config.ApplicationID {
			s.textError(w, "Invalid application id", http.StatusForbidden)
			return
		}
		next(w, r)
	}
}

// withUser authenticates the user and token attributes of the request
func (s *Server) withUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := requestFromContext(r.Context())
		acct, err := s.store.authenticate(req.Attr["user"], req.Attr["token"])
		if err != nil {
			s.logger.Debug("authentication failed", "endpoint", req.Path, "error", err)
			s.textError(w, err.Error(), http.StatusForbidden)
			return
		}
		ctx := context.WithValue(r.Context(), userContextKey, acct)
		next(w, r.WithContext(ctx))
	}
}

func (s *Server) record(req *Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
}

func requestFromContext(ctx context.Context) *Request {
	if v := ctx.Value(requestContextKey); v != nil {
		return v.(*Request)
	}
	return &Request{Attr: map[string]string{}}
}

func userFromContext(ctx context.Context) *account {
	if v := ctx.Value(userContextKey); v != nil {
		return v.(*account)
	}
	return nil
}

// Responses

type xmlEncoder interface {
	ToXML() ([]byte, error)
}

func (s *Server) xmlResponse(w http.ResponseWriter, v xmlEncoder) {
	data, err := v.ToXML()
	if err != nil {
		s.logger.Error("failed to encode response", "error", err)
		s.textError(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) docResponse(w http.ResponseWriter, doc *etree.Document) {
	data, err := doc.WriteToBytes()
	if err != nil {
		s.textError(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) textError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprint(w, msg)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
