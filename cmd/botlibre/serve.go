package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/andreabenini/BotLibre/internal/config"
	"github.com/andreabenini/BotLibre/internal/fakeserver"
)

// serve runs a fake server seeded with a demo user, bot and forum until ctx
// is cancelled. The base path is taken from server.url.
func serve(ctx context.Context, logger *slog.Logger, opts *options, cfg *config.Config) error {
	basePath := fakeserver.DefaultBasePath
	if u, err := url.Parse(cfg.Server.URL); err == nil && u.Path != "" {
		basePath = u.Path
	}

	srv := fakeserver.New(fakeserver.Config{
		BasePath:      basePath,
		ApplicationID: cfg.Server.ApplicationID,
		Logger:        logger,
	})
	seed(srv)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(opts.addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down fake server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func seed(srv *fakeserver.Server) {
	srv.AddUser("demo", "demo", "Demo User")
	srv.AddBot(fakeserver.Bot{
		ID:     "1",
		Name:   "Demo Bot",
		Admins: []string{"demo"},
		Responses: map[string]string{
			"hello":        "Hello! How can I help you?",
			"who are you?": "I am the demo bot.",
			"bye":          "Goodbye.",
		},
	})
	srv.AddForum(fakeserver.Forum{ID: "1", Name: "General", Admins: []string{"demo"}})
}
