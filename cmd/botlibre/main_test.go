package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreabenini/BotLibre/internal/fakeserver"
)

func newDemoServer(t *testing.T) (*fakeserver.Server, string) {
	t.Helper()
	srv := fakeserver.New(fakeserver.Config{ApplicationID: "app"})
	seed(srv)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts.URL + srv.BasePath()
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun_Chat(t *testing.T) {
	srv, url := newDemoServer(t)

	out, _, err := runCLI(t, "--url", url, "--app", "app", "-u", "demo", "-p", "demo", "chat", "1", "Hello")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello! How can I help you?")
	assert.Contains(t, out, "conversation: ")

	reqs := srv.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "check-user", reqs[0].Path)
	assert.Equal(t, "post-chat", reqs[1].Path)
	assert.Equal(t, "demo", reqs[1].Attr["user"])
}

func TestRun_ConfigFile(t *testing.T) {
	_, url := newDemoServer(t)

	path := filepath.Join(t.TempDir(), "botlibre.yaml")
	data := "server:\n  url: " + url + "\n  applicationId: app\nlogin:\n  user: demo\n  password: demo\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	out, _, err := runCLI(t, "-c", path, "admins", "instance", "1")
	require.NoError(t, err)
	assert.Equal(t, "demo\n", out)

	out, _, err = runCLI(t, "-c", path, "learning", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "learning mode: Administrators")

	out, _, err = runCLI(t, "-c", path, "speak", "hello", "world")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "speech/"))

	request := filepath.Join(t.TempDir(), "chat.xml")
	require.NoError(t, os.WriteFile(request, []byte(`<chat instance="1"><message>who are you?</message></chat>`), 0o600))
	out, _, err = runCLI(t, "-c", path, "custom", "post-chat", request)
	require.NoError(t, err)
	assert.Contains(t, out, "I am the demo bot.")

	out, _, err = runCLI(t, "-c", path, "user", "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "name: demo")
	assert.Contains(t, out, "avatar: images/user-thumb.jpg")
}

func TestRun_Debug(t *testing.T) {
	_, url := newDemoServer(t)

	_, logs, err := runCLI(t, "--url", url, "--app", "app", "--debug", "--log-format", "json", "chat", "1", "bye")
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"sending request"`)
	assert.Contains(t, logs, `"op":"chat"`)
}

func TestRun_Errors(t *testing.T) {
	_, url := newDemoServer(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no command", []string{"--url", url}, "command is required"},
		{"unknown command", []string{"--url", url, "dance"}, "unknown command"},
		{"missing arguments", []string{"--url", url, "chat", "1"}, "usage: botlibre chat"},
		{"bad url", []string{"--url", "ftp://example.com", "user", "x"}, "invalid configuration"},
		{"bad content type", []string{"--url", url, "--app", "app", "admins", "robot", "1"}, "unknown content type"},
		{"wrong password", []string{"--url", url, "--app", "app", "-u", "demo", "-p", "nope", "chat", "1", "hi"}, "connecting demo"},
		{"missing post", []string{"--url", url, "--app", "app", "post", "999"}, "404"},
		{"lenient failure", []string{"--url", url, "--app", "app", "--lenient", "user", "nobody"}, "no user returned"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestContentFor(t *testing.T) {
	for _, kind := range []string{"instance", "bot", "forum", "channel", "domain", "avatar"} {
		content, err := contentFor(kind, "1")
		require.NoError(t, err, kind)
		if kind == "bot" {
			kind = "instance"
		}
		assert.Equal(t, kind, content.Type())
	}
}
