package fakeserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreabenini/BotLibre/pkg/message"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s := New(Config{ApplicationID: "app"})
	s.AddUser("alice", "secret", "Alice")
	s.AddBot(Bot{
		ID:        "42",
		Name:      "Brain",
		Admins:    []string{"alice", "bob"},
		Responses: map[string]string{"Hello": "Hi there"},
	})
	s.AddForum(Forum{ID: "7", Name: "General", Admins: []string{"alice"}})

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func post(t *testing.T, ts *httptest.Server, endpoint, body string) (int, string) {
	t.Helper()
	resp, err := http.Post(ts.URL+DefaultBasePath+"/"+endpoint, "application/xml", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

func login(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	status, body := post(t, ts, "check-user", `<user application="app" user="alice" password="secret"/>`)
	require.Equal(t, http.StatusOK, status, body)

	var user message.UserConfig
	require.NoError(t, user.ParseXML([]byte(body)))
	require.NotEmpty(t, user.Token)
	return user.Token
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestApplicationRequired(t *testing.T) {
	_, ts := newTestServer(t)

	status, body := post(t, ts, "post-chat", `<chat instance="42"><message>hello</message></chat>`)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Contains(t, body, "application")
}

func TestInvalidXML(t *testing.T) {
	s, ts := newTestServer(t)

	status, _ := post(t, ts, "post-chat", `<chat`)
	assert.Equal(t, http.StatusBadRequest, status)
	require.Len(t, s.Requests(), 1)
	assert.Empty(t, s.Requests()[0].Root)
}

func TestCheckUser(t *testing.T) {
	_, ts := newTestServer(t)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"password", `<user application="app" user="alice" password="secret"/>`, http.StatusOK},
		{"wrong password", `<user application="app" user="alice" password="nope"/>`, http.StatusBadRequest},
		{"unknown user", `<user application="app" user="mallory" password="x"/>`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := post(t, ts, "check-user", tt.body)
			if status != tt.status {
				t.Errorf("status = %d, want %d (%s)", status, tt.status, body)
			}
		})
	}
}

func TestChat(t *testing.T) {
	s, ts := newTestServer(t)

	status, body := post(t, ts, "post-chat", `<chat application="app" instance="42"><message>  hello </message></chat>`)
	require.Equal(t, http.StatusOK, status, body)

	var resp message.ChatResponse
	require.NoError(t, resp.ParseXML([]byte(body)))
	assert.Equal(t, "Hi there", resp.Message)
	assert.NotEmpty(t, resp.Conversation)

	status, body = post(t, ts, "post-chat", `<chat application="app" instance="42" conversation="c1" speak="true"><message>what?</message></chat>`)
	require.Equal(t, http.StatusOK, status, body)
	resp = message.ChatResponse{}
	require.NoError(t, resp.ParseXML([]byte(body)))
	assert.Equal(t, "c1", resp.Conversation)
	assert.Equal(t, "I do not understand.", resp.Message)
	assert.True(t, strings.HasPrefix(resp.Speech, "speech/"))

	status, _ = post(t, ts, "post-chat", `<chat application="app" instance="99"><message>hi</message></chat>`)
	assert.Equal(t, http.StatusNotFound, status)

	reqs := s.Requests()
	require.Len(t, reqs, 3)
	assert.Equal(t, "post-chat", reqs[0].Path)
	assert.Equal(t, "chat", reqs[0].Root)
	assert.Equal(t, "42", reqs[0].Attr["instance"])
}

func TestForumPostLifecycle(t *testing.T) {
	s, ts := newTestServer(t)
	token := login(t, ts)
	auth := `application="app" user="alice" token="` + token + `"`

	status, body := post(t, ts, "create-forum-post", `<forum-post `+auth+` forum="7"><topic>Hi</topic><details>First</details></forum-post>`)
	require.Equal(t, http.StatusOK, status, body)
	var created message.ForumPostConfig
	require.NoError(t, created.ParseXML([]byte(body)))
	assert.Equal(t, "alice", created.Creator)

	status, body = post(t, ts, "create-reply", `<forum-post `+auth+` parent="`+created.ID+`"><details>Reply</details></forum-post>`)
	require.Equal(t, http.StatusOK, status, body)

	status, body = post(t, ts, "check-forum-post", `<forum-post application="app" id="`+created.ID+`"/>`)
	require.Equal(t, http.StatusOK, status, body)
	var fetched message.ForumPostConfig
	require.NoError(t, fetched.ParseXML([]byte(body)))
	assert.Equal(t, 1, fetched.ReplyCount)
	require.Len(t, fetched.Replies, 1)
	assert.Equal(t, "Reply", fetched.Replies[0].Details)

	status, _ = post(t, ts, "thumbs-up-post", `<forum-post `+auth+` id="`+created.ID+`"/>`)
	assert.Equal(t, http.StatusOK, status)
	up, down := s.Rating("post", created.ID)
	assert.Equal(t, 1, up)
	assert.Equal(t, 0, down)

	status, _ = post(t, ts, "subscribe-post", `<forum-post `+auth+` id="`+created.ID+`"/>`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"alice"}, s.Subscribers("post", created.ID))

	status, _ = post(t, ts, "delete-forum-post", `<forum-post `+auth+` id="`+created.ID+`"/>`)
	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, s.Post(created.ID))
}

func TestAuthenticationRequired(t *testing.T) {
	_, ts := newTestServer(t)

	status, _ := post(t, ts, "create-forum-post", `<forum-post application="app" user="alice" token="forged" forum="7"><topic>x</topic></forum-post>`)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestTemplatedEndpoints(t *testing.T) {
	s, ts := newTestServer(t)
	token := login(t, ts)
	auth := `application="app" user="alice" token="` + token + `"`

	status, body := post(t, ts, "get-instance-admins", `<instance application="app" id="42"/>`)
	require.Equal(t, http.StatusOK, status, body)
	doc, err := message.ParseDocument([]byte(body))
	require.NoError(t, err)
	admins, err := message.ParseAdmins(doc)
	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, "alice", admins[0].User)
	assert.Equal(t, "bob", admins[1].User)

	status, _ = post(t, ts, "thumbs-down-forum", `<forum `+auth+` id="7"/>`)
	assert.Equal(t, http.StatusOK, status)
	_, down := s.Rating("forum", "7")
	assert.Equal(t, 1, down)

	status, _ = post(t, ts, "star-instance", `<instance `+auth+` id="42" stars="9"/>`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = post(t, ts, "get-avatar-admins", `<avatar application="app" id="1"/>`)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = post(t, ts, "no-such-thing", `<x application="app"/>`)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRespondOverride(t *testing.T) {
	s, ts := newTestServer(t)

	s.Respond("post-chat", http.StatusOK, "")
	status, body := post(t, ts, "post-chat", `<chat application="app" instance="42"><message>hello</message></chat>`)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, body)

	s.Respond("/post-chat/", http.StatusInternalServerError, "boom")
	status, body = post(t, ts, "post-chat", `<chat application="app" instance="42"><message>hello</message></chat>`)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "boom", body)

	s.Reset()
	status, _ = post(t, ts, "post-chat", `<chat application="app" instance="42"><message>hello</message></chat>`)
	assert.Equal(t, http.StatusOK, status)
}

func TestShutdownWithoutStart(t *testing.T) {
	s := New(Config{BasePath: "api/"})
	assert.Equal(t, "/api", s.BasePath())
	assert.NoError(t, s.Shutdown(t.Context()))
}
