package fakeserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	"github.com/andreabenini/BotLibre/pkg/message"
)

// parse decodes the recorded request body into v, answering 400 on failure
func (s *Server) parse(w http.ResponseWriter, r *http.Request, v message.Serializable) bool {
	req := requestFromContext(r.Context())
	if err := v.ParseXML(req.Body); err != nil {
		s.textError(w, "invalid request: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// storeError maps a store error to an HTTP status
func (s *Server) storeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, errNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errExists):
		status = http.StatusConflict
	case errors.Is(err, errUnauthorized), errors.Is(err, errForbidden):
		status = http.StatusForbidden
	}
	s.textError(w, err.Error(), status)
}

// ok answers an empty 200
func (s *Server) ok(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func speechFile() string {
	return "speech/" + uuid.NewString() + ".wav"
}

// Users

func (s *Server) handleCheckUser(w http.ResponseWriter, r *http.Request) {
	var cfg message.UserConfig
	if !s.parse(w, r, &cfg) {
		return
	}
	user, err := s.store.login(cfg.User, cfg.Password, cfg.Token)
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.xmlResponse(w, &user)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var cfg message.UserConfig
	if !s.parse(w, r, &cfg) {
		return
	}
	user, err := s.store.createUser(cfg)
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.logger.Info("user created", "user", user.User)
	s.xmlResponse(w, &user)
}

func (s *Server) handleViewUser(w http.ResponseWriter, r *http.Request) {
	var cfg message.UserConfig
	if !s.parse(w, r, &cfg) {
		return
	}
	user, err := s.store.viewUser(cfg.User)
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.xmlResponse(w, &user)
}

func (s *Server) handleFlagUser(w http.ResponseWriter, r *http.Request) {
	var cfg message.UserConfig
	if !s.parse(w, r, &cfg) {
		return
	}
	if err := s.store.flagUser(cfg.User, cfg.FlaggedReason); err != nil {
		s.storeError(w, err)
		return
	}
	s.ok(w)
}

func (s *Server) handleCreateUserMessage(w http.ResponseWriter, r *http.Request) {
	var cfg message.UserMessageConfig
	if !s.parse(w, r, &cfg) {
		return
	}
	if err := s.store.addMessage(userFromContext(r.Context()).config.User, cfg); err != nil {
		s.storeError(w, err)
		return
	}
	s.ok(w)
}

// Bots

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var cfg message.ChatConfig
	if !s.parse(w, r, &cfg) {
		return
	}
	if cfg.Disconnect {
		s.ok(w)
		return
	}

	text, err := s.store.reply(cfg.Instance, cfg.Message)
	if err != nil {
		s.storeError(w, err)
		return
	}

	resp := message.ChatResponse{
		Conversation: cfg.Conversation,
		Message:      text,
	}
	if resp.Conversation == "" {
		resp.Conversation = uuid.NewString()
	}
	if cfg.IncludeQuestion {
		resp.Question = cfg.Message
	}
	if cfg.Speak {
		resp.Speech = speechFile()
	}
	if cfg.Avatar != "" {
		resp.Avatar = "avatars/" + cfg.Avatar + ".png"
		resp.AvatarType = "image/png"
	}
	s.xmlResponse(w, &resp)
}

func (s *Server) handleAvatarMessage(w http.ResponseWriter, r *http.Request) {
	var cfg message.AvatarMessage
	if !s.parse(w, r, &cfg) {
		return
	}
	if cfg.Avatar == "" {
		s.textError(w, "avatar is required", http.StatusBadRequest)
		return
	}

	resp := message.ChatResponse{
		Message:    cfg.Message,
		Emote:      cfg.Emote,
		Action:     cfg.Action,
		Pose:       cfg.Pose,
		Avatar:     "avatars/" + cfg.Avatar + ".png",
		AvatarType: "image/png",
	}
	if cfg.Speak {
		resp.Speech = speechFile()
	}
	s.xmlResponse(w, &resp)
}

func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	var cfg message.Speech
	if !s.parse(w, r, &cfg) {
		return
	}
	if strings.TrimSpace(cfg.Text) == "" {
		s.textError(w, "text is required", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(speechFile()))
}

func (s *Server) handleGetLearning(w http.ResponseWriter, r *http.Request) {
	var cfg message.InstanceConfig
	if !s.parse(w, r, &cfg) {
		return
	}
	learning, err := s.store.learning(cfg.ID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.xmlResponse(w, &learning)
}

func (s *Server) handleSaveResponse(w http.ResponseWriter, r *http.Request) {
	var cfg message.ResponseConfig
	if !s.parse(w, r, &cfg) {
		return
	}
	resp, err := s.store.saveResponse(userFromContext(r.Context()).config.User, cfg)
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.xmlResponse(w, &resp)
}

func (s *Server) handleDeleteResponse(w http.ResponseWriter, r *http.Request) {
	var cfg message.ResponseConfig
	if !s.parse(w, r, &cfg) {
		return
	}
	if err := s.store.deleteResponse(userFromContext(r.Context()).config.User, cfg); err != nil {
		s.storeError(w, err)
		return
	}
	s.ok(w)
}

// handleAccepted answers avatar media requests, which only need a user
func (s *Server) handleAccepted(w http.ResponseWriter, r *http.Request) {
	s.ok(w)
}

// Forums

func (s *Server) handleCheckForumPost(w http.ResponseWriter, r *http.Request) {
	var cfg message.ForumPostConfig
	if !s.parse(w, r, &cfg) {
		return
	}
	post, err := s.store.post(cfg.ID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.xmlResponse(w, &post)
}

func (s *Server) handleCreateForumPost(w http.ResponseWriter, r *http.Request) {
	var cfg message.ForumPostConfig
	if !s.parse(w, r, &cfg) {
		return
	}
	if cfg.Parent != "" {
		s.textError(w, "use create-reply to reply to a post", http.StatusBadRequest)
		return
	}
	post, err := s.store.createPost(userFromContext(r.Context()).config.User, cfg)
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.xmlResponse(w, &post)
}

func (s *Server) handleCreateReply(w http.ResponseWriter, r *http.Request) {
	var cfg message.ForumPostConfig
	if !s.parse(w, r, &cfg) {
		return
	}
	if cfg.Parent == "" {
		s.textError(w, "parent is required", http.StatusBadRequest)
		return
	}
	post, err := s.store.createPost(userFromContext(r.Context()).config.User, cfg)
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.xmlResponse(w, &post)
}

func (s *Server) handleUpdateForumPost(w http.ResponseWriter, r *http.Request) {
	var cfg message.ForumPostConfig
	if !s.parse(w, r, &cfg) {
		return
	}
	post, err := s.store.updatePost(userFromContext(r.Context()).config.User, cfg)
	if err != nil {
		s.storeError(w, err)
		return
	}
	s.xmlResponse(w, &post)
}

func (s *Server) handleDeleteForumPost(w http.ResponseWriter, r *http.Request) {
	var cfg message.ForumPostConfig
	if !s.parse(w, r, &cfg) {
		return
	}
	if err := s.store.deletePost(userFromContext(r.Context()).config.User, cfg.ID); err != nil {
		s.storeError(w, err)
		return
	}
	s.ok(w)
}

func (s *Server) handleFlagForumPost(w http.ResponseWriter, r *http.Request) {
	var cfg message.ForumPostConfig
	if !s.parse(w, r, &cfg) {
		return
	}
	if err := s.store.flagPost(cfg.ID, cfg.FlaggedReason); err != nil {
		s.storeError(w, err)
		return
	}
	s.ok(w)
}

// handleSubscribe (un)subscribes the user to a post or forum, identified
// by the id attribute of the request root
func (s *Server) handleSubscribe(kind string, on bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := requestFromContext(r.Context())
		user := userFromContext(r.Context()).config.User
		if err := s.store.subscribe(kind, req.Attr["id"], user, on); err != nil {
			s.storeError(w, err)
			return
		}
		s.ok(w)
	}
}

func (s *Server) handleRatePost(up, down int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := requestFromContext(r.Context())
		if err := s.store.rate("post", req.Attr["id"], up, down, 0); err != nil {
			s.storeError(w, err)
			return
		}
		s.ok(w)
	}
}

func (s *Server) handleStarPost(w http.ResponseWriter, r *http.Request) {
	s.star(w, r, "post")
}

func (s *Server) star(w http.ResponseWriter, r *http.Request, kind string) {
	req := requestFromContext(r.Context())
	stars, err := strconv.Atoi(req.Attr["stars"])
	if err != nil || stars < 1 {
		s.textError(w, "stars must be between 1 and 5", http.StatusBadRequest)
		return
	}
	if err := s.store.rate(kind, req.Attr["id"], 0, 0, stars); err != nil {
		s.storeError(w, err)
		return
	}
	s.ok(w)
}

// handleTemplated serves the endpoints whose name embeds a content type:
// get-{type}-admins, thumbs-up-{type}, thumbs-down-{type} and star-{type}
func (s *Server) handleTemplated(w http.ResponseWriter, r *http.Request) {
	endpoint := r.PathValue("endpoint")

	if kind, ok := strings.CutPrefix(endpoint, "get-"); ok {
		if kind, ok = strings.CutSuffix(kind, "-admins"); ok {
			s.handleGetAdmins(w, r, kind)
			return
		}
	}

	for _, action := range []string{"thumbs-up-", "thumbs-down-", "star-"} {
		kind, ok := strings.CutPrefix(endpoint, action)
		if !ok || kind == "" {
			continue
		}
		s.withUser(func(w http.ResponseWriter, r *http.Request) {
			req := requestFromContext(r.Context())
			var err error
			switch action {
			case "thumbs-up-":
				err = s.store.rate(kind, req.Attr["id"], 1, 0, 0)
			case "thumbs-down-":
				err = s.store.rate(kind, req.Attr["id"], 0, 1, 0)
			default:
				s.star(w, r, kind)
				return
			}
			if err != nil {
				s.storeError(w, err)
				return
			}
			s.ok(w)
		})(w, r)
		return
	}

	s.textError(w, "unknown endpoint: "+endpoint, http.StatusNotFound)
}

// handleGetAdmins answers <admins> with one <user> per administrator
func (s *Server) handleGetAdmins(w http.ResponseWriter, r *http.Request, kind string) {
	req := requestFromContext(r.Context())
	admins, err := s.store.admins(kind, req.Attr["id"])
	if err != nil {
		s.storeError(w, err)
		return
	}

	doc := etree.NewDocument()
	root := doc.CreateElement("admins")
	for _, name := range admins {
		user := root.CreateElement("user")
		user.CreateAttr("user", name)
	}
	s.docResponse(w, doc)
}
