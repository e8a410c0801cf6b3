package fakeserver

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/andreabenini/BotLibre/pkg/message"
)

var (
	errNotFound     = errors.New("does not exist")
	errExists       = errors.New("already exists")
	errUnauthorized = errors.New("invalid user or token")
	errForbidden    = errors.New("access denied")
)

// account is a registered user
type account struct {
	config   message.UserConfig
	password string
	token    string
}

// Bot is a bot instance seeded into the server
type Bot struct {
	ID        string
	Name      string
	Admins    []string
	Responses map[string]string
	Learning  *message.LearningConfig
}

// Forum is a forum seeded into the server
type Forum struct {
	ID     string
	Name   string
	Admins []string
}

type rating struct {
	up, down int
	stars    []int
}

func (r *rating) average() string {
	if len(r.stars) == 0 {
		return ""
	}
	total := 0
	for _, s := range r.stars {
		total += s
	}
	return strconv.FormatFloat(float64(total)/float64(len(r.stars)), 'f', 1, 64)
}

// store is the in-memory server state
type store struct {
	mu sync.Mutex

	users         map[string]*account
	bots          map[string]*Bot
	forums        map[string]*Forum
	posts         map[string]*message.ForumPostConfig
	ratings       map[string]*rating
	subscriptions map[string]map[string]bool
	messages      []message.UserMessageConfig
	flaggedUsers  map[string]string
	nextID        int
}

func newStore() *store {
	return &store{
		users:         make(map[string]*account),
		bots:          make(map[string]*Bot),
		forums:        make(map[string]*Forum),
		posts:         make(map[string]*message.ForumPostConfig),
		ratings:       make(map[string]*rating),
		subscriptions: make(map[string]map[string]bool),
		flaggedUsers:  make(map[string]string),
		nextID:        1000,
	}
}

func (s *store) newID() string {
	s.nextID++
	return strconv.Itoa(s.nextID)
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Seeding

// AddUser registers a user with a password
func (s *Server) AddUser(user, password, name string) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.users[user] = &account{
		config: message.UserConfig{
			Base:   message.Base{User: user},
			Name:   name,
			Joined: now(),
		},
		password: password,
		token:    uuid.NewString(),
	}
}

// AddBot registers a bot instance
func (s *Server) AddBot(bot Bot) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if bot.Responses == nil {
		bot.Responses = make(map[string]string)
	}
	normalized := make(map[string]string, len(bot.Responses))
	for q, r := range bot.Responses {
		normalized[normalize(q)] = r
	}
	bot.Responses = normalized
	if bot.Learning == nil {
		bot.Learning = &message.LearningConfig{
			LearningMode:   message.LearningAdministrators,
			CorrectionMode: message.CorrectionAdministrators,
		}
	}
	s.store.bots[bot.ID] = &bot
}

// AddForum registers a forum
func (s *Server) AddForum(forum Forum) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.forums[forum.ID] = &forum
}

// Messages returns the user messages sent so far
func (s *Server) Messages() []message.UserMessageConfig {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	out := make([]message.UserMessageConfig, len(s.store.messages))
	copy(out, s.store.messages)
	return out
}

// Subscribers returns the users subscribed to a post or forum
func (s *Server) Subscribers(kind, id string) []string {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	var users []string
	for user := range s.store.subscriptions[kind+"/"+id] {
		users = append(users, user)
	}
	sort.Strings(users)
	return users
}

// Post returns a copy of a forum post, or nil
func (s *Server) Post(id string) *message.ForumPostConfig {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	post, ok := s.store.posts[id]
	if !ok {
		return nil
	}
	cp := *post
	return &cp
}

// Rating returns the thumbs up and down counts of a piece of content
func (s *Server) Rating(kind, id string) (up, down int) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if r, ok := s.store.ratings[kind+"/"+id]; ok {
		return r.up, r.down
	}
	return 0, 0
}

// Response returns the trained response of a bot to a question
func (s *Server) Response(bot, question string) (string, bool) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	b, ok := s.store.bots[bot]
	if !ok {
		return "", false
	}
	r, ok := b.Responses[normalize(question)]
	return r, ok
}

// Users

func (s *store) authenticate(user, token string) (*account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.users[user]
	if !ok || token == "" || acct.token != token {
		return nil, errUnauthorized
	}
	return acct, nil
}

func (s *store) login(user, password, token string) (message.UserConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.users[user]
	if !ok {
		return message.UserConfig{}, fmt.Errorf("user %w", errNotFound)
	}
	switch {
	case password != "" && password == acct.password:
	case password == "" && token != "" && token == acct.token:
	default:
		return message.UserConfig{}, errors.New("invalid password")
	}
	out := acct.config
	out.Token = acct.token
	out.LastConnect = now()
	acct.config.LastConnect = out.LastConnect
	return out, nil
}

func (s *store) createUser(cfg message.UserConfig) (message.UserConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg.User == "" || cfg.Password == "" {
		return message.UserConfig{}, errors.New("user and password are required")
	}
	if _, ok := s.users[cfg.User]; ok {
		return message.UserConfig{}, fmt.Errorf("user %w", errExists)
	}

	acct := &account{
		config: message.UserConfig{
			Base:     message.Base{User: cfg.User},
			Name:     cfg.Name,
			ShowName: cfg.ShowName,
			Email:    cfg.Email,
			Website:  cfg.Website,
			Over18:   cfg.Over18,
			Bio:      cfg.Bio,
			Type:     "Basic",
			Joined:   now(),
		},
		password: cfg.Password,
		token:    uuid.NewString(),
	}
	s.users[cfg.User] = acct

	out := acct.config
	out.Token = acct.token
	return out, nil
}

func (s *store) viewUser(user string) (message.UserConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.users[user]
	if !ok {
		return message.UserConfig{}, fmt.Errorf("user %w", errNotFound)
	}
	out := acct.config
	if reason, ok := s.flaggedUsers[user]; ok {
		out.IsFlagged = true
		out.FlaggedReason = reason
	}
	return out, nil
}

func (s *store) flagUser(user, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user]; !ok {
		return fmt.Errorf("user %w", errNotFound)
	}
	s.flaggedUsers[user] = reason
	return nil
}

func (s *store) addMessage(from string, msg message.UserMessageConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[msg.Target]; !ok {
		return fmt.Errorf("target user %w", errNotFound)
	}
	msg.Base = message.Base{}
	msg.ID = s.newID()
	msg.Creator = from
	msg.Owner = msg.Target
	msg.CreationDate = now()
	s.messages = append(s.messages, msg)
	return nil
}

// Bots

func normalize(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

func (s *store) bot(id string) (*Bot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bots[id]
	if !ok {
		return nil, fmt.Errorf("bot %w", errNotFound)
	}
	return b, nil
}

func (s *store) reply(id, text string) (string, error) {
	b, err := s.bot(id)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := b.Responses[normalize(text)]; ok {
		return r, nil
	}
	return "I do not understand.", nil
}

func (s *store) learning(id string) (message.LearningConfig, error) {
	b, err := s.bot(id)
	if err != nil {
		return message.LearningConfig{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return *b.Learning, nil
}

func (s *store) isBotAdmin(b *Bot, user string) bool {
	for _, a := range b.Admins {
		if a == user {
			return true
		}
	}
	return false
}

func (s *store) saveResponse(user string, cfg message.ResponseConfig) (message.ResponseConfig, error) {
	b, err := s.bot(cfg.Instance)
	if err != nil {
		return message.ResponseConfig{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isBotAdmin(b, user) {
		return message.ResponseConfig{}, errForbidden
	}
	if strings.TrimSpace(cfg.Question) == "" || strings.TrimSpace(cfg.Response) == "" {
		return message.ResponseConfig{}, errors.New("question and response are required")
	}
	b.Responses[normalize(cfg.Question)] = cfg.Response

	out := cfg
	out.Base = message.Base{Instance: cfg.Instance}
	if out.QuestionID == "" {
		out.QuestionID = s.newID()
	}
	if out.ResponseID == "" {
		out.ResponseID = s.newID()
	}
	if out.Type == "" {
		out.Type = "response"
	}
	return out, nil
}

func (s *store) deleteResponse(user string, cfg message.ResponseConfig) error {
	b, err := s.bot(cfg.Instance)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isBotAdmin(b, user) {
		return errForbidden
	}
	key := normalize(cfg.Question)
	if _, ok := b.Responses[key]; !ok {
		return fmt.Errorf("response %w", errNotFound)
	}
	delete(b.Responses, key)
	return nil
}

// admins returns the administrators of a piece of content
func (s *store) admins(kind, id string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch kind {
	case "instance":
		if b, ok := s.bots[id]; ok {
			return b.Admins, nil
		}
	case "forum":
		if f, ok := s.forums[id]; ok {
			return f.Admins, nil
		}
	}
	return nil, fmt.Errorf("%s %w", kind, errNotFound)
}

// Forums

func (s *store) createPost(user string, cfg message.ForumPostConfig) (message.ForumPostConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cfg.Parent != "" {
		parent, ok := s.posts[cfg.Parent]
		if !ok {
			return message.ForumPostConfig{}, fmt.Errorf("parent post %w", errNotFound)
		}
		cfg.Forum = parent.Forum
		if cfg.Topic == "" {
			cfg.Topic = parent.Topic
		}
	} else {
		if _, ok := s.forums[cfg.Forum]; !ok {
			return message.ForumPostConfig{}, fmt.Errorf("forum %w", errNotFound)
		}
		if strings.TrimSpace(cfg.Topic) == "" {
			return message.ForumPostConfig{}, errors.New("topic is required")
		}
	}

	post := message.ForumPostConfig{
		ID:           s.newID(),
		Parent:       cfg.Parent,
		Forum:        cfg.Forum,
		Tags:         cfg.Tags,
		Creator:      user,
		CreationDate: now(),
		IsFeatured:   cfg.IsFeatured,
		Topic:        cfg.Topic,
		Details:      cfg.Details,
	}
	s.posts[post.ID] = &post

	if cfg.Parent != "" {
		s.posts[cfg.Parent].ReplyCount++
	}
	return post, nil
}

func (s *store) post(id string) (message.ForumPostConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return message.ForumPostConfig{}, fmt.Errorf("post %w", errNotFound)
	}
	out := *p
	out.Replies = nil
	var ids []string
	for rid, r := range s.posts {
		if r.Parent == id {
			ids = append(ids, rid)
		}
	}
	sort.Strings(ids)
	for _, rid := range ids {
		out.Replies = append(out.Replies, *s.posts[rid])
	}
	if r, ok := s.ratings["post/"+id]; ok {
		out.ThumbsUp, out.ThumbsDown, out.Stars = r.up, r.down, r.average()
	}
	return out, nil
}

func (s *store) updatePost(user string, cfg message.ForumPostConfig) (message.ForumPostConfig, error) {
	s.mu.Lock()
	p, ok := s.posts[cfg.ID]
	if !ok {
		s.mu.Unlock()
		return message.ForumPostConfig{}, fmt.Errorf("post %w", errNotFound)
	}
	if p.Creator != user {
		s.mu.Unlock()
		return message.ForumPostConfig{}, errForbidden
	}
	if cfg.Topic != "" {
		p.Topic = cfg.Topic
	}
	if cfg.Details != "" {
		p.Details = cfg.Details
	}
	if cfg.Tags != "" {
		p.Tags = cfg.Tags
	}
	p.IsFeatured = cfg.IsFeatured
	s.mu.Unlock()
	return s.post(cfg.ID)
}

func (s *store) deletePost(user, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return fmt.Errorf("post %w", errNotFound)
	}
	if p.Creator != user {
		return errForbidden
	}
	for rid, r := range s.posts {
		if r.Parent == id {
			delete(s.posts, rid)
		}
	}
	delete(s.posts, id)
	if parent, ok := s.posts[p.Parent]; ok && parent.ReplyCount > 0 {
		parent.ReplyCount--
	}
	return nil
}

func (s *store) flagPost(id, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return fmt.Errorf("post %w", errNotFound)
	}
	p.IsFlagged = true
	p.FlaggedReason = reason
	return nil
}

// exists reports whether content of the given kind exists.
// Callers must hold s.mu.
func (s *store) exists(kind, id string) bool {
	switch kind {
	case "post":
		_, ok := s.posts[id]
		return ok
	case "forum":
		_, ok := s.forums[id]
		return ok
	case "instance":
		_, ok := s.bots[id]
		return ok
	}
	return false
}

func (s *store) subscribe(kind, id, user string, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.exists(kind, id) {
		return fmt.Errorf("%s %w", kind, errNotFound)
	}
	key := kind + "/" + id
	if on {
		if s.subscriptions[key] == nil {
			s.subscriptions[key] = make(map[string]bool)
		}
		s.subscriptions[key][user] = true
	} else {
		delete(s.subscriptions[key], user)
	}
	return nil
}

func (s *store) rate(kind, id string, up, down, stars int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.exists(kind, id) {
		return fmt.Errorf("%s %w", kind, errNotFound)
	}
	if stars < 0 || stars > 5 {
		return errors.New("stars must be between 1 and 5")
	}
	key := kind + "/" + id
	r, ok := s.ratings[key]
	if !ok {
		r = &rating{}
		s.ratings[key] = r
	}
	r.up += up
	r.down += down
	if stars > 0 {
		r.stars = append(r.stars, stars)
	}
	return nil
}
