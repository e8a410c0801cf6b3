package message

import (
	"fmt"
	"strings"

	"github.com/andreabenini/BotLibre/pkg/emotion"
)

// ChatBuilder helps construct chat messages
type ChatBuilder struct {
	chat   *ChatConfig
	errors []error
}

// ChatOption represents a functional option for ChatBuilder
type ChatOption func(*ChatBuilder)

// NewChat creates a new chat message to the bot instance with the given options
func NewChat(instance, text string, opts ...ChatOption) *ChatBuilder {
	builder := &ChatBuilder{
		chat: &ChatConfig{
			Base:    Base{Instance: instance},
			Message: text,
		},
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder
}

// WithConversation continues an existing conversation
func WithConversation(conversation string) ChatOption {
	return func(b *ChatBuilder) {
		b.chat.Conversation = conversation
	}
}

// WithEmote attaches an emotional state to the message
func WithEmote(emote string) ChatOption {
	return func(b *ChatBuilder) {
		state, err := emotion.ParseState(emote)
		if err != nil {
			b.errors = append(b.errors, err)
			return
		}
		b.chat.Emote = string(state)
	}
}

// WithAction attaches an action, e.g. "smile"
func WithAction(action string) ChatOption {
	return func(b *ChatBuilder) {
		b.chat.Action = action
	}
}

// WithSpeech asks the server to generate speech with the given voice.
// An empty voice uses the bot's voice.
func WithSpeech(voice string) ChatOption {
	return func(b *ChatBuilder) {
		b.chat.Speak = true
		b.chat.Voice = voice
	}
}

// WithAvatar selects the avatar and its media format, e.g. "webm"
func WithAvatar(avatar, format string, hd bool) ChatOption {
	return func(b *ChatBuilder) {
		b.chat.Avatar = avatar
		b.chat.AvatarFormat = format
		b.chat.AvatarHD = hd
	}
}

// WithCorrection marks the message as a correction of the bot's last reply
func WithCorrection() ChatOption {
	return func(b *ChatBuilder) {
		b.chat.Correction = true
	}
}

// WithOffensive flags the bot's last reply as offensive
func WithOffensive() ChatOption {
	return func(b *ChatBuilder) {
		b.chat.Offensive = true
	}
}

// WithDisconnect ends the conversation
func WithDisconnect() ChatOption {
	return func(b *ChatBuilder) {
		b.chat.Disconnect = true
	}
}

// WithLanguage sets the language of the message
func WithLanguage(language string) ChatOption {
	return func(b *ChatBuilder) {
		b.chat.Language = language
	}
}

// WithPlain asks for a reply without HTML
func WithPlain() ChatOption {
	return func(b *ChatBuilder) {
		b.chat.Plain = true
	}
}

// Build returns the constructed ChatConfig
func (b *ChatBuilder) Build() (*ChatConfig, error) {
	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}

	if b.chat.Instance == "" {
		return nil, fmt.Errorf("instance is required")
	}
	if strings.TrimSpace(b.chat.Message) == "" && !b.chat.Disconnect {
		return nil, fmt.Errorf("message is required")
	}

	return b.chat, nil
}

// ForumPostBuilder helps construct forum posts and replies
type ForumPostBuilder struct {
	post   *ForumPostConfig
	errors []error
}

// PostOption represents a functional option for ForumPostBuilder
type PostOption func(*ForumPostBuilder)

// NewForumPost creates a new post in forum
func NewForumPost(forum, topic, details string, opts ...PostOption) *ForumPostBuilder {
	builder := &ForumPostBuilder{
		post: &ForumPostConfig{
			Forum:   forum,
			Topic:   topic,
			Details: details,
		},
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder
}

// NewReply creates a new reply to the post parent
func NewReply(parent, details string, opts ...PostOption) *ForumPostBuilder {
	builder := &ForumPostBuilder{
		post: &ForumPostConfig{
			Parent:  parent,
			Details: details,
		},
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder
}

// WithTags sets the comma separated tags
func WithTags(tags ...string) PostOption {
	return func(b *ForumPostBuilder) {
		for _, tag := range tags {
			if strings.ContainsRune(tag, ',') {
				b.errors = append(b.errors, fmt.Errorf("tag %q contains a comma", tag))
				return
			}
		}
		b.post.Tags = strings.Join(tags, ",")
	}
}

// WithFeatured marks the post as featured (admins only)
func WithFeatured() PostOption {
	return func(b *ForumPostBuilder) {
		b.post.IsFeatured = true
	}
}

// Build returns the constructed ForumPostConfig
func (b *ForumPostBuilder) Build() (*ForumPostConfig, error) {
	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}

	if b.post.Forum == "" && b.post.Parent == "" {
		return nil, fmt.Errorf("forum or parent is required")
	}
	if b.post.Parent == "" && strings.TrimSpace(b.post.Topic) == "" {
		return nil, fmt.Errorf("topic is required")
	}
	if strings.TrimSpace(b.post.Details) == "" {
		return nil, fmt.Errorf("details are required")
	}

	return b.post, nil
}
