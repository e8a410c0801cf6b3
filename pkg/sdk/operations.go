package sdk

import (
	"context"
	"fmt"

	"github.com/beevik/etree"

	"github.com/andreabenini/BotLibre/pkg/message"
)

// Connect validates the user's credentials (password or token).
// The server returns the user with a session token and without the password;
// it becomes the current user and is used on subsequent calls.
// A failed connect clears the current user.
func (c *Connection) Connect(ctx context.Context, config *message.UserConfig) (*message.UserConfig, error) {
	return call[*message.UserConfig](ctx, c, OpConnect, config)
}

// Custom executes a custom API. The response is decoded into result, which
// is returned. A nil result discards the response body.
func (c *Connection) Custom(ctx context.Context, api string, config, result message.Serializable) (message.Serializable, error) {
	if result != nil && isNil(result) {
		return nil, fmt.Errorf("%w: %s: result is a nil pointer", ErrInvalidArgument, OpCustom)
	}
	out, err := c.invoke(ctx, OpCustom, config, api, result)
	if err != nil || out == nil {
		return nil, err
	}
	return out.(message.Serializable), nil
}

// Chat sends a message to a bot and returns its reply.
// Set config.Conversation to continue a conversation.
func (c *Connection) Chat(ctx context.Context, config *message.ChatConfig) (*message.ChatResponse, error) {
	return call[*message.ChatResponse](ctx, c, OpChat, config)
}

// AvatarMessage asks the server to render an avatar saying a message
func (c *Connection) AvatarMessage(ctx context.Context, config *message.AvatarMessage) (*message.ChatResponse, error) {
	return call[*message.ChatResponse](ctx, c, OpAvatarMessage, config)
}

// FetchUser returns the user's details
func (c *Connection) FetchUser(ctx context.Context, config *message.UserConfig) (*message.UserConfig, error) {
	return call[*message.UserConfig](ctx, c, OpFetchUser, config)
}

// FetchForumPost returns the forum post's details
func (c *Connection) FetchForumPost(ctx context.Context, config *message.ForumPostConfig) (*message.ForumPostConfig, error) {
	return call[*message.ForumPostConfig](ctx, c, OpFetchForumPost, config)
}

// CreateUser creates a new user. The user becomes the current user.
func (c *Connection) CreateUser(ctx context.Context, config *message.UserConfig) (*message.UserConfig, error) {
	return call[*message.UserConfig](ctx, c, OpCreateUser, config)
}

// CreateForumPost creates a post in config.Forum
func (c *Connection) CreateForumPost(ctx context.Context, config *message.ForumPostConfig) (*message.ForumPostConfig, error) {
	return call[*message.ForumPostConfig](ctx, c, OpCreateForumPost, config)
}

// CreateReply creates a reply to the post config.Parent
func (c *Connection) CreateReply(ctx context.Context, config *message.ForumPostConfig) (*message.ForumPostConfig, error) {
	return call[*message.ForumPostConfig](ctx, c, OpCreateReply, config)
}

// CreateUserMessage sends a direct message to a user
func (c *Connection) CreateUserMessage(ctx context.Context, config *message.UserMessageConfig) error {
	return c.void(ctx, OpCreateUserMessage, config)
}

// UpdateForumPost updates the forum post
func (c *Connection) UpdateForumPost(ctx context.Context, config *message.ForumPostConfig) (*message.ForumPostConfig, error) {
	return call[*message.ForumPostConfig](ctx, c, OpUpdateForumPost, config)
}

// SaveResponse creates or updates a question/response pair in the bot's training
func (c *Connection) SaveResponse(ctx context.Context, config *message.ResponseConfig) (*message.ResponseConfig, error) {
	return call[*message.ResponseConfig](ctx, c, OpSaveResponse, config)
}

// GetAdmins returns the administrators of a piece of content as a generic
// document; see message.ParseAdmins. A malformed body is always an error.
func (c *Connection) GetAdmins(ctx context.Context, config message.Content) (*etree.Document, error) {
	out, err := c.invoke(ctx, OpGetAdmins, config, "", nil)
	if err != nil || out == nil {
		return nil, err
	}
	return out.(*etree.Document), nil
}

// DeleteForumPost deletes the forum post
func (c *Connection) DeleteForumPost(ctx context.Context, config *message.ForumPostConfig) error {
	return c.void(ctx, OpDeleteForumPost, config)
}

// DeleteResponse deletes the question/response pair
func (c *Connection) DeleteResponse(ctx context.Context, config *message.ResponseConfig) error {
	return c.void(ctx, OpDeleteResponse, config)
}

// DeleteAvatarMedia deletes a media file of an avatar
func (c *Connection) DeleteAvatarMedia(ctx context.Context, config *message.AvatarMedia) error {
	return c.void(ctx, OpDeleteAvatarMedia, config)
}

// DeleteAvatarBackground removes the avatar's background image
func (c *Connection) DeleteAvatarBackground(ctx context.Context, config *message.AvatarConfig) error {
	return c.void(ctx, OpDeleteAvatarBackground, config)
}

// SaveAvatarMedia saves the tags of an avatar media file
func (c *Connection) SaveAvatarMedia(ctx context.Context, config *message.AvatarMedia) error {
	return c.void(ctx, OpSaveAvatarMedia, config)
}

// SubscribeForumPost subscribes the current user to replies of the post
func (c *Connection) SubscribeForumPost(ctx context.Context, config *message.ForumPostConfig) error {
	return c.void(ctx, OpSubscribeForumPost, config)
}

// SubscribeForum subscribes the current user to new posts of the forum
func (c *Connection) SubscribeForum(ctx context.Context, config *message.ForumConfig) error {
	return c.void(ctx, OpSubscribeForum, config)
}

// UnsubscribeForumPost cancels a post subscription
func (c *Connection) UnsubscribeForumPost(ctx context.Context, config *message.ForumPostConfig) error {
	return c.void(ctx, OpUnsubscribeForumPost, config)
}

// UnsubscribeForum cancels a forum subscription
func (c *Connection) UnsubscribeForum(ctx context.Context, config *message.ForumConfig) error {
	return c.void(ctx, OpUnsubscribeForum, config)
}

// ThumbsUp rates the content up
func (c *Connection) ThumbsUp(ctx context.Context, config message.Content) error {
	return c.void(ctx, OpThumbsUp, config)
}

// ThumbsDown rates the content down
func (c *Connection) ThumbsDown(ctx context.Context, config message.Content) error {
	return c.void(ctx, OpThumbsDown, config)
}

// Star rates the content with the star count set in config
func (c *Connection) Star(ctx context.Context, config message.Content) error {
	return c.void(ctx, OpStar, config)
}

// ThumbsUpPost rates the forum post up
func (c *Connection) ThumbsUpPost(ctx context.Context, config *message.ForumPostConfig) error {
	return c.void(ctx, OpThumbsUpPost, config)
}

// ThumbsDownPost rates the forum post down
func (c *Connection) ThumbsDownPost(ctx context.Context, config *message.ForumPostConfig) error {
	return c.void(ctx, OpThumbsDownPost, config)
}

// StarPost rates the forum post with config.Stars
func (c *Connection) StarPost(ctx context.Context, config *message.ForumPostConfig) error {
	return c.void(ctx, OpStarPost, config)
}

// FlagForumPost flags the post as offensive; set config.FlaggedReason
func (c *Connection) FlagForumPost(ctx context.Context, config *message.ForumPostConfig) error {
	return c.void(ctx, OpFlagForumPost, config)
}

// FlagUser flags the user as offensive; set config.FlaggedReason
func (c *Connection) FlagUser(ctx context.Context, config *message.UserConfig) error {
	return c.void(ctx, OpFlagUser, config)
}

// GetLearning returns the learning settings of the bot instance
func (c *Connection) GetLearning(ctx context.Context, config *message.InstanceConfig) (*message.LearningConfig, error) {
	return call[*message.LearningConfig](ctx, c, OpGetLearning, config)
}

// TTS generates speech for config.Text and returns the server's reference to
// the audio file. The body is returned as-is.
func (c *Connection) TTS(ctx context.Context, config *message.Speech) (string, error) {
	out, err := c.invoke(ctx, OpTTS, config, "", nil)
	if err != nil || out == nil {
		return "", err
	}
	return out.(string), nil
}
