package sdk

import (
	"fmt"
	"strings"

	"github.com/andreabenini/BotLibre/pkg/message"
)

// Operation names a remote operation of the endpoint table
type Operation string

const (
	OpConnect                Operation = "connect"
	OpCustom                 Operation = "custom"
	OpChat                   Operation = "chat"
	OpAvatarMessage          Operation = "avatarMessage"
	OpFetchUser              Operation = "fetchUser"
	OpFetchForumPost         Operation = "fetchForumPost"
	OpCreateUser             Operation = "createUser"
	OpCreateForumPost        Operation = "createForumPost"
	OpCreateReply            Operation = "createReply"
	OpCreateUserMessage      Operation = "createUserMessage"
	OpUpdateForumPost        Operation = "updateForumPost"
	OpSaveResponse           Operation = "saveResponse"
	OpGetAdmins              Operation = "getAdmins"
	OpDeleteForumPost        Operation = "deleteForumPost"
	OpDeleteResponse         Operation = "deleteResponse"
	OpDeleteAvatarMedia      Operation = "deleteAvatarMedia"
	OpDeleteAvatarBackground Operation = "deleteAvatarBackground"
	OpSaveAvatarMedia        Operation = "saveAvatarMedia"
	OpSubscribeForumPost     Operation = "subscribeForumPost"
	OpSubscribeForum         Operation = "subscribeForum"
	OpUnsubscribeForumPost   Operation = "unsubscribeForumPost"
	OpUnsubscribeForum       Operation = "unsubscribeForum"
	OpThumbsUp               Operation = "thumbsUp"
	OpThumbsDown             Operation = "thumbsDown"
	OpStar                   Operation = "star"
	OpThumbsUpPost           Operation = "thumbsUpPost"
	OpThumbsDownPost         Operation = "thumbsDownPost"
	OpStarPost               Operation = "starPost"
	OpFlagForumPost          Operation = "flagForumPost"
	OpFlagUser               Operation = "flagUser"
	OpGetLearning            Operation = "getLearning"
	OpTTS                    Operation = "tts"
)

// resultKind says what an operation does with the response body
type resultKind int

const (
	// resultTyped decodes the body into a fresh result config
	resultTyped resultKind = iota
	// resultVoid discards the body
	resultVoid
	// resultRaw returns the body untouched
	resultRaw
	// resultDocument parses the body into a generic XML document
	resultDocument
)

// sessionEffect is the change an operation makes to the connection's session
type sessionEffect int

const (
	noEffect sessionEffect = iota
	// connectUser stores the result as current user and clears the current
	// user on any failure
	connectUser
	// createUser stores the result as current user on success only
	createUser
)

// endpoint is one row of the endpoint table.
// Path templates may contain {type} (the Content type of the request)
// and {api} (the caller-supplied custom API name).
type endpoint struct {
	path   string
	kind   resultKind
	result func() message.Serializable
	effect sessionEffect
}

func newUser() message.Serializable { return &message.UserConfig{} }
func newChatResponse() message.Serializable { return &message.ChatResponse{} }
func newForumPost() message.Serializable { return &message.ForumPostConfig{} }
func newResponse() message.Serializable { return &message.ResponseConfig{} }
func newLearning() message.Serializable { return &message.LearningConfig{} }

var endpoints = map[Operation]endpoint{
	OpConnect:                {path: "check-user", result: newUser, effect: connectUser},
	OpCustom:                 {path: "{api}"},
	OpChat:                   {path: "post-chat", result: newChatResponse},
	OpAvatarMessage:          {path: "avatar-message", result: newChatResponse},
	OpFetchUser:              {path: "view-user", result: newUser},
	OpFetchForumPost:         {path: "check-forum-post", result: newForumPost},
	OpCreateUser:             {path: "create-user", result: newUser, effect: createUser},
	OpCreateForumPost:        {path: "create-forum-post", result: newForumPost},
	OpCreateReply:            {path: "create-reply", result: newForumPost},
	OpCreateUserMessage:      {path: "create-user-message", kind: resultVoid},
	OpUpdateForumPost:        {path: "update-forum-post", result: newForumPost},
	OpSaveResponse:           {path: "save-response", result: newResponse},
	OpGetAdmins:              {path: "get-{type}-admins", kind: resultDocument},
	OpDeleteForumPost:        {path: "delete-forum-post", kind: resultVoid},
	OpDeleteResponse:         {path: "delete-response", kind: resultVoid},
	OpDeleteAvatarMedia:      {path: "delete-avatar-media", kind: resultVoid},
	OpDeleteAvatarBackground: {path: "delete-avatar-background", kind: resultVoid},
	OpSaveAvatarMedia:        {path: "save-avatar-media", kind: resultVoid},
	OpSubscribeForumPost:     {path: "subscribe-post", kind: resultVoid},
	OpSubscribeForum:         {path: "subscribe-forum", kind: resultVoid},
	OpUnsubscribeForumPost:   {path: "unsubscribe-post", kind: resultVoid},
	OpUnsubscribeForum:       {path: "unsubscribe-forum", kind: resultVoid},
	OpThumbsUp:               {path: "thumbs-up-{type}", kind: resultVoid},
	OpThumbsDown:             {path: "thumbs-down-{type}", kind: resultVoid},
	OpStar:                   {path: "star-{type}", kind: resultVoid},
	OpThumbsUpPost:           {path: "thumbs-up-post", kind: resultVoid},
	OpThumbsDownPost:         {path: "thumbs-down-post", kind: resultVoid},
	OpStarPost:               {path: "star-post", kind: resultVoid},
	OpFlagForumPost:          {path: "flag-forum-post", kind: resultVoid},
	OpFlagUser:               {path: "flag-user", kind: resultVoid},
	OpGetLearning:            {path: "get-learning", result: newLearning},
	OpTTS:                    {path: "speak", kind: resultRaw},
}

// Operations returns the operations of the endpoint table
func Operations() []Operation {
	ops := make([]Operation, 0, len(endpoints))
	for op := range endpoints {
		ops = append(ops, op)
	}
	return ops
}

// Path returns the path template of op, e.g. "post-chat" or "get-{type}-admins"
func Path(op Operation) (string, bool) {
	ep, ok := endpoints[op]
	return ep.path, ok
}

// resolve expands the path template of ep for cfg
func (ep endpoint) resolve(cfg message.Serializable, api string) (string, error) {
	path := ep.path
	if strings.Contains(path, "{type}") {
		content, ok := cfg.(message.Content)
		if !ok {
			return "", fmt.Errorf("%w: %T has no content type", ErrInvalidArgument, cfg)
		}
		if content.Type() == "" {
			return "", fmt.Errorf("%w: empty content type", ErrInvalidArgument)
		}
		path = strings.ReplaceAll(path, "{type}", content.Type())
	}
	if strings.Contains(path, "{api}") {
		api = strings.Trim(api, "/")
		if api == "" {
			return "", fmt.Errorf("%w: api is required", ErrInvalidArgument)
		}
		path = strings.ReplaceAll(path, "{api}", api)
	}
	return path, nil
}
