package message

import "fmt"

// ContentType is a kind of content browsable on the server
type ContentType string

const (
	ContentBots         ContentType = "Bots"
	ContentForums       ContentType = "Forums"
	ContentGraphics     ContentType = "Graphics"
	ContentLiveChat     ContentType = "Live Chat"
	ContentDomains      ContentType = "Domains"
	ContentScripts      ContentType = "Scripts"
	ContentIssueTracker ContentType = "IssueTracker"
)

// ChannelType is the kind of live chat channel
type ChannelType string

const (
	ChannelChatRoom ChannelType = "ChatRoom"
	ChannelOneOnOne ChannelType = "OneOnOne"
)

// AccessMode controls who may access a piece of content
type AccessMode string

const (
	AccessEveryone       AccessMode = "Everyone"
	AccessUsers          AccessMode = "Users"
	AccessMembers        AccessMode = "Members"
	AccessAdministrators AccessMode = "Administrators"
)

// MediaAccessMode controls who may send media in a channel
type MediaAccessMode string

const (
	MediaAccessEveryone       MediaAccessMode = "Everyone"
	MediaAccessUsers          MediaAccessMode = "Users"
	MediaAccessMembers        MediaAccessMode = "Members"
	MediaAccessAdministrators MediaAccessMode = "Administrators"
	MediaAccessDisabled       MediaAccessMode = "Disabled"
)

// LearningMode controls who the bot learns from
type LearningMode string

const (
	LearningDisabled       LearningMode = "Disabled"
	LearningAdministrators LearningMode = "Administrators"
	LearningUsers          LearningMode = "Users"
	LearningEveryone       LearningMode = "Everyone"
)

// CorrectionMode controls who may correct the bot
type CorrectionMode string

const (
	CorrectionDisabled       CorrectionMode = "Disabled"
	CorrectionAdministrators CorrectionMode = "Administrators"
	CorrectionUsers          CorrectionMode = "Users"
	CorrectionEveryone       CorrectionMode = "Everyone"
)

// BotMode controls how a bot takes part in a live chat channel
type BotMode string

const (
	BotListenOnly      BotMode = "ListenOnly"
	BotAnswerOnly      BotMode = "AnswerOnly"
	BotAnswerAndListen BotMode = "AnswerAndListen"
)

var (
	contentTypes     = []ContentType{ContentBots, ContentForums, ContentGraphics, ContentLiveChat, ContentDomains, ContentScripts, ContentIssueTracker}
	channelTypes     = []ChannelType{ChannelChatRoom, ChannelOneOnOne}
	accessModes      = []AccessMode{AccessEveryone, AccessUsers, AccessMembers, AccessAdministrators}
	mediaAccessModes = []MediaAccessMode{MediaAccessEveryone, MediaAccessUsers, MediaAccessMembers, MediaAccessAdministrators, MediaAccessDisabled}
	learningModes    = []LearningMode{LearningDisabled, LearningAdministrators, LearningUsers, LearningEveryone}
	correctionModes  = []CorrectionMode{CorrectionDisabled, CorrectionAdministrators, CorrectionUsers, CorrectionEveryone}
	botModes         = []BotMode{BotListenOnly, BotAnswerOnly, BotAnswerAndListen}
)

// ContentTypes returns the content types in display order
func ContentTypes() []ContentType { return clone(contentTypes) }

// ChannelTypes returns the channel types
func ChannelTypes() []ChannelType { return clone(channelTypes) }

// AccessModes returns the access modes
func AccessModes() []AccessMode { return clone(accessModes) }

// MediaAccessModes returns the media access modes
func MediaAccessModes() []MediaAccessMode { return clone(mediaAccessModes) }

// LearningModes returns the learning modes
func LearningModes() []LearningMode { return clone(learningModes) }

// CorrectionModes returns the correction modes
func CorrectionModes() []CorrectionMode { return clone(correctionModes) }

// BotModes returns the bot modes
func BotModes() []BotMode { return clone(botModes) }

func (m ContentType) Valid() bool     { return contains(contentTypes, m) }
func (m ChannelType) Valid() bool     { return contains(channelTypes, m) }
func (m AccessMode) Valid() bool      { return contains(accessModes, m) }
func (m MediaAccessMode) Valid() bool { return contains(mediaAccessModes, m) }
func (m LearningMode) Valid() bool    { return contains(learningModes, m) }
func (m CorrectionMode) Valid() bool  { return contains(correctionModes, m) }
func (m BotMode) Valid() bool         { return contains(botModes, m) }

// ParseContentType parses a content type name
func ParseContentType(s string) (ContentType, error) { return parse(contentTypes, s, "content type") }

// ParseChannelType parses a channel type name
func ParseChannelType(s string) (ChannelType, error) { return parse(channelTypes, s, "channel type") }

// ParseAccessMode parses an access mode name
func ParseAccessMode(s string) (AccessMode, error) { return parse(accessModes, s, "access mode") }

// ParseMediaAccessMode parses a media access mode name
func ParseMediaAccessMode(s string) (MediaAccessMode, error) {
	return parse(mediaAccessModes, s, "media access mode")
}

// ParseLearningMode parses a learning mode name
func ParseLearningMode(s string) (LearningMode, error) { return parse(learningModes, s, "learning mode") }

// ParseCorrectionMode parses a correction mode name
func ParseCorrectionMode(s string) (CorrectionMode, error) {
	return parse(correctionModes, s, "correction mode")
}

// ParseBotMode parses a bot mode name
func ParseBotMode(s string) (BotMode, error) { return parse(botModes, s, "bot mode") }

func clone[T ~string](values []T) []T {
	out := make([]T, len(values))
	copy(out, values)
	return out
}

func contains[T ~string](values []T, v T) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func parse[T ~string](values []T, s, kind string) (T, error) {
	v := T(s)
	if !contains(values, v) {
		var zero T
		return zero, fmt.Errorf("unknown %s %q", kind, s)
	}
	return v, nil
}
