package message

import "strings"

// AvatarConfig is an avatar: a set of images, videos and audio mapped to
// emotions, actions and poses.
type AvatarConfig struct {
	WebMedium

	Background string `xml:"background,attr,omitempty"`
}

// Type implements Content
func (c *AvatarConfig) Type() string { return "avatar" }

// ToXML implements Serializable
func (c *AvatarConfig) ToXML() ([]byte, error) {
	return encode("avatar", c)
}

// ParseXML implements Serializable
func (c *AvatarConfig) ParseXML(data []byte) error {
	return decode(data, "avatar", c)
}

// AvatarMedia is one media file of an avatar and its tags
type AvatarMedia struct {
	Base

	MediaID   string `xml:"mediaId,attr,omitempty"`
	Name      string `xml:"name,attr,omitempty"`
	MediaType string `xml:"type,attr,omitempty"`
	Media     string `xml:"media,attr,omitempty"`
	Avatar    string `xml:"avatar,attr,omitempty"`
	Emotions  string `xml:"emotions,attr,omitempty"`
	Actions   string `xml:"actions,attr,omitempty"`
	Poses     string `xml:"poses,attr,omitempty"`
	HD        bool   `xml:"hd,attr,omitempty"`
	Talking   bool   `xml:"talking,attr,omitempty"`
}

// ToXML implements Serializable
func (c *AvatarMedia) ToXML() ([]byte, error) {
	return encode("avatar-media", c)
}

// ParseXML implements Serializable
func (c *AvatarMedia) ParseXML(data []byte) error {
	return decode(data, "avatar-media", c)
}

// IsVideo reports whether the media is a video
func (c *AvatarMedia) IsVideo() bool {
	return strings.HasPrefix(c.MediaType, "video")
}

// IsAudio reports whether the media is an audio clip
func (c *AvatarMedia) IsAudio() bool {
	return strings.HasPrefix(c.MediaType, "audio")
}

// AvatarMessage asks the server to render an avatar saying a message.
// This allows the speech and video animation for an avatar to be generated.
type AvatarMessage struct {
	Base

	Avatar string `xml:"avatar,attr,omitempty"`
	Speak  bool   `xml:"speak,attr,omitempty"`
	Voice  string `xml:"voice,attr,omitempty"`
	Format string `xml:"format,attr,omitempty"`
	Emote  string `xml:"emote,attr,omitempty"`
	Action string `xml:"action,attr,omitempty"`
	Pose   string `xml:"pose,attr,omitempty"`
	HD     bool   `xml:"hd,attr,omitempty"`

	Message string `xml:"message,omitempty"`
}

// ToXML implements Serializable
func (c *AvatarMessage) ToXML() ([]byte, error) {
	return encode("avatar-message", c)
}

// ParseXML implements Serializable
func (c *AvatarMessage) ParseXML(data []byte) error {
	return decode(data, "avatar-message", c)
}
