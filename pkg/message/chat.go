package message

import "github.com/andreabenini/BotLibre/pkg/emotion"

// ChatConfig is a chat message sent to a bot. Conversation must be set to
// continue an existing conversation; the server assigns one otherwise.
type ChatConfig struct {
	Base

	Conversation    string `xml:"conversation,attr,omitempty"`
	Correction      bool   `xml:"correction,attr,omitempty"`
	Offensive       bool   `xml:"offensive,attr,omitempty"`
	Disconnect      bool   `xml:"disconnect,attr,omitempty"`
	Emote           string `xml:"emote,attr,omitempty"`
	Action          string `xml:"action,attr,omitempty"`
	Speak           bool   `xml:"speak,attr,omitempty"`
	AvatarHD        bool   `xml:"avatarHD,attr,omitempty"`
	AvatarFormat    string `xml:"avatarFormat,attr,omitempty"`
	Avatar          string `xml:"avatar,attr,omitempty"`
	Language        string `xml:"language,attr,omitempty"`
	Voice           string `xml:"voice,attr,omitempty"`
	IncludeQuestion bool   `xml:"includeQuestion,attr,omitempty"`
	Secure          bool   `xml:"secure,attr,omitempty"`
	Plain           bool   `xml:"plain,attr,omitempty"`
	Info            string `xml:"info,attr,omitempty"`

	Message string `xml:"message,omitempty"`
}

// ToXML implements Serializable
func (c *ChatConfig) ToXML() ([]byte, error) {
	return encode("chat", c)
}

// ParseXML implements Serializable
func (c *ChatConfig) ParseXML(data []byte) error {
	return decode(data, "chat", c)
}

// ChatResponse is a bot's reply to a chat or avatar message
type ChatResponse struct {
	Base

	Conversation          string `xml:"conversation,attr,omitempty"`
	Emote                 string `xml:"emote,attr,omitempty"`
	Action                string `xml:"action,attr,omitempty"`
	Pose                  string `xml:"pose,attr,omitempty"`
	Avatar                string `xml:"avatar,attr,omitempty"`
	AvatarType            string `xml:"avatarType,attr,omitempty"`
	AvatarTalk            string `xml:"avatarTalk,attr,omitempty"`
	AvatarTalkType        string `xml:"avatarTalkType,attr,omitempty"`
	AvatarAction          string `xml:"avatarAction,attr,omitempty"`
	AvatarActionType      string `xml:"avatarActionType,attr,omitempty"`
	AvatarActionAudio     string `xml:"avatarActionAudio,attr,omitempty"`
	AvatarActionAudioType string `xml:"avatarActionAudioType,attr,omitempty"`
	AvatarAudio           string `xml:"avatarAudio,attr,omitempty"`
	AvatarBackground      string `xml:"avatarBackground,attr,omitempty"`
	Speech                string `xml:"speech,attr,omitempty"`
	IsVideo               bool   `xml:"isVideo,attr,omitempty"`

	Message  string `xml:"message,omitempty"`
	Question string `xml:"question,omitempty"`
	Command  string `xml:"command,omitempty"`
}

// ToXML implements Serializable
func (r *ChatResponse) ToXML() ([]byte, error) {
	return encode("response", r)
}

// ParseXML implements Serializable. Older servers send the reply text in a
// <text> element instead of <message>; both are accepted.
func (r *ChatResponse) ParseXML(data []byte) error {
	var wire struct {
		ChatResponse
		Text string `xml:"text"`
	}
	if err := decode(data, "response", &wire); err != nil {
		return err
	}
	*r = wire.ChatResponse
	if r.Message == "" {
		r.Message = wire.Text
	}
	return nil
}

// EmotionalState returns the parsed emote attribute.
// Unknown emotes are reported as emotion.None.
func (r *ChatResponse) EmotionalState() emotion.EmotionalState {
	state, err := emotion.ParseState(r.Emote)
	if err != nil {
		return emotion.None
	}
	return state
}
