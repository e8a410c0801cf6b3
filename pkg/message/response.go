package message

// ResponseConfig is a question/response pair in a bot's training.
// It is used to create, update, flag, validate or delete a response,
// greeting or default response.
type ResponseConfig struct {
	Base

	QuestionID   string `xml:"questionId,attr,omitempty"`
	ResponseID   string `xml:"responseId,attr,omitempty"`
	Type         string `xml:"type,attr,omitempty"`
	Label        string `xml:"label,attr,omitempty"`
	Topic        string `xml:"topic,attr,omitempty"`
	Keywords     string `xml:"keywords,attr,omitempty"`
	Required     string `xml:"required,attr,omitempty"`
	Emotions     string `xml:"emotions,attr,omitempty"`
	Actions      string `xml:"actions,attr,omitempty"`
	Poses        string `xml:"poses,attr,omitempty"`
	Correctness  string `xml:"correctness,attr,omitempty"`
	Flagged      bool   `xml:"flagged,attr,omitempty"`
	Sentiment    string `xml:"sentiment,attr,omitempty"`
	Display      string `xml:"display,attr,omitempty"`
	Exclusive    bool   `xml:"exclusiveTopic,attr,omitempty"`
	AutoReduce   bool   `xml:"autoReduce,attr,omitempty"`
	NoRepeat     bool   `xml:"noRepeat,attr,omitempty"`
	RequirePrev  bool   `xml:"requirePrevious,attr,omitempty"`
	RequireTopic bool   `xml:"requireTopic,attr,omitempty"`

	Question  string `xml:"question,omitempty"`
	Response  string `xml:"response,omitempty"`
	Previous  string `xml:"previous,omitempty"`
	OnRepeat  string `xml:"onRepeat,omitempty"`
	Condition string `xml:"condition,omitempty"`
	Think     string `xml:"think,omitempty"`
	Command   string `xml:"command,omitempty"`
}

// ToXML implements Serializable
func (c *ResponseConfig) ToXML() ([]byte, error) {
	return encode("response", c)
}

// ParseXML implements Serializable
func (c *ResponseConfig) ParseXML(data []byte) error {
	return decode(data, "response", c)
}
