package message

// LearningConfig is a bot's learning and comprehension settings
type LearningConfig struct {
	Base

	LearningMode              LearningMode   `xml:"learningMode,attr,omitempty"`
	CorrectionMode            CorrectionMode `xml:"correctionMode,attr,omitempty"`
	EnableComprehension       bool           `xml:"enableComprehension,attr,omitempty"`
	EnableEmoticons           bool           `xml:"enableEmoticons,attr,omitempty"`
	LearnGrammar              bool           `xml:"learnGrammar,attr,omitempty"`
	SplitParagraphs           bool           `xml:"splitParagraphs,attr,omitempty"`
	SynthesizeResponse        bool           `xml:"synthesizeResponse,attr,omitempty"`
	FixFormulaCase            bool           `xml:"fixFormulaCase,attr,omitempty"`
	CheckExactMatchFirst      bool           `xml:"checkExactMatchFirst,attr,omitempty"`
	LearningRate              int            `xml:"learningRate,attr,omitempty"`
	ScriptTimeout             int            `xml:"scriptTimeout,attr,omitempty"`
	ResponseMatchTimeout      int            `xml:"responseMatchTimeout,attr,omitempty"`
	ConversationMatchPercent  string         `xml:"conversationMatchPercentage,attr,omitempty"`
	DiscussionMatchPercent    string         `xml:"discussionMatchPercentage,attr,omitempty"`
	ResponseMatchRequired     bool           `xml:"responseMatchRequired,attr,omitempty"`
	DisableFlag               bool           `xml:"disableFlag,attr,omitempty"`
	ReduceQuestions           bool           `xml:"reduceQuestions,attr,omitempty"`
	TrackCase                 bool           `xml:"trackCase,attr,omitempty"`
	AllowJavaScript           bool           `xml:"allowJavaScript,attr,omitempty"`
	NLP                       int            `xml:"nlp,attr,omitempty"`
	Language                  string         `xml:"language,attr,omitempty"`
	DisableSpellingCorrection bool           `xml:"disableSpellingCorrection,attr,omitempty"`
}

// ToXML implements Serializable
func (c *LearningConfig) ToXML() ([]byte, error) {
	return encode("learning", c)
}

// ParseXML implements Serializable
func (c *LearningConfig) ParseXML(data []byte) error {
	return decode(data, "learning", c)
}

// Speech is a text-to-speech request.
// The server answers with the path of the generated audio file.
type Speech struct {
	Base

	Voice       string `xml:"voice,attr,omitempty"`
	Mod         string `xml:"mod,attr,omitempty"`
	Provider    string `xml:"provider,attr,omitempty"`
	APIKey      string `xml:"apiKey,attr,omitempty"`
	AppID       string `xml:"appId,attr,omitempty"`
	APIEndpoint string `xml:"apiEndpoint,attr,omitempty"`

	Text string `xml:"text,omitempty"`
}

// ToXML implements Serializable
func (c *Speech) ToXML() ([]byte, error) {
	return encode("speech", c)
}

// ParseXML implements Serializable
func (c *Speech) ParseXML(data []byte) error {
	return decode(data, "speech", c)
}
