package message

// ForumPostConfig is a forum post or a reply to one.
// Forum must be set to create a post, Parent to create a reply.
type ForumPostConfig struct {
	Base

	ID            string `xml:"id,attr,omitempty"`
	Parent        string `xml:"parent,attr,omitempty"`
	Forum         string `xml:"forum,attr,omitempty"`
	Tags          string `xml:"tags,attr,omitempty"`
	Creator       string `xml:"creator,attr,omitempty"`
	CreationDate  string `xml:"creationDate,attr,omitempty"`
	Views         string `xml:"views,attr,omitempty"`
	DailyViews    string `xml:"dailyViews,attr,omitempty"`
	WeeklyViews   string `xml:"weeklyViews,attr,omitempty"`
	MonthlyViews  string `xml:"monthlyViews,attr,omitempty"`
	ReplyCount    int    `xml:"replyCount,attr,omitempty"`
	IsAdmin       bool   `xml:"isAdmin,attr,omitempty"`
	IsFlagged     bool   `xml:"isFlagged,attr,omitempty"`
	IsFeatured    bool   `xml:"isFeatured,attr,omitempty"`
	ThumbsUp      int    `xml:"thumbsUp,attr,omitempty"`
	ThumbsDown    int    `xml:"thumbsDown,attr,omitempty"`
	Stars         string `xml:"stars,attr,omitempty"`
	Avatar        string `xml:"avatar,attr,omitempty"`
	Summary       string `xml:"summary,attr,omitempty"`
	FlaggedReason string `xml:"flaggedReason,attr,omitempty"`

	Topic       string            `xml:"topic,omitempty"`
	Details     string            `xml:"details,omitempty"`
	DetailsText string            `xml:"detailsText,omitempty"`
	Replies     []ForumPostConfig `xml:"replies>forum-post,omitempty"`
}

// ToXML implements Serializable
func (c *ForumPostConfig) ToXML() ([]byte, error) {
	return encode("forum-post", c)
}

// ParseXML implements Serializable
func (c *ForumPostConfig) ParseXML(data []byte) error {
	return decode(data, "forum-post", c)
}

// ForumConfig is a forum
type ForumConfig struct {
	WebMedium

	ReplyAccessMode AccessMode `xml:"replyAccessMode,attr,omitempty"`
	PostAccessMode  AccessMode `xml:"postAccessMode,attr,omitempty"`
	Posts           string     `xml:"posts,attr,omitempty"`
}

// Type implements Content
func (c *ForumConfig) Type() string { return "forum" }

// ToXML implements Serializable
func (c *ForumConfig) ToXML() ([]byte, error) {
	return encode("forum", c)
}

// ParseXML implements Serializable
func (c *ForumConfig) ParseXML(data []byte) error {
	return decode(data, "forum", c)
}
