package message

// Serializable is implemented by every request and response payload.
//
// AddCredentials is called by the connection exactly once per call, before
// ToXML. ParseXML populates a freshly constructed value from a response body.
type Serializable interface {
	AddCredentials(auth Auth)
	ToXML() ([]byte, error)
	ParseXML(data []byte) error
}

// Content is a payload describing a piece of web content (bot, forum, domain,
// avatar, ...). Type names the content kind used in templated endpoint paths
// such as get-{type}-admins or thumbs-up-{type}.
type Content interface {
	Serializable
	Type() string
}

// Auth is the authentication snapshot a connection attaches to an outgoing payload
type Auth struct {
	Application string
	User        string
	Token       string
	Domain      string
}

// Base carries the authentication attributes shared by all payloads.
// Embed it to get the default AddCredentials behavior.
type Base struct {
	Application string `xml:"application,attr,omitempty"`
	Domain      string `xml:"domain,attr,omitempty"`
	User        string `xml:"user,attr,omitempty"`
	Token       string `xml:"token,attr,omitempty"`
	Instance    string `xml:"instance,attr,omitempty"`
}

// AddCredentials copies the application id and, when a user or domain is
// connected, the user id, token and domain id.
func (b *Base) AddCredentials(auth Auth) {
	b.Application = auth.Application
	if auth.User != "" {
		b.User = auth.User
		b.Token = auth.Token
	}
	if auth.Domain != "" {
		b.Domain = auth.Domain
	}
}

// WebMedium holds the attributes common to all web content
type WebMedium struct {
	Base

	ID                string     `xml:"id,attr,omitempty"`
	Name              string     `xml:"name,attr,omitempty"`
	IsAdmin           bool       `xml:"isAdmin,attr,omitempty"`
	IsAdult           bool       `xml:"isAdult,attr,omitempty"`
	IsPrivate         bool       `xml:"isPrivate,attr,omitempty"`
	IsHidden          bool       `xml:"isHidden,attr,omitempty"`
	AccessMode        AccessMode `xml:"accessMode,attr,omitempty"`
	IsFlagged         bool       `xml:"isFlagged,attr,omitempty"`
	IsExternal        bool       `xml:"isExternal,attr,omitempty"`
	IsPaphus          bool       `xml:"isPaphus,attr,omitempty"`
	ShowAds           bool       `xml:"showAds,attr,omitempty"`
	ForkAccessMode    AccessMode `xml:"forkAccessMode,attr,omitempty"`
	ContentRating     string     `xml:"contentRating,attr,omitempty"`
	Creator           string     `xml:"creator,attr,omitempty"`
	CreationDate      string     `xml:"creationDate,attr,omitempty"`
	LastConnectedUser string     `xml:"lastConnectedUser,attr,omitempty"`
	Website           string     `xml:"website,attr,omitempty"`
	Subdomain         string     `xml:"subdomain,attr,omitempty"`
	Tags              string     `xml:"tags,attr,omitempty"`
	Categories        string     `xml:"categories,attr,omitempty"`
	License           string     `xml:"license,attr,omitempty"`
	Avatar            string     `xml:"avatar,attr,omitempty"`
	ThumbsUp          int        `xml:"thumbsUp,attr,omitempty"`
	ThumbsDown        int        `xml:"thumbsDown,attr,omitempty"`
	Stars             string     `xml:"stars,attr,omitempty"`
	Connects          string     `xml:"connects,attr,omitempty"`
	DailyConnects     string     `xml:"dailyConnects,attr,omitempty"`
	WeeklyConnects    string     `xml:"weeklyConnects,attr,omitempty"`
	MonthlyConnects   string     `xml:"monthlyConnects,attr,omitempty"`

	Description   string `xml:"description,omitempty"`
	Details       string `xml:"details,omitempty"`
	Disclaimer    string `xml:"disclaimer,omitempty"`
	FlaggedReason string `xml:"flaggedReason,omitempty"`
}

// Stats returns a one-line usage summary
func (w *WebMedium) Stats() string {
	return orZero(w.Connects) + " connects, " +
		orZero(w.DailyConnects) + " today, " +
		orZero(w.WeeklyConnects) + " week, " +
		orZero(w.MonthlyConnects) + " month"
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
