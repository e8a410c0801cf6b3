package message

import "strconv"

// InstanceConfig is a bot instance
type InstanceConfig struct {
	WebMedium

	Size           string `xml:"size,attr,omitempty"`
	InstanceAvatar string `xml:"instanceAvatar,attr,omitempty"`
	AllowForking   bool   `xml:"allowForking,attr,omitempty"`
	HasAPI         bool   `xml:"hasAPI,attr,omitempty"`
	Rank           int    `xml:"rank,attr,omitempty"`
	Wins           int    `xml:"wins,attr,omitempty"`
	Losses         int    `xml:"losses,attr,omitempty"`

	Template string `xml:"template,omitempty"`
}

// Type implements Content
func (c *InstanceConfig) Type() string { return "instance" }

// ToXML implements Serializable
func (c *InstanceConfig) ToXML() ([]byte, error) {
	return encode("instance", c)
}

// ParseXML implements Serializable
func (c *InstanceConfig) ParseXML(data []byte) error {
	return decode(data, "instance", c)
}

// CredentialsOnly returns a copy that identifies the instance and nothing else
func (c *InstanceConfig) CredentialsOnly() *InstanceConfig {
	return &InstanceConfig{WebMedium: WebMedium{ID: c.ID}}
}

// Record returns the win/loss record, e.g. "3 wins, 1 losses, rank 12"
func (c *InstanceConfig) Record() string {
	return strconv.Itoa(c.Wins) + " wins, " + strconv.Itoa(c.Losses) + " losses, rank " + strconv.Itoa(c.Rank)
}

// DomainConfig is a domain: an isolated content space. Any browse or query
// request is specific to the connected domain's content.
type DomainConfig struct {
	WebMedium

	CreationMode AccessMode `xml:"creationMode,attr,omitempty"`
}

// Type implements Content
func (c *DomainConfig) Type() string { return "domain" }

// ToXML implements Serializable
func (c *DomainConfig) ToXML() ([]byte, error) {
	return encode("domain", c)
}

// ParseXML implements Serializable
func (c *DomainConfig) ParseXML(data []byte) error {
	return decode(data, "domain", c)
}

// ChannelConfig is a live chat channel
type ChannelConfig struct {
	WebMedium

	ChannelType     ChannelType     `xml:"type,attr,omitempty"`
	VideoAccessMode AccessMode      `xml:"videoAccessMode,attr,omitempty"`
	AudioAccessMode AccessMode      `xml:"audioAccessMode,attr,omitempty"`
	MediaAccessMode MediaAccessMode `xml:"mediaAccessMode,attr,omitempty"`
	Messages        string          `xml:"messages,attr,omitempty"`
	UsersOnline     string          `xml:"usersOnline,attr,omitempty"`
	AdminsOnline    string          `xml:"adminsOnline,attr,omitempty"`
}

// Type implements Content
func (c *ChannelConfig) Type() string { return "channel" }

// ToXML implements Serializable
func (c *ChannelConfig) ToXML() ([]byte, error) {
	return encode("channel", c)
}

// ParseXML implements Serializable
func (c *ChannelConfig) ParseXML(data []byte) error {
	return decode(data, "channel", c)
}
