package message

// UserConfig describes a user. It is used to connect (user + password or
// token), to create or view a user, and to flag a user.
type UserConfig struct {
	Base

	Password    string `xml:"password,attr,omitempty"`
	NewPassword string `xml:"newPassword,attr,omitempty"`
	Hint        string `xml:"hint,attr,omitempty"`
	Name        string `xml:"name,attr,omitempty"`
	ShowName    bool   `xml:"showName,attr,omitempty"`
	Email       string `xml:"email,attr,omitempty"`
	Website     string `xml:"website,attr,omitempty"`
	Over18      bool   `xml:"over18,attr,omitempty"`
	Avatar      string `xml:"avatar,attr,omitempty"`
	Type        string `xml:"type,attr,omitempty"`
	IsFlagged   bool   `xml:"isFlagged,attr,omitempty"`
	Connects    string `xml:"connects,attr,omitempty"`
	Bots        string `xml:"bots,attr,omitempty"`
	Posts       string `xml:"posts,attr,omitempty"`
	Messages    string `xml:"messages,attr,omitempty"`
	Forums      string `xml:"forums,attr,omitempty"`
	Channels    string `xml:"channels,attr,omitempty"`
	Avatars     string `xml:"avatars,attr,omitempty"`
	Scripts     string `xml:"scripts,attr,omitempty"`
	Graphics    string `xml:"graphics,attr,omitempty"`
	Domains     string `xml:"domains,attr,omitempty"`
	Joined      string `xml:"joined,attr,omitempty"`
	LastConnect string `xml:"lastConnect,attr,omitempty"`

	Bio           string `xml:"bio,omitempty"`
	FlaggedReason string `xml:"flaggedReason,omitempty"`
}

// AddCredentials sets the application and domain only: the user id and
// token of a UserConfig identify the user being operated on, not the caller.
func (c *UserConfig) AddCredentials(auth Auth) {
	c.Application = auth.Application
	if auth.Domain != "" {
		c.Domain = auth.Domain
	}
}

// ToXML implements Serializable
func (c *UserConfig) ToXML() ([]byte, error) {
	return encode("user", c)
}

// ParseXML implements Serializable
func (c *UserConfig) ParseXML(data []byte) error {
	return decode(data, "user", c)
}

// StripSecrets clears the password fields. The session token is kept.
func (c *UserConfig) StripSecrets() {
	c.Password = ""
	c.NewPassword = ""
}

// DisplayName returns the name if the user chose to show it, otherwise the user id
func (c *UserConfig) DisplayName() string {
	if c.ShowName && c.Name != "" {
		return c.Name
	}
	return c.User
}

// UserMessageConfig is a direct message sent to a user
type UserMessageConfig struct {
	Base

	ID           string `xml:"id,attr,omitempty"`
	CreationDate string `xml:"creationDate,attr,omitempty"`
	Owner        string `xml:"owner,attr,omitempty"`
	Creator      string `xml:"creator,attr,omitempty"`
	Target       string `xml:"target,attr,omitempty"`
	Parent       string `xml:"parent,attr,omitempty"`

	Subject string `xml:"subject,omitempty"`
	Message string `xml:"message,omitempty"`
}

// ToXML implements Serializable
func (c *UserMessageConfig) ToXML() ([]byte, error) {
	return encode("user-message", c)
}

// ParseXML implements Serializable
func (c *UserMessageConfig) ParseXML(data []byte) error {
	return decode(data, "user-message", c)
}
