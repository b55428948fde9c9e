package auth

// Credentials is the access-id/access-key pair a provider resolves for the
// tuya plugin.
type Credentials struct {
	accessID     string
	accessSecret string
}

// CredentialsProvider resolves the key pair the plugin should package.
// Implementations may return nil when no credentials are available.
type CredentialsProvider interface {
	GetCredentials() *Credentials
}

func NewCredentials(accessID string, accessSecret string) *Credentials {
	c := &Credentials{
		accessID:     accessID,
		accessSecret: accessSecret,
	}
	return c
}

func (c *Credentials) AccessID() string {
	return c.accessID
}

func (c *Credentials) AccessSecret() string {
	return c.accessSecret
}

func (c *Credentials) Empty() bool {
	return IsNullOrEmpty(c.accessID) || IsNullOrEmpty(c.accessSecret)
}
