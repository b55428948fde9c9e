package auth

type StaticCredentialsProvider struct {
	accessID     string
	accessSecret string
}

func NewStaticCredentialsProvider(accessID string, accessSecret string) *StaticCredentialsProvider {
	c := &StaticCredentialsProvider{
		accessID:     accessID,
		accessSecret: accessSecret,
	}
	return c
}

func (c *StaticCredentialsProvider) GetCredentials() *Credentials {
	if c == nil {
		return nil
	}
	return NewCredentials(c.accessID, c.accessSecret)
}
