package auth

import "os"

const EnvironmentAccessID = "TUYA_ACCESS_ID"
const EnvironmentAccessKey = "TUYA_ACCESS_KEY"

type EnvironmentVariablesCredentialsProvider struct {
	accessID     string
	accessSecret string
}

func NewEnvironmentVariablesCredentialsProvider() *EnvironmentVariablesCredentialsProvider {
	c := &EnvironmentVariablesCredentialsProvider{
		accessID:     os.Getenv(EnvironmentAccessID),
		accessSecret: os.Getenv(EnvironmentAccessKey),
	}
	return c
}

func (c *EnvironmentVariablesCredentialsProvider) GetCredentials() *Credentials {
	if c == nil {
		return nil
	}
	return NewCredentials(c.accessID, c.accessSecret)
}
