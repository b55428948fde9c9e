package auth

import (
	"io/ioutil"
	"sync"

	"github.com/tidwall/gjson"
	"go.uber.org/atomic"

	"github.com/tuya/pulsar-auth-go/alog"
)

// ConfigFileCredentialsProvider reads the key pair from a JSON file of the
// form {"accessId":"...","accessKey":"..."}. The file is read once, on the
// first GetCredentials call; an unreadable or incomplete file makes the
// provider permanently yield nil credentials.
type ConfigFileCredentialsProvider struct {
	path string

	loadOnce     sync.Once
	valid        *atomic.Bool
	accessID     string
	accessSecret string
}

func NewConfigFileCredentialsProvider(path string) *ConfigFileCredentialsProvider {
	c := &ConfigFileCredentialsProvider{
		path:  path,
		valid: atomic.NewBool(false),
	}
	return c
}

func (c *ConfigFileCredentialsProvider) GetCredentials() *Credentials {
	if c == nil {
		return nil
	}
	c.loadOnce.Do(c.load)
	if !c.valid.Load() {
		return nil
	}
	return NewCredentials(c.accessID, c.accessSecret)
}

func (c *ConfigFileCredentialsProvider) load() {
	data, err := ioutil.ReadFile(c.path)
	if err != nil {
		alog.Warning("unable to read credentials file", map[string]interface{}{
			"path": c.path,
			"err":  err.Error(),
		})
		return
	}
	content := string(data)
	if !gjson.Valid(content) {
		alog.Warning("credentials file is not valid json", map[string]interface{}{
			"path": c.path,
		})
		return
	}
	accessID := gjson.Get(content, "accessId").String()
	accessKey := gjson.Get(content, "accessKey").String()
	if IsNullOrEmpty(accessID) || IsNullOrEmpty(accessKey) {
		alog.Warning("credentials file is missing accessId or accessKey", map[string]interface{}{
			"path": c.path,
		})
		return
	}
	c.accessID = accessID
	c.accessSecret = accessKey
	c.valid.Store(true)
}
