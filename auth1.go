package auth

// MethodNameAuth1 identifies the second variant of the tuya plugin. It
// carries the same key pair as MethodNameTuya but additionally answers the
// client's command-channel capability probe.
const MethodNameAuth1 = "auth1"

// commandDataPlaceholder is what GetCommandData returns for every instance.
// It is NOT derived from the stored credentials; the credential hashing that
// was meant to fill it in was never implemented. Callers must not assume the
// payload reflects the actual key pair.
const commandDataPlaceholder = `{"username":"","password":""}`

// Auth1AuthData is the credential holder of the auth1 variant.
type Auth1AuthData struct {
	accessID     string
	accessSecret string
}

func NewAuth1AuthData(id string, key string) *Auth1AuthData {
	return &Auth1AuthData{
		accessID:     id,
		accessSecret: key,
	}
}

func (d *Auth1AuthData) HasDataForTuya() bool {
	return true
}

func (d *Auth1AuthData) GetAccessID() string {
	return d.accessID
}

func (d *Auth1AuthData) GetAccessSecret() string {
	return d.accessSecret
}

// This plugin never participates in HTTP-style auth.
func (d *Auth1AuthData) HasDataForHttp() bool {
	return false
}

func (d *Auth1AuthData) HasDataFromCommand() bool {
	return true
}

// GetCommandData returns the fixed placeholder payload regardless of the
// stored credentials. See commandDataPlaceholder.
func (d *Auth1AuthData) GetCommandData() []byte {
	return []byte(commandDataPlaceholder)
}

type auth1Provider struct {
	authData *Auth1AuthData
}

// NewAuth1 builds the plugin from a default-format auth-params string.
func NewAuth1(authParamsString string) (Authentication, error) {
	params, err := ParseDefaultFormatAuthParams(authParamsString)
	if err != nil {
		return nil, err
	}
	return NewAuth1WithParams(params), nil
}

// NewAuth1WithParams builds the plugin from a param map. Missing accessId or
// accessKey entries degrade to empty strings.
func NewAuth1WithParams(params ParamMap) Authentication {
	return NewAuth1WithKeyPair(
		params.GetOrDefault(paramAccessID, ""),
		params.GetOrDefault(paramAccessKey, ""),
	)
}

// NewAuth1WithKeyPair builds the plugin from an explicit id/key pair.
func NewAuth1WithKeyPair(id string, key string) Authentication {
	return &auth1Provider{
		authData: NewAuth1AuthData(id, key),
	}
}

func (a *auth1Provider) GetAuthMethodName() string {
	return MethodNameAuth1
}

func (a *auth1Provider) GetAuthData() (AuthenticationDataProvider, error) {
	return a.authData, nil
}

func init() {
	RegisterProvider(MethodNameAuth1, NewAuth1)
}
