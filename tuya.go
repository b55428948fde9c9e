package auth

// MethodNameTuya is the method name the client registry routes to this plugin.
const MethodNameTuya = "tuya"

const (
	paramAccessID  = "accessId"
	paramAccessKey = "accessKey"
)

// TuyaAuthData holds a static access-id/access-key pair. Both fields are set
// together at construction and never change afterwards. Accessors return the
// stored values verbatim; nothing is validated, transformed or hashed.
type TuyaAuthData struct {
	accessID     string
	accessSecret string
}

func NewTuyaAuthData(id string, key string) *TuyaAuthData {
	return &TuyaAuthData{
		accessID:     id,
		accessSecret: key,
	}
}

// HasDataForTuya reports whether this holder carries tuya credentials.
// It always does.
func (d *TuyaAuthData) HasDataForTuya() bool {
	return true
}

func (d *TuyaAuthData) GetAccessID() string {
	return d.accessID
}

func (d *TuyaAuthData) GetAccessSecret() string {
	return d.accessSecret
}

// Tuya credentials ride on the client's native handshake, not on HTTP or the
// command channel.
func (d *TuyaAuthData) HasDataForHttp() bool {
	return false
}

func (d *TuyaAuthData) HasDataFromCommand() bool {
	return false
}

func (d *TuyaAuthData) GetCommandData() []byte {
	return nil
}

type tuyaProvider struct {
	authData *TuyaAuthData
}

// NewTuya builds the plugin from a default-format auth-params string. It
// fails only when the string cannot be parsed; parse errors are surfaced
// unmodified.
func NewTuya(authParamsString string) (Authentication, error) {
	params, err := ParseDefaultFormatAuthParams(authParamsString)
	if err != nil {
		return nil, err
	}
	return NewTuyaWithParams(params), nil
}

// NewTuyaWithParams builds the plugin from a param map. Missing accessId or
// accessKey entries degrade to empty strings, see ParamMap.GetOrDefault.
func NewTuyaWithParams(params ParamMap) Authentication {
	return NewTuyaWithKeyPair(
		params.GetOrDefault(paramAccessID, ""),
		params.GetOrDefault(paramAccessKey, ""),
	)
}

// NewTuyaWithKeyPair builds the plugin from an explicit id/key pair.
func NewTuyaWithKeyPair(id string, key string) Authentication {
	return &tuyaProvider{
		authData: NewTuyaAuthData(id, key),
	}
}

// NewTuyaFromProvider pulls the key pair from a credentials provider chain.
// A nil provider or empty credentials degrade to an empty key pair, same as
// the missing-map-key path.
func NewTuyaFromProvider(provider CredentialsProvider) Authentication {
	if provider == nil {
		return NewTuyaWithKeyPair("", "")
	}
	credentials := provider.GetCredentials()
	if credentials == nil {
		return NewTuyaWithKeyPair("", "")
	}
	return NewTuyaWithKeyPair(credentials.AccessID(), credentials.AccessSecret())
}

func (t *tuyaProvider) GetAuthMethodName() string {
	return MethodNameTuya
}

func (t *tuyaProvider) GetAuthData() (AuthenticationDataProvider, error) {
	return t.authData, nil
}

func init() {
	RegisterProvider(MethodNameTuya, NewTuya)
}
