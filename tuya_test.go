package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTuyaKeyPairRoundTrip(t *testing.T) {
	a := NewTuyaWithKeyPair("abc", "xyz")
	assert.Equal(t, MethodNameTuya, a.GetAuthMethodName())

	data, err := a.GetAuthData()
	assert.Nil(t, err)

	tuyaData, ok := data.(*TuyaAuthData)
	assert.True(t, ok)
	assert.Equal(t, "abc", tuyaData.GetAccessID())
	assert.Equal(t, "xyz", tuyaData.GetAccessSecret())
}

func TestTuyaCapabilityFlags(t *testing.T) {
	data := NewTuyaAuthData("abc", "xyz")
	assert.True(t, data.HasDataForTuya())
	assert.False(t, data.HasDataForHttp())
	assert.False(t, data.HasDataFromCommand())
	assert.Nil(t, data.GetCommandData())
}

func TestTuyaMethodNameStable(t *testing.T) {
	a := NewTuyaWithKeyPair("abc", "xyz")
	b := NewTuyaWithKeyPair("other", "pair")
	assert.NotEmpty(t, a.GetAuthMethodName())
	assert.Equal(t, a.GetAuthMethodName(), a.GetAuthMethodName())
	assert.Equal(t, a.GetAuthMethodName(), b.GetAuthMethodName())
}

func TestTuyaGetAuthDataReturnsSameHolder(t *testing.T) {
	a := NewTuyaWithKeyPair("abc", "xyz")
	first, err := a.GetAuthData()
	assert.Nil(t, err)
	second, err := a.GetAuthData()
	assert.Nil(t, err)
	assert.Same(t, first, second)
}

func TestTuyaFromParams(t *testing.T) {
	a := NewTuyaWithParams(ParamMap{"accessId": "abc", "accessKey": "xyz"})
	data, err := a.GetAuthData()
	assert.Nil(t, err)
	tuyaData := data.(*TuyaAuthData)
	assert.Equal(t, "abc", tuyaData.GetAccessID())
	assert.Equal(t, "xyz", tuyaData.GetAccessSecret())
}

func TestTuyaFromParamsMissingKeys(t *testing.T) {
	a := NewTuyaWithParams(ParamMap{})
	data, err := a.GetAuthData()
	assert.Nil(t, err)
	tuyaData := data.(*TuyaAuthData)
	assert.Equal(t, "", tuyaData.GetAccessID())
	assert.Equal(t, "", tuyaData.GetAccessSecret())
	assert.True(t, tuyaData.HasDataForTuya())
}

func TestTuyaFromParamsString(t *testing.T) {
	a, err := NewTuya("accessId:abc,accessKey:xyz")
	assert.Nil(t, err)
	data, err := a.GetAuthData()
	assert.Nil(t, err)
	tuyaData := data.(*TuyaAuthData)
	assert.Equal(t, "abc", tuyaData.GetAccessID())
	assert.Equal(t, "xyz", tuyaData.GetAccessSecret())
}

func TestTuyaFromEmptyParamsString(t *testing.T) {
	a, err := NewTuya("")
	assert.Nil(t, err)
	data, err := a.GetAuthData()
	assert.Nil(t, err)
	tuyaData := data.(*TuyaAuthData)
	assert.Equal(t, "", tuyaData.GetAccessID())
	assert.Equal(t, "", tuyaData.GetAccessSecret())
}

func TestTuyaFromMalformedParamsString(t *testing.T) {
	a, err := NewTuya("accessId")
	assert.NotNil(t, err)
	assert.Nil(t, a)
}

func TestTuyaFromCredentialsProvider(t *testing.T) {
	a := NewTuyaFromProvider(NewStaticCredentialsProvider("abc", "xyz"))
	data, err := a.GetAuthData()
	assert.Nil(t, err)
	tuyaData := data.(*TuyaAuthData)
	assert.Equal(t, "abc", tuyaData.GetAccessID())
	assert.Equal(t, "xyz", tuyaData.GetAccessSecret())
}

type nilCredentialsProvider struct{}

func (p *nilCredentialsProvider) GetCredentials() *Credentials {
	return nil
}

func TestTuyaFromEmptyCredentialsProvider(t *testing.T) {
	a := NewTuyaFromProvider(&nilCredentialsProvider{})
	data, err := a.GetAuthData()
	assert.Nil(t, err)
	tuyaData := data.(*TuyaAuthData)
	assert.Equal(t, "", tuyaData.GetAccessID())
	assert.Equal(t, "", tuyaData.GetAccessSecret())

	a = NewTuyaFromProvider(nil)
	data, err = a.GetAuthData()
	assert.Nil(t, err)
	assert.Equal(t, "", data.(*TuyaAuthData).GetAccessID())
}
