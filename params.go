package auth

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/tuya/pulsar-auth-go/alog"
)

// ParamMap holds the key-value auth parameters a provider factory is
// configured with.
type ParamMap map[string]string

var ErrMalformedAuthParams = errors.New("malformed auth params")

// ParseDefaultFormatAuthParams parses the client's default auth-params string.
// An empty string yields an empty map. A string starting with '{' is decoded
// as a JSON object of strings; anything else is read as comma separated
// "key:value" pairs.
func ParseDefaultFormatAuthParams(authParamsString string) (ParamMap, error) {
	params := make(ParamMap)
	s := strings.TrimSpace(authParamsString)
	if s == "" {
		return params, nil
	}

	if strings.HasPrefix(s, "{") {
		if err := jsoniter.UnmarshalFromString(s, &params); err != nil {
			return nil, errors.Wrap(ErrMalformedAuthParams, err.Error())
		}
		return params, nil
	}

	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) != 2 {
			return nil, errors.Wrapf(ErrMalformedAuthParams, "expected key:value, got %q", pair)
		}
		params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	return params, nil
}

// GetOrDefault returns the value for key, or def when the key is absent.
// A missing key is not an error here: credential factories fall back to empty
// strings so a misconfigured client fails at the broker, not at construction.
// The lookup logs the miss so the degradation is visible.
func (p ParamMap) GetOrDefault(key string, def string) string {
	v, ok := p[key]
	if !ok {
		alog.Warning("auth param not set, using default", map[string]interface{}{
			"key": key,
		})
		return def
	}
	return v
}
