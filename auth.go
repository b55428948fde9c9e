// Package auth implements the pluggable authentication layer used by the
// messaging client to attach Tuya access-id/access-key credentials to
// outbound connection requests.
package auth

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/tuya/pulsar-auth-go/alog"
)

// Authentication is the capability the client's connection handshake consumes.
// The client resolves an instance through the method-name registry and reads
// its data provider when opening a connection.
type Authentication interface {
	GetAuthMethodName() string
	GetAuthData() (AuthenticationDataProvider, error)
}

// AuthenticationDataProvider carries the concrete credential material. The
// capability flags tell the client which transport the data applies to;
// credential-specific accessors live on the concrete holder types.
type AuthenticationDataProvider interface {
	HasDataForHttp() bool
	HasDataFromCommand() bool
	GetCommandData() []byte
}

// ProviderFactory builds an Authentication from a raw auth-params string.
type ProviderFactory func(authParamsString string) (Authentication, error)

var ErrUnknownAuthMethod = errors.New("unknown auth method")

var (
	providersMu sync.RWMutex
	providers   = make(map[string]ProviderFactory)
)

// RegisterProvider makes a factory resolvable through NewAuthentication under
// the given method name. Built-in providers register themselves at init;
// re-registering a name replaces the previous factory.
func RegisterProvider(methodName string, factory ProviderFactory) {
	providersMu.Lock()
	defer providersMu.Unlock()
	if _, ok := providers[methodName]; ok {
		alog.Warning("auth provider replaced", map[string]interface{}{
			"methodName": methodName,
		})
	}
	providers[methodName] = factory
}

// NewAuthentication resolves a registered provider by method name and builds
// it from the given params string.
func NewAuthentication(methodName string, authParamsString string) (Authentication, error) {
	providersMu.RLock()
	factory, ok := providers[methodName]
	providersMu.RUnlock()
	if !ok {
		return nil, errors.Wrap(ErrUnknownAuthMethod, methodName)
	}
	return factory(authParamsString)
}
