package registry

import (
	"fmt"
	"time"
)

// ClientType selects the Client implementation
type ClientType string

const (
	ClientTypeHttp            ClientType = "http"
	ClientTypePackageRegistry ClientType = "packageregistry"
)

type ClientFactoryConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// ClientFactory creates registry clients from runtime configuration
type ClientFactory struct {
	config ClientFactoryConfig
}

func NewClientFactory(config ClientFactoryConfig) *ClientFactory {
	return &ClientFactory{config: config}
}

func (f *ClientFactory) CreateClient(clientType ClientType) (Client, error) {
	switch clientType {
	case ClientTypeHttp, "":
		return NewHttpRegistryClient(HttpRegistryClientConfig{
			BaseURL:   f.config.BaseURL,
			Timeout:   f.config.Timeout,
			UserAgent: f.config.UserAgent,
		}), nil
	case ClientTypePackageRegistry:
		client, err := NewPackageRegistryClient()
		if err != nil {
			return nil, err
		}

		return client, nil
	default:
		return nil, fmt.Errorf("unsupported registry client: %s", clientType)
	}
}
