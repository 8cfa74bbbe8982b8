package config

import "github.com/abdul-hamid-achik/h2curl/packages/http"

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		AuthType: string(http.AuthBasic),
	}
}
