package config

import (
	"net"
	"os"
)

// ServerConfig holds the HTTP listener configuration
type ServerConfig struct {
	Variant Variant
	Host    string
	Port    string
	LogHTTP bool
}

// GetServerConfig returns server configuration from environment variables
func GetServerConfig() (*ServerConfig, error) {
	variant, err := GetVariant()
	if err != nil {
		return nil, err
	}

	profile := variant.Profile()
	return &ServerConfig{
		Variant: variant,
		Host:    GetEnv("HTTP_HOST", profile.Host),
		Port:    GetEnv("HTTP_PORT", profile.Port),
		LogHTTP: os.Getenv("LOG_HTTP") == "true",
	}, nil
}

// Addr returns the host:port pair to listen on
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}
