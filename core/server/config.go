package server

import (
	"fmt"
	"strconv"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8000"`
	// Host is the interface to bind. Empty means all interfaces.
	Host string `mapstructure:"host" default:""`
	// Root overrides the serving root. Empty means the public/ directory
	// next to the executable.
	Root string `mapstructure:"root" default:""`
}

// Validate checks that the configured port is a usable TCP port.
// A non-numeric value is a configuration error, never a silent
// fallback to the default.
func (c Config) Validate() error {
	n, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", c.Port, err)
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port %d out of range", n)
	}
	return nil
}

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// URL returns the browsable URL for the bound server.
func (c Config) URL() string {
	host := c.Host
	if host == "" || host == "0.0.0.0" {
		host = "localhost"
	}
	return "http://" + host + ":" + c.Port
}
