package gateway

import (
	"time"
)

const (
	defaultBin            = "zowe"
	defaultCommandTimeout = 60 * time.Second
	defaultPasswordEnvVar = "GATEWAY_PASSWORD"
)

// Options configure how we reach the remote system.
type Options struct {
	// Bin is the client binary we shell out to. Defaults to "zowe".
	Bin string

	// Profile names a client-side connection profile. When set we defer
	// connection details to it and Host/Port/User are ignored.
	Profile string

	// Host, Port and User identify the remote system when no Profile is set.
	Host string
	Port int
	User string

	// PasswordEnvVar is the environment variable holding the password,
	// read at call time. Defaults to "GATEWAY_PASSWORD".
	// The value is handed to the client, never logged.
	PasswordEnvVar string

	// RejectUnauthorized controls verification of the remote TLS cert.
	// Test systems routinely run self signed certs, so this is opt-in.
	RejectUnauthorized bool

	// CommandTimeout bounds any single client invocation.
	CommandTimeout time.Duration
}

func (o *Options) SetDefaults() {
	if o.Bin == "" {
		o.Bin = defaultBin
	}
	if o.PasswordEnvVar == "" {
		o.PasswordEnvVar = defaultPasswordEnvVar
	}
	if o.CommandTimeout <= 0 {
		o.CommandTimeout = defaultCommandTimeout
	}
}
