package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/voidshard/hopper/internal/config"
	"github.com/voidshard/hopper/pkg/gateway"
	"github.com/voidshard/hopper/pkg/structs"
)

const docHopper = `Hopper submits COBOL compile-and-run jobs to a remote system and follows them to a final state.`

type optsGeneral struct {
	Config string `long:"config" env:"HOPPER_CONFIG" description:"Path to a yaml site profile"`
	Debug  bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

type optsGateway struct {
	GatewayBin     string `long:"gateway-bin" env:"GATEWAY_BIN" description:"Remote client binary to shell out to"`
	GatewayProfile string `long:"gateway-profile" env:"GATEWAY_PROFILE" description:"Client side connection profile; overrides host/port/user"`
	Host           string `long:"host" env:"GATEWAY_HOST" description:"Remote system host"`
	Port           int    `long:"port" env:"GATEWAY_PORT" description:"Remote system port"`
	User           string `long:"user" env:"GATEWAY_USER" description:"Remote system user"`
	PasswordEnvVar string `long:"password-env-var" env:"GATEWAY_PASSWORD_ENV_VAR" description:"Env var holding the remote password"`
	RejectUnauth   bool   `long:"reject-unauthorized" env:"GATEWAY_REJECT_UNAUTHORIZED" description:"Verify the remote TLS certificate"`
}

// profile loads the site profile named on the command line, or the built-in
// defaults when there isn't one.
func (c *optsGeneral) profile() (*config.Profile, error) {
	if c.Config == "" {
		return config.Default(), nil
	}
	return config.Load(c.Config)
}

// options merges command line gateway flags over the profile's gateway
// section; flags win.
func (c *optsGateway) options(p *config.Profile) *gateway.Options {
	opts := p.GatewayOptions()
	if c.GatewayBin != "" {
		opts.Bin = c.GatewayBin
	}
	if c.GatewayProfile != "" {
		opts.Profile = c.GatewayProfile
	}
	if c.Host != "" {
		opts.Host = c.Host
	}
	if c.Port != 0 {
		opts.Port = c.Port
	}
	if c.User != "" {
		opts.User = c.User
	}
	if c.PasswordEnvVar != "" {
		opts.PasswordEnvVar = c.PasswordEnvVar
	}
	if c.RejectUnauth {
		opts.RejectUnauthorized = true
	}
	return opts
}

// tuning applies command line overrides to the profile's pipeline options.
func tuning(p *config.Profile, maxElapsed time.Duration) (*structs.Options, error) {
	opts, err := p.Options()
	if err != nil {
		return nil, err
	}
	if maxElapsed > 0 {
		opts.MaxElapsed = maxElapsed
	}
	return opts, nil
}

func main() {
	parser := flags.NewParser(nil, flags.Default)
	parser.LongDescription = docHopper

	parser.AddCommand("api", docApi, docApi, &optsAPI{})
	parser.AddCommand("submit", docSubmit, docSubmit, &optsSubmit{})
	parser.AddCommand("jobs", docJobs, docJobs, &optsJobs{})
	parser.AddCommand("datasets", docDatasets, docDatasets, &optsDatasets{})
	parser.AddCommand("status", docStatus, docStatus, &optsStatus{})

	if _, err := parser.Parse(); err != nil {
		switch flagsErr := err.(type) {
		case flags.ErrorType:
			if flagsErr == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1)
		default:
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
