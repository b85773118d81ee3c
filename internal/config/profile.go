// Package config reads hopper's site profile: where the remote system is,
// which libraries jobs build into, and how the pipeline is tuned.
package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/voidshard/hopper/pkg/api"
	"github.com/voidshard/hopper/pkg/errors"
	"github.com/voidshard/hopper/pkg/gateway"
	"github.com/voidshard/hopper/pkg/jcl"
	"github.com/voidshard/hopper/pkg/structs"
)

// Profile is one site's settings. Everything is optional; command line
// flags and baked-in defaults cover whatever a profile leaves out.
type Profile struct {
	Gateway  GatewayProfile  `yaml:"gateway"`
	Datasets DatasetsProfile `yaml:"datasets"`
	Job      JobProfile      `yaml:"job"`
	Tuning   TuningProfile   `yaml:"tuning"`
}

// GatewayProfile says how to reach the remote system.
type GatewayProfile struct {
	Bin     string `yaml:"bin"`
	Profile string `yaml:"profile"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	User    string `yaml:"user"`

	// PasswordEnvVar names the env var holding the password; the password
	// itself never appears in a profile.
	PasswordEnvVar string `yaml:"password_env_var"`

	RejectUnauthorized bool `yaml:"reject_unauthorized"`
}

// DatasetsProfile names the libraries compile-and-run jobs use.
type DatasetsProfile struct {
	// Source is the partitioned dataset program text is uploaded into.
	Source string `yaml:"source"`

	// Load is the library linked programs are written to and run from.
	Load string `yaml:"load"`
}

// JobProfile holds values baked into rendered job documents.
type JobProfile struct {
	Account  string `yaml:"account"`
	Class    string `yaml:"class"`
	MsgClass string `yaml:"msg_class"`
	CondCode int64  `yaml:"cond_code"`

	// Template is a path to a job document template overriding the
	// built-in compile-and-run one.
	Template string `yaml:"template"`
}

// TuningProfile adjusts polling and classification.
// Durations are strings like "3s" or "20m".
type TuningProfile struct {
	PollInterval    string `yaml:"poll_interval"`
	MaxPollInterval string `yaml:"max_poll_interval"`
	MaxElapsed      string `yaml:"max_elapsed"`
	MaxQueryRetries int64  `yaml:"max_query_retries"`

	// SeverityThreshold is a pointer so a site can explicitly choose 0
	// (no warnings tolerated).
	SeverityThreshold *int64 `yaml:"severity_threshold"`

	// Selectors override which spool output is fetched per outcome,
	// keyed by outcome name.
	Selectors map[string]*structs.SegmentSelector `yaml:"selectors"`
}

// Load reads a profile from the given yaml file.
func Load(path string) (*Profile, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := &Profile{}
	err = yaml.Unmarshal(buf, p)
	if err != nil {
		return nil, fmt.Errorf("%w profile %s: %v", errors.ErrValidation, path, err)
	}
	return p, nil
}

// Default returns the profile used when no file is given.
func Default() *Profile {
	return &Profile{}
}

// GatewayOptions converts the profile's gateway section.
func (p *Profile) GatewayOptions() *gateway.Options {
	return &gateway.Options{
		Bin:                p.Gateway.Bin,
		Profile:            p.Gateway.Profile,
		Host:               p.Gateway.Host,
		Port:               p.Gateway.Port,
		User:               p.Gateway.User,
		PasswordEnvVar:     p.Gateway.PasswordEnvVar,
		RejectUnauthorized: p.Gateway.RejectUnauthorized,
	}
}

// JCLOptions converts the profile's job section, reading the template file
// if one is named.
func (p *Profile) JCLOptions() (*jcl.Options, error) {
	opts := &jcl.Options{
		Account:  p.Job.Account,
		Class:    p.Job.Class,
		MsgClass: p.Job.MsgClass,
		CondCode: p.Job.CondCode,
	}
	if p.Job.Template != "" {
		buf, err := os.ReadFile(p.Job.Template)
		if err != nil {
			return nil, err
		}
		opts.Template = string(buf)
	}
	return opts, nil
}

// Options converts the profile's tuning section, starting from the server
// defaults so sparse profiles stay sane.
func (p *Profile) Options() (*structs.Options, error) {
	opts := api.OptionsServerDefault()

	var err error
	opts.PollInterval, err = override(opts.PollInterval, p.Tuning.PollInterval)
	if err != nil {
		return nil, fmt.Errorf("%w bad poll_interval: %v", errors.ErrValidation, err)
	}
	opts.MaxPollInterval, err = override(opts.MaxPollInterval, p.Tuning.MaxPollInterval)
	if err != nil {
		return nil, fmt.Errorf("%w bad max_poll_interval: %v", errors.ErrValidation, err)
	}
	opts.MaxElapsed, err = override(opts.MaxElapsed, p.Tuning.MaxElapsed)
	if err != nil {
		return nil, fmt.Errorf("%w bad max_elapsed: %v", errors.ErrValidation, err)
	}

	if p.Tuning.MaxQueryRetries > 0 {
		opts.MaxQueryRetries = p.Tuning.MaxQueryRetries
	}
	if p.Tuning.SeverityThreshold != nil {
		opts.SeverityThreshold = *p.Tuning.SeverityThreshold
	}

	for name, sel := range p.Tuning.Selectors {
		oc := structs.ToOutcome(name)
		if oc == "" {
			return nil, fmt.Errorf("%w unknown outcome %q in selectors", errors.ErrValidation, name)
		}
		opts.Selectors[oc] = sel
	}

	return opts, nil
}

func override(def time.Duration, given string) (time.Duration, error) {
	if given == "" {
		return def, nil
	}
	return time.ParseDuration(given)
}
