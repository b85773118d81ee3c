package main

import (
	"github.com/voidshard/hopper/internal/utils"
	"github.com/voidshard/hopper/pkg/api"
	"github.com/voidshard/hopper/pkg/api/http/server"
	"github.com/voidshard/hopper/pkg/cache"
	"github.com/voidshard/hopper/pkg/database"
)

const docApi = `Run the dashboard API server`

type optsAPI struct {
	optsGeneral
	optsGateway

	Addr    string `long:"addr" env:"ADDR" description:"Address to bind to" default:"localhost:8100"`
	TLSCert string `long:"cert" env:"CERT" description:"Path to TLS certificate"`
	TLSKey  string `long:"key" env:"KEY" description:"Path to TLS key"`

	StaticDir string `long:"static-dir" env:"STATIC_DIR" default:"" description:"Serve static files (the dashboard UI) from this directory"`

	DatabaseURL string `long:"database-url" env:"DATABASE_URL" description:"Job history database connection string; empty disables history"`
	Migrate     bool   `long:"migrate" env:"MIGRATE" description:"Run database schema migrations on connect"`

	CacheURL     string `long:"cache-url" env:"CACHE_URL" description:"Redis connection string for listing caching; empty disables caching"`
	CacheTLSCa   string `long:"cache-tls-cacert" env:"CACHE_TLS_CACERT" description:"Path to cache CA certificate"`
	CacheTLSCert string `long:"cache-tls-cert" env:"CACHE_TLS_CERT" description:"Path to cache TLS certificate"`
	CacheTLSKey  string `long:"cache-tls-key" env:"CACHE_TLS_KEY" description:"Path to cache TLS key"`
}

func (c *optsAPI) Execute(args []string) error {
	// This serves hopper's API (and optionally the dashboard UI) over HTTP.
	// Submitted jobs can be followed server side (POST /jobs?track=true) with
	// their progress written to history, or advanced by the caller's own
	// timer via the poll endpoint.
	prof, err := c.profile()
	if err != nil {
		return err
	}

	opts, err := tuning(prof, 0)
	if err != nil {
		return err
	}
	jclOpts, err := prof.JCLOptions()
	if err != nil {
		return err
	}

	var dbOpts *database.Options
	if c.DatabaseURL != "" {
		dbOpts = &database.Options{URL: c.DatabaseURL, Migrate: c.Migrate}
	}

	var caOpts *cache.Options
	if c.CacheURL != "" {
		tlsCfg, err := utils.TLSConfig(c.CacheTLSCa, c.CacheTLSCert, c.CacheTLSKey)
		if err != nil {
			return err
		}
		caOpts = &cache.Options{URL: c.CacheURL, TLSConfig: tlsCfg}
	}

	svc, err := api.New(c.optsGateway.options(prof), dbOpts, caOpts, jclOpts, opts)
	if err != nil {
		return err
	}

	s := server.NewServer(c.Addr, c.StaticDir, c.TLSCert, c.TLSKey, c.Debug)
	return s.ServeForever(svc)
}
