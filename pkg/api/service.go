package api

import (
	"github.com/voidshard/hopper/internal/core"
	"github.com/voidshard/hopper/pkg/cache"
	"github.com/voidshard/hopper/pkg/database"
	"github.com/voidshard/hopper/pkg/gateway"
	"github.com/voidshard/hopper/pkg/jcl"
	"github.com/voidshard/hopper/pkg/structs"
)

// New builds the whole pipeline from options: remote gateway, optional
// history database, optional listing cache and the document renderer.
// Nil database / cache options disable those features.
func New(gwOpts *gateway.Options, dbOpts *database.Options, caOpts *cache.Options, jclOpts *jcl.Options, opts *structs.Options) (API, error) {
	gw, err := gateway.New(gwOpts)
	if err != nil {
		return nil, err
	}

	var db database.Database
	if dbOpts != nil && dbOpts.URL != "" {
		db, err = database.NewPostgres(dbOpts)
		if err != nil {
			gw.Close()
			return nil, err
		}
	}

	var ca cache.Cache
	if caOpts != nil && caOpts.URL != "" {
		ca, err = cache.New(caOpts)
		if err != nil {
			if db != nil {
				db.Close()
			}
			gw.Close()
			return nil, err
		}
	}

	rnd, err := jcl.New(jclOpts)
	if err != nil {
		if ca != nil {
			ca.Close()
		}
		if db != nil {
			db.Close()
		}
		gw.Close()
		return nil, err
	}

	return core.NewService(gw, db, ca, rnd, opts)
}

// NewAPI wires an API from already built parts.
func NewAPI(gw gateway.Gateway, db database.Database, ca cache.Cache, opts *structs.Options) (API, error) {
	return core.NewService(gw, db, ca, nil, opts)
}
