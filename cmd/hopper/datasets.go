package main

import (
	"context"
	"fmt"

	"github.com/voidshard/hopper/pkg/api"
)

const docDatasets = `List remote datasets, or the members of one`

type optsDatasets struct {
	optsGeneral
	optsGateway

	Members string `long:"members" description:"List the members of this dataset instead"`

	Args struct {
		Pattern string `positional-arg-name:"pattern" description:"Dataset name pattern to match (ie. USER01.*)"`
	} `positional-args:"true"`
}

func (c *optsDatasets) Execute(args []string) error {
	prof, err := c.profile()
	if err != nil {
		return err
	}

	svc, err := api.New(c.optsGateway.options(prof), nil, nil, nil, nil)
	if err != nil {
		return err
	}
	defer svc.Close()

	var names []string
	if c.Members != "" {
		names, err = svc.Members(context.Background(), c.Members)
	} else {
		names, err = svc.DataSets(context.Background(), c.Args.Pattern)
	}
	if err != nil {
		return err
	}

	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}
