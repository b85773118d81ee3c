package main

import (
	"context"
	"fmt"

	"github.com/voidshard/hopper/pkg/api"
)

const docJobs = `List jobs on the remote system`

type optsJobs struct {
	optsGeneral
	optsGateway

	Owner string `long:"owner" env:"OWNER" description:"List jobs belonging to this user; defaults to the connection user"`
}

func (c *optsJobs) Execute(args []string) error {
	prof, err := c.profile()
	if err != nil {
		return err
	}

	svc, err := api.New(c.optsGateway.options(prof), nil, nil, nil, nil)
	if err != nil {
		return err
	}
	defer svc.Close()

	jobs, err := svc.RemoteJobs(context.Background(), c.Owner)
	if err != nil {
		return err
	}

	for _, j := range jobs {
		fmt.Printf("%-10s %-10s %-10s %-10s %s\n", j.ID, j.Name, j.Owner, j.Status, j.RetCode)
	}
	return nil
}
