package main

import (
	"context"
	"fmt"

	"github.com/voidshard/hopper/pkg/api"
)

const docStatus = `Check the connection to the remote system`

type optsStatus struct {
	optsGeneral
	optsGateway
}

func (c *optsStatus) Execute(args []string) error {
	prof, err := c.profile()
	if err != nil {
		return err
	}

	svc, err := api.New(c.optsGateway.options(prof), nil, nil, nil, nil)
	if err != nil {
		return err
	}
	defer svc.Close()

	err = svc.Healthy(context.Background())
	if err != nil {
		return err
	}
	fmt.Println("ok")
	return nil
}
