package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/voidshard/hopper/pkg/api"
	"github.com/voidshard/hopper/pkg/structs"
)

const docSubmit = `Compile and run a COBOL program on the remote system`

type optsSubmit struct {
	optsGeneral
	optsGateway

	Program   string `long:"program" env:"PROGRAM" description:"Program name; defaults from the source file name"`
	Qualifier string `long:"qualifier" env:"QUALIFIER" description:"Source library the program text is uploaded into"`
	Load      string `long:"load" env:"LOAD" description:"Load library the linked program runs from"`
	Member    string `long:"member" description:"Source member name; defaults to the program name"`
	JobName   string `long:"job-name" description:"Batch job name; defaults to the program name"`

	CompileOptions string `long:"compile-options" description:"Options handed to the compile step"`
	RunOptions     string `long:"run-options" description:"Options handed to the run step"`

	MaxElapsed time.Duration `long:"max-elapsed" description:"Give up waiting after this long (ie. 30m)"`

	Args struct {
		Source string `positional-arg-name:"source-file" description:"COBOL source file to submit"`
	} `positional-args:"true" required:"true"`
}

func (c *optsSubmit) Execute(args []string) error {
	prof, err := c.profile()
	if err != nil {
		return err
	}

	source, err := os.ReadFile(c.Args.Source)
	if err != nil {
		return err
	}

	program := c.Program
	if program == "" {
		base := filepath.Base(c.Args.Source)
		program = strings.TrimSuffix(base, filepath.Ext(base))
	}
	qualifier := c.Qualifier
	if qualifier == "" {
		qualifier = prof.Datasets.Source
	}
	load := c.Load
	if load == "" {
		load = prof.Datasets.Load
	}

	opts, err := tuning(prof, c.MaxElapsed)
	if err != nil {
		return err
	}
	jclOpts, err := prof.JCLOptions()
	if err != nil {
		return err
	}

	svc, err := api.New(c.optsGateway.options(prof), nil, nil, jclOpts, opts)
	if err != nil {
		return err
	}
	defer svc.Close()

	job, err := svc.SubmitCompileAndRun(context.Background(), &structs.JobRequest{
		ProgramID:      program,
		Source:         string(source),
		Qualifier:      qualifier,
		Member:         c.Member,
		LoadQualifier:  load,
		JobName:        c.JobName,
		CompileOptions: c.CompileOptions,
		RunOptions:     c.RunOptions,
	})
	if err != nil {
		return err
	}
	fmt.Println("submitted", job.ID)

	job, err = api.Wait(context.Background(), svc, job)
	if err != nil {
		return err
	}

	fmt.Println(job.ID, job.Status, job.Outcome)
	for _, s := range job.Steps {
		fmt.Printf("  %-8s %-8s %s\n", s.StepName, s.ProcStep, s.CompletionCode)
	}
	if job.Diagnostics != "" {
		fmt.Println(job.Diagnostics)
	}

	if job.Status != structs.COMPLETED {
		return fmt.Errorf("job %s ended %s (%s)", job.ID, job.Status, job.Outcome)
	}
	return nil
}
