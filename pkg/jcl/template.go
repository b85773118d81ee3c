package jcl

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/voidshard/hopper/pkg/errors"
	"github.com/voidshard/hopper/pkg/structs"
)

// Options are site settings baked into rendered job documents.
type Options struct {
	// Account appears on the JOB card.
	Account string

	// Class is the job class. Defaults to "A".
	Class string

	// MsgClass is the output message class. Defaults to "X".
	MsgClass string

	// CondCode is the highest prior step completion code the run step
	// tolerates; anything above it and the run step is skipped.
	CondCode int64

	// CRLF emits \r\n line endings (some transports want record style input).
	CRLF bool

	// Template overrides DefaultTemplate, if set.
	Template string
}

func (o *Options) SetDefaults() {
	if o.Account == "" {
		o.Account = defaultAccount
	}
	if o.Class == "" {
		o.Class = defaultClass
	}
	if o.MsgClass == "" {
		o.MsgClass = defaultMsgClass
	}
	if o.CondCode <= 0 {
		o.CondCode = defaultCondCode
	}
	if o.Template == "" {
		o.Template = DefaultTemplate
	}
}

// Renderer turns a JobRequest into a job-control document.
//
// Rendering is pure text substitution; nothing is written or submitted here.
// A document with any placeholder left unresolved is never returned, we'd
// rather fail the render than submit a malformed job.
type Renderer struct {
	opts *Options
	tmpl *template.Template
}

// New builds a Renderer from the given site options.
func New(opts *Options) (*Renderer, error) {
	if opts == nil {
		opts = &Options{}
	}
	opts.SetDefaults()

	tmpl, err := template.New("jcl").Option("missingkey=error").Parse(opts.Template)
	if err != nil {
		return nil, fmt.Errorf("%w bad template: %v", errors.ErrRender, err)
	}
	return &Renderer{opts: opts, tmpl: tmpl}, nil
}

// RenderCompileRun produces the compile-link-go document for the given request.
func (r *Renderer) RenderCompileRun(req *structs.JobRequest) (string, error) {
	member := req.Member
	if member == "" {
		member = req.ProgramID
	}
	jobname := req.JobName
	if jobname == "" {
		jobname = req.ProgramID
	}

	compileParm := ""
	if req.CompileOptions != "" {
		compileParm = fmt.Sprintf(",PARM.COBOL='%s'", req.CompileOptions)
	}
	runParm := ""
	if req.RunOptions != "" {
		runParm = fmt.Sprintf(",PARM='%s'", req.RunOptions)
	}

	return r.render(map[string]interface{}{
		"JobName":       strings.ToUpper(jobname),
		"ProgramID":     strings.ToUpper(req.ProgramID),
		"Member":        strings.ToUpper(member),
		"SourceDataset": strings.ToUpper(req.Qualifier),
		"LoadDataset":   strings.ToUpper(req.LoadQualifier),
		"Account":       r.opts.Account,
		"Class":         r.opts.Class,
		"MsgClass":      r.opts.MsgClass,
		"CondCode":      r.opts.CondCode,
		"CompileParm":   compileParm,
		"RunParm":       runParm,
	})
}

func (r *Renderer) render(vars map[string]interface{}) (string, error) {
	buf := &bytes.Buffer{}
	err := r.tmpl.Execute(buf, vars)
	if err != nil {
		// missingkey=error lands here: some token in the template had
		// no value to fill it
		return "", fmt.Errorf("%w %v", errors.ErrRender, err)
	}

	doc := buf.String()
	if i := strings.Index(doc, "{{"); i >= 0 {
		return "", fmt.Errorf("%w unreplaced token at offset %d", errors.ErrRender, i)
	}
	if i := strings.Index(doc, "}}"); i >= 0 {
		return "", fmt.Errorf("%w unreplaced token at offset %d", errors.ErrRender, i)
	}

	if r.opts.CRLF {
		doc = strings.ReplaceAll(doc, "\r\n", "\n")
		doc = strings.ReplaceAll(doc, "\n", "\r\n")
	}
	return doc, nil
}
