package utils

import "fmt"

// Call is one recorded invocation.
type Call struct {
	Name  string
	Args  []string
	Quiet bool
}

func (c Call) String() string {
	return CommandLine(c.Name, c.Args...)
}

var _ Runner = &RecordingRunner{}

// RecordingRunner records every command it is asked to run instead of
// executing it. Errors can be pre-programmed per command line, keyed by
// CommandLine(name, args...).
type RecordingRunner struct {
	Calls  []Call
	errors map[string]error
}

func (r *RecordingRunner) FailWith(commandLine string, err error) {
	if r.errors == nil {
		r.errors = map[string]error{}
	}
	r.errors[commandLine] = err
}

// Fail makes the given command line exit with a generic non-zero status.
func (r *RecordingRunner) Fail(commandLine string) {
	r.FailWith(commandLine, fmt.Errorf("%s: exit status 1", commandLine))
}

func (r *RecordingRunner) Run(name string, args ...string) error {
	return r.record(name, args, false)
}

func (r *RecordingRunner) RunQuiet(name string, args ...string) error {
	return r.record(name, args, true)
}

func (r *RecordingRunner) record(name string, args []string, quiet bool) error {
	argv := make([]string, len(args))
	copy(argv, args)
	c := Call{Name: name, Args: argv, Quiet: quiet}
	r.Calls = append(r.Calls, c)
	return r.errors[c.String()]
}

// CommandLines returns every recorded call rendered with CommandLine.
func (r *RecordingRunner) CommandLines() []string {
	out := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		out = append(out, c.String())
	}
	return out
}
