package utils

import (
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Runner executes external commands as argument vectors. Nothing passed
// through a Runner is ever interpreted by a shell.
type Runner interface {
	// Run executes the command with stdout and stderr passed through to
	// the terminal.
	Run(name string, args ...string) error
	// RunQuiet executes the command with stdout passed through and stderr
	// discarded.
	RunQuiet(name string, args ...string) error
}

var _ Runner = &ExecRunner{}

type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
	Log    logrus.FieldLogger
	// Arguments that follow any of these are masked in log output.
	Sensitive []string
}

func NewExecRunner(log logrus.FieldLogger) *ExecRunner {
	return &ExecRunner{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Log:       log,
		Sensitive: []string{"password"},
	}
}

func (r *ExecRunner) Run(name string, args ...string) error {
	return r.run(r.Stdout, r.Stderr, name, args)
}

func (r *ExecRunner) RunQuiet(name string, args ...string) error {
	return r.run(r.Stdout, io.Discard, name, args)
}

func (r *ExecRunner) run(stdout, stderr io.Writer, name string, args []string) error {
	if r.Log != nil {
		r.Log.WithField("cmd", CommandLine(name, Redact(args, r.Sensitive...)...)).Debug("Running command")
	}

	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err != nil && r.Log != nil {
		r.Log.WithError(err).WithField("cmd", name).Debug("Command failed")
	}
	return err
}

// CommandLine renders an argument vector for logs and test assertions.
func CommandLine(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

// Redact returns a copy of args where the value following any of the given
// keywords is replaced with "****".
func Redact(args []string, keywords ...string) []string {
	out := make([]string, len(args))
	copy(out, args)

	for i := 0; i < len(out)-1; i++ {
		for _, k := range keywords {
			if out[i] == k {
				out[i+1] = "****"
				i++
				break
			}
		}
	}

	return out
}
