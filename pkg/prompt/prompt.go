// Package prompt reads interactive answers from the user's terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// MaxInputLen is the longest answer kept; longer input is truncated.
const MaxInputLen = 127

type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

// New returns a Prompter reading from in and writing prompts to out. Secrets
// are read with echo disabled when fd refers to a terminal; pass -1 to
// always read secrets as plain lines.
func New(in io.Reader, out io.Writer, fd int) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, fd: fd}
}

func NewStdio() *Prompter {
	return New(os.Stdin, os.Stdout, int(os.Stdin.Fd()))
}

// ReadLine prints prompt and returns one line of input without its line
// terminator.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}

	return clean(line), nil
}

// ReadSecret is ReadLine with terminal echo switched off while the user
// types. The terminal state is restored before it returns, including on
// error.
func (p *Prompter) ReadSecret(prompt string) (string, error) {
	if p.fd < 0 || !term.IsTerminal(p.fd) || p.in.Buffered() > 0 {
		return p.ReadLine(prompt)
	}

	fmt.Fprint(p.out, prompt)
	secret, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}

	return clean(string(secret)), nil
}

func clean(s string) string {
	s = strings.TrimRight(s, "\r\n")
	if len(s) > MaxInputLen {
		s = s[:MaxInputLen]
	}
	return s
}
