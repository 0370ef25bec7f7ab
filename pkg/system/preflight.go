package system

import (
	"errors"
	"os/exec"
	"syscall"
)

var (
	ErrNotRoot      = errors.New("This program must be run as root. Try using sudo.")
	ErrNmcliMissing = errors.New("Error: nmcli is not installed. Please install NetworkManager.")
)

// Preflight holds the host probes checked before any action runs.
type Preflight struct {
	Geteuid  func() int
	LookPath func(file string) (string, error)
}

func DefaultPreflight() Preflight {
	return Preflight{Geteuid: syscall.Geteuid, LookPath: exec.LookPath}
}

// Check verifies the process is root and that nmcli can be found. The
// returned path is the resolved nmcli binary.
func (p Preflight) Check(nmcli string) (string, error) {
	if p.Geteuid() != 0 {
		return "", ErrNotRoot
	}

	path, err := p.LookPath(nmcli)
	if err != nil {
		return "", ErrNmcliMissing
	}

	return path, nil
}
