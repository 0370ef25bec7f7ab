//go:build linux

package prompt

import (
	"bytes"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// openPty returns the controller and terminal ends of a fresh pseudo-terminal.
func openPty(t *testing.T) (*os.File, *os.File) {
	t.Helper()

	ptmx, err := os.OpenFile("/dev/ptmx", os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		t.Skipf("pseudo-terminals unavailable: %v", err)
	}
	t.Cleanup(func() { ptmx.Close() })

	fd := int(ptmx.Fd())
	if err := unix.IoctlSetPointerInt(fd, unix.TIOCSPTLCK, 0); err != nil {
		t.Skipf("unlocking pseudo-terminal: %v", err)
	}
	n, err := unix.IoctlGetInt(fd, unix.TIOCGPTN)
	if err != nil {
		t.Skipf("pseudo-terminal number: %v", err)
	}

	pts, err := os.OpenFile(fmt.Sprintf("/dev/pts/%d", n), os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		t.Skipf("opening pseudo-terminal: %v", err)
	}
	t.Cleanup(func() { pts.Close() })

	return ptmx, pts
}

func echoEnabled(t *testing.T, fd int) bool {
	t.Helper()
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	require.NoError(t, err)
	return termios.Lflag&unix.ECHO != 0
}

func TestReadSecretFromTerminalDisablesEcho(t *testing.T) {
	ptmx, pts := openPty(t)
	fd := int(pts.Fd())
	require.True(t, echoEnabled(t, fd), "new terminals echo input")

	var out bytes.Buffer
	p := New(pts, &out, fd)

	// Type the password only once echo is off, as a person would see it.
	echoOff := make(chan bool, 1)
	go func() {
		deadline := time.Now().Add(5 * time.Second)
		off := false
		for time.Now().Before(deadline) {
			termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
			if err == nil && termios.Lflag&unix.ECHO == 0 {
				off = true
				break
			}
			time.Sleep(5 * time.Millisecond)
		}
		ptmx.Write([]byte("secret1\n"))
		echoOff <- off
	}()

	secret, err := p.ReadSecret("please enter wifi password: ")
	require.NoError(t, err)

	assert.Equal(t, "secret1", secret)
	assert.True(t, <-echoOff, "echo is switched off while the password is typed")
	assert.True(t, echoEnabled(t, fd), "echo is restored afterwards")
	assert.Equal(t, "please enter wifi password: \n", out.String())
}
