package system

import (
	"bytes"
	"errors"
	"testing"

	"github.com/coreos/go-systemd/v22/journal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer

	log := NewLogger(&buf, false)
	log.Debug("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	log = NewLogger(&buf, true)
	log.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestJournalHookFire(t *testing.T) {
	var gotMessage string
	var gotPriority journal.Priority
	var gotVars map[string]string

	hook := JournalHook{
		Identifier: "wifi-app",
		send: func(message string, priority journal.Priority, vars map[string]string) error {
			gotMessage, gotPriority, gotVars = message, priority, vars
			return nil
		},
	}

	entry := &logrus.Entry{
		Message: "Command failed",
		Level:   logrus.WarnLevel,
		Data:    logrus.Fields{"cmd": "nmcli", "error": errors.New("exit status 10")},
	}

	require.NoError(t, hook.Fire(entry))
	assert.Equal(t, "Command failed", gotMessage)
	assert.Equal(t, journal.PriWarning, gotPriority)
	assert.Equal(t, map[string]string{
		"SYSLOG_IDENTIFIER": "wifi-app",
		"WIFI_APP_CMD":      "nmcli",
		"WIFI_APP_ERROR":    "exit status 10",
	}, gotVars)
}

func TestJournalField(t *testing.T) {
	assert.Equal(t, "WIFI_APP_INTERFACE", journalField("interface"))
	assert.Equal(t, "WIFI_APP_SCAN_DELAY", journalField("scan-delay"))
	assert.Equal(t, "WIFI_APP_PID", journalField("_pid"))
}
