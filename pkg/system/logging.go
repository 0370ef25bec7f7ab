package system

import (
	"fmt"
	"io"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
	"github.com/sirupsen/logrus"
)

// NewLogger builds the diagnostic logger. It writes to w and, when a
// journald socket is present, mirrors entries to the journal.
func NewLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if journal.Enabled() {
		log.AddHook(JournalHook{Identifier: "wifi-app", send: journal.Send})
	}

	return log
}

// JournalHook forwards logrus entries to journald.
type JournalHook struct {
	Identifier string
	send       func(message string, priority journal.Priority, vars map[string]string) error
}

func (h JournalHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h JournalHook) Fire(entry *logrus.Entry) error {
	vars := map[string]string{}
	if h.Identifier != "" {
		vars["SYSLOG_IDENTIFIER"] = h.Identifier
	}
	for k, v := range entry.Data {
		vars[journalField(k)] = fmt.Sprint(v)
	}

	return h.send(entry.Message, journalPriority(entry.Level), vars)
}

func journalPriority(level logrus.Level) journal.Priority {
	switch level {
	case logrus.PanicLevel:
		return journal.PriEmerg
	case logrus.FatalLevel:
		return journal.PriCrit
	case logrus.ErrorLevel:
		return journal.PriErr
	case logrus.WarnLevel:
		return journal.PriWarning
	case logrus.InfoLevel:
		return journal.PriInfo
	default:
		return journal.PriDebug
	}
}

// journald only accepts upper case letters, digits and underscores, and
// field names may not start with an underscore.
func journalField(key string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(key) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return "WIFI_APP_" + strings.TrimLeft(b.String(), "_")
}
