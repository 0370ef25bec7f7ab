package wifiapp

import (
	"errors"
	"fmt"
)

/* Actions are the closed set of things a single
 * invocation of wifi-app can do. Exactly one is
 * selected from the first command line token.
 */
type Action int

const (
	ActionNone Action = iota
	ActionEnableWifi
	ActionDisableWifi
	ActionEnableHotspot
	ActionDisableHotspot
	ActionHelp
	ActionVersion
)

var (
	ErrMissingAction = errors.New("no option given")
	ErrInvalidOption = errors.New("invalid option")
)

// Both the legacy single-dash flags and the long action names are accepted.
var actionTokens = map[string]Action{
	"-on":             ActionEnableWifi,
	"enable-wifi":     ActionEnableWifi,
	"-off":            ActionDisableWifi,
	"disable-wifi":    ActionDisableWifi,
	"-ap_on":          ActionEnableHotspot,
	"enable-hotspot":  ActionEnableHotspot,
	"-ap_off":         ActionDisableHotspot,
	"disable-hotspot": ActionDisableHotspot,
	"-h":              ActionHelp,
	"--help":          ActionHelp,
	"help":            ActionHelp,
	"-v":              ActionVersion,
	"--version":       ActionVersion,
	"version":         ActionVersion,
}

var actionNames = map[Action]string{
	ActionNone:           "none",
	ActionEnableWifi:     "enable-wifi",
	ActionDisableWifi:    "disable-wifi",
	ActionEnableHotspot:  "enable-hotspot",
	ActionDisableHotspot: "disable-hotspot",
	ActionHelp:           "help",
	ActionVersion:        "version",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// TouchesNetwork reports whether running the action invokes nmcli.
func (a Action) TouchesNetwork() bool {
	switch a {
	case ActionEnableWifi, ActionDisableWifi, ActionEnableHotspot, ActionDisableHotspot:
		return true
	}
	return false
}

// ParseAction maps the first argument to an Action. Anything after the
// first argument is ignored.
func ParseAction(args []string) (Action, error) {
	if len(args) == 0 {
		return ActionNone, ErrMissingAction
	}

	action, ok := actionTokens[args[0]]
	if !ok {
		return ActionNone, fmt.Errorf("%w: %s", ErrInvalidOption, args[0])
	}

	return action, nil
}
