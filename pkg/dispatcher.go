package wifiapp

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dogeorg/wifi-app/pkg/system"
	network_wifi "github.com/dogeorg/wifi-app/pkg/system/network/wifi"
	"github.com/dogeorg/wifi-app/pkg/version"
	"github.com/sirupsen/logrus"
)

const Usage = `Usage: wifi-app [option]
Options:
  -on       Turn on WiFi and connect to a network
  -off      Turn off WiFi
  -ap_on    Turn on Access Point mode
  -ap_off   Turn off Access Point mode
  -h        Show this help message
  -v        Show version information
`

// NetworkClient is the subset of NetworkManager operations the dispatcher
// drives.
type NetworkClient interface {
	RadioOn() error
	RadioOff() error
	Rescan() error
	List() error
	Connect(ssid, password string) error
	HotspotDown() error
	HotspotDelete() error
	Disconnect(ifname string) error
	HotspotUp(ifname, ssid, password string) error
}

type Prompter interface {
	ReadLine(prompt string) (string, error)
	ReadSecret(prompt string) (string, error)
}

type Dispatcher struct {
	Config     Config
	Network    NetworkClient
	Prompter   Prompter
	Interfaces network_wifi.InterfaceLister
	Out        io.Writer
	Log        logrus.FieldLogger
	Sleep      func(time.Duration)
}

// Dispatch selects an action from args and runs it. Only usage problems
// are returned as errors; the outcome of network operations is reported
// on Out.
func (d Dispatcher) Dispatch(args []string) error {
	action, err := ParseAction(args)
	switch {
	case errors.Is(err, ErrMissingAction):
		d.help()
		return err
	case err != nil:
		fmt.Fprintln(d.Out, "Invalid option. Use -h for help.")
		return err
	}

	d.Log.WithField("action", action).Debug("Dispatching")
	d.Run(action)
	return nil
}

func (d Dispatcher) Run(action Action) {
	switch action {
	case ActionEnableWifi:
		d.enableWifi()
	case ActionDisableWifi:
		d.disableWifi()
	case ActionEnableHotspot:
		d.enableHotspot()
	case ActionDisableHotspot:
		d.disableHotspot()
	case ActionHelp:
		d.help()
	case ActionVersion:
		d.version()
	}
}

func (d Dispatcher) enableWifi() {
	fmt.Fprintf(d.Out, "WiFi is turned on. Scanning for available networks (please wait %s)...\n", formatDelay(d.Config.ScanDelay))

	if err := d.Network.RadioOn(); err != nil {
		d.Log.WithError(err).Warn("Failed to turn wifi radio on")
	}

	// Give NetworkManager time to populate its scan results.
	d.sleep(d.Config.ScanDelay)

	if err := d.Network.Rescan(); err != nil {
		d.Log.WithError(err).Warn("Failed to rescan for wifi networks")
	}
	if err := d.Network.List(); err != nil {
		d.Log.WithError(err).Warn("Failed to list wifi networks")
	}
	fmt.Fprintln(d.Out)

	ssid, err := d.Prompter.ReadLine("please enter wifi id: ")
	if err != nil {
		fmt.Fprintf(d.Out, "Failed to read wifi id: %v\n", err)
		return
	}

	password, err := d.Prompter.ReadSecret("please enter wifi password: ")
	if err != nil {
		fmt.Fprintf(d.Out, "Failed to read wifi password: %v\n", err)
		return
	}
	fmt.Fprintln(d.Out)

	if err := d.Network.Connect(ssid, password); err != nil {
		d.Log.WithError(err).WithField("ssid", ssid).Debug("Connect failed")
		fmt.Fprintf(d.Out, "Failed to connect to %s\n", ssid)
		return
	}

	fmt.Fprintf(d.Out, "Successfully connected to %s\n", ssid)
}

// disableWifi and disableHotspot report success regardless of what nmcli
// returns; failures only reach the log.
func (d Dispatcher) disableWifi() {
	if err := d.Network.RadioOff(); err != nil {
		d.Log.WithError(err).Warn("Failed to turn wifi radio off")
	}
	fmt.Fprintln(d.Out, "WiFi has been turned off.")
}

func (d Dispatcher) enableHotspot() {
	ssid := system.HotspotSSID(d.Config.SSIDPrefix, system.DeviceID(d.Config.SerialPath))
	ifname := network_wifi.ResolveInterface(d.Config.Interface, d.Interfaces, d.Log)

	// Clear out anything left over from a previous hotspot. Any of these
	// may legitimately have nothing to act on.
	cleanup := []func() error{
		d.Network.HotspotDown,
		d.Network.HotspotDelete,
		func() error { return d.Network.Disconnect(ifname) },
	}
	for _, step := range cleanup {
		if err := step(); err != nil {
			d.Log.WithError(err).Debug("Ignoring hotspot cleanup failure")
		}
	}

	password := d.Config.HotspotPassword
	if err := d.Network.HotspotUp(ifname, ssid, password); err != nil {
		d.Log.WithError(err).WithFields(logrus.Fields{"interface": ifname, "ssid": ssid}).Debug("Hotspot failed")
		fmt.Fprintln(d.Out, "Failed to create hotspot!")
		return
	}

	fmt.Fprintln(d.Out, "Access Point mode has been turned on.")
	fmt.Fprintf(d.Out, "SSID: %s, Password: %s\n", ssid, password)
}

func (d Dispatcher) disableHotspot() {
	// Usually there is simply no active hotspot.
	if err := d.Network.HotspotDown(); err != nil {
		d.Log.WithError(err).Debug("Ignoring hotspot down failure")
	}
	fmt.Fprintln(d.Out, "Access Point mode has been turned off.")
}

func (d Dispatcher) help() {
	fmt.Fprint(d.Out, Usage)
}

func (d Dispatcher) version() {
	fmt.Fprintf(d.Out, "wifi-app %s\n", version.GetRelease())
}

func (d Dispatcher) sleep(delay time.Duration) {
	if d.Sleep != nil {
		d.Sleep(delay)
		return
	}
	time.Sleep(delay)
}

func formatDelay(delay time.Duration) string {
	if delay%time.Second == 0 {
		return fmt.Sprintf("%d seconds", int(delay/time.Second))
	}
	return delay.String()
}
