package network_nmcli

import (
	"github.com/dogeorg/wifi-app/pkg/utils"
)

// HotspotConnection is the profile name nmcli assigns to the connection
// it creates for `device wifi hotspot`.
const HotspotConnection = "Hotspot"

// Client drives NetworkManager through nmcli. Every value is handed to
// nmcli as its own argument, so SSIDs and passwords are never re-parsed.
type Client struct {
	Path   string
	Runner utils.Runner
}

func NewClient(path string, runner utils.Runner) Client {
	if path == "" {
		path = "nmcli"
	}
	return Client{Path: path, Runner: runner}
}

func (c Client) RadioOn() error {
	return c.Runner.Run(c.Path, "radio", "wifi", "on")
}

func (c Client) RadioOff() error {
	return c.Runner.Run(c.Path, "radio", "wifi", "off")
}

func (c Client) Rescan() error {
	return c.Runner.Run(c.Path, "device", "wifi", "rescan")
}

// List prints the visible networks straight to the terminal.
func (c Client) List() error {
	return c.Runner.Run(c.Path, "device", "wifi", "list")
}

func (c Client) Connect(ssid, password string) error {
	return c.Runner.Run(c.Path, "device", "wifi", "connect", ssid, "password", password)
}

// HotspotDown, HotspotDelete and Disconnect discard nmcli's error output
// since the things they tear down commonly do not exist.

func (c Client) HotspotDown() error {
	return c.Runner.RunQuiet(c.Path, "connection", "down", HotspotConnection)
}

func (c Client) HotspotDelete() error {
	return c.Runner.RunQuiet(c.Path, "connection", "delete", HotspotConnection)
}

func (c Client) Disconnect(ifname string) error {
	return c.Runner.RunQuiet(c.Path, "device", "disconnect", ifname)
}

func (c Client) HotspotUp(ifname, ssid, password string) error {
	return c.Runner.Run(c.Path, "device", "wifi", "hotspot", "ifname", ifname, "ssid", ssid, "password", password)
}
