package network_nmcli

import (
	"testing"

	"github.com/dogeorg/wifi-app/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCommands(t *testing.T) {
	tests := []struct {
		name  string
		call  func(c Client) error
		want  []string
		quiet bool
	}{
		{"radio on", Client.RadioOn, []string{"radio", "wifi", "on"}, false},
		{"radio off", Client.RadioOff, []string{"radio", "wifi", "off"}, false},
		{"rescan", Client.Rescan, []string{"device", "wifi", "rescan"}, false},
		{"list", Client.List, []string{"device", "wifi", "list"}, false},
		{"hotspot down", Client.HotspotDown, []string{"connection", "down", "Hotspot"}, true},
		{"hotspot delete", Client.HotspotDelete, []string{"connection", "delete", "Hotspot"}, true},
		{
			"connect",
			func(c Client) error { return c.Connect("MyNet", "secret1") },
			[]string{"device", "wifi", "connect", "MyNet", "password", "secret1"},
			false,
		},
		{
			"disconnect",
			func(c Client) error { return c.Disconnect("wlan0") },
			[]string{"device", "disconnect", "wlan0"},
			true,
		},
		{
			"hotspot up",
			func(c Client) error { return c.HotspotUp("wlan0", "TITAXYZ9", "12345678") },
			[]string{"device", "wifi", "hotspot", "ifname", "wlan0", "ssid", "TITAXYZ9", "password", "12345678"},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &utils.RecordingRunner{}
			require.NoError(t, tt.call(NewClient("", r)))

			require.Len(t, r.Calls, 1)
			assert.Equal(t, "nmcli", r.Calls[0].Name)
			assert.Equal(t, tt.want, r.Calls[0].Args)
			assert.Equal(t, tt.quiet, r.Calls[0].Quiet)
		})
	}
}

func TestConnectKeepsHostileValuesAsSingleArguments(t *testing.T) {
	r := &utils.RecordingRunner{}
	c := NewClient("/usr/bin/nmcli", r)

	ssid := `My "Net"; rm -rf /`
	password := `$(reboot)' "`
	require.NoError(t, c.Connect(ssid, password))

	require.Len(t, r.Calls, 1)
	assert.Equal(t, "/usr/bin/nmcli", r.Calls[0].Name)
	assert.Equal(t, []string{"device", "wifi", "connect", ssid, "password", password}, r.Calls[0].Args)
}

func TestClientPropagatesErrors(t *testing.T) {
	r := &utils.RecordingRunner{}
	r.Fail("nmcli device wifi connect MyNet password bad")

	c := NewClient("nmcli", r)
	assert.Error(t, c.Connect("MyNet", "bad"))
	assert.NoError(t, c.Connect("MyNet", "good"))
}
