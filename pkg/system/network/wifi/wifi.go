package network_wifi

import (
	"github.com/mdlayher/wifi"
	"github.com/sirupsen/logrus"
)

// DefaultInterface is used when nl80211 reports no wireless interfaces.
const DefaultInterface = "wlan0"

// InterfaceLister returns the names of the wireless interfaces present on
// the system.
type InterfaceLister interface {
	WirelessInterfaces() ([]string, error)
}

var _ InterfaceLister = NL80211Lister{}

type NL80211Lister struct{}

func (NL80211Lister) WirelessInterfaces() ([]string, error) {
	wifiClient, err := wifi.New()
	if err != nil {
		return nil, err
	}
	defer wifiClient.Close()

	wifiInterfaces, err := wifiClient.Interfaces()
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, wifiInterface := range wifiInterfaces {
		// P2P devices have no netdev and therefore no name.
		if wifiInterface.Name == "" {
			continue
		}
		names = append(names, wifiInterface.Name)
	}

	return names, nil
}

// ResolveInterface returns configured if set, otherwise the first wireless
// interface reported by lister, otherwise DefaultInterface.
func ResolveInterface(configured string, lister InterfaceLister, log logrus.FieldLogger) string {
	if configured != "" {
		return configured
	}

	names, err := lister.WirelessInterfaces()
	if err != nil {
		log.WithError(err).Debugf("Could not list wifi interfaces, using %s", DefaultInterface)
		return DefaultInterface
	}

	if len(names) == 0 {
		log.Debugf("No wifi interfaces found, using %s", DefaultInterface)
		return DefaultInterface
	}

	log.WithField("interface", names[0]).Debug("Using detected wifi interface")
	return names[0]
}
