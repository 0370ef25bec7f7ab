package wifiapp

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dogeorg/wifi-app/pkg/system"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath      = "/etc/wifi-app/config.yaml"
	DefaultSSIDPrefix      = "TITA"
	DefaultHotspotPassword = "12345678"
	DefaultScanDelay       = 10 * time.Second
)

type Config struct {
	SSIDPrefix      string        `yaml:"ssidPrefix"`
	HotspotPassword string        `yaml:"hotspotPassword"`
	Interface       string        `yaml:"interface"` // empty: first wireless interface
	ScanDelay       time.Duration `yaml:"scanDelay"`
	SerialPath      string        `yaml:"serialPath"`
	Nmcli           string        `yaml:"nmcli"`
	Verbose         bool          `yaml:"verbose"`
}

func DefaultConfig() Config {
	return Config{
		SSIDPrefix:      DefaultSSIDPrefix,
		HotspotPassword: DefaultHotspotPassword,
		ScanDelay:       DefaultScanDelay,
		SerialPath:      system.DefaultSerialPath,
		Nmcli:           "nmcli",
	}
}

// LoadConfig starts from DefaultConfig, applies the YAML file at path if it
// exists, then applies WIFI_APP_* environment overrides read via getenv.
func LoadConfig(path string, getenv func(string) string) (Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return config, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return config, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if v := getenv("WIFI_APP_SSID_PREFIX"); v != "" {
		config.SSIDPrefix = v
	}
	if v := getenv("WIFI_APP_HOTSPOT_PASSWORD"); v != "" {
		config.HotspotPassword = v
	}
	if v := getenv("WIFI_APP_INTERFACE"); v != "" {
		config.Interface = v
	}
	if v := getenv("WIFI_APP_SCAN_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return config, fmt.Errorf("invalid WIFI_APP_SCAN_DELAY %q: %w", v, err)
		}
		config.ScanDelay = d
	}
	if v := getenv("WIFI_APP_VERBOSE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return config, fmt.Errorf("invalid WIFI_APP_VERBOSE %q: %w", v, err)
		}
		config.Verbose = b
	}

	return config, nil
}

// ConfigPath returns the config file location, honouring WIFI_APP_CONFIG.
func ConfigPath(getenv func(string) string) string {
	if p := getenv("WIFI_APP_CONFIG"); p != "" {
		return p
	}
	return DefaultConfigPath
}
