package system

import (
	"io"
	"os"
)

const DefaultSerialPath = "/proc/device-tree/serial-number"

// The serial is read into a fixed window; anything beyond it is ignored.
const serialWindow = 31

// Leading serial characters that are shared across a product line and so
// are dropped from the identifier.
const serialSkip = 6

// DeviceID derives a short identifier from the hardware serial number at
// path. A missing or unreadable file yields "".
func DeviceID(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	buf := make([]byte, serialWindow)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return ""
	}

	return deviceIDFromSerial(buf[:n])
}

func deviceIDFromSerial(raw []byte) string {
	end := len(raw)
	for i, b := range raw {
		if b < 32 || b > 126 {
			end = i
			break
		}
	}

	if end <= serialSkip {
		return ""
	}
	return string(raw[serialSkip:end])
}

// HotspotSSID joins prefix and id.
func HotspotSSID(prefix, id string) string {
	return prefix + id
}
