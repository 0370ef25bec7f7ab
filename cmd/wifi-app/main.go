package main

import (
	"github.com/dogeorg/wifi-app/cmd/wifi-app/cmd"
)

// Root and nmcli presence are checked by the root command before any
// option is dispatched.
func main() {
	cmd.Execute()
}
