package cmd

import (
	"fmt"
	"io"
	"os"

	wifiapp "github.com/dogeorg/wifi-app/pkg"
	"github.com/dogeorg/wifi-app/pkg/prompt"
	"github.com/dogeorg/wifi-app/pkg/system"
	network_nmcli "github.com/dogeorg/wifi-app/pkg/system/network/nmcli"
	network_wifi "github.com/dogeorg/wifi-app/pkg/system/network/wifi"
	"github.com/dogeorg/wifi-app/pkg/utils"
	"github.com/dogeorg/wifi-app/pkg/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// host is everything the root command touches outside the process.
type host struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Prompter   wifiapp.Prompter
	Getenv     func(string) string
	Preflight  system.Preflight
	Services   system.ServiceProbe
	Interfaces network_wifi.InterfaceLister
	Runner     func(log logrus.FieldLogger) utils.Runner
}

func defaultHost() host {
	return host{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Prompter:   prompt.NewStdio(),
		Getenv:     os.Getenv,
		Preflight:  system.DefaultPreflight(),
		Services:   system.SystemdProbe{},
		Interfaces: network_wifi.NL80211Lister{},
		Runner: func(log logrus.FieldLogger) utils.Runner {
			return utils.NewExecRunner(log)
		},
	}
}

var rootCmd = newRootCmd(defaultHost())

// Flag parsing is disabled so the single-dash options (-on, -ap_on, ...)
// arrive untouched in args.
func newRootCmd(h host) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "wifi-app [option]",
		Short:              "Turn WiFi and the access point hotspot on and off through NetworkManager",
		Version:            version.GetRelease().String(),
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := wifiapp.LoadConfig(wifiapp.ConfigPath(h.Getenv), h.Getenv)
			if err != nil {
				fmt.Fprintf(h.Stdout, "Error: %v\n", err)
				return err
			}

			nmcliPath, err := h.Preflight.Check(config.Nmcli)
			if err != nil {
				fmt.Fprintln(h.Stdout, err)
				return err
			}

			log := system.NewLogger(h.Stderr, config.Verbose)

			if action, err := wifiapp.ParseAction(args); err == nil && action.TouchesNetwork() {
				system.WarnIfNetworkManagerDown(h.Services, log)
			}

			d := wifiapp.Dispatcher{
				Config:     config,
				Network:    network_nmcli.NewClient(nmcliPath, h.Runner(log)),
				Prompter:   h.Prompter,
				Interfaces: h.Interfaces,
				Out:        h.Stdout,
				Log:        log,
			}

			return d.Dispatch(args)
		},
	}

	cmd.SetOut(h.Stdout)
	cmd.SetErr(h.Stderr)

	return cmd
}

// exitCode maps the result of the root command to the process exit status.
func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

func Execute() {
	os.Exit(exitCode(rootCmd.Execute()))
}
