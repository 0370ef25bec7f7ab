package system

import (
	"context"
	"fmt"
	"time"

	dbus "github.com/coreos/go-systemd/v22/dbus"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/sirupsen/logrus"
)

const NetworkManagerUnit = "NetworkManager.service"

type ServiceStatus struct {
	Unit    string
	PID     int32
	Name    string
	Running bool
}

// ServiceProbe resolves a systemd unit to its main process.
type ServiceProbe interface {
	MainPID(ctx context.Context, unit string) (uint32, error)
	ProcessName(pid int32) (string, error)
}

var _ ServiceProbe = SystemdProbe{}

// SystemdProbe asks systemd over D-Bus for the unit's MainPID and then
// checks the process table for it.
type SystemdProbe struct{}

func (SystemdProbe) MainPID(ctx context.Context, unit string) (uint32, error) {
	conn, err := dbus.NewWithContext(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	pidProp, err := conn.GetServicePropertyContext(ctx, unit, "MainPID")
	if err != nil {
		return 0, err
	}

	pid, ok := pidProp.Value.Value().(uint32)
	if !ok {
		return 0, fmt.Errorf("unexpected MainPID type %T", pidProp.Value.Value())
	}
	return pid, nil
}

func (SystemdProbe) ProcessName(pid int32) (string, error) {
	proc, err := process.NewProcess(pid)
	if err != nil {
		return "", err
	}
	return proc.Name()
}

func GetServiceStatus(ctx context.Context, probe ServiceProbe, unit string) (ServiceStatus, error) {
	status := ServiceStatus{Unit: unit}

	pid, err := probe.MainPID(ctx, unit)
	if err != nil {
		return status, fmt.Errorf("failed to query %s: %w", unit, err)
	}

	if pid == 0 {
		return status, nil
	}

	status.PID = int32(pid)

	name, err := probe.ProcessName(status.PID)
	if err != nil {
		return status, fmt.Errorf("failed to inspect pid %d of %s: %w", pid, unit, err)
	}

	status.Name = name
	status.Running = true
	return status, nil
}

// WarnIfNetworkManagerDown logs a warning when NetworkManager does not
// appear to be running. It never fails; nmcli reports its own errors.
func WarnIfNetworkManagerDown(probe ServiceProbe, log logrus.FieldLogger) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	status, err := GetServiceStatus(ctx, probe, NetworkManagerUnit)
	if err != nil {
		log.WithError(err).Debug("Could not determine NetworkManager status")
		return
	}

	if !status.Running {
		log.Warnf("%s is not running, nmcli commands will likely fail", NetworkManagerUnit)
		return
	}

	log.WithFields(logrus.Fields{"pid": status.PID, "process": status.Name}).Debug("NetworkManager is running")
}
