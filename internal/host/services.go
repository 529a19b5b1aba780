// Package host inspects the local system for services that compete with
// the router for control of network interfaces.
package host

import (
	"os/exec"
	"strings"

	"nifty-filter/internal/errors"
)

// ConflictingServices manage interfaces or addresses on their own and
// should be disabled on a router.
var ConflictingServices = []string{
	"NetworkManager",
	"cloud-init",
	"wicd",
	"connman",
	"dhclient",
	"isc-dhcp-client",
	"ifupdown",
	"netplan",
}

// CommandExecutor is an interface that abstracts executing commands.
type CommandExecutor interface {
	RunCommand(name string, arg ...string) (string, error)
}

// RealCommandExecutor is a concrete implementation of CommandExecutor using os/exec.
type RealCommandExecutor struct{}

// RunCommand runs a command and returns its combined output.
func (RealCommandExecutor) RunCommand(name string, arg ...string) (string, error) {
	output, err := exec.Command(name, arg...).CombinedOutput()
	if err != nil {
		return string(output), errors.Wrapf(err, errors.KindIO, "command %s %s failed", name, strings.Join(arg, " "))
	}
	return string(output), nil
}

// ServiceChecker queries systemd for unit state.
type ServiceChecker struct {
	exec CommandExecutor
}

// NewServiceChecker returns a ServiceChecker that runs systemctl.
func NewServiceChecker() *ServiceChecker {
	return NewServiceCheckerWith(RealCommandExecutor{})
}

// NewServiceCheckerWith returns a ServiceChecker using the given executor.
func NewServiceCheckerWith(e CommandExecutor) *ServiceChecker {
	return &ServiceChecker{exec: e}
}

// IsActive reports whether `systemctl is-active <name>` succeeds. Any
// failure, including a missing systemctl, counts as inactive.
func (c *ServiceChecker) IsActive(name string) bool {
	out, err := c.exec.RunCommand("systemctl", "is-active", name)
	if err != nil {
		return false
	}
	return strings.TrimSpace(out) == "active"
}

// ActiveConflicts returns the members of ConflictingServices that are running.
func (c *ServiceChecker) ActiveConflicts() []string {
	var active []string
	for _, svc := range ConflictingServices {
		if c.IsActive(svc) {
			active = append(active, svc)
		}
	}
	return active
}
