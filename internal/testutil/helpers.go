// Package testutil holds helpers shared by tests that touch the running host.
package testutil

import (
	"os"
	"testing"

	"nifty-filter/internal/brand"
)

// HostTestEnv enables tests that need real netlink, sysfs or nftables access.
var HostTestEnv = brand.EnvVar("HOST_TEST")

// RequireHost skips the test unless NIFTY_FILTER_HOST_TEST is set.
func RequireHost(t *testing.T) {
	t.Helper()
	if os.Getenv(HostTestEnv) == "" {
		t.Skipf("Skipping test: requires %s", HostTestEnv)
	}
}
