// Package testutil bootstraps shared test infrastructure.
package testutil

import (
	"fmt"
	"testing"
	"vlivego/lib/telemetry"
)

// Setup prepares telemetry for a test and returns its cleanup.
func Setup(t testing.TB, name string) func() {
	return telemetry.SetupForTesting(t, fmt.Sprintf("test:%s", name))
}
