package stats_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain fails the package if any trial worker outlives its Run.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
