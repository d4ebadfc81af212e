package slidedeck_test

import (
	"testing"

	"go.uber.org/goleak"
)

// Parallel assembly and Markdown parsing start goroutines; none may outlive a test.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
