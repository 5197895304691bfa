// Package testutil provides testing utilities shared by indicator packages:
// goroutine leak checks and a manual clock.
package testutil

import (
	"testing"

	"go.uber.org/goleak"
)

// VerifyNoLeaks should be deferred at the start of tests that spawn goroutines.
// It verifies that no goroutines were leaked during the test.
func VerifyNoLeaks(t *testing.T, opts ...goleak.Option) {
	t.Helper()
	goleak.VerifyNone(t, opts...)
}

// LeakCheck snapshots the goroutines running now, typically after a Fyne test app
// has been created. Defer the returned function to verify that the test started
// nothing that is still running at the end.
func LeakCheck(t *testing.T) func() {
	t.Helper()
	opts := []goleak.Option{
		goleak.IgnoreCurrent(),
		// Fyne starts its animation runner lazily on first use.
		goleak.IgnoreTopFunction("fyne.io/fyne/v2/internal/animation.(*Runner).runAnimations"),
	}
	return func() {
		t.Helper()
		VerifyNoLeaks(t, opts...)
	}
}
