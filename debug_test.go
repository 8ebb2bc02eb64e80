package radial

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected to a pipe and returns
// everything written while fn ran.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugLogsTransitions(t *testing.T) {
	tr := NewTracker()
	tr.SetDebug(true)

	output := captureStderr(t, func() {
		tr.HandlePointerDown(pressedSample(100, 100), nil)
		tr.HandleMotion(pressedSample(130, 100), nil)
	})

	if !strings.Contains(output, "[radial] state released -> clicked") {
		t.Errorf("expected the press transition in stderr, got: %q", output)
	}
	if !strings.Contains(output, "clicked -> marking") {
		t.Errorf("expected the drag transition in stderr, got: %q", output)
	}
	if !strings.Contains(output, "threshold") {
		t.Errorf("expected the transition cause in stderr, got: %q", output)
	}
}

func TestDebugOffLogsNothing(t *testing.T) {
	tr := NewTracker()

	output := captureStderr(t, func() {
		tr.HandlePointerDown(pressedSample(100, 100), nil)
		tr.HandleMotion(pressedSample(130, 100), nil)
	})

	if output != "" {
		t.Errorf("expected no output with debug off, got: %q", output)
	}
}

func TestDebugSkipsSameState(t *testing.T) {
	tr := NewTracker()
	tr.SetDebug(true)

	// Motions that do not change the state log nothing.
	output := captureStderr(t, func() {
		tr.HandleMotion(hoverSample(10, 10), nil)
		tr.HandleMotion(hoverSample(20, 20), nil)
	})

	if output != "" {
		t.Errorf("expected no output without a transition, got: %q", output)
	}
}
