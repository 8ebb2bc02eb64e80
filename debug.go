package radial

import (
	"fmt"
	"os"
)

// logTransition prints a state change with its cause to stderr.
// Only called when Tracker.debug is true. Transitions are edge events, so
// the formatting cost never lands on the per-frame path.
func logTransition(from, to State, format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[radial] state %v -> %v (%s)\n",
		from, to, fmt.Sprintf(format, args...))
}
