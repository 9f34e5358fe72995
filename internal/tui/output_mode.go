package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode selects how the list is presented.
type OutputMode int

const (
	// OutputModePlain renders the list once and exits.
	OutputModePlain OutputMode = iota
	// OutputModeInteractive runs the Bubble Tea program with mouse support.
	OutputModeInteractive
)

func (m OutputMode) String() string {
	switch m {
	case OutputModeInteractive:
		return "interactive"
	case OutputModePlain:
		return "plain"
	default:
		return "unknown"
	}
}

// DetectOutputMode returns interactive only when w is a terminal and plain
// output was not forced.
func DetectOutputMode(w io.Writer, forcePlain bool) OutputMode {
	if forcePlain {
		return OutputModePlain
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return OutputModePlain
	}
	return OutputModeInteractive
}
