package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/linkdu/internal/linkdu"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// statusLine renders transient progress on a single terminal line.
type statusLine struct {
	w io.Writer
}

func newStatusLine(w io.Writer) statusLine {
	return statusLine{w: w}
}

func (s statusLine) hideCursor() {
	fmt.Fprint(s.w, "\033[?25l")
}

func (s statusLine) showCursor() {
	fmt.Fprint(s.w, "\033[?25h")
}

// update redraws the line, or clears it once the root is done.
func (s statusLine) update(p linkdu.Progress) {
	if p.Done {
		fmt.Fprint(s.w, "\r\033[2K\r")

		return
	}

	fmt.Fprintf(s.w, "\r\033[2K%s\r", statusMessage(p))
}

// statusMessage formats a progress update.
func statusMessage(p linkdu.Progress) string {
	return fmt.Sprintf("Scanning %s… %d files, %s", p.Root, p.Files, humanize.IBytes(p.Bytes))
}
