package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/idelchi/linkdu/internal/linkdu"
)

// BufferSize is the size of the output buffer enabled by --buffer.
const BufferSize = 1024

func logic(options linkdu.Options, stdout, stderr io.Writer) (err error) {
	logger := log.NewWithOptions(stderr, log.Options{
		Prefix: "linkdu",
		Level:  log.WarnLevel,
	})

	if options.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	options.Logger = logger

	out := stdout

	if options.Buffer {
		buffered := bufio.NewWriterSize(stdout, BufferSize)

		defer func() {
			if flushErr := buffered.Flush(); flushErr != nil && err == nil {
				err = fmt.Errorf("writing output: %w", flushErr)
			}
		}()

		out = buffered
	}

	enableProgress := !options.ListFiles() &&
		!options.Debug &&
		isTerminal(stderr)

	var progressHook linkdu.ProgressFunc

	if enableProgress {
		status := newStatusLine(stderr)

		// Hide cursor for in-place updates; restore on exit.
		status.hideCursor()
		defer status.showCursor()

		progressHook = status.update
	}

	ctx := context.Background()

	_, err = linkdu.Run(ctx, options, out, progressHook)

	return err
}
