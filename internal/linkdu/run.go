package linkdu

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gobwas/glob"

	"github.com/idelchi/linkdu/internal/identity"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Progress describes the state of the root being scanned.
type Progress struct {
	// Root is the root being scanned.
	Root string
	// Files is the number of files accepted so far.
	Files uint64
	// Bytes is the running total.
	Bytes uint64
	// Done is set on the final update of a root, before its total is written.
	Done bool
}

// ProgressFunc receives progress updates.
type ProgressFunc func(Progress)

// progressReporter throttles calls to a ProgressFunc.
type progressReporter struct {
	hook     ProgressFunc
	interval time.Duration
	last     time.Time
}

func newProgressReporter(hook ProgressFunc, interval time.Duration) *progressReporter {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	return &progressReporter{hook: hook, interval: interval, last: time.Now()}
}

// update invokes the hook if the interval has elapsed since the last call.
func (p *progressReporter) update(sum RootSummary) {
	if p.hook == nil {
		return
	}

	if now := time.Now(); now.Sub(p.last) >= p.interval {
		p.last = now
		p.hook(Progress{Root: sum.Root, Files: sum.FileCount, Bytes: sum.Total})
	}
}

// finish always invokes the hook with Done set.
func (p *progressReporter) finish(sum RootSummary) {
	if p.hook == nil {
		return
	}

	p.hook(Progress{Root: sum.Root, Files: sum.FileCount, Bytes: sum.Total, Done: true})
}

// compileExcludes compiles every exclusion pattern.
func compileExcludes(patterns []string) ([]glob.Glob, error) {
	excludes := make([]glob.Glob, 0, len(patterns))

	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling exclusion pattern %q: %w", p, err)
		}

		excludes = append(excludes, g)
	}

	return excludes, nil
}

// Run reports the disk usage of every root in opt.Roots to w, one root at a time.
//
// For each root a fresh Walker, with its own identity sets, produces the
// accepted files. In listing mode every file is written as soon as it is
// produced and the root total is not written; otherwise only the total is.
//
// Errors on individual entries never stop the run. The returned error is
// either an invalid exclusion pattern, reported before anything is walked,
// or the first write error on w.
func Run(ctx context.Context, opt Options, w io.Writer, progressHook ProgressFunc) ([]RootSummary, error) {
	log := opt.logger()

	if len(opt.Roots) == 0 {
		opt.Roots = []string{"."}
	}

	excludes, err := compileExcludes(opt.Excludes)
	if err != nil {
		return nil, err
	}

	formatter := opt.Formatter()
	summaries := make([]RootSummary, 0, len(opt.Roots))

	for _, root := range opt.Roots {
		walker := NewWalker(ctx, root, WalkerConfig{
			AllowDuplicates: opt.AllowDuplicates,
			Resolver:        identity.Stat,
			Excludes:        excludes,
			Logger:          log,
		})

		summary, err := aggregate(walker, root, opt.ListFiles(), formatter, w, progressHook)
		if err != nil {
			return summaries, err
		}

		if err := walker.Err(); err != nil {
			log.Debug("root not walked", "root", root, "err", err)
		}

		log.Debug("root done",
			"root", root,
			"files", summary.FileCount,
			"bytes", summary.Total,
			"errors", summary.ErrorCount,
			"elapsed", summary.Elapsed,
		)

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// aggregate sums the walker's records into a RootSummary, writing file lines
// when list is set and the total line otherwise.
func aggregate(
	walker *Walker,
	root string,
	list bool,
	formatter Formatter,
	w io.Writer,
	progressHook ProgressFunc,
) (RootSummary, error) {
	defer walker.Close()

	start := time.Now()
	progress := newProgressReporter(progressHook, DefaultProgressInterval)
	summary := RootSummary{Root: root}

	for rec := range walker.Records() {
		summary.Total += rec.Length
		summary.FileCount++

		if list {
			if _, err := fmt.Fprintln(w, formatter.File(rec)); err != nil {
				return summary, fmt.Errorf("writing output: %w", err)
			}
		}

		progress.update(summary)
	}

	summary.ErrorCount = walker.Errors()
	summary.Elapsed = time.Since(start)

	progress.finish(summary)

	if !list {
		if _, err := fmt.Fprintln(w, formatter.Summary(summary)); err != nil {
			return summary, fmt.Errorf("writing output: %w", err)
		}
	}

	return summary, nil
}
