package linkdu

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// FileRecord represents a single accepted regular file.
type FileRecord struct {
	// Path is the file path as reached from the root.
	Path string
	// Length is the size reported by the file's metadata, in bytes.
	Length uint64
}

// RootSummary holds the aggregate for a single root.
type RootSummary struct {
	// Root is the root exactly as it was given.
	Root string
	// Total is the cumulative length of all accepted files.
	Total uint64
	// FileCount is the number of accepted files.
	FileCount uint64
	// ErrorCount is the number of entries skipped because of an error.
	ErrorCount uint64
	// Elapsed is the time taken to walk the root.
	Elapsed time.Duration
}

// Options configures a disk usage run and CLI behavior.
// It is resolved once before any traversal and never mutated afterwards.
type Options struct {
	// Roots are the paths to analyze, in order.
	Roots []string
	// Buffer indicates whether output writes are buffered.
	Buffer bool
	// AllowDuplicates disables identity deduplication of files and directories.
	AllowDuplicates bool
	// Flamegraph emits a folded per-file listing. Implies listing.
	Flamegraph bool
	// FullName keeps the root prefix in displayed paths.
	FullName bool
	// List emits one line per file instead of the root total.
	List bool
	// SizeFirst prints the size before the label.
	SizeFirst bool
	// HumanReadable prints sizes in powers of 1024.
	HumanReadable bool
	// Excludes contains glob patterns of entries to skip.
	Excludes []string
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Logger receives debug output. A nil Logger discards it.
	Logger *log.Logger
	// Integration indicates whether to output the shell integration script.
	Integration bool
}

// ListFiles reports whether per-file lines are emitted.
func (o Options) ListFiles() bool {
	return o.List || o.Flamegraph
}

// TruncatePrefix returns the prefix stripped from displayed file paths.
// It is only non-empty when exactly one root is given and FullName is unset.
func (o Options) TruncatePrefix() string {
	if len(o.Roots) != 1 || o.FullName {
		return ""
	}

	return o.Roots[0]
}

// Formatter returns the Formatter matching the options.
func (o Options) Formatter() Formatter {
	return Formatter{
		Prefix:        o.TruncatePrefix(),
		Flamegraph:    o.Flamegraph,
		SizeFirst:     o.SizeFirst,
		HumanReadable: o.HumanReadable,
	}
}

// logger returns the configured logger or one that discards everything.
func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return log.New(io.Discard)
}
