package linkdu

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Formatter renders file records and root summaries as single lines
// (without the trailing newline).
type Formatter struct {
	// Prefix is stripped from the start of displayed file paths. Empty means no truncation.
	Prefix string
	// Flamegraph renders file lines as "a;b;c length".
	Flamegraph bool
	// SizeFirst renders "length label" instead of "label length".
	SizeFirst bool
	// HumanReadable renders lengths with binary unit suffixes.
	HumanReadable bool
}

// File renders a file record.
func (f Formatter) File(rec FileRecord) string {
	label := trimLeading(rec.Path, f.Prefix)

	if f.Flamegraph {
		folded := strings.Map(func(r rune) rune {
			if r == '/' || r == '\\' {
				return ';'
			}

			return r
		}, label)

		// Flamegraph consumers expect raw byte counts.
		return strings.TrimLeft(folded, ";") + " " + strconv.FormatUint(rec.Length, 10)
	}

	return f.line(label, rec.Length)
}

// Summary renders a root total. Flamegraph folding never applies here.
func (f Formatter) Summary(sum RootSummary) string {
	return f.line(sum.Root, sum.Total)
}

func (f Formatter) line(label string, length uint64) string {
	size := f.size(length)

	if f.SizeFirst {
		return size + " " + label
	}

	return label + " " + size
}

func (f Formatter) size(length uint64) string {
	if f.HumanReadable {
		return humanize.IBytes(length)
	}

	return strconv.FormatUint(length, 10)
}

// trimLeading removes every leading occurrence of prefix from s, with the
// semantics of Rust's str::trim_start_matches used by the du tool linkdu ports.
// The trim works on the string, not on path segments: a root of "x/" turns
// "x/x/file" into "file". Occurrences after the first non-matching byte are kept.
func trimLeading(s, prefix string) string {
	if prefix == "" {
		return s
	}

	for strings.HasPrefix(s, prefix) {
		s = s[len(prefix):]
	}

	return s
}
