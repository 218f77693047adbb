// Package linkdu computes disk usage for one or more roots without counting
// the same physical file or directory twice.
//
// Every root is walked with fastwalk, one entry at a time, behind a pull
// iterator (Walker). Directories and regular files are resolved to an
// identity.Key; a directory whose key was already entered is pruned and a file
// whose key was already counted is dropped. Entries whose identity cannot be
// resolved are never dropped. The accepted records are summed per root and
// rendered by a Formatter as plain, size-first or flamegraph lines.
package linkdu
