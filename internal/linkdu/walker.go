package linkdu

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/charlievieth/fastwalk"
	"github.com/charmbracelet/log"
	"github.com/gobwas/glob"

	"github.com/idelchi/linkdu/internal/identity"
)

// WalkerConfig configures a Walker.
type WalkerConfig struct {
	// AllowDuplicates disables identity deduplication.
	AllowDuplicates bool
	// Resolver maps paths to identities. Defaults to identity.Stat.
	Resolver identity.Resolver
	// Excludes are matched against the slash path and the base name of every entry below the root.
	Excludes []glob.Glob
	// Logger receives debug output. A nil Logger discards it.
	Logger *log.Logger
}

// visited holds the identities seen during the walk of a single root.
type visited struct {
	dirs  map[identity.Key]struct{}
	files map[identity.Key]struct{}
}

func newVisited() *visited {
	return &visited{
		dirs:  make(map[identity.Key]struct{}),
		files: make(map[identity.Key]struct{}),
	}
}

// insert adds key to set and reports whether it was absent.
func insert(set map[identity.Key]struct{}, key identity.Key) bool {
	if _, ok := set[key]; ok {
		return false
	}

	set[key] = struct{}{}

	return true
}

// Walker yields the regular files reachable from a root, one FileRecord per
// call to Next. The traversal starts on the first call to Next and is
// suspended between calls: no filesystem access happens while the caller
// holds a record.
//
// Entries are reported in directory read order. Symbolic links are never
// followed below the root. Errors on individual entries are counted and
// otherwise ignored.
//
// A Walker is not safe for concurrent use and cannot be restarted.
type Walker struct {
	root     string
	resolver identity.Resolver
	excludes []glob.Glob
	log      *log.Logger
	seen     *visited // nil when duplicates are allowed

	ctx    context.Context //nolint:containedctx // Bound to the lifetime of the walk goroutine
	cancel context.CancelFunc

	started  bool
	closed   bool
	rootSeen bool
	demand   chan struct{}
	records  chan FileRecord
	done     chan struct{}

	err    error
	errors uint64
}

// NewWalker creates a Walker for root. The root string is used verbatim as
// the prefix of every reported path.
func NewWalker(ctx context.Context, root string, conf WalkerConfig) *Walker {
	ctx, cancel := context.WithCancel(ctx)

	w := &Walker{
		root:     root,
		resolver: conf.Resolver,
		excludes: conf.Excludes,
		log:      conf.Logger,
		ctx:      ctx,
		cancel:   cancel,
		demand:   make(chan struct{}),
		records:  make(chan FileRecord),
		done:     make(chan struct{}),
	}

	if w.resolver == nil {
		w.resolver = identity.Stat
	}

	if w.log == nil {
		w.log = log.New(io.Discard)
	}

	if !conf.AllowDuplicates {
		w.seen = newVisited()
	}

	return w
}

// Next returns the next accepted file. The boolean is false once the walk is
// exhausted or the Walker was closed.
func (w *Walker) Next() (FileRecord, bool) {
	if w.closed {
		return FileRecord{}, false
	}

	if !w.started {
		w.started = true

		go w.run()
	}

	select {
	case w.demand <- struct{}{}:
	case <-w.done:
		return FileRecord{}, false
	}

	rec, ok := <-w.records

	return rec, ok
}

// Records returns the remaining files as a sequence. The Walker is closed
// when the iteration ends.
func (w *Walker) Records() iter.Seq[FileRecord] {
	return func(yield func(FileRecord) bool) {
		defer w.Close()

		for {
			rec, ok := w.Next()
			if !ok || !yield(rec) {
				return
			}
		}
	}
}

// Close stops the walk and waits for it to wind down. It is safe to call
// Close more than once.
func (w *Walker) Close() {
	w.cancel()

	if w.started && !w.closed {
		<-w.done
	}

	w.closed = true
}

// Err returns the error that prevented the root from being walked, if any.
// It is only meaningful after Next has returned false.
func (w *Walker) Err() error {
	return w.err
}

// Errors returns the number of entries skipped because of an error.
// It is only meaningful after Next has returned false.
func (w *Walker) Errors() uint64 {
	return w.errors
}

func (w *Walker) run() {
	defer close(w.done)
	defer close(w.records)

	select {
	case <-w.demand:
	case <-w.ctx.Done():
		return
	}

	w.err = w.walk()
}

func (w *Walker) walk() error {
	info, err := os.Stat(w.root)
	if err != nil {
		w.errors++

		return fmt.Errorf("accessing root %q: %w", w.root, err)
	}

	if !info.IsDir() {
		if !info.Mode().IsRegular() || !w.acceptFile(w.root) {
			return nil
		}

		return w.emit(FileRecord{Path: w.root, Length: uint64(info.Size())}) //nolint:gosec // Sizes are never negative
	}

	// Configure fastwalk: sequential, never following symlinks
	conf := &fastwalk.Config{
		Follow:     false,
		NumWorkers: 1,
	}

	err = fastwalk.Walk(conf, w.root, w.visit)
	if err != nil {
		return fmt.Errorf("walking %q: %w", w.root, err)
	}

	return nil
}

//nolint:varnamelen // d is standard for DirEntry
func (w *Walker) visit(path string, d fs.DirEntry, err error) error {
	// fastwalk reports the root first, with trailing separators trimmed.
	isRoot := !w.rootSeen
	w.rootSeen = true

	if err != nil {
		w.errors++
		w.log.Debug("skipping unreadable entry", "path", path, "err", err)

		return nil // Silently skip errors
	}

	if err := w.ctx.Err(); err != nil {
		return err
	}

	if !isRoot && w.excluded(path) {
		w.log.Debug("excluding entry", "path", path)

		if d.IsDir() {
			return filepath.SkipDir
		}

		return nil
	}

	if d.IsDir() {
		if !w.enterDir(path) {
			return filepath.SkipDir
		}

		return nil
	}

	info, err := d.Info()
	if err != nil {
		w.errors++
		w.log.Debug("skipping entry without metadata", "path", path, "err", err)

		return nil //nolint:nilerr // Intentionally skip errors during walk
	}

	if !info.Mode().IsRegular() || !w.acceptFile(path) {
		return nil
	}

	return w.emit(FileRecord{Path: path, Length: uint64(info.Size())}) //nolint:gosec // Sizes are never negative
}

// emit hands rec to the consumer and blocks until the next record is requested.
func (w *Walker) emit(rec FileRecord) error {
	select {
	case w.records <- rec:
	case <-w.ctx.Done():
		return w.ctx.Err()
	}

	select {
	case <-w.demand:
		return nil
	case <-w.ctx.Done():
		return w.ctx.Err()
	}
}

// enterDir reports whether the directory at path should be descended into.
func (w *Walker) enterDir(path string) bool {
	if w.seen == nil {
		return true
	}

	key, err := w.resolver.Resolve(path)
	if err != nil {
		w.log.Debug("directory identity unavailable", "path", path, "err", err)

		return true
	}

	if !insert(w.seen.dirs, key) {
		w.log.Debug("skipping duplicate directory", "path", path, "key", key)

		return false
	}

	return true
}

// acceptFile reports whether the regular file at path should be counted.
func (w *Walker) acceptFile(path string) bool {
	if w.seen == nil {
		return true
	}

	key, err := w.resolver.Resolve(path)
	if err != nil {
		w.log.Debug("file identity unavailable", "path", path, "err", err)

		return true
	}

	if !insert(w.seen.files, key) {
		w.log.Debug("skipping duplicate file", "path", path, "key", key)

		return false
	}

	return true
}

// excluded checks if path matches any exclusion glob.
func (w *Walker) excluded(path string) bool {
	if len(w.excludes) == 0 {
		return false
	}

	slashed := filepath.ToSlash(path)
	base := filepath.Base(path)

	for _, g := range w.excludes {
		if g.Match(slashed) || g.Match(base) {
			return true
		}
	}

	return false
}
