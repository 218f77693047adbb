package identity

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned when a path cannot be resolved to a Key,
// for example because it vanished, is a dangling symlink or cannot be opened.
var ErrUnavailable = errors.New("identity unavailable")

// Key identifies a physical filesystem object.
type Key struct {
	// Device is the device (or volume) holding the object.
	Device uint64
	// Inode is the object's number on that device.
	Inode uint64
}

// String returns the key as "device:inode".
func (k Key) String() string {
	return fmt.Sprintf("%d:%d", k.Device, k.Inode)
}

// Resolver maps a path to its Key.
type Resolver interface {
	Resolve(path string) (Key, error)
}

// ResolverFunc adapts an ordinary function to a Resolver.
type ResolverFunc func(path string) (Key, error)

// Resolve calls f(path).
func (f ResolverFunc) Resolve(path string) (Key, error) {
	return f(path)
}

// Stat is the platform resolver. Symlinks are followed, so a link and its
// target share a Key.
//
//nolint:gochecknoglobals // Stateless default resolver
var Stat Resolver = ResolverFunc(stat)

// unavailable wraps a platform error so that it matches ErrUnavailable.
func unavailable(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUnavailable, path, err)
}
