//go:build unix

package identity

import (
	"golang.org/x/sys/unix"
)

func stat(path string) (Key, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Key{}, unavailable(path, err)
	}

	return Key{
		Device: uint64(st.Dev), //nolint:gosec,unconvert // Dev is platform-defined but representable in uint64
		Inode:  uint64(st.Ino), //nolint:unconvert // Ino is uint32 on some platforms
	}, nil
}
