//go:build !unix && !windows

package identity

import (
	"errors"
)

func stat(path string) (Key, error) {
	return Key{}, unavailable(path, errors.ErrUnsupported)
}
