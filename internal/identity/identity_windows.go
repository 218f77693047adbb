//go:build windows

package identity

import (
	"golang.org/x/sys/windows"
)

func stat(path string) (Key, error) {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return Key{}, unavailable(path, err)
	}

	// Zero access rights are enough to query file information, and
	// FILE_FLAG_BACKUP_SEMANTICS is required to open directories.
	handle, err := windows.CreateFile(
		name,
		0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS,
		0,
	)
	if err != nil {
		return Key{}, unavailable(path, err)
	}
	defer windows.CloseHandle(handle) //nolint:errcheck // Read-only handle

	var info windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(handle, &info); err != nil {
		return Key{}, unavailable(path, err)
	}

	return Key{
		Device: uint64(info.VolumeSerialNumber),
		Inode:  uint64(info.FileIndexHigh)<<32 | uint64(info.FileIndexLow),
	}, nil
}
