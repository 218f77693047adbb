// Package identity resolves filesystem paths to the physical object they name.
//
// A Key is stable for the lifetime of a scan: two paths that yield the same
// Key denote the same directory or file (hard links, or a directory reached
// twice). On Unix the Key is the device and inode pair; on Windows it is the
// volume serial number and the file index.
package identity
