// Package filesystem provides the swappable filesystem backend every other package reads and writes through.
//
// The backend is an afero.Afero so tests can run against an in-memory tree.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs switches back to the operating system filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a fresh in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// Use installs an arbitrary afero filesystem, e.g. a read-only or base-path wrapper.
func Use(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// IsFile reports whether path exists and is a regular file. Lookup errors count as absent.
func IsFile(path string) bool {
	info, err := backend.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
