package filesystem

import (
	"io"
	"os"
)

// CacheFs routes gache reads and writes through the active backend.
type CacheFs struct{}

func (CacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (CacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
