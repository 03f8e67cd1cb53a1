package filesystem

import (
	"io"
	"os"
)

// GacheFs lets gache stores (history, release checks) persist through the active backend.
type GacheFs struct{}

// OpenFile implements gache.FileSystem.
func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

// MkdirAll implements gache.FileSystem.
func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
