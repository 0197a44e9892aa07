// Package fs provides a testable filesystem interface for tiktok-collection-dl.
package fs

import (
	"io/fs"
	"os"
)

// FS is the interface for filesystem operations used by commands.
// Tests provide in-memory stubs; production uses RealFS.
type FS interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Stat(path string) (fs.FileInfo, error)
	Remove(path string) error
}

// RealFS implements FS using the os package.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

func (RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (RealFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (RealFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (RealFS) Remove(path string) error {
	return os.Remove(path)
}
