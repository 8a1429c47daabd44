// Package fs provides the filesystem abstraction used for loading contact
// files and saving shell history, so tests can inject failures.
//
// The main types are:
//   - [FS]: interface for the filesystem operations the address book needs
//   - [File]: interface for open files (satisfied by [os.File])
//   - [Real]: production implementation using [os] package
//   - [Injected]: testing implementation that fails chosen paths
//
// Example usage:
//
//	fsys := fs.NewReal()
//	f, err := fsys.Open("people.txt")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	scanner := bufio.NewScanner(f)
package fs

import (
	"io"
	"os"
)

// File represents an open file for reading.
//
// This interface is satisfied by [os.File] and can be used with all
// standard library functions that accept [io.Reader] or [io.Closer].
type File interface {
	io.ReadCloser

	// Stat returns the [os.FileInfo] for this file. See [os.File.Stat].
	Stat() (os.FileInfo, error)
}

// FS defines the filesystem operations used by the address book.
//
// All methods mirror their [os] package equivalents but can be intercepted
// for testing with fault injection.
type FS interface {
	// Open opens a file for reading. See [os.Open].
	Open(path string) (File, error)

	// ReadFile reads an entire file into memory. See [os.ReadFile].
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic replaces path with the contents of r.
	// Uses a temp file + rename so readers never see a partial file.
	WriteFileAtomic(path string, r io.Reader) error

	// Stat returns file info. See [os.Stat].
	// Returns [os.ErrNotExist] if file doesn't exist.
	Stat(path string) (os.FileInfo, error)
}

// Compile-time interface checks.
var (
	_ File = (*os.File)(nil)
	_ FS   = (*Real)(nil)
	_ FS   = (*Injected)(nil)
)
