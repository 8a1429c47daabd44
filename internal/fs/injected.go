package fs

import (
	"errors"
	"io"
	"os"
	"sync"
)

// ErrInjected is the default cause returned by [Injected] for failing paths.
var ErrInjected = errors.New("injected failure")

// InjectedError marks an error as intentionally injected by [Injected].
//
// It wraps the underlying error so errors.Is/As continue to work.
type InjectedError struct {
	Op   string
	Path string
	Err  error
}

func (e *InjectedError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *InjectedError) Unwrap() error {
	return e.Err
}

// IsInjected reports whether err (or any wrapped error) was injected.
// Returns false if err is nil.
func IsInjected(err error) bool {
	var injected *InjectedError

	return errors.As(err, &injected)
}

// Injected wraps another [FS] and fails every operation on chosen paths.
// Paths that were not registered with [Injected.Fail] pass through.
//
// Safe for concurrent use.
type Injected struct {
	inner FS

	mu    sync.Mutex
	fails map[string]error
}

// NewInjected wraps inner. A nil inner uses [Real].
func NewInjected(inner FS) *Injected {
	if inner == nil {
		inner = NewReal()
	}

	return &Injected{inner: inner, fails: map[string]error{}}
}

// Fail makes every operation on path return err. A nil err uses [ErrInjected].
func (f *Injected) Fail(path string, err error) {
	if err == nil {
		err = ErrInjected
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.fails[path] = err
}

// Heal removes a failure registered with [Injected.Fail].
func (f *Injected) Heal(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.fails, path)
}

func (f *Injected) Open(path string) (File, error) {
	if err := f.check("open", path); err != nil {
		return nil, err
	}

	return f.inner.Open(path)
}

func (f *Injected) ReadFile(path string) ([]byte, error) {
	if err := f.check("read", path); err != nil {
		return nil, err
	}

	return f.inner.ReadFile(path)
}

func (f *Injected) WriteFileAtomic(path string, r io.Reader) error {
	if err := f.check("write", path); err != nil {
		return err
	}

	return f.inner.WriteFileAtomic(path, r)
}

func (f *Injected) Stat(path string) (os.FileInfo, error) {
	if err := f.check("stat", path); err != nil {
		return nil, err
	}

	return f.inner.Stat(path)
}

func (f *Injected) check(op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err, ok := f.fails[path]
	if !ok {
		return nil
	}

	return &InjectedError{Op: op, Path: path, Err: err}
}
