package book

import (
	"errors"
	"strconv"
	"strings"
)

// Store and registry errors.
var (
	ErrDuplicatePerson = errors.New("person already exists in the address book")
	ErrPersonNotFound  = errors.New("person not found in the address book")
	ErrDuplicateTag    = errors.New("tag already exists")
	ErrTagNotFound     = errors.New("tag not found")
)

// Batch load errors. They are returned wrapped in a [*LoadError].
var (
	ErrFileAccess     = errors.New("unable to load file")
	ErrMalformedLine  = errors.New("line does not match the add command format")
	ErrBatchDuplicate = errors.New("there exists duplicate people in the file")
)

// LoadError describes a failed batch load.
//
// Err is one of [ErrFileAccess], [ErrMalformedLine] or [ErrBatchDuplicate],
// followed by the underlying cause:
//
//	line does not match the add command format: parser: no match (file=people.txt line=2 text="oops")
//
// Use [errors.As] to read the location:
//
//	var loadErr *book.LoadError
//	if errors.As(err, &loadErr) {
//	    fmt.Println(loadErr.Line, loadErr.Text)
//	}
type LoadError struct {
	// Path is the file being loaded. Empty for in-memory sources.
	Path string

	// Line is the 1-based line number, or 0 when no single line is at fault.
	Line int

	// Text is the raw content of Line.
	Text string

	// Err is the cause.
	Err error
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}

	cause := ""
	if e.Err != nil {
		cause = e.Err.Error()
	}

	var parts []string

	if e.Path != "" {
		parts = append(parts, "file="+e.Path)
	}

	if e.Line > 0 {
		parts = append(parts, "line="+strconv.Itoa(e.Line))
		parts = append(parts, "text="+strconv.Quote(e.Text))
	}

	if len(parts) == 0 {
		return cause
	}

	return cause + " (" + strings.Join(parts, " ") + ")"
}

// Unwrap returns the cause for use with [errors.Is] and [errors.As].
func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}
