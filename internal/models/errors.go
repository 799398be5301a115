package models

import (
	"errors"
	"io/fs"
)

// ErrNotDirectory is returned when a directory read is requested for a plain entry.
var ErrNotDirectory = errors.New("not a directory")

// ErrorKind classifies a per-path failure.
type ErrorKind int

const (
	// KindFilesystem is any OS-level failure not covered by a more specific kind.
	KindFilesystem ErrorKind = iota
	// KindNotFound means the path does not exist.
	KindNotFound
	// KindPermissionDenied means the path exists but could not be accessed.
	KindPermissionDenied
	// KindDirectoryRead means a directory or one of its children could not be read.
	KindDirectoryRead
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindFilesystem:
		return "filesystem"
	case KindNotFound:
		return "not-found"
	case KindPermissionDenied:
		return "permission-denied"
	case KindDirectoryRead:
		return "directory-read"
	default:
		return "unknown"
	}
}

// PathError records a failure to resolve or read one input path.
type PathError struct {
	Path string    // input path the error belongs to
	Kind ErrorKind // classification of the failure
	Err  error     // underlying error
}

// NewPathError classifies err and wraps it for path.
func NewPathError(path string, err error) *PathError {
	return &PathError{
		Path: path,
		Kind: ClassifyError(err),
		Err:  err,
	}
}

// NewDirectoryReadError wraps err as a directory read failure for path.
func NewDirectoryReadError(path string, err error) *PathError {
	return &PathError{
		Path: path,
		Kind: KindDirectoryRead,
		Err:  err,
	}
}

// Error returns "<path>: <message>".
func (e *PathError) Error() string {
	return e.Path + ": " + e.Message()
}

// Message returns the error text without the path prefix.
// For *fs.PathError causes whose path matches, only the OS reason is kept,
// so the path is not printed twice.
func (e *PathError) Message() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) && pathErr.Path == e.Path {
		return pathErr.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error for error wrapping support.
func (e *PathError) Unwrap() error {
	return e.Err
}

// ClassifyError maps an OS error onto an ErrorKind.
func ClassifyError(err error) ErrorKind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	default:
		return KindFilesystem
	}
}
