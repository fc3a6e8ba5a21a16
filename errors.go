package mocat

import "errors"

// Error kinds reported by OpenFile and OpenBytes. The messages are
// stable; callers select kinds with errors.Is.
var (
	// ErrInvalidArgs flags nil or obviously malformed parameters.
	ErrInvalidArgs = errors.New("invalid arguments")

	// ErrFileNotFound flags a path that could not be opened.
	ErrFileNotFound = errors.New("file not found")

	// ErrIO flags a read that returned fewer bytes than requested.
	ErrIO = errors.New("I/O error")

	// ErrInvalidFormat flags a wrong magic word or any offset/length
	// escaping the buffer.
	ErrInvalidFormat = errors.New("invalid MO file format")

	// ErrMemory flags an internal allocation failure. Present for
	// surface completeness; Go reports allocation failure by aborting,
	// so this kind is not produced by this implementation.
	ErrMemory = errors.New("memory allocation failed")
)
