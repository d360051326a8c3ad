package prompt

import "fmt"

// InvalidSizeError reports a --max-size value that does not match the
// <number><unit> format. It is fatal and raised before any filesystem work.
type InvalidSizeError struct {
	Value string // The offending size string.
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid size format: %q (expected <number><unit>, e.g. 500kb, 1mb)", e.Value)
}

// FileStatError reports a selected file whose metadata lookup failed. The
// file is dropped from the candidate list and the run continues.
type FileStatError struct {
	Path string
	Err  error
}

func (e *FileStatError) Error() string {
	return fmt.Sprintf("failed to stat file %s: %v", e.Path, e.Err)
}

func (e *FileStatError) Unwrap() error { return e.Err }

// FileReadError reports a selected file that could not be read. The file is
// recorded as skipped and the run continues.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read file %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }
