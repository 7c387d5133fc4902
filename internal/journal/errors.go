package journal

import "fmt"

// DecodeError indicates the stored journal blob could not be decoded
type DecodeError struct {
	Bytes int
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("journal blob of %d bytes is not valid JSON: %v", e.Bytes, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// WriteError indicates the journal could not be persisted. The change
// that failed to persist is kept in memory.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("persisting journal failed: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
