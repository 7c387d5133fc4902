package journal

import (
	"errors"
	"testing"
)

func TestDecodeError(t *testing.T) {
	innerErr := errors.New("invalid character 'x'")
	err := &DecodeError{
		Bytes: 42,
		Err:   innerErr,
	}

	expected := "journal blob of 42 bytes is not valid JSON: invalid character 'x'"
	if err.Error() != expected {
		t.Errorf("DecodeError.Error() = %q, want %q", err.Error(), expected)
	}

	// Test Unwrap
	if !errors.Is(err, innerErr) {
		t.Error("errors.Is should find the inner error")
	}
}

func TestWriteError(t *testing.T) {
	innerErr := errors.New("disk full")
	err := &WriteError{
		Err: innerErr,
	}

	expected := "persisting journal failed: disk full"
	if err.Error() != expected {
		t.Errorf("WriteError.Error() = %q, want %q", err.Error(), expected)
	}

	// Should work with errors.Is/errors.As
	if !errors.Is(err, innerErr) {
		t.Error("errors.Is should find the inner error")
	}
}

func TestWriteError_As(t *testing.T) {
	inner := errors.New("backend down")
	var err error = &WriteError{Err: inner}

	var writeErr *WriteError
	if !errors.As(err, &writeErr) {
		t.Fatal("errors.As should match *WriteError")
	}

	if writeErr.Err != inner {
		t.Errorf("WriteError.Err = %v, want %v", writeErr.Err, inner)
	}
}
