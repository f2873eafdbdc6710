package flott

import (
	"errors"
	"fmt"
)

// Code identifies the category of a fatal engine failure, mirroring the
// distinct exit codes spec.md §6 asks an external frontend to return for
// each failure class.
type Code int

const (
	// CodeNone indicates success; never attached to a non-nil error.
	CodeNone Code = iota
	// CodeInvalidOption marks a configuration error (spec.md §7).
	CodeInvalidOption
	// CodeInputNotFound marks a missing or unreadable input source.
	CodeInputNotFound
	// CodeAllocFailure marks a resource/allocation failure.
	CodeAllocFailure
	// CodeCreateFailed marks failure to construct an engine instance.
	CodeCreateFailed
	// CodeInternal marks an internal consistency violation (a bug).
	CodeInternal
)

func (c Code) String() string {
	switch c {
	case CodeNone:
		return "none"
	case CodeInvalidOption:
		return "invalid_option"
	case CodeInputNotFound:
		return "input_not_found"
	case CodeAllocFailure:
		return "alloc_failure"
	case CodeCreateFailed:
		return "create_failed"
	case CodeInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// StatusError is a fatal engine error tagged with the Code an external
// frontend should map to a process exit code. Internal consistency
// violations (spec.md §7 "Internal consistency violations") always carry
// CodeInternal and are meant to be reported as bugs, not user errors.
type StatusError struct {
	Code  Code
	Param string
	err   error
}

func (e *StatusError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("flott: %s: %v", e.Code, e.err)
	}
	return fmt.Sprintf("flott: %s (%s): %v", e.Code, e.Param, e.err)
}

func (e *StatusError) Unwrap() error { return e.err }

// newStatus builds a StatusError wrapping msg under the given code.
func newStatus(code Code, param string, msg string) *StatusError {
	return &StatusError{Code: code, Param: param, err: errors.New(msg)}
}

// Sentinel errors callers can compare against with errors.Is.
var (
	// ErrNoInputSources is returned by Run when no input source was
	// ever added to the instance.
	ErrNoInputSources = errors.New("flott: no input sources configured")
	// ErrFrozen is returned by mutating methods called after Run has
	// started, once configuration is frozen (spec.md §3 Lifecycle).
	ErrFrozen = errors.New("flott: instance configuration is frozen")
)
