package errcode

import (
	"github.com/palantir/stacktrace"
)

// Error codes attached to stacktrace errors. They classify failures for the
// top-level handler and are independent from the process exit status.
const (
	// ArgumentCount - too few or too many command line arguments
	ArgumentCount stacktrace.ErrorCode = iota + 1
	// UnknownCommand - unrecognised or conflicting command
	UnknownCommand
	// InvalidPositiveInteger - part count is not a positive integer
	InvalidPositiveInteger
	// FileOpen - a file could not be opened, stated or read
	FileOpen
	// FileWrite - a file could not be created, written or synced
	FileWrite
	// NoParts - merge was asked to combine zero parts
	NoParts
	// UnevenParts - part lengths can not have been produced by a split
	UnevenParts
)

// IsParseError reports whether err was raised while interpreting command
// line arguments, before any file was touched.
func IsParseError(err error) bool {
	switch stacktrace.GetCode(err) {
	case ArgumentCount, UnknownCommand, InvalidPositiveInteger:
		return true
	}
	return false
}

// ExitCode maps err to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
