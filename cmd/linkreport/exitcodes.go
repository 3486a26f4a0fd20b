// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for the linkreport CLI.
const (
	ExitOK          = 0 // Report written.
	ExitInvalidArgs = 1 // Invalid arguments or configuration.
	ExitDataSource  = 2 // Redis or the input file could not be read.
	ExitOutput      = 3 // Output could not be rendered or written.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitDataSource:
			msg = "linkreport: cannot read link check data"
		case ExitOutput:
			msg = "linkreport: cannot write output"
		default:
			msg = "linkreport: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
