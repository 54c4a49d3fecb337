// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for the uplift CLI.
const (
	ExitOK           = 0 // Analysis succeeded.
	ExitInvalidArgs  = 1 // Invalid arguments or bad path.
	ExitDegraded     = 2 // A fallback strategy produced the result.
	ExitTotalFailure = 3 // Every strategy failed, no result produced.
)

// exitCodeError carries a process exit code through cobra's error return.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. An empty format leaves the message
// blank so main prints nothing before exiting.
func exitError(code int, format string, args ...any) *exitCodeError {
	return &exitCodeError{code: code, msg: fmt.Sprintf(format, args...)}
}
