// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

// Package redact provides utilities to strip sensitive values from strings
// before they appear in output, logs, or finding evidence.
package redact

import (
	"os"
	"regexp"
	"strings"
	"sync"
)

// sensitiveEnvVars lists environment variable names whose values must never
// appear in output.
var sensitiveEnvVars = []string{
	"ANTHROPIC_API_KEY",
	"GITHUB_TOKEN",
	"GH_TOKEN",
	"UPLIFT_TOKEN",
}

var (
	cachedSecrets []string
	cacheOnce     sync.Once
)

func loadSecrets() {
	for _, envVar := range sensitiveEnvVars {
		val := os.Getenv(envVar)
		if val != "" && len(val) >= 4 {
			cachedSecrets = append(cachedSecrets, val)
		}
	}
}

// resetCache resets the cached secrets. Used by tests that change env vars
// between calls.
func resetCache() {
	cachedSecrets = nil
	cacheOnce = sync.Once{}
}

// ResetForTest resets the cached secrets so tests in other packages can
// verify redaction behavior after setting env vars with t.Setenv.
func ResetForTest() { resetCache() }

// String replaces any occurrence of a known sensitive environment variable
// value with "[REDACTED]". Returns the original string if no secrets are
// found. Secret values are cached on first call.
func String(s string) string {
	cacheOnce.Do(loadSecrets)
	for _, secret := range cachedSecrets {
		s = strings.ReplaceAll(s, secret, "[REDACTED]")
	}
	return s
}

// quotedValue matches string literals of eight or more characters, the same
// shape the hardcoded-secret detector flags.
var quotedValue = regexp.MustCompile(`(['"])[^'"]{8,}['"]`)

// awsKey matches AWS access key IDs.
var awsKey = regexp.MustCompile(`AKIA[0-9A-Z]{16}`)

// Value masks credential material inside a snippet so findings can show the
// offending line without republishing the secret.
func Value(s string) string {
	s = quotedValue.ReplaceAllString(s, "$1[REDACTED]$1")
	s = awsKey.ReplaceAllString(s, "AKIA[REDACTED]")
	return String(s)
}
