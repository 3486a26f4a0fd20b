// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

// Package redact provides utilities to strip sensitive values from strings
// before they appear in output, logs, or error messages.
package redact

import (
	"os"
	"strings"
	"sync"
)

// sensitiveEnvVars lists environment variable names whose values must never
// appear in output.
var sensitiveEnvVars = []string{
	"LINKREPORT_REDIS_PASSWORD",
	"REDIS_PASSWORD",
}

var (
	mu            sync.Mutex
	cachedSecrets []string
	registered    []string
	cacheOnce     sync.Once
)

func loadSecrets() {
	for _, envVar := range sensitiveEnvVars {
		if val := os.Getenv(envVar); len(val) >= 4 {
			cachedSecrets = append(cachedSecrets, val)
		}
	}
}

// Register adds a secret that did not come from the environment, such as a
// password passed on the command line. Values under 4 characters are ignored.
func Register(secret string) {
	if len(secret) < 4 {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	registered = append(registered, secret)
}

// ResetForTest resets the cached and registered secrets so tests can verify
// redaction behavior after setting env vars with t.Setenv.
func ResetForTest() {
	mu.Lock()
	defer mu.Unlock()
	cachedSecrets = nil
	registered = nil
	cacheOnce = sync.Once{}
}

// String replaces any occurrence of a known secret with "[REDACTED]".
// Environment values are cached on first call.
func String(s string) string {
	mu.Lock()
	defer mu.Unlock()
	cacheOnce.Do(loadSecrets)
	for _, secret := range cachedSecrets {
		s = strings.ReplaceAll(s, secret, "[REDACTED]")
	}
	for _, secret := range registered {
		s = strings.ReplaceAll(s, secret, "[REDACTED]")
	}
	return s
}
