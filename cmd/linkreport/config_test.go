// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShow_Defaults(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"config", "show"})
	require.NoError(t, cmd.Execute())

	out := stdout.String()
	assert.Contains(t, out, "addr: localhost:6379")
	assert.Contains(t, out, "sort: brokenrecords:desc")
	assert.Contains(t, out, "summary_id: sumofdeadlinks")
}

func TestConfigShow_RedactsPassword(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	t.Setenv("LINKREPORT_REDIS_PASSWORD", "very-secret")
	cmd.SetArgs([]string{"config", "show"})
	require.NoError(t, cmd.Execute())

	assert.NotContains(t, stdout.String(), "very-secret")
	assert.Contains(t, stdout.String(), "[REDACTED]")
}

func TestConfigShow_InvalidFile(t *testing.T) {
	cmd, _, _ := newTestCmd(t)
	path := writeTestFile(t, t.TempDir(), "bad.yaml", "chart:\n  palette: [red]\n")
	cmd.SetArgs([]string{"config", "show", "--config", path})

	ece := requireExitCode(t, cmd.Execute(), ExitInvalidArgs)
	assert.Contains(t, ece.Error(), "chart.palette[0]")
}

func TestConfigInit(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cmd.SetArgs([]string{"config", "init", "--no-color"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "Wrote .linkreport.yaml")
	assert.Contains(t, readTestFile(t, filepath.Join(dir, ".linkreport.yaml")), "working_label: Metadaten unversehrt")

	cmd, _, _ = newTestCmd(t)
	cmd.SetArgs([]string{"config", "init"})
	ece := requireExitCode(t, cmd.Execute(), ExitInvalidArgs)
	assert.Contains(t, ece.Error(), "already exists")

	cmd, _, _ = newTestCmd(t)
	cmd.SetArgs([]string{"config", "init", "--force"})
	require.NoError(t, cmd.Execute())
}

func TestConfigInit_Global(t *testing.T) {
	cmd, _, _ := newTestCmd(t)
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	cmd.SetArgs([]string{"config", "init", "--global"})
	require.NoError(t, cmd.Execute())
	assert.FileExists(t, filepath.Join(xdg, "linkreport", "config.yaml"))
}
