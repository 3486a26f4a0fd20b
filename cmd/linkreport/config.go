// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/govdata/linkreport/internal/config"
)

// Config command flags.
var (
	configGlobal bool
	configForce  bool
)

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and create linkreport configuration",
	Long: `View and create linkreport configuration.

Linkreport reads .linkreport.yaml (or .linkreport.toml) from the working
directory, or the file given by --config. A global config at
~/.config/linkreport/config.yaml provides defaults. Command line flags
override both.`,
}

// configShowCmd prints the effective configuration.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

// configInitCmd writes the default configuration to a file.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configGlobal, "global", false, "write the global config file")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(&config.Config{})
	if err != nil {
		return err
	}
	if cfg.Redis.Password != "" {
		cfg.Redis.Password = "[REDACTED]"
	}
	if err := config.Write(cmd.OutOrStdout(), cfg); err != nil {
		return exitError(ExitOutput, "linkreport: %v", err)
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := config.FileName
	if configGlobal {
		path = config.GlobalConfigPath()
	}
	if _, err := cmdFS.Stat(path); err == nil && !configForce {
		return exitError(ExitInvalidArgs, "linkreport: %s already exists (use --force to overwrite)", path)
	}

	var buf bytes.Buffer
	if err := config.Write(&buf, config.Defaults()); err != nil {
		return exitError(ExitOutput, "linkreport: %v", err)
	}
	if err := cmdFS.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return exitError(ExitOutput, "linkreport: %v", err)
	}
	if err := cmdFS.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return exitError(ExitOutput, "linkreport: cannot write %s (%v)", path, err)
	}

	green := color.New(color.FgGreen).SprintFunc()
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", green("Wrote"), path)
	return nil
}
