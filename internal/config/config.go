// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

// Package config handles .linkreport.yaml and .linkreport.toml files.
package config

// Config represents the contents of a linkreport configuration file.
type Config struct {
	Redis  RedisConfig  `yaml:"redis,omitempty" toml:"redis"`
	Report ReportConfig `yaml:"report,omitempty" toml:"report"`
	Chart  ChartConfig  `yaml:"chart,omitempty" toml:"chart"`
	Tables TablesConfig `yaml:"tables,omitempty" toml:"tables"`
}

// RedisConfig locates the link checker database.
type RedisConfig struct {
	Addr     string `yaml:"addr,omitempty" toml:"addr"`
	Password string `yaml:"password,omitempty" toml:"password"`
	DB       int    `yaml:"db,omitempty" toml:"db"`
}

// ReportConfig controls the generated pages.
type ReportConfig struct {
	Dir          string `yaml:"dir,omitempty" toml:"dir"`
	APIURL       string `yaml:"api_url,omitempty" toml:"api_url"`
	DetailURL    string `yaml:"detail_url,omitempty" toml:"detail_url"`
	Sort         string `yaml:"sort,omitempty" toml:"sort"`
	WorkingLabel string `yaml:"working_label,omitempty" toml:"working_label"`
	BrokenLabel  string `yaml:"broken_label,omitempty" toml:"broken_label"`
}

// ChartConfig controls the pie chart canvas.
type ChartConfig struct {
	Width   int      `yaml:"width,omitempty" toml:"width"`
	Height  int      `yaml:"height,omitempty" toml:"height"`
	Palette []string `yaml:"palette,omitempty" toml:"palette"`
}

// TablesConfig names the markup conventions of enhanced tables.
type TablesConfig struct {
	TriggerTag   string `yaml:"trigger_tag,omitempty" toml:"trigger_tag"`
	TriggerClass string `yaml:"trigger_class,omitempty" toml:"trigger_class"`
	SortAttr     string `yaml:"sort_attr,omitempty" toml:"sort_attr"`
	SumClass     string `yaml:"sum_class,omitempty" toml:"sum_class"`
	SumField     string `yaml:"sum_field,omitempty" toml:"sum_field"`
	SummaryID    string `yaml:"summary_id,omitempty" toml:"summary_id"`
}

// FileName is the YAML config file looked up in the working directory.
const FileName = ".linkreport.yaml"

// TOMLFileName is the TOML alternative to FileName.
const TOMLFileName = ".linkreport.toml"

// PasswordEnv overrides redis.password when set.
const PasswordEnv = "LINKREPORT_REDIS_PASSWORD"

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Redis: RedisConfig{Addr: "localhost:6379"},
		Report: ReportConfig{
			Dir:          "report",
			Sort:         "brokenrecords:desc",
			WorkingLabel: "Metadaten unversehrt",
			BrokenLabel:  "Metadaten mit toten Links",
		},
		Chart: ChartConfig{Width: 250, Height: 250},
		Tables: TablesConfig{
			TriggerTag:   "button",
			TriggerClass: "sort",
			SortAttr:     "data-sort",
			SumClass:     "has-sum",
			SumField:     "brokenrecords",
			SummaryID:    "sumofdeadlinks",
		},
	}
}
