// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package config

import "os"

// Merge layers over on top of base and returns the result. Non-zero fields
// of over win; zero-value fields fall through to base. Neither input is
// modified.
func Merge(base, over *Config) *Config {
	result := *base
	result.Chart.Palette = append([]string(nil), base.Chart.Palette...)

	str(&result.Redis.Addr, over.Redis.Addr)
	str(&result.Redis.Password, over.Redis.Password)
	if over.Redis.DB != 0 {
		result.Redis.DB = over.Redis.DB
	}

	str(&result.Report.Dir, over.Report.Dir)
	str(&result.Report.APIURL, over.Report.APIURL)
	str(&result.Report.DetailURL, over.Report.DetailURL)
	str(&result.Report.Sort, over.Report.Sort)
	str(&result.Report.WorkingLabel, over.Report.WorkingLabel)
	str(&result.Report.BrokenLabel, over.Report.BrokenLabel)

	if over.Chart.Width > 0 {
		result.Chart.Width = over.Chart.Width
	}
	if over.Chart.Height > 0 {
		result.Chart.Height = over.Chart.Height
	}
	if len(over.Chart.Palette) > 0 {
		result.Chart.Palette = append([]string(nil), over.Chart.Palette...)
	}

	str(&result.Tables.TriggerTag, over.Tables.TriggerTag)
	str(&result.Tables.TriggerClass, over.Tables.TriggerClass)
	str(&result.Tables.SortAttr, over.Tables.SortAttr)
	str(&result.Tables.SumClass, over.Tables.SumClass)
	str(&result.Tables.SumField, over.Tables.SumField)
	str(&result.Tables.SummaryID, over.Tables.SummaryID)

	return &result
}

// Resolve builds the effective configuration: defaults, then the global
// file, then the project file, then CLI values, then the password from the
// environment if one is set.
func Resolve(global, file, cli *Config) *Config {
	cfg := Merge(Merge(Merge(Defaults(), global), file), cli)
	if pw := os.Getenv(PasswordEnv); pw != "" && cli.Redis.Password == "" {
		cfg.Redis.Password = pw
	}
	return cfg
}

func str(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
