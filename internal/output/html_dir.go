// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/govdata/linkreport/internal/dom"
	"github.com/govdata/linkreport/internal/linkcheck"
)

// StylesheetPath is the stylesheet location relative to the report directory.
const StylesheetPath = "assets/report.css"

// WriteDir builds the report and writes it to dir as index.html,
// linkchecker.html and assets/report.css. Files are written concurrently;
// the first failure cancels the rest.
func (g *Generator) WriteDir(ctx context.Context, dir string, st *linkcheck.Stats) ([]*Page, error) {
	pages, err := g.Build(st)
	if err != nil {
		return nil, err
	}

	assetsDir := filepath.Join(dir, filepath.Dir(StylesheetPath))
	if err := g.fs.MkdirAll(assetsDir, 0o750); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return g.writeFile(ctx, filepath.Join(dir, StylesheetPath), []byte(reportCSS))
	})
	for _, page := range pages {
		page := page
		eg.Go(func() error {
			var buf bytes.Buffer
			if err := dom.Render(&buf, page.Doc); err != nil {
				return fmt.Errorf("render %s: %w", page.Name, err)
			}
			return g.writeFile(ctx, filepath.Join(dir, page.Name), buf.Bytes())
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}

func (g *Generator) writeFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := g.fs.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // report files are meant to be readable
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	slog.Debug("wrote file", "path", path, "bytes", len(data))
	return nil
}
