// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

// Package output renders the link checker report pages.
package output

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/govdata/linkreport/internal/dom"
	"github.com/govdata/linkreport/internal/enhance"
	"github.com/govdata/linkreport/internal/linkcheck"
	"github.com/govdata/linkreport/internal/listview"
	"github.com/govdata/linkreport/internal/piechart"
	"github.com/govdata/linkreport/internal/testable"
)

// MountID is the id of the element the pie chart is drawn into.
const MountID = "linkchecker-pie-chart"

// Page names, in the order they are rendered.
const (
	IndexPage       = "index.html"
	LinkCheckerPage = "linkchecker.html"
)

// Options configures a Generator.
type Options struct {
	WorkingLabel string
	BrokenLabel  string

	// APIURL and DetailURL prefix the per-dataset links. Empty disables
	// the link.
	APIURL    string
	DetailURL string

	// Sort is a "field[:order]" applied to every enhanced table that has
	// the field. Empty keeps the rendered order.
	Sort string

	Chart  piechart.Options
	Tables enhance.Options
}

// Page is one processed report page.
type Page struct {
	Name   string
	Doc    *html.Node
	Chart  *piechart.Chart // nil when the page has no chart mount
	Tables *enhance.Result
}

// Generator renders report pages from link checker stats.
type Generator struct {
	opts    Options
	fs      testable.FileSystem
	nowFunc func() time.Time
	id      string
}

// NewGenerator returns a Generator writing through testable.DefaultFS. Every
// generator gets a fresh report id.
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts, fs: testable.DefaultFS, id: uuid.NewString()}
}

// ReportID returns the id embedded in the pages as <meta name="report-id">.
func (g *Generator) ReportID() string { return g.id }

// Now returns the generation time shown on the pages.
func (g *Generator) Now() time.Time {
	if g.nowFunc != nil {
		return g.nowFunc()
	}
	return time.Now()
}

// WithFS sets the file system WriteDir writes to.
func (g *Generator) WithFS(fs testable.FileSystem) *Generator {
	g.fs = fs
	return g
}

var (
	pageTmplOnce sync.Once
	pageTmpl     *template.Template
)

func templates() *template.Template {
	pageTmplOnce.Do(func() {
		pageTmpl = template.Must(template.New("pages").Parse(layoutTemplate))
		template.Must(pageTmpl.New(IndexPage).Parse(indexTemplate))
		template.Must(pageTmpl.New(LinkCheckerPage).Parse(linkCheckerTemplate))
	})
	return pageTmpl
}

// Build renders and processes both report pages.
func (g *Generator) Build(st *linkcheck.Stats) ([]*Page, error) {
	data := g.buildPageData(st)
	var pages []*Page
	for _, name := range []string{IndexPage, LinkCheckerPage} {
		var buf bytes.Buffer
		if err := templates().ExecuteTemplate(&buf, name, data); err != nil {
			return nil, fmt.Errorf("execute %s template: %w", name, err)
		}
		doc, err := dom.Parse(&buf)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		page, err := g.Process(name, doc, st)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// Process draws the pie chart into doc, enhances its tables, applies the
// configured sort and seeds every running sum. A page without a chart
// mount element is not an error.
func (g *Generator) Process(name string, doc *html.Node, st *linkcheck.Stats) (*Page, error) {
	page := &Page{Name: name, Doc: doc}

	chart := piechart.Render([]piechart.Record{
		{Type: g.opts.WorkingLabel, Count: st.Working},
		{Type: g.opts.BrokenLabel, Count: st.Broken},
	}, g.opts.Chart)
	switch err := piechart.Mount(doc, MountID, chart); {
	case err == nil:
		page.Chart = chart
	case errors.Is(err, piechart.ErrMountNotFound):
		slog.Debug("page has no chart mount", "page", name)
	default:
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	page.Tables = enhance.Tables(doc, g.opts.Tables)
	if err := g.sortTables(page.Tables); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	for _, b := range page.Tables.Bindings {
		if b.Summed && b.Updates == 0 {
			b.List.Update()
		}
	}
	slog.Debug("processed page", "page", name,
		"tables", len(page.Tables.Bindings), "skipped", page.Tables.Skipped, "failed", page.Tables.Failed)
	return page, nil
}

func (g *Generator) sortTables(res *enhance.Result) error {
	if g.opts.Sort == "" {
		return nil
	}
	field, order, err := listview.ParseSortSpec(g.opts.Sort)
	if err != nil {
		return err
	}
	for _, b := range res.Bindings {
		err := b.List.Sort(field, order)
		if err != nil && !errors.Is(err, listview.ErrUnknownField) {
			return err
		}
	}
	return nil
}

// pageData holds all template data for the report pages.
type pageData struct {
	Title        string
	ReportID     string
	GeneratedAt  string
	NumDatasets  int
	Working      int
	Broken       int
	WorkingLabel string
	BrokenLabel  string
	MountID      string
	Portals      []portalRow
}

// WithTitle returns a copy of d with the page title set.
func (d pageData) WithTitle(title string) pageData {
	d.Title = title
	return d
}

type portalRow struct {
	Name    string
	Anchor  string
	Broken  int
	Records []recordRow
}

type recordRow struct {
	ID              string
	Name            string
	Maintainer      string
	MaintainerEmail string
	DetailLink      string
	APILink         string
	URLs            []urlRow
	Strikes         int
}

type urlRow struct {
	URL     string
	Status  string
	Date    string
	Strikes int
}

func (g *Generator) buildPageData(st *linkcheck.Stats) pageData {
	data := pageData{
		ReportID:     g.id,
		GeneratedAt:  g.Now().Format("2006-01-02 um 15:04"),
		NumDatasets:  st.NumDatasets,
		Working:      st.Working,
		Broken:       st.Broken,
		WorkingLabel: g.opts.WorkingLabel,
		BrokenLabel:  g.opts.BrokenLabel,
		MountID:      MountID,
	}
	for _, p := range st.Portals {
		row := portalRow{Name: p.Name, Anchor: p.Anchor, Broken: p.Broken()}
		for _, r := range p.Records {
			row.Records = append(row.Records, g.buildRecordRow(r))
		}
		data.Portals = append(data.Portals, row)
	}
	return data
}

func (g *Generator) buildRecordRow(r linkcheck.Record) recordRow {
	row := recordRow{
		ID:              r.ID,
		Name:            r.Name,
		Maintainer:      r.Maintainer,
		MaintainerEmail: r.MaintainerEmail,
	}
	if g.opts.DetailURL != "" {
		row.DetailLink = g.opts.DetailURL + r.Name
	}
	if g.opts.APIURL != "" {
		row.APILink = strings.TrimRight(g.opts.APIURL, "/") + "/action/package_show?id=" + r.ID
	}
	urls := make([]string, 0, len(r.URLs))
	for u := range r.URLs {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	for _, u := range urls {
		e := r.URLs[u]
		row.URLs = append(row.URLs, urlRow{URL: u, Status: string(e.Status), Date: e.Date, Strikes: e.Strikes})
		if e.Strikes > row.Strikes {
			row.Strikes = e.Strikes
		}
	}
	return row
}
