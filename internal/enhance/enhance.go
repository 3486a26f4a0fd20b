// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

// Package enhance makes the tables of a report page sortable and keeps the
// running total of summable tables up to date.
//
// A table is enhanced only when it contains at least one sort trigger
// button. Its fields are the sort attributes of every sort-classed element,
// in document order. Tables marked with the sum class additionally get an
// updated handler that writes the total of one field over the visible rows
// into the summary element.
package enhance

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"github.com/govdata/linkreport/internal/dom"
	"github.com/govdata/linkreport/internal/jsnum"
	"github.com/govdata/linkreport/internal/listview"
)

// Options names the markup conventions the enhancer relies on.
type Options struct {
	TriggerTag   string // element type that makes a table eligible
	TriggerClass string // class of sort triggers
	SortAttr     string // attribute holding a trigger's field name
	ListClass    string // class of the element holding the rows
	SumClass     string // table class that enables the running total
	SumField     string // field summed over visible rows
	SummaryID    string // id of the element showing the total
}

// DefaultOptions returns the conventions used by the generated report pages.
func DefaultOptions() Options {
	return Options{
		TriggerTag:   "button",
		TriggerClass: "sort",
		SortAttr:     "data-sort",
		ListClass:    "list",
		SumClass:     "has-sum",
		SumField:     "brokenrecords",
		SummaryID:    "sumofdeadlinks",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TriggerTag == "" {
		o.TriggerTag = d.TriggerTag
	}
	if o.TriggerClass == "" {
		o.TriggerClass = d.TriggerClass
	}
	if o.SortAttr == "" {
		o.SortAttr = d.SortAttr
	}
	if o.ListClass == "" {
		o.ListClass = d.ListClass
	}
	if o.SumClass == "" {
		o.SumClass = d.SumClass
	}
	if o.SumField == "" {
		o.SumField = d.SumField
	}
	if o.SummaryID == "" {
		o.SummaryID = d.SummaryID
	}
	return o
}

// Binding describes one enhanced table.
type Binding struct {
	Table     *html.Node
	Container *html.Node
	Fields    []string
	List      *listview.List
	Summed    bool

	// Total is the last value written to the summary element. It is NaN
	// after an update where a summed value was not a number.
	Total float64
	// Updates counts how many times the total was recomputed.
	Updates int
}

// Result lists what Tables bound.
type Result struct {
	Bindings []*Binding
	Skipped  int // tables without sort triggers
	Failed   int // eligible tables the list could not be built for
}

// Tables enhances every table in doc, in document order.
func Tables(doc *html.Node, opts Options) *Result {
	opts = opts.withDefaults()
	res := &Result{}
	for _, table := range dom.FindAll(doc, dom.Tag("table")) {
		b, err := Table(doc, table, opts)
		switch {
		case err != nil:
			slog.Warn("table not enhanced", "error", err)
			res.Failed++
		case b == nil:
			res.Skipped++
		default:
			res.Bindings = append(res.Bindings, b)
		}
	}
	return res
}

// Table enhances a single table. It returns a nil Binding and nil error when
// the table has no sort trigger; such tables are left untouched.
func Table(doc, table *html.Node, opts Options) (*Binding, error) {
	opts = opts.withDefaults()

	triggers := dom.FindAll(table, dom.And(dom.Tag(opts.TriggerTag), dom.Class(opts.TriggerClass)))
	if len(triggers) == 0 {
		return nil, nil
	}

	fields := Fields(table, opts)

	container := table
	if p := table.Parent; p != nil && p.Type == html.ElementNode && p.Data == "div" {
		container = p
	}

	list, err := listview.New(container, listview.Options{
		ValueNames: fields,
		ListClass:  opts.ListClass,
		SortClass:  opts.TriggerClass,
		SortAttr:   opts.SortAttr,
	})
	if err != nil {
		return nil, fmt.Errorf("build list for table: %w", err)
	}

	b := &Binding{
		Table:     table,
		Container: container,
		Fields:    fields,
		List:      list,
	}

	// Substring match on the raw class attribute, so "has-summary" counts too.
	if class, _ := dom.Attr(table, "class"); strings.Contains(class, opts.SumClass) {
		b.Summed = true
		list.On(listview.EventUpdated, sumHandler(doc, b, opts))
	}
	return b, nil
}

// Fields returns the sort attribute of every sort-classed element in table,
// in document order. Duplicates are kept.
func Fields(table *html.Node, opts Options) []string {
	opts = opts.withDefaults()
	var fields []string
	for _, n := range dom.FindAll(table, dom.Class(opts.TriggerClass)) {
		v, _ := dom.Attr(n, opts.SortAttr)
		fields = append(fields, v)
	}
	return fields
}

// sumHandler recomputes the total from scratch on every update. Values are
// parsed without guarding, so one non-numeric cell makes the total NaN until
// the next update.
func sumHandler(doc *html.Node, b *Binding, opts Options) listview.Handler {
	return func(ev listview.Event) {
		sum := 0.0
		for _, it := range ev.VisibleItems {
			sum += jsnum.ParseInt(it.Value(opts.SumField))
		}
		b.Total = sum
		b.Updates++

		if el := dom.ByID(doc, opts.SummaryID); el != nil {
			dom.SetText(el, jsnum.Format(sum))
		}
	}
}
