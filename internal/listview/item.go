// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

package listview

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/govdata/linkreport/internal/dom"
)

// Item is one row of the list.
type Item struct {
	node   *html.Node
	values map[string]string
}

func newItem(n *html.Node, names []string) *Item {
	it := &Item{node: n, values: make(map[string]string, len(names))}
	for _, name := range names {
		if el := dom.First(n, dom.Class(name)); el != nil {
			it.values[name] = strings.TrimSpace(dom.Text(el))
		}
	}
	return it
}

// Node returns the element backing the item.
func (it *Item) Node() *html.Node { return it.node }

// Value returns the value of field, or "" when the item has none.
func (it *Item) Value(field string) string { return it.values[field] }

// Values returns a copy of all field values.
func (it *Item) Values() map[string]string {
	out := make(map[string]string, len(it.values))
	for k, v := range it.values {
		out[k] = v
	}
	return out
}

// Order is a sort direction.
type Order int

const (
	// Asc sorts smallest first.
	Asc Order = iota
	// Desc sorts largest first.
	Desc
)

// String returns "asc" or "desc", the class names put on sort triggers.
func (o Order) String() string {
	if o == Desc {
		return "desc"
	}
	return "asc"
}

// ParseOrder parses "asc" or "desc". The empty string means Asc.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	default:
		return Asc, fmt.Errorf("invalid sort order %q (must be asc or desc)", s)
	}
}

// ParseSortSpec splits "field[:order]" into its parts.
func ParseSortSpec(spec string) (string, Order, error) {
	field, order, _ := strings.Cut(spec, ":")
	field = strings.TrimSpace(field)
	if field == "" {
		return "", Asc, fmt.Errorf("invalid sort %q: missing field", spec)
	}
	o, err := ParseOrder(order)
	if err != nil {
		return "", Asc, err
	}
	return field, o, nil
}
