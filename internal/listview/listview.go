// Copyright 2026 The Linkreport Authors
// SPDX-License-Identifier: MIT

// Package listview turns the rows of an HTML list or table body into a
// sortable, filterable, searchable list whose changes are written back into
// the document and announced through events.
package listview

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/govdata/linkreport/internal/dom"
)

var (
	// ErrNoListElement is returned when the container has no list element.
	ErrNoListElement = errors.New("no list element in container")
	// ErrUnknownField is returned for a field that is not a value name.
	ErrUnknownField = errors.New("unknown field")
	// ErrNoTemplate is returned by Add when there is no item to copy markup from.
	ErrNoTemplate = errors.New("list has no item to use as template")
)

// Event names.
const (
	EventUpdated        = "updated"
	EventSortComplete   = "sortComplete"
	EventFilterComplete = "filterComplete"
	EventSearchComplete = "searchComplete"
)

// Options configures a List.
type Options struct {
	// ValueNames are the per-item fields. Each is read from the first
	// descendant of the item that has the name as a class.
	ValueNames []string
	ListClass  string // class of the element whose children are the items
	SortClass  string // class of sort triggers
	SortAttr   string // attribute naming the field a trigger sorts by
	Page       int    // maximum number of visible items
}

func (o Options) withDefaults() Options {
	if o.ListClass == "" {
		o.ListClass = "list"
	}
	if o.SortClass == "" {
		o.SortClass = "sort"
	}
	if o.SortAttr == "" {
		o.SortAttr = "data-sort"
	}
	if o.Page <= 0 {
		o.Page = 10000
	}
	return o
}

// Event is passed to handlers.
type Event struct {
	List          *List
	VisibleItems  []*Item
	MatchingItems []*Item
}

// Handler reacts to a list event.
type Handler func(Event)

// List is a view over the items of one list element.
type List struct {
	opts      Options
	container *html.Node
	list      *html.Node

	items    []*Item
	matching []*Item
	visible  []*Item

	filter       func(*Item) bool
	searchTerm   string
	searchFields []string

	handlers map[string][]Handler
}

// New indexes the items below container. The list element is the first
// descendant of container with the list class.
func New(container *html.Node, opts Options) (*List, error) {
	opts = opts.withDefaults()
	opts.ValueNames = append([]string(nil), opts.ValueNames...)

	listNode := dom.First(container, dom.Class(opts.ListClass))
	if listNode == nil {
		return nil, fmt.Errorf("%w: .%s", ErrNoListElement, opts.ListClass)
	}

	l := &List{
		opts:      opts,
		container: container,
		list:      listNode,
		handlers:  make(map[string][]Handler),
	}
	for _, n := range dom.Children(listNode) {
		l.items = append(l.items, newItem(n, opts.ValueNames))
	}
	l.Update()
	return l, nil
}

// ValueNames returns the configured fields in declaration order.
func (l *List) ValueNames() []string {
	return append([]string(nil), l.opts.ValueNames...)
}

// Container returns the node the list was built on.
func (l *List) Container() *html.Node { return l.container }

// Items returns every item in current sort order.
func (l *List) Items() []*Item { return append([]*Item(nil), l.items...) }

// Matching returns the items that pass the current filter and search.
func (l *List) Matching() []*Item { return append([]*Item(nil), l.matching...) }

// Visible returns the items currently rendered in the list element.
func (l *List) Visible() []*Item { return append([]*Item(nil), l.visible...) }

// On registers h for event. Handlers run synchronously in registration order.
func (l *List) On(event string, h Handler) {
	l.handlers[event] = append(l.handlers[event], h)
}

func (l *List) trigger(event string) {
	ev := Event{List: l, VisibleItems: l.Visible(), MatchingItems: l.Matching()}
	for _, h := range l.handlers[event] {
		h(ev)
	}
}

func (l *List) hasField(field string) bool {
	for _, name := range l.opts.ValueNames {
		if name == field {
			return true
		}
	}
	return false
}

// Sort orders items by field. Equal values keep their relative order.
func (l *List) Sort(field string, order Order) error {
	if !l.hasField(field) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	sort.SliceStable(l.items, func(i, j int) bool {
		c := naturalCompare(l.items[i].Value(field), l.items[j].Value(field))
		if order == Desc {
			return c > 0
		}
		return c < 0
	})
	l.markTriggers(field, order)
	l.Update()
	l.trigger(EventSortComplete)
	return nil
}

// Toggle sorts by field as a click on its sort trigger would: descending if
// the trigger is currently marked ascending, ascending otherwise.
func (l *List) Toggle(field string) (Order, error) {
	order := Asc
	for _, t := range l.triggers(field) {
		if dom.HasClass(t, Asc.String()) {
			order = Desc
			break
		}
	}
	return order, l.Sort(field, order)
}

func (l *List) triggers(field string) []*html.Node {
	var out []*html.Node
	for _, t := range dom.FindAll(l.container, dom.Class(l.opts.SortClass)) {
		if v, _ := dom.Attr(t, l.opts.SortAttr); v == field {
			out = append(out, t)
		}
	}
	return out
}

func (l *List) markTriggers(field string, order Order) {
	for _, t := range dom.FindAll(l.container, dom.Class(l.opts.SortClass)) {
		dom.RemoveClass(t, Asc.String())
		dom.RemoveClass(t, Desc.String())
		if v, _ := dom.Attr(t, l.opts.SortAttr); v == field {
			dom.AddClass(t, order.String())
		}
	}
}

// Filter keeps only items accepted by fn. A nil fn removes the filter.
func (l *List) Filter(fn func(*Item) bool) {
	l.filter = fn
	l.Update()
	l.trigger(EventFilterComplete)
}

// Search keeps only items where one of fields contains term, ignoring case.
// With no fields every value name is searched. An empty term clears the search.
func (l *List) Search(term string, fields ...string) {
	l.searchTerm = strings.ToLower(strings.TrimSpace(term))
	l.searchFields = fields
	l.Update()
	l.trigger(EventSearchComplete)
}

// Add appends a new item built from a copy of the first item's markup with
// values written into the matching value elements.
func (l *List) Add(values map[string]string) (*Item, error) {
	if len(l.items) == 0 {
		return nil, ErrNoTemplate
	}
	for name := range values {
		if !l.hasField(name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
	}
	node := dom.Clone(l.items[0].node)
	for _, name := range l.opts.ValueNames {
		if el := dom.First(node, dom.Class(name)); el != nil {
			dom.SetText(el, values[name])
		}
	}
	it := newItem(node, l.opts.ValueNames)
	l.items = append(l.items, it)
	l.Update()
	return it, nil
}

// Remove drops every item whose field equals value and returns how many
// were removed.
func (l *List) Remove(field, value string) int {
	kept := l.items[:0]
	removed := 0
	for _, it := range l.items {
		if it.Value(field) == value {
			dom.Detach(it.node)
			removed++
			continue
		}
		kept = append(kept, it)
	}
	l.items = kept
	if removed > 0 {
		l.Update()
	}
	return removed
}

// Update recomputes matching and visible items, rewrites the list element
// and fires the updated event.
func (l *List) Update() {
	l.matching = l.matching[:0]
	for _, it := range l.items {
		if l.matches(it) {
			l.matching = append(l.matching, it)
		}
	}
	l.visible = l.matching
	if len(l.visible) > l.opts.Page {
		l.visible = l.visible[:l.opts.Page]
	}
	l.visible = append([]*Item(nil), l.visible...)

	for _, it := range l.items {
		if it.node.Parent == l.list {
			l.list.RemoveChild(it.node)
		}
	}
	for _, it := range l.visible {
		l.list.AppendChild(it.node)
	}
	l.trigger(EventUpdated)
}

func (l *List) matches(it *Item) bool {
	if l.filter != nil && !l.filter(it) {
		return false
	}
	if l.searchTerm == "" {
		return true
	}
	fields := l.searchFields
	if len(fields) == 0 {
		fields = l.opts.ValueNames
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(it.Value(f)), l.searchTerm) {
			return true
		}
	}
	return false
}
