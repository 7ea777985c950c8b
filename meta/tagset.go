package meta

import (
	"sort"
	"strings"

	"github.com/elliotchance/orderedmap/v3"
)

// A TagSet maps tag names to sets of values. A tag may legally repeat with
// different values; repeated values of the same name are stored once. Names
// are stored as written and keep the order of their first occurrence.
//
// The zero value is an empty TagSet ready to use.
type TagSet struct {
	m *orderedmap.OrderedMap[string, []string]
}

// NewTagSet returns a new empty TagSet.
func NewTagSet() *TagSet {
	return &TagSet{m: orderedmap.NewOrderedMap[string, []string]()}
}

// Add adds value to the value set of name.
func (ts *TagSet) Add(name, value string) {
	if ts.m == nil {
		ts.m = orderedmap.NewOrderedMap[string, []string]()
	}
	values, _ := ts.m.Get(name)
	for _, v := range values {
		if v == value {
			return
		}
	}
	ts.m.Set(name, append(values, value))
}

// Get returns the values of the tag with exactly the given name, in order of
// first occurrence.
func (ts *TagSet) Get(name string) []string {
	if ts == nil || ts.m == nil {
		return nil
	}
	values, ok := ts.m.Get(name)
	if !ok {
		return nil
	}
	return append([]string(nil), values...)
}

// Lookup returns the values of every tag whose name equals name under Unicode
// case folding, which is the conventional way to query Vorbis comments.
func (ts *TagSet) Lookup(name string) []string {
	var values []string
	for _, n := range ts.Names() {
		if !strings.EqualFold(n, name) {
			continue
		}
		for _, v := range ts.Get(n) {
			if !contains(values, v) {
				values = append(values, v)
			}
		}
	}
	return values
}

// Names returns the tag names in order of first occurrence.
func (ts *TagSet) Names() []string {
	if ts == nil || ts.m == nil {
		return nil
	}
	names := make([]string, 0, ts.m.Len())
	for el := ts.m.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	return names
}

// Len returns the number of distinct tag names.
func (ts *TagSet) Len() int {
	if ts == nil || ts.m == nil {
		return 0
	}
	return ts.m.Len()
}

// Equal reports whether ts and other hold the same names with the same value
// sets. Order is not significant.
func (ts *TagSet) Equal(other *TagSet) bool {
	if ts.Len() != other.Len() {
		return false
	}
	for _, name := range ts.Names() {
		a, b := ts.Get(name), other.Get(name)
		if len(a) != len(b) {
			return false
		}
		for _, v := range a {
			if !contains(b, v) {
				return false
			}
		}
	}
	return true
}

// String returns the tag set as sorted NAME=value1, value2 lines.
func (ts *TagSet) String() string {
	var lines []string
	for _, name := range ts.Names() {
		values := ts.Get(name)
		sort.Strings(values)
		lines = append(lines, name+"="+strings.Join(values, ", "))
	}
	return strings.Join(lines, "\n")
}

// contains reports whether s is present in list.
func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
