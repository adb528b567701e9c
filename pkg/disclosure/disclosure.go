// Package disclosure tracks which FAQ entries are expanded.
package disclosure

import (
	"strconv"
	"strings"
)

// Set holds the initial expanded state of a fixed number of entries.
// Every entry starts collapsed. After render each entry is a native
// <details> element that the browser toggles on its own.
type Set struct {
	expanded []bool
}

// New returns a set of n collapsed entries.
func New(n int) *Set {
	if n < 0 {
		n = 0
	}
	return &Set{expanded: make([]bool, n)}
}

// Expanded reports whether entry i is expanded. Out of range entries are
// reported collapsed.
func (s *Set) Expanded(i int) bool {
	return i >= 0 && i < len(s.expanded) && s.expanded[i]
}

// Parse builds a set of n entries from a comma separated list of 1-based
// indexes, e.g. "1,3". Malformed and out of range items are skipped; an
// index listed twice is expanded, not toggled back.
func Parse(n int, list string) *Set {
	s := New(n)
	for _, item := range strings.Split(list, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(item))
		if err != nil || idx < 1 || idx > n {
			continue
		}
		s.expanded[idx-1] = true
	}
	return s
}
