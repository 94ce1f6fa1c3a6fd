// SPDX-License-Identifier: MIT

package waypoint

import (
	"strings"
	"unicode"
)

// routeSep separates marker names in a custom route.
const routeSep = ","

// ParseRoute splits a pasted custom route into marker names. All whitespace,
// including line breaks, is removed before splitting, so "a, b\nc" and
// "a,b,c" are equivalent. Empty input yields no names.
func ParseRoute(input string) []string {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, input)
	if compact == "" {
		return nil
	}

	return strings.Split(compact, routeSep)
}

// FormatRoute joins names into the custom route text form.
func FormatRoute(names []string) string {
	return strings.Join(names, routeSep)
}

// Toggle adds name to the end of route, or removes every occurrence of it if
// it is already present. The input slice is not modified.
func Toggle(route []string, name string) []string {
	out := make([]string, 0, len(route)+1)

	var found bool
	for _, n := range route {
		if n == name {
			found = true
			continue
		}
		out = append(out, n)
	}
	if !found {
		out = append(out, name)
	}

	return out
}

// Resolve looks up each name among the markers on the active day of their
// category; the first such marker wins. Names with no match are returned in
// missing, in input order; found keeps route order. A nil cycle matches every
// day.
func Resolve(names []string, markers []Marker, cycle Cycle) (found []Marker, missing []string) {
	byName := make(map[string]int, len(markers))
	for i := len(markers) - 1; i >= 0; i-- {
		if cycle.Matches(markers[i]) {
			byName[markers[i].Name] = i
		}
	}

	for _, n := range names {
		idx, ok := byName[n]
		if !ok {
			missing = append(missing, n)
			continue
		}
		found = append(found, markers[idx])
	}

	return found, missing
}
