// Package keybind defines the keybind record shown by the menu and the query
// filter applied to it on every keystroke.
package keybind

import "strings"

// Entry is a single keybinding as read from the configuration file.
type Entry struct {
	Keys string `toml:"keys" yaml:"keys"`
	Name string `toml:"name" yaml:"name"`
	Desc string `toml:"desc" yaml:"desc"`
}

// Filter returns the entries matching query, in their original order.
// The query is used as typed: surrounding whitespace is significant.
func Filter(entries []Entry, query string) []Entry {
	if query == "" {
		return entries
	}

	needle := strings.ToLower(query)
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.contains(needle) {
			out = append(out, e)
		}
	}
	return out
}

// contains reports whether the lower-cased needle appears in the keys, name
// or description of e, ignoring case.
func (e Entry) contains(needle string) bool {
	return strings.Contains(strings.ToLower(e.Keys), needle) ||
		strings.Contains(strings.ToLower(e.Name), needle) ||
		strings.Contains(strings.ToLower(e.Desc), needle)
}
