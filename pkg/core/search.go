package core

import "strings"

// Filter returns the notes whose title contains query, ignoring case and the
// query's surrounding whitespace. Content is not searched. The result keeps
// the input order and never aliases the input slice.
func Filter(notes []Note, query string) []Note {
	q := strings.ToLower(strings.TrimFunc(query, isTrimmable))
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if q == "" || strings.Contains(strings.ToLower(n.Title), q) {
			out = append(out, n)
		}
	}
	return out
}
