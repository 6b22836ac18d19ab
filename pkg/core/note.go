package core

import (
	"strings"
	"unicode"
)

// Note is the central entity of the domain.
// It is a short titled text identified by a numeric ID that never changes.
type Note struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// isTrimmable matches Unicode white space and the byte order mark, which
// pasted text often carries as an invisible leading character.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}

// normalize trims title and content the way they are stored.
func normalize(title, content string) (string, string) {
	return strings.TrimFunc(title, isTrimmable), strings.TrimFunc(content, isTrimmable)
}

// cloneNotes returns a copy of notes that never aliases the input.
func cloneNotes(notes []Note) []Note {
	out := make([]Note, len(notes))
	copy(out, notes)
	return out
}

func indexOf(notes []Note, id int64) int {
	for i, n := range notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
