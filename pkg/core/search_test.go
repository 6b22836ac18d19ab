package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/jot/pkg/core"
)

func TestFilter(t *testing.T) {
	notes := []core.Note{
		{ID: 3, Title: "Groceries", Content: "milk"},
		{ID: 2, Title: "Work", Content: "groceries run at noon"},
		{ID: 1, Title: "grocery budget", Content: ""},
	}

	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{name: "empty query returns everything", query: "", want: []int64{3, 2, 1}},
		{name: "blank query returns everything", query: "   ", want: []int64{3, 2, 1}},
		{name: "case insensitive", query: "GRO", want: []int64{3, 1}},
		{name: "query is trimmed", query: "  work ", want: []int64{2}},
		{name: "content is not searched", query: "milk", want: []int64{}},
		{name: "no match", query: "zzz", want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := core.Filter(notes, tt.query)
			ids := make([]int64, 0, len(got))
			for _, n := range got {
				ids = append(ids, n.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilter_DoesNotAlias(t *testing.T) {
	notes := []core.Note{{ID: 1, Title: "a"}}
	got := core.Filter(notes, "")
	got[0].Title = "changed"
	assert.Equal(t, "a", notes[0].Title)

	assert.Empty(t, core.Filter(nil, "a"))
	assert.NotNil(t, core.Filter(nil, ""))
}
