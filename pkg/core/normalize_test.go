package core_test

import (
	"context"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/core"
)

// blanks are titles that must never be stored: ASCII and Unicode white space,
// line separators and the byte order mark, alone and mixed.
var blanks = []string{
	"",
	" ",
	"\t\n\r\v\f",
	"\u00a0",
	"\u2003\u2009",
	"\u3000",
	"\u2028\u2029",
	"\ufeff",
	" \ufeff\u00a0\n",
}

func TestCollection_AddRejectsUnicodeBlanks(t *testing.T) {
	ctx := context.Background()
	store := &MockStore{}
	c := loaded(t, store)
	_, err := c.Add(ctx, "keep", "")
	require.NoError(t, err)
	before := c.Snapshot()

	for _, title := range blanks {
		_, err := c.Add(ctx, title, "content")
		assert.ErrorIs(t, err, core.ErrValidation, "title %q", title)
	}
	assert.Equal(t, before, c.Snapshot())
	assert.Equal(t, 1, store.Saves())
}

func TestCollection_AddTrimsUnicode(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		title, content         string
		wantTitle, wantContent string
	}{
		{"\ufeffGroceries", "milk", "Groceries", "milk"},
		{"\u00a0 café \u3000", " crème\u2009", "café", "crème"},
		{"  two  words ", " a\n b ", "two  words", "a\n b"},
		{"\t日本語\n", "", "日本語", ""},
		{" 🎉 party", "\ufeff", "🎉 party", ""},
	}

	c := loaded(t, &MockStore{})
	seen := map[int64]bool{}
	for _, tt := range tests {
		n, err := c.Add(ctx, tt.title, tt.content)
		require.NoError(t, err, "title %q", tt.title)
		assert.Equal(t, tt.wantTitle, n.Title)
		assert.Equal(t, tt.wantContent, n.Content)
		assert.False(t, seen[n.ID], "duplicate id %d", n.ID)
		seen[n.ID] = true
	}
}

func TestEditSession_DropsLeadingBOM(t *testing.T) {
	ctx := context.Background()
	c := loaded(t, &MockStore{})
	n, err := c.Add(ctx, "title", "")
	require.NoError(t, err)

	e := c.Editor()
	e.Start(n)
	e.SetTitle("\ufeff new ")
	title, _ := e.Drafts()
	assert.Equal(t, "new ", title)
}

func trimmed(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\ufeff'
	})
}

func FuzzCollection_Add(f *testing.F) {
	for _, b := range blanks {
		f.Add(b, "x")
	}
	f.Add("  Milk ", "2%")
	f.Add("\ufeffa", "\u2028")
	f.Add("MiXeD ÇaSe", "")

	f.Fuzz(func(t *testing.T, title, content string) {
		if !utf8.ValidString(title) || !utf8.ValidString(content) {
			t.Skip()
		}
		ctx := context.Background()
		store := &MockStore{}
		c := loaded(t, store)
		first, err := c.Add(ctx, "seed", "")
		require.NoError(t, err)

		n, err := c.Add(ctx, title, content)
		if trimmed(title) == "" {
			assert.ErrorIs(t, err, core.ErrValidation)
			assert.Equal(t, 1, c.Len())
			assert.Equal(t, 1, store.Saves())
			return
		}

		require.NoError(t, err)
		assert.Equal(t, trimmed(title), n.Title)
		assert.Equal(t, trimmed(content), n.Content)
		assert.NotEqual(t, first.ID, n.ID)
		assert.Equal(t, n, c.Snapshot()[0])

		found := core.Filter(c.Snapshot(), n.Title)
		assert.Contains(t, found, n)
	})
}
