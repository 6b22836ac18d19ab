package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/core"
)

func TestEncode(t *testing.T) {
	data, err := core.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	data, err = core.Encode([]core.Note{{ID: 1, Title: "a<b>", Content: ""}})
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1,"title":"a<b>","content":""}]`, string(data))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "empty", input: "", want: 0},
		{name: "null", input: "null", want: 0},
		{name: "array", input: `[{"id":2,"title":"b","content":"x"},{"id":1,"title":"a","content":""}]`, want: 2},
		{name: "object", input: `{"id":1}`, wantErr: true},
		{name: "garbage", input: `[{"id":`, wantErr: true},
		{name: "fractional id", input: `[{"id":1.5,"title":"a","content":""}]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := core.Decode([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestEncode_Canonical(t *testing.T) {
	reencode := func(t *testing.T, data []byte) []byte {
		t.Helper()
		notes, err := core.Decode(data)
		require.NoError(t, err)
		out, err := core.Encode(notes)
		require.NoError(t, err)
		return out
	}

	t.Run("canonical slot is byte-stable", func(t *testing.T) {
		canonical := []byte(`[{"id":2,"title":"b \u2028 <x>","content":"é"},{"id":1,"title":"a","content":""}]`)
		assert.Equal(t, string(canonical), string(reencode(t, canonical)))
	})

	t.Run("foreign slot is rewritten once", func(t *testing.T) {
		foreign := []byte("[{\"title\":\"a\u2028b\",\"content\":\"x\",\"id\":7}]")
		first := reencode(t, foreign)
		assert.Equal(t, `[{"id":7,"title":"a\u2028b","content":"x"}]`, string(first))
		assert.Equal(t, string(first), string(reencode(t, first)))
	})
}
