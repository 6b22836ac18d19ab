package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot"
)

func TestPerNote(t *testing.T) {
	assert.Equal(t, 250*time.Millisecond, perNote(time.Second, 4))
	assert.Equal(t, time.Duration(0), perNote(time.Second, 0))
	assert.Equal(t, time.Duration(0), perNote(time.Second, -3))
}

func TestRun(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, backend := range []string{jot.BackendFS, jot.BackendBolt, jot.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			_, _, err := run(context.Background(), t.TempDir(), backend, 5, logger)
			require.NoError(t, err)
		})
	}
}
