package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithZerolog_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithZerolog(zerolog.New(&buf).Level(zerolog.WarnLevel))

	log.Info("quote for room=%d", 101)
	assert.Empty(t, buf.String())

	log.Warn("room=%d not found", 999)
	assert.Contains(t, buf.String(), "room=999 not found")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := New(path, "debug")
	require.NoError(t, err)

	log.Debug("debug line %s", "one")
	log.Error("error line %d", 2)
	require.NoError(t, log.Close())
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug line one")
	assert.Contains(t, string(data), "error line 2")
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	log, err := New("", "verbose")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, log.Zerolog().GetLevel())
}
