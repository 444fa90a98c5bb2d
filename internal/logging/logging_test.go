package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizform/internal/config"
)

func TestNewEmptyFileIsNop(t *testing.T) {
	log, err := New(config.Log{})
	require.NoError(t, err)
	log.Info("dropped")
}

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "quizform.log")
	log, err := New(config.Log{File: path, Level: "info", MaxSizeMB: 1})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("submitted")
	require.NoError(t, log.Sync())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(b)
	assert.True(t, strings.Contains(out, `"msg":"submitted"`), out)
	assert.False(t, strings.Contains(out, "hidden"), out)
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(config.Log{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	assert.Error(t, err)
}
