package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogOutputDiscardsByDefault(t *testing.T) {
	out, err := logOutput("")
	require.NoError(t, err)
	n, err := io.WriteString(out, "dropped")
	assert.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.NoError(t, out.Close())
}

func TestLogOutputWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sand.log")
	out, err := logOutput(path)
	require.NoError(t, err)
	_, err = io.WriteString(out, "world 10x9\n")
	require.NoError(t, err)
	require.NoError(t, out.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "world 10x9\n", string(got))
}

func TestLogOutputReportsOpenFailure(t *testing.T) {
	_, err := logOutput(filepath.Join(t.TempDir(), "missing", "sand.log"))
	assert.Error(t, err)
}
