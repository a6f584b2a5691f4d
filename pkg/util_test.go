package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBytesToString(t *testing.T) {
	want := "posts"
	got := BytesToString([]byte(want))
	assert.Equal(t, want, got)
}

func TestTrimmedOutput(t *testing.T) {
	assert.Equal(t, "3f2a9c1", TrimmedOutput([]byte("3f2a9c1\n")))
	assert.Empty(t, TrimmedOutput(nil))
}

func TestPathExists(t *testing.T) {
	exists, err := PathExists("/invalid/path/some-dir", true)
	require.NoError(t, err)
	assert.False(t, exists)

	tempDir := t.TempDir()
	exists, err = PathExists(tempDir, true)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = PathExists(tempDir, false)
	require.NoError(t, err)
	assert.False(t, exists)

	tempFile := filepath.Join(tempDir, "posts.log")
	require.NoError(t, os.WriteFile(tempFile, []byte("x"), 0o600))
	exists, err = PathExists(tempFile, false)
	require.NoError(t, err)
	assert.True(t, exists)
}
