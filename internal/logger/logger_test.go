package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *Logger {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return New()
}

func TestLog_KeepsLinesInOrder(t *testing.T) {
	l := newTestLogger(t)

	l.Log("first")
	l.Logf("second %d", 2)
	l.Errorf("broke: %s", "reason")

	lines := l.Lines()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "first")
	assert.Contains(t, lines[1], "second 2")
	assert.Contains(t, lines[2], "error: broke: reason")
}

func TestLog_AppendsToFile(t *testing.T) {
	l := newTestLogger(t)

	l.Log("persisted")

	data, err := os.ReadFile(LogFilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "persisted")
}

func TestClear_DropsMemoryKeepsFile(t *testing.T) {
	l := newTestLogger(t)
	l.Log("kept on disk")

	l.Clear()

	assert.Empty(t, l.Lines())
	data, err := os.ReadFile(LogFilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kept on disk")
}

func TestLines_ReturnsCopy(t *testing.T) {
	l := newTestLogger(t)
	l.Log("one")

	lines := l.Lines()
	lines[0] = "mutated"

	assert.NotEqual(t, "mutated", l.Lines()[0])
}
