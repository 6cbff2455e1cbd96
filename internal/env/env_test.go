package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line       string
		key, value string
		ok         bool
	}{
		{"PORT=8080", "PORT", "8080", true},
		{"  RELAY_URL = ws://localhost:8080/ws ", "RELAY_URL", "ws://localhost:8080/ws", true},
		{`NAME="quoted value"`, "NAME", "quoted value", true},
		{"NAME='single'", "NAME", "single", true},
		{"# comment", "", "", false},
		{"", "", "", false},
		{"=nokey", "", "", false},
		{"novalue", "", "", false},
	}
	for _, tc := range tests {
		key, value, ok := parseLine(tc.line)
		assert.Equal(t, tc.ok, ok, "line %q", tc.line)
		assert.Equal(t, tc.key, key, "line %q", tc.line)
		assert.Equal(t, tc.value, value, "line %q", tc.line)
	}
}

func TestLoad_SetsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("# viewer env\nTEST_ENV_LOAD=hello\n"), 0644))
	t.Setenv("TEST_ENV_LOAD", "")

	require.NoError(t, Load(path))

	assert.Equal(t, "hello", os.Getenv("TEST_ENV_LOAD"))
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), "nonesuch")))
}

func TestGetOr(t *testing.T) {
	t.Setenv("TEST_GETOR", "set")
	assert.Equal(t, "set", GetOr("TEST_GETOR", "fallback"))

	t.Setenv("TEST_GETOR", "")
	assert.Equal(t, "fallback", GetOr("TEST_GETOR", "fallback"))
}

func TestPort(t *testing.T) {
	t.Setenv("PORT", "9000")
	assert.Equal(t, 9000, Port(8080))

	t.Setenv("PORT", "not-a-number")
	assert.Equal(t, 8080, Port(8080))

	t.Setenv("PORT", "")
	assert.Equal(t, 8080, Port(8080))
}
