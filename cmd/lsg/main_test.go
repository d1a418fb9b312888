package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/lsg/internal/config"
)

// isolateConfig points config loading at a nonexistent file so the
// developer's real lsg.yaml cannot leak into tests.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))
}

func TestRun_ListsDirectory(t *testing.T) {
	isolateConfig(t)

	dir := t.TempDir()
	for _, name := range []string{"one.txt", "two.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"--classic", dir}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "one.txt\ntwo.txt\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_MissingPathFailsButKeepsGoing(t *testing.T) {
	isolateConfig(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "here.txt"), []byte("x"), 0o644))
	missing := filepath.Join(dir, "absent")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--classic", missing, dir}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "lsg:")
	assert.Contains(t, stdout.String(), "here.txt")
}

func TestRun_MultiplePathsAreLabelled(t *testing.T) {
	isolateConfig(t)

	a, b := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(a, "f"), nil, 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"--classic", a, b}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), a+":\n")
	assert.Contains(t, stdout.String(), b+":\n")
}

func TestRun_UsageError(t *testing.T) {
	isolateConfig(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"--no-such-switch"}, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "Usage: lsg")
}

func TestRun_Version(t *testing.T) {
	isolateConfig(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"--version"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "lsg dev")
}

func TestRun_ConfigDrivesFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lsg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("indicators: true\nclassic: true\n"), 0o644))
	t.Setenv(config.EnvConfigPath, path)

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	var stdout, stderr bytes.Buffer
	code := run([]string{dir}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "sub/\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_BadConfigValueWarnsAndContinues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lsg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("total-size: \"yes\"\nclassic: true\n"), 0o644))
	t.Setenv(config.EnvConfigPath, path)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f"), nil, 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{dir}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "f\n", stdout.String())
	assert.Contains(t, stderr.String(), "total-size")
	assert.Contains(t, stderr.String(), "boolean")
}
