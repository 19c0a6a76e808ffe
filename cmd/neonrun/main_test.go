package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "runner")
	assert.Contains(t, out, "Neon Runner")
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "physics:")
	assert.Contains(t, out, "gravity:")

	_, err = execute(t, "config", "pong")
	assert.Error(t, err)
}

func TestPlayUnknownGame(t *testing.T) {
	_, err := execute(t, "play", "pong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown game "pong"`)
}

func TestPlayRejectsTooManyArgs(t *testing.T) {
	_, err := execute(t, "play", "runner", "extra")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := newLogger("debug", "", &buf)
	require.NoError(t, err)
	defer closeFn() //nolint:errcheck

	assert.Equal(t, log.DebugLevel, logger.GetLevel())
	logger.Info("hello", "k", 1)
	assert.Contains(t, buf.String(), "neonrun")
	assert.Contains(t, buf.String(), "hello")

	_, _, err = newLogger("loud", "", &buf)
	assert.Error(t, err)
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neonrun.log")
	logger, closeFn, err := newLogger("info", path, nil)
	require.NoError(t, err)

	logger.Info("to file")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
