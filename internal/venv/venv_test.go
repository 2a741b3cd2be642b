package venv

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnvDir tests environment directory resolution.
func TestEnvDir(t *testing.T) {
	t.Run("explicit workon home", func(t *testing.T) {
		dir, err := EnvDir(Options{ProjectDir: "/tmp/projects/myproj", WorkonHome: "/envs"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/envs", "myproj"), dir)
	})

	t.Run("workon home from environment", func(t *testing.T) {
		t.Setenv("WORKON_HOME", "/from-env")
		dir, err := EnvDir(Options{ProjectDir: "/p/other"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/from-env", "other"), dir)
	})

	t.Run("default under home", func(t *testing.T) {
		t.Setenv("WORKON_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)
		dir, err := EnvDir(Options{ProjectDir: "/p/third"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "Envs", "third"), dir)
	})
}

// TestInterpreter tests interpreter naming.
func TestInterpreter(t *testing.T) {
	assert.Equal(t, "python3", Interpreter("3"))
	assert.Equal(t, "python2", Interpreter("2"))
}

// TestCreateConflict tests that an existing environment is a conflict.
func TestCreateConflict(t *testing.T) {
	workon := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(workon, "myproj"), 0755))

	logger := log.New(io.Discard)
	_, err := Create(context.Background(), logger, Options{
		ProjectDir:    "/p/myproj",
		PythonVersion: "3",
		WorkonHome:    workon,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

// TestCreateNonStrict tests that a failing interpreter is tolerated when
// not strict.
func TestCreateNonStrict(t *testing.T) {
	workon := t.TempDir()
	logger := log.New(io.Discard)

	// An interpreter name that cannot exist forces the exec failure
	// path.
	envDir, err := Create(context.Background(), logger, Options{
		ProjectDir:    "/p/myproj",
		PythonVersion: "0.nope",
		WorkonHome:    workon,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(workon, "myproj"), envDir)
}

// TestCreateStrict tests that a failing interpreter errors when strict.
func TestCreateStrict(t *testing.T) {
	workon := t.TempDir()
	logger := log.New(io.Discard)

	_, err := Create(context.Background(), logger, Options{
		ProjectDir:    "/p/myproj",
		PythonVersion: "0.nope",
		WorkonHome:    workon,
		Strict:        true,
	})
	assert.Error(t, err)
}
