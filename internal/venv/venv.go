// Package venv creates the python virtual environment associated with a
// project.
package venv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Options configures virtual environment creation.
type Options struct {
	// ProjectDir is the project directory the environment belongs to.
	// The environment is named after its base name.
	ProjectDir string
	// PythonVersion is the python major version to use (e.g. "3").
	PythonVersion string
	// WorkonHome is the directory holding environments. Defaults to
	// $WORKON_HOME, then ~/Envs.
	WorkonHome string
	// Strict makes a non-zero interpreter exit an error. When false the
	// failure is logged and creation reports success, matching tools
	// whose exit code is unreliable.
	Strict bool
}

// EnvDir returns the directory the environment will be created in.
func EnvDir(opts Options) (string, error) {
	home := opts.WorkonHome
	if home == "" {
		home = os.Getenv("WORKON_HOME")
	}
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		home = filepath.Join(userHome, "Envs")
	}
	return filepath.Join(home, filepath.Base(opts.ProjectDir)), nil
}

// Interpreter returns the python interpreter name for the version.
func Interpreter(pythonVersion string) string {
	return "python" + pythonVersion
}

// Create creates the virtual environment. An environment directory that
// already exists is a conflict.
func Create(ctx context.Context, logger *log.Logger, opts Options) (string, error) {
	envDir, err := EnvDir(opts)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(envDir); err == nil {
		return "", fmt.Errorf("virtual environment already exists: %s", envDir)
	}

	interpreter := Interpreter(opts.PythonVersion)
	logger.Debug("creating virtual environment", "interpreter", interpreter, "dir", envDir)

	cmd := exec.CommandContext(ctx, interpreter, "-m", "venv", envDir)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if opts.Strict {
			return "", fmt.Errorf("%s -m venv failed: %w\n%s", interpreter, err, strings.TrimSpace(string(output)))
		}
		logger.Warn("virtual environment command reported failure",
			"interpreter", interpreter, "err", err, "output", strings.TrimSpace(string(output)))
	}

	logger.Info("instantiated virtual environment",
		"python", opts.PythonVersion, "dir", envDir)
	return envDir, nil
}
