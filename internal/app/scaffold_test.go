package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	git "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkproj/mkproj/internal/config"
	"github.com/mkproj/mkproj/internal/fetch"
	"github.com/mkproj/mkproj/internal/template"
)

// fakeFetcher serves canned bodies by URL.
type fakeFetcher struct {
	bodies map[string]string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	body, ok := f.bodies[url]
	if !ok {
		return nil, fmt.Errorf("fetch of %s failed with status code 404", url)
	}
	return []byte(body), nil
}

func (f *fakeFetcher) FetchToFile(ctx context.Context, urls []string, dest string) error {
	for _, url := range urls {
		body, err := f.Fetch(ctx, url)
		if err != nil {
			return err
		}
		if err := fetch.AppendString(dest, string(body)); err != nil {
			return err
		}
	}
	return nil
}

func newFakeFetcher() *fakeFetcher {
	f := &fakeFetcher{bodies: map[string]string{
		GitignoreURLs[0]: ".DS_Store\n",
		GitignoreURLs[1]: "*.pyc\n__pycache__/\n",
		PackageURLs[0]:   "[metadata]\n",
		PackageURLs[1]:   "include *.txt\n",
	}}
	f.bodies["https://raw.githubusercontent.com/github/choosealicense.com/gh-pages/_licenses/mit.txt"] =
		"---\ntitle: MIT License\nspdx-id: MIT\n---\n\nMIT License\n\nPermission is hereby granted...\n"
	return f
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func testOptions(t *testing.T) *config.Options {
	t.Helper()
	opts := config.DefaultOptions()
	opts.Path = filepath.Join(t.TempDir(), "myproj")
	opts.License = config.LicenseNone
	return opts
}

func readProjectFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

// TestScaffoldValidation tests that invalid options fail before any
// filesystem mutation.
func TestScaffoldValidation(t *testing.T) {
	opts := testOptions(t)
	opts.CreateDir = true
	opts.Script = true
	opts.Package = true

	s := NewScaffolderWithFetcher(newFakeFetcher())
	_, err := s.Scaffold(context.Background(), testLogger(), opts)
	require.Error(t, err)

	var aerr *AppError
	require.True(t, errors.As(err, &aerr))
	assert.Equal(t, ValidationFailed, aerr.Type)
	assert.NoDirExists(t, opts.Path)
}

// TestScaffoldDirectory tests the directory stage.
func TestScaffoldDirectory(t *testing.T) {
	opts := testOptions(t)
	opts.CreateDir = true

	s := NewScaffolderWithFetcher(newFakeFetcher())
	result, err := s.Scaffold(context.Background(), testLogger(), opts)
	require.NoError(t, err)
	assert.DirExists(t, result.ProjectDir)

	// A second run conflicts on the existing directory.
	_, err = s.Scaffold(context.Background(), testLogger(), opts)
	require.Error(t, err)
	var aerr *AppError
	require.True(t, errors.As(err, &aerr))
	assert.Equal(t, DirectoryStageFailed, aerr.Type)
}

// TestScaffoldReadme tests readme materialization.
func TestScaffoldReadme(t *testing.T) {
	opts := testOptions(t)
	opts.CreateDir = true
	opts.Readme = true

	s := NewScaffolderWithFetcher(newFakeFetcher())
	result, err := s.Scaffold(context.Background(), testLogger(), opts)
	require.NoError(t, err)

	readme := readProjectFile(t, result.ProjectDir, "README.md")
	assert.Contains(t, readme, "# myproj")
	assert.NotContains(t, readme, "{project_name}")
	assert.FileExists(t, filepath.Join(result.ProjectDir, "README.md.bak"))
	assert.Contains(t, result.Files, "README.md")
}

// TestScaffoldScript tests the script stage rename.
func TestScaffoldScript(t *testing.T) {
	opts := testOptions(t)
	opts.CreateDir = true
	opts.Script = true

	s := NewScaffolderWithFetcher(newFakeFetcher())
	result, err := s.Scaffold(context.Background(), testLogger(), opts)
	require.NoError(t, err)

	script := readProjectFile(t, result.ProjectDir, "myproj.py")
	assert.Contains(t, script, "#!/usr/bin/env python3")
	assert.Contains(t, script, "myproj: change me")
	assert.NoFileExists(t, filepath.Join(result.ProjectDir, template.AssetScriptPy3))
}

// TestScaffoldGit tests repository initialization and .gitignore
// aggregation.
func TestScaffoldGit(t *testing.T) {
	opts := testOptions(t)
	opts.CreateDir = true
	opts.Git = true

	s := NewScaffolderWithFetcher(newFakeFetcher())
	result, err := s.Scaffold(context.Background(), testLogger(), opts)
	require.NoError(t, err)

	gitignore := readProjectFile(t, result.ProjectDir, ".gitignore")
	assert.Equal(t, ".DS_Store\n*.pyc\n__pycache__/\n*.bak\n", gitignore)
	assert.Equal(t, 1, result.Commits)

	repo, err := git.PlainOpen(result.ProjectDir)
	require.NoError(t, err)
	head, err := repo.Head()
	require.NoError(t, err)
	commit, err := repo.CommitObject(head.Hash())
	require.NoError(t, err)
	assert.Contains(t, commit.Message, "intial values for .gitignore")
}

// TestScaffoldLicense tests license fetch and front-matter stripping.
func TestScaffoldLicense(t *testing.T) {
	opts := testOptions(t)
	opts.CreateDir = true
	opts.License = "mit"

	s := NewScaffolderWithFetcher(newFakeFetcher())
	result, err := s.Scaffold(context.Background(), testLogger(), opts)
	require.NoError(t, err)

	text := readProjectFile(t, result.ProjectDir, LicenseFileName)
	assert.True(t, strings.HasPrefix(text, "MIT License\n"))
	assert.NotContains(t, text, "spdx-id")

	backup := readProjectFile(t, result.ProjectDir, LicenseFileName+".bak")
	assert.Contains(t, backup, "spdx-id: MIT")
}

// TestScaffoldPackage tests the package stage end to end.
func TestScaffoldPackage(t *testing.T) {
	opts := testOptions(t)
	opts.CreateDir = true
	opts.Git = true
	opts.Package = true
	opts.License = "mit"
	opts.Pkg.Author = "Someone"
	opts.Pkg.Email = "someone@example.org"

	s := NewScaffolderWithFetcher(newFakeFetcher())
	result, err := s.Scaffold(context.Background(), testLogger(), opts)
	require.NoError(t, err)
	assert.Empty(t, result.Errors)

	// Fetched manifests.
	assert.Equal(t, "[metadata]\n", readProjectFile(t, result.ProjectDir, "setup.cfg"))
	assert.Equal(t, "include *.txt\n", readProjectFile(t, result.ProjectDir, "MANIFEST.in"))

	// Materialized and renamed packaging template.
	setup := readProjectFile(t, result.ProjectDir, "setup.py")
	assert.Contains(t, setup, "name='myproj'")
	assert.Contains(t, setup, "author='Someone'")
	assert.Contains(t, setup, "'License :: OSI Approved :: MIT License',")
	assert.NoFileExists(t, filepath.Join(result.ProjectDir, template.AssetSetup))
	assert.FileExists(t, filepath.Join(result.ProjectDir, template.AssetSetup+".bak"))

	// Requirements passthrough.
	assert.FileExists(t, filepath.Join(result.ProjectDir, template.AssetRequirements))

	// Package subdirectory tree.
	assert.FileExists(t, filepath.Join(result.ProjectDir, "scripts", "__init__.py"))
	assert.FileExists(t, filepath.Join(result.ProjectDir, "tests", "__init__.py"))
	assert.DirExists(t, filepath.Join(result.ProjectDir, "data"))

	// Commits: .gitignore, two manifests, two templates, two markers.
	assert.Equal(t, 7, result.Commits)
}

// TestScaffoldPackageMissingClassifier tests that a package without a
// license still materializes what it can and reports the unresolved
// placeholder.
func TestScaffoldPackageMissingClassifier(t *testing.T) {
	opts := testOptions(t)
	opts.CreateDir = true
	opts.Package = true
	// License stage disabled: classlicense has no fallback value.

	s := NewScaffolderWithFetcher(newFakeFetcher())
	result, err := s.Scaffold(context.Background(), testLogger(), opts)
	require.Error(t, err)

	var aerr *AppError
	require.True(t, errors.As(err, &aerr))
	assert.Equal(t, PackageStageFailed, aerr.Type)

	var merr *template.MaterializeError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, []string{"classlicense"}, merr.Identifiers)

	// The failure aborted that file only: the requirements template and
	// the subdirectory tree were still produced, and the unsubstituted
	// copy plus its backup remain.
	assert.FileExists(t, filepath.Join(result.ProjectDir, template.AssetRequirements))
	assert.FileExists(t, filepath.Join(result.ProjectDir, template.AssetSetup))
	assert.FileExists(t, filepath.Join(result.ProjectDir, template.AssetSetup+".bak"))
	assert.DirExists(t, filepath.Join(result.ProjectDir, "scripts"))
}

// TestScaffoldFetchFailure tests that a failed remote source aborts the
// stage.
func TestScaffoldFetchFailure(t *testing.T) {
	opts := testOptions(t)
	opts.CreateDir = true
	opts.Git = true

	f := newFakeFetcher()
	delete(f.bodies, GitignoreURLs[1])

	s := NewScaffolderWithFetcher(f)
	_, err := s.Scaffold(context.Background(), testLogger(), opts)
	require.Error(t, err)

	var aerr *AppError
	require.True(t, errors.As(err, &aerr))
	assert.Equal(t, GitStageFailed, aerr.Type)
}
