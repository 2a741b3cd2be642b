// Package workspace provisions the project directory and the package
// subdirectory tree.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// Subdir declares one subdirectory of the package tree.
type Subdir struct {
	// Name is the directory name.
	Name string
	// Init marks directories that receive an empty __init__.py.
	Init bool
	// Children are nested subdirectories, created recursively.
	Children []Subdir
}

// PackageSubdirs is the default package subdirectory tree.
var PackageSubdirs = []Subdir{
	{Name: "scripts", Init: true},
	{Name: "tests", Init: true},
	{Name: "data", Init: false},
}

// CreateProjectDir creates the project directory at path, including any
// missing parents. A directory that already exists is a conflict.
func CreateProjectDir(path string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("project directory already exists: %s", path)
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create project directory %s: %w", path, err)
	}
	return nil
}

// InitFileName is the marker file making a directory an importable
// package.
const InitFileName = "__init__.py"

// CreatedPath records one path created while provisioning a subtree.
type CreatedPath struct {
	// Path is the created path, relative to the project directory.
	Path string
	// IsDir marks directories (as opposed to __init__.py files).
	IsDir bool
}

// CreateSubdirs creates the subtree under projectDir and returns the
// created paths in creation order. Directories that already exist are a
// conflict, matching CreateProjectDir.
func CreateSubdirs(projectDir string, subdirs []Subdir) ([]CreatedPath, error) {
	var created []CreatedPath
	for _, sub := range subdirs {
		paths, err := createSubdir(projectDir, "", sub)
		if err != nil {
			return created, err
		}
		created = append(created, paths...)
	}
	return created, nil
}

func createSubdir(projectDir, parent string, sub Subdir) ([]CreatedPath, error) {
	rel := filepath.Join(parent, sub.Name)
	target := filepath.Join(projectDir, rel)

	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return nil, fmt.Errorf("subdirectory already exists: %s", target)
	}
	if err := os.MkdirAll(target, 0755); err != nil {
		return nil, fmt.Errorf("failed to create subdirectory %s: %w", target, err)
	}
	created := []CreatedPath{{Path: rel, IsDir: true}}

	if sub.Init {
		initRel := filepath.Join(rel, InitFileName)
		if err := os.WriteFile(filepath.Join(projectDir, initRel), nil, 0644); err != nil {
			return created, fmt.Errorf("failed to create %s: %w", initRel, err)
		}
		created = append(created, CreatedPath{Path: initRel})
	}

	for _, child := range sub.Children {
		paths, err := createSubdir(projectDir, rel, child)
		created = append(created, paths...)
		if err != nil {
			return created, err
		}
	}
	return created, nil
}
