// Package gitrepo wraps repository initialization and single-path
// commits for the scaffolded project.
package gitrepo

import (
	"errors"
	"fmt"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Author identifies the commit author.
type Author struct {
	// Name is the author name.
	Name string
	// Email is the author email address.
	Email string
}

// defaultAuthor is used when no author is configured.
var defaultAuthor = Author{
	Name:  "mkproj",
	Email: "mkproj@localhost",
}

// Repo is a git repository rooted at the project directory.
type Repo struct {
	repo   *git.Repository
	author Author
}

// Init creates a git repository at path. If a repository already exists
// there, it is opened instead.
func Init(path string, author Author) (*Repo, error) {
	repo, err := git.PlainInit(path, false)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return Open(path, author)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize git repository at %s: %w", path, err)
	}
	return newRepo(repo, author), nil
}

// Open opens an existing git repository at path.
func Open(path string, author Author) (*Repo, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %s: %w", path, err)
	}
	return newRepo(repo, author), nil
}

func newRepo(repo *git.Repository, author Author) *Repo {
	if author.Name == "" {
		author = defaultAuthor
	}
	return &Repo{repo: repo, author: author}
}

// Commit stages the path (relative to the repository root) and commits it
// with the given message. Returns the commit hash.
func (r *Repo) Commit(relPath, message string) (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	if _, err := wt.Add(relPath); err != nil {
		return "", fmt.Errorf("failed to stage %s: %w", relPath, err)
	}

	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  r.author.Name,
			Email: r.author.Email,
			When:  time.Now(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to commit %s: %w", relPath, err)
	}
	return hash.String(), nil
}
