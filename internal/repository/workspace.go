package repository

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// GitWorkspace resolves paths relative to the root of an enclosing git worktree.
type GitWorkspace struct {
	root string
}

// NewGitWorkspace opens the git repository containing dir, searching parent directories.
func NewGitWorkspace(dir string) (*GitWorkspace, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository from %s: %w", dir, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	return &GitWorkspace{root: wt.Filesystem.Root()}, nil
}

// Root returns the worktree root directory.
func (w *GitWorkspace) Root() string {
	return w.root
}

// Resolve joins a relative path onto the worktree root; absolute paths are returned as-is.
func (w *GitWorkspace) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(w.root, path)
}
