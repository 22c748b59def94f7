package enum

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitEnumerator enumerates the files of a git commit's tree, so a check
// can run against committed state instead of the working copy.
type GitEnumerator struct {
	config Config
	// CommitRef optionally specifies the commit to enumerate (defaults to HEAD)
	CommitRef string
}

// NewGitEnumerator creates a new git enumerator.
func NewGitEnumerator(config Config) *GitEnumerator {
	return &GitEnumerator{
		config:    config,
		CommitRef: "HEAD",
	}
}

// Enumerate walks the commit tree and yields file contents.
func (e *GitEnumerator) Enumerate(ctx context.Context, callback func(content []byte, path string) error) error {
	repo, err := git.PlainOpen(e.config.Root)
	if err != nil {
		return fmt.Errorf("failed to open git repository: %w", err)
	}

	ref, err := repo.ResolveRevision(plumbing.Revision(e.CommitRef))
	if err != nil {
		return fmt.Errorf("failed to resolve ref %s: %w", e.CommitRef, err)
	}

	commit, err := repo.CommitObject(*ref)
	if err != nil {
		return fmt.Errorf("failed to get commit: %w", err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return fmt.Errorf("failed to get tree: %w", err)
	}

	err = tree.Files().ForEach(func(f *object.File) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if e.config.MaxFileSize > 0 && f.Size > e.config.MaxFileSize {
			return nil
		}
		if !e.config.wantsExtension(f.Name) {
			return nil
		}
		if e.config.Exclude != nil && e.config.Exclude(f.Name) {
			return nil
		}

		content, err := f.Contents()
		if err != nil {
			return fmt.Errorf("failed to get contents of %s: %w", f.Name, err)
		}

		if isBinary([]byte(content)) {
			return nil
		}

		return callback([]byte(content), f.Name)
	})
	if err != nil {
		return fmt.Errorf("failed to walk tree: %w", err)
	}

	return nil
}
