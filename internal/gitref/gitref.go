// Package gitref reads files as they were committed at a git revision.
package gitref

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Reader serves file contents from a single commit.
type Reader struct {
	root   string
	rev    string
	commit *object.Commit
}

// Open locates the repository containing dir and resolves rev (a branch, tag,
// or hash such as "HEAD~1") to a commit.
func Open(dir, rev string) (*Reader, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", dir, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}

	if rev == "" {
		rev = "HEAD"
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolve revision %q: %w", rev, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("load commit %s: %w", hash, err)
	}

	return &Reader{root: canonical(wt.Filesystem.Root()), rev: rev, commit: commit}, nil
}

// Hash returns the resolved commit hash.
func (r *Reader) Hash() string {
	return r.commit.Hash.String()
}

// ReadArtifact returns the committed content of path, which may be absolute or
// relative to the working directory. Files absent from the commit yield an
// error matching os.ErrNotExist.
func (r *Reader) ReadArtifact(path string) ([]byte, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(r.root, canonical(abs))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("%s is outside repository %s", path, r.root)
	}

	file, err := r.commit.File(filepath.ToSlash(rel))
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, fmt.Errorf("%s at %s: %w", rel, r.rev, os.ErrNotExist)
		}
		return nil, fmt.Errorf("read %s at %s: %w", rel, r.rev, err)
	}

	contents, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("read %s at %s: %w", rel, r.rev, err)
	}
	return []byte(contents), nil
}

// canonical resolves symlinks in the deepest existing ancestor of path.
func canonical(path string) string {
	dir, rest := path, ""
	for {
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			return filepath.Join(resolved, rest)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return path
		}
		rest = filepath.Join(filepath.Base(dir), rest)
		dir = parent
	}
}
