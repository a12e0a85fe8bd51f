package simplegrep

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	gitignore "github.com/sabhiram/go-gitignore"
)

// IgnoreFilter excludes paths listed in a root .gitignore file
type IgnoreFilter struct {
	root    string
	matcher *gitignore.GitIgnore
}

// LoadIgnoreFilter compiles root/.gitignore. It returns nil without error
// when the directory has no .gitignore file.
func LoadIgnoreFilter(root string) (*IgnoreFilter, error) {
	gitignorePath := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(gitignorePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	matcher, err := gitignore.CompileIgnoreFile(gitignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s: %w", gitignorePath, err)
	}

	return &IgnoreFilter{root: root, matcher: matcher}, nil
}

// Ignored reports whether path is excluded. The .git directory is always
// excluded.
func (f *IgnoreFilter) Ignored(path string, isDir bool) bool {
	if f == nil {
		return false
	}

	if isDir && filepath.Base(path) == ".git" {
		return true
	}

	rel, err := filepath.Rel(f.root, path)
	if err != nil || rel == "." {
		return false
	}

	rel = filepath.ToSlash(rel)
	if isDir {
		rel += "/"
	}
	return f.matcher.MatchesPath(rel)
}
