package simplegrep

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
)

// Walker enumerates candidate files below a root directory
type Walker struct {
	recursive bool
	ignore    *IgnoreFilter
	logger    Logger
}

// NewWalker creates a walker. ignore may be nil.
func NewWalker(recursive bool, ignore *IgnoreFilter, logger Logger) *Walker {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Walker{
		recursive: recursive,
		ignore:    ignore,
		logger:    logger,
	}
}

// Walk calls fn for each candidate file under root in lexical order. Only the
// immediate directory is listed unless the walker is recursive.
func (w *Walker) Walk(ctx context.Context, root string, fn func(path string) error) error {
	if w.recursive {
		return w.walkTree(ctx, root, fn)
	}
	return w.walkDirectory(ctx, root, fn)
}

// walkDirectory lists only files directly inside dirPath
func (w *Walker) walkDirectory(ctx context.Context, dirPath string, fn func(path string) error) error {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		path := filepath.Join(dirPath, entry.Name())
		if !isCandidate(path, entry) || w.ignore.Ignored(path, false) {
			continue
		}

		if err := fn(path); err != nil {
			return err
		}
	}

	return nil
}

// walkTree walks the whole tree below root
func (w *Walker) walkTree(ctx context.Context, root string, fn func(path string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			w.logger.Debugf("skipping %s: %v", path, err)
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() {
			if path != root && w.ignore.Ignored(path, true) {
				w.logger.Debugf("skipping ignored directory %s", path)
				return filepath.SkipDir
			}
			return nil
		}

		if !isCandidate(path, d) {
			return nil
		}
		if w.ignore.Ignored(path, false) {
			w.logger.Debugf("skipping ignored file %s", path)
			return nil
		}

		return fn(path)
	})
}

// isCandidate accepts regular files and symlinks that do not point at a
// directory. Devices, sockets and pipes are skipped.
func isCandidate(path string, d fs.DirEntry) bool {
	switch {
	case d.IsDir():
		return false
	case d.Type().IsRegular():
		return true
	case d.Type()&fs.ModeSymlink != 0:
		info, err := os.Stat(path)
		return err != nil || !info.IsDir()
	default:
		return false
	}
}
