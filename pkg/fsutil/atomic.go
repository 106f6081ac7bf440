package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFileMode is the permission mode for newly created files.
const DefaultFileMode os.FileMode = 0o644

// WriteAtomic replaces path with content by renaming a fully written temp
// file over it. A symlinked path is resolved first so the link survives.
// If mode is 0, DefaultFileMode is used. On error path is untouched.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write atomic: %w", err)
	}
	if mode == 0 {
		mode = DefaultFileMode
	}

	target, err := resolveTarget(path)
	if err != nil {
		return err
	}

	tmpPath, err := writeTemp(target, content, mode)
	if err != nil {
		return err
	}

	if err := os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// resolveTarget follows symlinks for existing files. Paths that do not
// exist yet are returned unchanged.
func resolveTarget(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	switch {
	case err == nil:
		return resolved, nil
	case errors.Is(err, fs.ErrNotExist):
		return path, nil
	default:
		return "", classify(path, err)
	}
}

// writeTemp writes content to a synced temp file next to target and
// returns its name. The temp file is removed on failure.
func writeTemp(target string, content []byte, mode os.FileMode) (_ string, err error) {
	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".tmp.*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return "", fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return "", fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	return tmp.Name(), nil
}

// WriteBack replaces the file described by info with content, keeping its
// permissions. It fails with ErrModified if the file changed since it was
// read.
func WriteBack(ctx context.Context, info *FileInfo, content []byte) error {
	modified, err := CheckModified(ctx, info)
	if err != nil {
		return err
	}
	if modified {
		return fmt.Errorf("%w: %s", ErrModified, info.Path)
	}
	return WriteAtomic(ctx, info.Path, content, info.Mode.Perm())
}
