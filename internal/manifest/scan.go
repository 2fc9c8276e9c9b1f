package manifest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"
)

// Scan lists root/<category>/<language> for every pair of the layout and
// returns one record per audio file in discovery order.
// Missing pairs are expected and skipped, a missing root is an error.
func Scan(ctx context.Context, root string, layout *Layout) ([]Record, error) {
	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}

	records := make([]Record, 0)
	for _, category := range layout.Categories {
		for _, lang := range layout.Languages {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			dir := filepath.Join(root, category, lang)
			names, err := audioFiles(dir, layout)
			if err != nil {
				return nil, err
			}
			for _, name := range names {
				records = append(records, layout.Record(category, lang, name))
			}
		}
	}
	return records, nil
}

// audioFiles returns the names of regular audio files directly inside dir.
// A dir that does not exist or is no directory yields no names.
func audioFiles(dir string, layout *Layout) ([]string, error) {
	info, err := os.Stat(dir)
	if isMissing(err) {
		slog.Debug("skipped", "dir", dir)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		slog.Debug("skipped", "dir", dir, "reason", "not a directory")
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if !layout.IsAudio(name) {
			slog.Debug("excluded", "path", filepath.Join(dir, name))
			continue
		}
		regular, err := isRegular(dir, e)
		if err != nil {
			return nil, err
		}
		if !regular {
			slog.Debug("excluded", "path", filepath.Join(dir, name), "reason", "not a regular file")
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// isRegular follows symlinks. A dangling link is not a regular file.
func isRegular(dir string, e fs.DirEntry) (bool, error) {
	if e.Type().IsRegular() {
		return true, nil
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	if isMissing(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// isMissing is true for paths that do not exist, including paths with a
// non-directory in the middle.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
