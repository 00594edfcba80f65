package xmlpack

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// loadDir enumerates an already-unpacked pack directory the same way
// loadZip enumerates an archive, so load.go can treat both sources
// uniformly. Directory packs skip the duplicate-path check (the
// filesystem already guarantees uniqueness) but still reject any
// symlink or path component that would escape root.
func loadDir(root string) ([]archiveEntry, error) {
	var entries []archiveEntry
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		norm := strings.ToLower(filepath.ToSlash(rel))
		if strings.HasPrefix(norm, "../") {
			return fmt.Errorf("pack entry escapes root: %s", rel)
		}
		if d.Type()&fs.ModeSymlink != 0 {
			target, err := filepath.EvalSymlinks(p)
			if err != nil {
				return err
			}
			realRoot, err := filepath.EvalSymlinks(root)
			if err != nil {
				return err
			}
			tr, err := filepath.Rel(realRoot, target)
			if err != nil || tr == ".." || strings.HasPrefix(filepath.ToSlash(tr), "../") {
				return fmt.Errorf("pack entry escapes root: %s", rel)
			}
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", rel, err)
		}
		entries = append(entries, archiveEntry{
			normalizedPath: norm,
			kind:           classify(norm),
			data:           data,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
