// Package fsutil provides the file discovery helpers manifest loading needs.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// FindByExtension walks root recursively and returns the paths of every
// regular file whose name ends with ext, in lexical walk order (so repeated
// scans of the same tree yield the same sequence).
func FindByExtension(root, ext string) ([]string, error) {
	if ext == "" {
		panic("fsutil: ext must not be empty")
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ext) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
