// Package loader discovers Palel source files under a project's source
// root, walking the tree with the stdlib filepath.WalkDir.
package loader

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/palel-lang/palelc/internal/palelerr"
)

// SrcFile is one discovered source file: its path relative to the
// source root, and its contents.
type SrcFile struct {
	RelPath string
	Content []byte
}

// Load recursively walks srcDir, collecting every regular file whose
// name ends in ".palel". Results are sorted by relative path for
// deterministic downstream processing. Zero matches is reported as
// NoSourceFiles.
func Load(srcDir string) ([]SrcFile, *palelerr.Error) {
	var files []SrcFile
	var failedPath string

	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			failedPath = path
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".palel" {
			return nil
		}
		rel, relErr := filepath.Rel(srcDir, path)
		if relErr != nil {
			rel = path
		}
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			failedPath = path
			return readErr
		}
		files = append(files, SrcFile{RelPath: rel, Content: content})
		return nil
	})

	if err != nil {
		if os.IsNotExist(err) {
			return nil, palelerr.NewNoSourceFiles(srcDir)
		}
		return nil, palelerr.NewFailedToReadSrcFile(failedPath)
	}

	if len(files) == 0 {
		return nil, palelerr.NewNoSourceFiles(srcDir)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}
