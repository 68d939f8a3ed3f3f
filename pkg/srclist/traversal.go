package srclist

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Excluder decides whether a root-relative path is left out of the list.
// Excluded directories are not descended into.
type Excluder interface {
	Matches(relPath string, isDir bool) bool
}

// Collect walks root and returns every non-directory entry whose name ends in
// ext, in walk order. Each path is root exactly as given followed by the
// entry's relative path, so "./src", "." and "src//" keep their spelling the
// way find(1) prints them. Any walk error, including a missing or unreadable
// root or subtree, aborts the scan.
func Collect(root, ext string, exclude Excluder, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	files := []string{}
	logger.Debug("Starting source traversal", zap.String("root", root), zap.String("extension", ext))

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Error("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return err
		}

		relPath := ""
		if path != root {
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return fmt.Errorf("failed to relate %s to root: %w", path, relErr)
			}
			relPath = rel
		}

		if exclude != nil && relPath != "" {
			if exclude.Matches(relPath, d.IsDir()) {
				if d.IsDir() {
					logger.Debug("Skipping excluded directory", zap.String("directory", path))
					return filepath.SkipDir
				}
				logger.Debug("Skipping excluded file", zap.String("filePath", path))
				return nil
			}
		}

		if d.IsDir() || !strings.HasSuffix(d.Name(), ext) {
			return nil
		}

		listed := listedPath(root, relPath)
		files = append(files, listed)
		logger.Debug("Added source file", zap.String("filePath", listed))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	logger.Debug("Completed source traversal", zap.Int("sourceFiles", len(files)))
	return files, nil
}

// listedPath spells an entry the way the scan root was typed. WalkDir joins
// with filepath.Join, which cleans the root.
func listedPath(root, relPath string) string {
	if relPath == "" {
		return root
	}
	if strings.HasSuffix(root, string(filepath.Separator)) || strings.HasSuffix(root, "/") {
		return root + relPath
	}
	return root + string(filepath.Separator) + relPath
}
