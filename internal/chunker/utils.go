package chunker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/courseteen/server/internal/logger"
)

var documentExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
}

// walks root (a file or directory) and loads every text document it finds.
// unreadable files are reported but do not stop the walk.
func CollectDocuments(root string) ([]Document, []error) {
	var docs []Document
	var errs []error

	walkErr := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			logger.Warn("error accessing path",
				"path", path,
				"error", err,
			)
			errs = append(errs, fmt.Errorf("path %s: %w", path, err))
			return nil // continue walking
		}

		if info.IsDir() {
			return nil
		}

		if !documentExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("failed to read file",
				"path", path,
				"error", err,
			)
			errs = append(errs, fmt.Errorf("read %s: %w", path, err))
			return nil
		}

		name, err := filepath.Rel(root, path)
		if err != nil || name == "." {
			name = filepath.Base(path)
		}

		docs = append(docs, Document{
			Path:    path,
			Name:    name,
			Content: string(content),
		})

		return nil
	})

	if walkErr != nil {
		errs = append(errs, fmt.Errorf("failed to walk %s: %w", root, walkErr))
	}

	logger.Debug("documents collected",
		"root", root,
		"documents", len(docs),
		"errors", len(errs),
	)

	return docs, errs
}
