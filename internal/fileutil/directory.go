package fileutil

import (
	"os"
	"path/filepath"

	"github.com/harrison/cmdx/internal/models"
)

// ReadDirectory reads the immediate contents of dir.
// Any failure, including one unreadable child, fails the whole directory.
func ReadDirectory(dir models.FileEntry) (models.DirectoryEntry, error) {
	if !dir.IsDirectory {
		return models.DirectoryEntry{}, models.NewDirectoryReadError(dir.Path, models.ErrNotDirectory)
	}

	children, err := os.ReadDir(dir.Path)
	if err != nil {
		return models.DirectoryEntry{}, models.NewDirectoryReadError(dir.Path, err)
	}

	contents := make([]models.FileEntry, 0, len(children))
	for _, child := range children {
		entry, err := NewFileEntry(filepath.Join(dir.Path, child.Name()))
		if err != nil {
			return models.DirectoryEntry{}, models.NewDirectoryReadError(dir.Path, err)
		}
		contents = append(contents, entry)
	}

	return models.NewDirectoryEntry(dir, contents), nil
}
