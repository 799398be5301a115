package fileutil

import (
	"os"

	"github.com/harrison/cmdx/internal/models"
)

// NewFileEntry reads the metadata for path and returns its FileEntry.
func NewFileEntry(path string) (models.FileEntry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return models.FileEntry{}, models.NewPathError(path, err)
	}

	isSymlink := info.Mode()&os.ModeSymlink != 0
	isDir := info.IsDir()
	if isSymlink {
		// Dangling links stay plain entries.
		if target, err := os.Stat(path); err == nil {
			isDir = target.IsDir()
		}
	}

	return models.NewFileEntry(path, isDir, isSymlink), nil
}
