package models

import (
	"path/filepath"
	"strings"
)

// FileEntry represents one filesystem path resolved for listing.
// It is a value type and is never mutated after construction.
type FileEntry struct {
	Name         string // final path component ("abcd.efg", ".", "/", ".zshrc")
	Extension    string // lowercase text after the last '.', valid only when HasExtension
	HasExtension bool   // false when the name has no '.' or is ".", ".." or "/"
	Path         string // path as supplied, used to read directory contents
	IsDirectory  bool   // true for directories and symlinks to directories
	IsSymlink    bool   // true when the path itself is a symbolic link
}

// NewFileEntry builds a FileEntry from a path and its classification.
// Name and extension are derived from the path; no filesystem access happens here.
func NewFileEntry(path string, isDir, isSymlink bool) FileEntry {
	ext, ok := ExtensionOf(path)
	return FileEntry{
		Name:         NameOf(path),
		Extension:    ext,
		HasExtension: ok,
		Path:         path,
		IsDirectory:  isDir,
		IsSymlink:    isSymlink,
	}
}

// IsDotfile reports whether the entry name starts with '.'.
func (e FileEntry) IsDotfile() bool {
	return strings.HasPrefix(e.Name, ".")
}

// Equal compares entries by name only. Extension and metadata are ignored.
func (e FileEntry) Equal(other FileEntry) bool {
	return e.Name == other.Name
}

// CompareEntries orders entries by name using byte ordering.
func CompareEntries(a, b FileEntry) int {
	return strings.Compare(a.Name, b.Name)
}

// NameOf returns the final component of path.
// "." "..", and "/" are returned unchanged. Trailing separators and trailing
// "/." components are ignored, so "foo/." and "foo/./" both name "foo".
func NameOf(path string) string {
	if path == "" {
		return filepath.Base(path)
	}

	sep := string(filepath.Separator)
	trimmed := strings.TrimRight(path, sep)
	for strings.HasSuffix(trimmed, sep+".") {
		trimmed = strings.TrimRight(trimmed[:len(trimmed)-1], sep)
	}
	if trimmed == "" {
		return sep
	}
	return filepath.Base(trimmed)
}

// ExtensionOf returns the lowercased text after the last '.' in the name of path.
// The second result is false when the name has no '.' or when the path has no
// file name of its own (".", "..", "/"). A name ending in '.' yields an empty,
// present extension. A leading '.' counts as a separator, so ".zshrc" yields "zshrc".
func ExtensionOf(path string) (string, bool) {
	name := NameOf(path)
	if !hasFileName(name) {
		return "", false
	}

	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return "", false
	}
	return strings.ToLower(name[idx+1:]), true
}

// hasFileName reports whether name is an actual file name rather than a
// current-directory, parent-directory or root marker.
func hasFileName(name string) bool {
	switch name {
	case ".", "..", string(filepath.Separator):
		return false
	}
	return name != ""
}
