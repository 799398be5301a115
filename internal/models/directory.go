package models

import "slices"

// DirectoryEntry is the sorted, one-level view of a directory's contents.
// Contents is sorted by CompareEntries and must not be modified after construction.
type DirectoryEntry struct {
	Name     string
	Path     string
	Contents []FileEntry
}

// NewDirectoryEntry takes ownership of contents and sorts it.
// The sort is stable, so entries with equal names keep their read order.
func NewDirectoryEntry(dir FileEntry, contents []FileEntry) DirectoryEntry {
	if contents == nil {
		contents = []FileEntry{}
	}
	slices.SortStableFunc(contents, CompareEntries)

	return DirectoryEntry{
		Name:     dir.Name,
		Path:     dir.Path,
		Contents: contents,
	}
}

// Visible returns the contents with dotfiles removed, in sorted order.
func (d DirectoryEntry) Visible() []FileEntry {
	visible := make([]FileEntry, 0, len(d.Contents))
	for _, entry := range d.Contents {
		if entry.IsDotfile() {
			continue
		}
		visible = append(visible, entry)
	}
	return visible
}
