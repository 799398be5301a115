// Package fileutil resolves filesystem paths into listing entries.
//
// It is the only package in cmdx that touches the filesystem for listing.
// Every function performs a fixed, small number of reads and returns plain
// values from the models package.
//
// # Entries
//
// NewFileEntry performs one symlink-aware metadata read:
//
//	entry, err := fileutil.NewFileEntry("/var/tmp/abcd.efg")
//	if err != nil {
//	    // err is a *models.PathError (NotFound, PermissionDenied or Filesystem)
//	}
//
// A symbolic link is itself never followed for the "is it a link" check, but
// a link whose target is a directory is classified as a directory. A dangling
// link is a plain entry.
//
// # Directories
//
// ReadDirectory expands an entry known to be a directory:
//
//	dir, err := fileutil.ReadDirectory(entry)
//
// The read is one level deep and all-or-nothing: if the directory cannot be
// opened, or any single child cannot be resolved, no partial listing is
// returned and the error is a *models.PathError of kind DirectoryRead.
// Contents are sorted by name. Dotfiles are kept; filtering is a display concern.
package fileutil
