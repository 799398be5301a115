// Package filelock writes listing output files safely when several cmdx
// processes target the same file.
//
// For an output path dir/name the lock lives at dir/.name.lock and the
// staging file at dir/.name.tmp-*. Both are dotfiles, so listing dir with
// cmdx never shows them. The lock file is left in place after a write:
// unlinking it would let a waiting writer lock the old inode while a new
// writer creates and locks a fresh one.
package filelock

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// DefaultPerm is the mode of a newly created listing file.
const DefaultPerm fs.FileMode = 0644

// ErrIsDirectory is returned when the output path names a directory.
var ErrIsDirectory = errors.New("output path is a directory")

// LockPath returns the hidden lock file guarding writes to path.
func LockPath(path string) string {
	dir, name := filepath.Split(path)
	return filepath.Join(dir, "."+name+".lock")
}

// WriteListing replaces the file at path with listing while holding the
// lock at LockPath(path). Missing parent directories are created. An existing
// file keeps its permission bits, a new one gets DefaultPerm.
func WriteListing(path, listing string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	lock := flock.New(LockPath(path))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", lock.Path(), err)
	}
	defer lock.Unlock()

	perm := DefaultPerm
	switch info, err := os.Stat(path); {
	case err == nil && info.IsDir():
		return fmt.Errorf("%s: %w", path, ErrIsDirectory)
	case err == nil:
		perm = info.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return replace(path, []byte(listing), perm)
}

// replace stages data next to path and renames it over path, so a reader
// sees either the previous listing or the new one.
func replace(path string, data []byte, perm fs.FileMode) (err error) {
	dir, name := filepath.Dir(path), filepath.Base(path)
	staged, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create staging file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			staged.Close()
			os.Remove(staged.Name())
		}
	}()

	if _, err = staged.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", staged.Name(), err)
	}
	if err = staged.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", staged.Name(), err)
	}
	if err = staged.Chmod(perm); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", staged.Name(), err)
	}
	if err = staged.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", staged.Name(), err)
	}
	if err = os.Rename(staged.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
