// Package listing coordinates a directory listing run.
//
// A Lister resolves each input path to an entry, expands directories into
// their sorted contents and renders the result. Failures are recorded per
// path and never abort the remaining paths.
package listing

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/cmdx/internal/display"
	"github.com/harrison/cmdx/internal/fileutil"
	"github.com/harrison/cmdx/internal/logger"
	"github.com/harrison/cmdx/internal/models"
)

// DefaultPath is listed when the caller supplies no paths.
const DefaultPath = "."

// Logger defines the interface for logging listing progress.
type Logger interface {
	LogDebug(message string)
	LogListingStart(runID string, pathCount int)
	LogListingSummary(runID string, result *models.ListingResult, duration time.Duration)
}

// Resolver performs the filesystem reads behind a listing.
type Resolver interface {
	Entry(path string) (models.FileEntry, error)
	Directory(dir models.FileEntry) (models.DirectoryEntry, error)
}

// FileSystemResolver reads the local filesystem through fileutil.
type FileSystemResolver struct{}

// Entry implements Resolver.
func (FileSystemResolver) Entry(path string) (models.FileEntry, error) {
	return fileutil.NewFileEntry(path)
}

// Directory implements Resolver.
func (FileSystemResolver) Directory(dir models.FileEntry) (models.DirectoryEntry, error) {
	return fileutil.ReadDirectory(dir)
}

// Options configures a Lister.
type Options struct {
	// MaxConcurrency bounds how many input paths are resolved at once.
	// 1 resolves sequentially, 0 resolves all paths at once.
	MaxConcurrency int
	// Colorize enables terminal decoration in the rendered output.
	Colorize bool
	// Resolver defaults to FileSystemResolver.
	Resolver Resolver
	// Logger defaults to a logger.NoOpLogger.
	Logger Logger
}

// Lister resolves and renders input paths.
type Lister struct {
	maxConcurrency int
	renderer       display.Renderer
	resolver       Resolver
	logger         Logger
}

// NewLister creates a Lister from opts.
func NewLister(opts Options) *Lister {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = FileSystemResolver{}
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &Lister{
		maxConcurrency: opts.MaxConcurrency,
		renderer:       display.Renderer{Colorize: opts.Colorize},
		resolver:       resolver,
		logger:         log,
	}
}

// DefaultPaths returns paths, or the current directory when paths is empty.
func DefaultPaths(paths []string) []string {
	if len(paths) == 0 {
		return []string{DefaultPath}
	}
	return paths
}

// resolution is the outcome for one input path.
type resolution struct {
	entry    models.FileEntry
	dir      models.DirectoryEntry
	entryErr *models.PathError
	dirErr   *models.PathError
}

// List resolves paths and renders them.
// Metadata failures are reported first in input order, then directory read
// failures in input order. Files and directories keep input order.
func (l *Lister) List(paths []string) *models.ListingResult {
	runID := uuid.New().String()[:8]
	start := time.Now()
	l.logger.LogListingStart(runID, len(paths))

	resolved := l.resolveAll(paths)

	result := &models.ListingResult{
		Files:       make([]models.FileEntry, 0),
		Directories: make([]models.DirectoryEntry, 0),
		Errors:      make([]*models.PathError, 0),
		InputCount:  len(paths),
	}

	for _, r := range resolved {
		switch {
		case r.entryErr != nil:
			result.Errors = append(result.Errors, r.entryErr)
		case !r.entry.IsDirectory:
			result.Files = append(result.Files, r.entry)
		}
	}
	for _, r := range resolved {
		if r.entryErr != nil || !r.entry.IsDirectory {
			continue
		}
		if r.dirErr != nil {
			result.Errors = append(result.Errors, r.dirErr)
			continue
		}
		result.Directories = append(result.Directories, r.dir)
	}

	result.Output = l.renderer.Render(result.Files, result.Directories)

	l.logger.LogListingSummary(runID, result, time.Since(start))
	return result
}

// resolveAll resolves every path, in parallel when allowed, and returns the
// resolutions indexed like paths.
func (l *Lister) resolveAll(paths []string) []resolution {
	resolved := make([]resolution, len(paths))

	maxConcurrency := l.maxConcurrency
	if maxConcurrency <= 0 || maxConcurrency > len(paths) {
		maxConcurrency = len(paths)
	}

	if maxConcurrency <= 1 {
		for i, path := range paths {
			resolved[i] = l.resolve(path)
		}
		return resolved
	}

	semaphore := make(chan struct{}, maxConcurrency)
	var wg sync.WaitGroup

	for i, path := range paths {
		semaphore <- struct{}{}
		wg.Add(1)

		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-semaphore }()

			// each goroutine owns its slot
			resolved[i] = l.resolve(path)
		}(i, path)
	}

	wg.Wait()
	return resolved
}

// resolve reads the entry for path and, for directories, its contents.
func (l *Lister) resolve(path string) resolution {
	entry, err := l.resolver.Entry(path)
	if err != nil {
		l.logger.LogDebug(fmt.Sprintf("%s: %v", path, err))
		return resolution{entryErr: asPathError(path, err)}
	}

	if !entry.IsDirectory {
		l.logger.LogDebug(fmt.Sprintf("%s: file", path))
		return resolution{entry: entry}
	}

	dir, err := l.resolver.Directory(entry)
	if err != nil {
		l.logger.LogDebug(fmt.Sprintf("%s: directory read failed: %v", path, err))
		return resolution{entry: entry, dirErr: asDirectoryError(path, err)}
	}

	l.logger.LogDebug(fmt.Sprintf("%s: directory with %d entries", path, len(dir.Contents)))
	return resolution{entry: entry, dir: dir}
}


// asPathError keeps *models.PathError values and wraps anything else.
func asPathError(path string, err error) *models.PathError {
	if pathErr, ok := err.(*models.PathError); ok {
		return pathErr
	}
	return models.NewPathError(path, err)
}

func asDirectoryError(path string, err error) *models.PathError {
	if pathErr, ok := err.(*models.PathError); ok && pathErr.Kind == models.KindDirectoryRead {
		return pathErr
	}
	return models.NewDirectoryReadError(path, err)
}
