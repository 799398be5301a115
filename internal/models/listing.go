package models

// ListingResult is the outcome of one listing run.
type ListingResult struct {
	Output      string           // rendered listing text
	Files       []FileEntry      // plain entries in input order
	Directories []DirectoryEntry // expanded directories in input order
	Errors      []*PathError     // per-path failures in processing order
	InputCount  int              // number of input paths processed
}

// HasErrors reports whether any path failed.
func (r *ListingResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// AllFailed reports whether every input path failed.
func (r *ListingResult) AllFailed() bool {
	return r.InputCount > 0 && len(r.Errors) >= r.InputCount
}
