// Package runner orchestrates linting and fixing across many files:
// discovery, a worker pool, safe writes, and aggregate statistics.
package runner

// Mode selects what the runner does with each file.
type Mode int

const (
	// ModeCheck lints files and reports findings without writing.
	ModeCheck Mode = iota

	// ModeFix applies fixes and writes changed files back atomically.
	ModeFix

	// ModeFixDry computes fixes but never writes, reporting what would
	// change.
	ModeFixDry
)

// Options controls a runner invocation.
type Options struct {
	// Paths are the files or directories to process. Empty means the
	// working directory.
	Paths []string

	// WorkingDir resolves relative Paths and glob patterns. Empty means
	// the process working directory.
	WorkingDir string

	// Extensions are the file extensions treated as Markdown, lowercase
	// with leading dot. Empty means DefaultExtensions().
	Extensions []string

	// IncludeGlobs, when non-empty, restricts processing to matching
	// paths (relative to WorkingDir, doublestar syntax).
	IncludeGlobs []string

	// ExcludeGlobs skips matching files and directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs caps worker concurrency. 0 or negative means one worker per
	// CPU.
	Jobs int

	// Mode selects check or fix behavior.
	Mode Mode

	// Backup, in fix mode, writes a sidecar backup of each file before
	// the first modification.
	Backup bool
}

// DefaultExtensions returns the default Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
