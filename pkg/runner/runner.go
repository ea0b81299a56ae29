package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/notelint/notelint/pkg/fsutil"
	"github.com/notelint/notelint/pkg/linter"
)

// Runner fans one Linter out over many files.
type Runner struct {
	linter *linter.Linter
}

// New creates a Runner. The Linter is shared across workers; it is
// immutable, so no further synchronization is needed.
func New(l *linter.Linter) *Runner {
	return &Runner{linter: l}
}

// Run discovers files under opts.Paths and processes them with a
// worker pool. Outcomes are collected in path order regardless of
// worker completion order, so two runs over the same tree produce the
// same Result.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, opts Options) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processFile(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processFile checks or fixes a single file. In fix mode the write is
// guarded: if the file changed on disk after it was read, the fix is
// discarded and the file marked skipped rather than clobbering the
// concurrent edit.
func (r *Runner) processFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, snap, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	if opts.Mode == ModeCheck {
		checked := r.linter.CheckFile(path, content)
		outcome.Findings = checked.Findings
		outcome.RuleErrors = checked.RuleErrors
		return outcome
	}

	fixed := r.linter.Fix(content)
	outcome.Fix = fixed
	outcome.Findings = fixed.Remaining

	if opts.Mode == ModeFixDry || string(fixed.Content) == string(content) {
		return outcome
	}

	modified, err := fsutil.Modified(ctx, snap)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	if modified {
		outcome.Skipped = true
		return outcome
	}

	if opts.Backup {
		if _, err := fsutil.CreateBackup(ctx, path); err != nil {
			outcome.Error = err
			return outcome
		}
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, fixed.Content, snap.Mode)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Written = written
	return outcome
}
