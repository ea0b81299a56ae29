package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notelint/notelint/pkg/fsutil"
	"github.com/notelint/notelint/pkg/linter"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	l, err := linter.New(nil)
	require.NoError(t, err)
	return New(l)
}

func TestRun_CheckMode(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "bad.md"),
		[]byte("#Heading\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "good.md"),
		[]byte("# Title\n\nFine.\n"), 0o644))

	result, err := newTestRunner(t).Run(context.Background(), Options{
		WorkingDir: root,
		Mode:       ModeCheck,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesWithIssues)
	assert.Equal(t, 1, result.Stats.FindingsTotal)
	assert.Equal(t, 1, result.Stats.FindingsFixable)
	assert.Zero(t, result.Stats.FilesModified)
	assert.True(t, result.HasIssues())

	require.Len(t, result.Files, 2)
	assert.Equal(t, "bad.md", filepath.Base(result.Files[0].Path))
	require.Len(t, result.Files[0].Findings, 1)
	assert.Equal(t, "MD018", result.Files[0].Findings[0].Rule)
	assert.Empty(t, result.Files[1].Findings)

	// Check mode never writes.
	content, err := os.ReadFile(filepath.Join(root, "bad.md"))
	require.NoError(t, err)
	assert.Equal(t, "#Heading\n", string(content))
}

func TestRun_FixModeWrites(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "note.md")
	require.NoError(t, os.WriteFile(path, []byte("#Heading\n"), 0o644))

	result, err := newTestRunner(t).Run(context.Background(), Options{
		WorkingDir: root,
		Mode:       ModeFix,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.True(t, result.Files[0].Written)
	assert.Equal(t, 1, result.Stats.FilesModified)
	assert.Positive(t, result.Stats.FindingsFixed)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Heading\n", string(content))
}

func TestRun_FixDryLeavesFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "note.md")
	require.NoError(t, os.WriteFile(path, []byte("#Heading\n"), 0o644))

	result, err := newTestRunner(t).Run(context.Background(), Options{
		WorkingDir: root,
		Mode:       ModeFixDry,
	})
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.False(t, result.Files[0].Written)
	require.NotNil(t, result.Files[0].Fix)
	assert.Positive(t, result.Files[0].Fix.Applied)
	assert.Zero(t, result.Stats.FilesModified)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#Heading\n", string(content))
}

func TestRun_CleanFileNotRewritten(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "note.md")
	require.NoError(t, os.WriteFile(path, []byte("# Title\n\nFine.\n"), 0o644))

	before, err := os.Stat(path)
	require.NoError(t, err)

	result, err := newTestRunner(t).Run(context.Background(), Options{
		WorkingDir: root,
		Mode:       ModeFix,
	})
	require.NoError(t, err)
	assert.False(t, result.Files[0].Written)

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestRun_BackupCreated(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "note.md")
	require.NoError(t, os.WriteFile(path, []byte("#Heading\n"), 0o644))

	_, err := newTestRunner(t).Run(context.Background(), Options{
		WorkingDir: root,
		Mode:       ModeFix,
		Backup:     true,
	})
	require.NoError(t, err)

	backup, err := os.ReadFile(fsutil.BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, "#Heading\n", string(backup))

	fixed, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Heading\n", string(fixed))
}

func TestRun_Deterministic(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.md", "b.md", "c.md", "d.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name),
			[]byte("#"+name+"\n"), 0o644))
	}

	runner := newTestRunner(t)
	opts := Options{WorkingDir: root, Mode: ModeCheck, Jobs: 4}

	first, err := runner.Run(context.Background(), opts)
	require.NoError(t, err)

	for range 5 {
		again, err := runner.Run(context.Background(), opts)
		require.NoError(t, err)

		require.Len(t, again.Files, len(first.Files))
		for i := range first.Files {
			assert.Equal(t, first.Files[i].Path, again.Files[i].Path)
			assert.Equal(t, first.Files[i].Findings, again.Files[i].Findings)
		}
		assert.Equal(t, first.Stats, again.Stats)
	}
}

func TestRun_UnreadableFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "ok.md"),
		[]byte("# Fine\n"), 0o644))

	result, err := newTestRunner(t).Run(context.Background(), Options{
		WorkingDir: root,
		Paths:      []string{"ok.md"},
		Mode:       ModeCheck,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	assert.Zero(t, result.Stats.FilesErrored)
}

func TestRun_EmptyTree(t *testing.T) {
	result, err := newTestRunner(t).Run(context.Background(), Options{
		WorkingDir: t.TempDir(),
		Mode:       ModeCheck,
	})
	require.NoError(t, err)

	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasIssues())
}
