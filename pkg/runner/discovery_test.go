package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTree creates files (with parent directories) under a temp root.
func makeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("# "+f+"\n"), 0o644))
	}
	return root
}

// relFiles maps discovered absolute paths back to slash-separated
// paths relative to root.
func relFiles(t *testing.T, root string, files []string) []string {
	t.Helper()
	out := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscover_WalksSorted(t *testing.T) {
	root := makeTree(t,
		"zeta.md",
		"alpha.md",
		"notes/daily.md",
		"notes/deep/idea.markdown",
		"readme.txt",
	)

	files, err := Discover(context.Background(), Options{WorkingDir: root})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"alpha.md",
		"notes/daily.md",
		"notes/deep/idea.markdown",
		"zeta.md",
	}, relFiles(t, root, files))

	for _, f := range files {
		assert.True(t, filepath.IsAbs(f))
	}
}

func TestDiscover_HiddenEntriesSkipped(t *testing.T) {
	root := makeTree(t,
		"visible.md",
		".hidden.md",
		".obsidian/workspace.md",
		"sub/.secret.md",
	)

	files, err := Discover(context.Background(), Options{WorkingDir: root})
	require.NoError(t, err)
	assert.Equal(t, []string{"visible.md"}, relFiles(t, root, files))
}

func TestDiscover_ExplicitFile(t *testing.T) {
	root := makeTree(t, "note.md", "other.md")

	files, err := Discover(context.Background(), Options{
		WorkingDir: root,
		Paths:      []string{"note.md"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"note.md"}, relFiles(t, root, files))
}

func TestDiscover_MissingPath(t *testing.T) {
	root := t.TempDir()
	_, err := Discover(context.Background(), Options{
		WorkingDir: root,
		Paths:      []string{"nope.md"},
	})
	assert.Error(t, err)
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	root := makeTree(t,
		"keep.md",
		"drafts/wip.md",
		"notes/keep.md",
		"notes/skip-this.md",
	)

	tests := []struct {
		name    string
		exclude []string
		want    []string
	}{
		{
			name:    "directory pattern",
			exclude: []string{"drafts/**"},
			want:    []string{"keep.md", "notes/keep.md", "notes/skip-this.md"},
		},
		{
			name:    "bare name matches basename anywhere",
			exclude: []string{"skip-*.md"},
			want:    []string{"drafts/wip.md", "keep.md", "notes/keep.md"},
		},
		{
			name:    "doublestar",
			exclude: []string{"**/keep.md"},
			want:    []string{"drafts/wip.md", "notes/skip-this.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := Discover(context.Background(), Options{
				WorkingDir:   root,
				ExcludeGlobs: tt.exclude,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, relFiles(t, root, files))
		})
	}
}

func TestDiscover_IncludeGlobs(t *testing.T) {
	root := makeTree(t, "a.md", "notes/b.md", "notes/c.md")

	files, err := Discover(context.Background(), Options{
		WorkingDir:   root,
		IncludeGlobs: []string{"notes/**"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"notes/b.md", "notes/c.md"}, relFiles(t, root, files))
}

func TestDiscover_CustomExtensions(t *testing.T) {
	root := makeTree(t, "note.md", "page.mdx")

	files, err := Discover(context.Background(), Options{
		WorkingDir: root,
		Extensions: []string{".mdx"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"page.mdx"}, relFiles(t, root, files))
}

func TestDiscover_DeduplicatesOverlappingPaths(t *testing.T) {
	root := makeTree(t, "notes/a.md")

	files, err := Discover(context.Background(), Options{
		WorkingDir: root,
		Paths:      []string{".", "notes", "notes/a.md"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"notes/a.md"}, relFiles(t, root, files))
}
